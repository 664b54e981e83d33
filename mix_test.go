package chroma

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMixEndpoints(t *testing.T) {
	x := RGB(0xac, 0x32, 0x32)
	y := RGB(0x63, 0x9b, 0xff)

	assert.Equal(t, x, x.Mix(y, 0))
	assert.Equal(t, y, x.Mix(y, 1))
	assert.Equal(t, y, x.Mix(y, 5))
	assert.Equal(t, x, x.Mix(y, math.NaN()))
	assert.Equal(t, x.Mix(y, 0.5), Mix(x, y, 0.5))
}

func TestMixGray(t *testing.T) {
	assert.Equal(t, RGB(128, 128, 128), Black.Mix(White, 0.5))
}

func TestMixAlpha(t *testing.T) {
	m := RGBA(10, 10, 10, 0).Mix(RGBA(10, 10, 10, 1), 0.25)
	assert.Equal(t, 0.25, m.A())
}

func TestLightenDarken(t *testing.T) {
	c := RGB(0x30, 0x60, 0x82)

	lighter := c.Lighten(0.2)
	darker := c.Darken(0.2)
	assert.Greater(t, lighter.HSL().L, c.HSL().L)
	assert.Less(t, darker.HSL().L, c.HSL().L)

	assert.Equal(t, White, White.Lighten(0.5))
	assert.Equal(t, Black, Black.Darken(0.5))
	assert.Equal(t, c, c.Lighten(math.NaN()))

	faded := c.WithA(0.3)
	assert.Equal(t, 0.3, faded.Darken(0.1).A())
}
