package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel(t *testing.T) {
	tests := []struct {
		mode Mode
		x, y uint8
		want uint8
	}{
		{ModeMultiply, 255, 119, 119},
		{ModeMultiply, 0, 119, 0},
		{ModeMultiply, 128, 128, 64},
		{ModeScreen, 0, 119, 119},
		{ModeScreen, 255, 10, 255},
		{ModeOverlay, 0, 200, 0},
		{ModeOverlay, 255, 10, 255},
		{ModeHardLight, 200, 0, 0},
		{ModeHardLight, 10, 255, 255},
		{ModeDivide, 51, 102, 128},
		{ModeDivide, 10, 0, 255},
		{ModeDivide, 0, 0, 255},
		{ModeDivide, 200, 100, 255},
		{ModeAddition, 200, 100, 255},
		{ModeAddition, 20, 30, 50},
		{ModeSubtract, 100, 200, 0},
		{ModeSubtract, 200, 100, 100},
		{ModeDifference, 100, 200, 100},
		{ModeDifference, 77, 77, 0},
	}

	for _, tt := range tests {
		got := Channel(tt.mode.Func(), tt.x, tt.y)
		assert.Equal(t, tt.want, got, "%s(%d, %d)", tt.mode, tt.x, tt.y)
	}
}

func TestOverlayHardLightSymmetry(t *testing.T) {
	for a := 0; a <= 255; a += 5 {
		for b := 0; b <= 255; b += 5 {
			require.Equal(t,
				Channel(Overlay, uint8(a), uint8(b)),
				Channel(HardLight, uint8(b), uint8(a)),
				"a=%d b=%d", a, b)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMode("hard-light")
	require.NoError(t, err)
	assert.Equal(t, ModeHardLight, got)

	got, err = ParseMode("DIFFERENCE")
	require.NoError(t, err)
	assert.Equal(t, ModeDifference, got)

	_, err = ParseMode("dodge")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestUnknownMode(t *testing.T) {
	m := Mode(42)
	assert.Nil(t, m.Func())
	assert.Equal(t, "Mode(42)", m.String())
	assert.Len(t, Modes(), 8)
}
