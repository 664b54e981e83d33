package chroma

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitOps(t *testing.T) {
	c0 := MustNew(0x0077ff).WithA(0.4)
	c1 := MustNew(255, 200, 64, 0.7)

	assert.Equal(t, rgba(255, 136, 0, 1), c0.Not())
	assert.Equal(t, rgba(255, 136, 0, 1), c0.Inv())
	assert.Equal(t, rgba(0, 64, 64, 1), c0.And(c1))
	assert.Equal(t, rgba(255, 255, 255, 1), c0.Or(c1))
	assert.Equal(t, rgba(255, 191, 191, 1), c0.Xor(c1))

	assert.Equal(t, c0.Not(), Not(c0))
	assert.Equal(t, c0.Not(), Inv(c0))
	assert.Equal(t, c0.And(c1), And(c0, c1))
	assert.Equal(t, c0.Or(c1), Or(c0, c1))
	assert.Equal(t, c0.Xor(c1), Xor(c0, c1))
}

func TestBitIdentities(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		x := RandomFrom(r)
		assert.Equal(t, x, x.Not().Not())
		assert.Equal(t, Black, x.Xor(x))
		assert.Equal(t, x, x.And(White))
		assert.Equal(t, x, x.Or(Black))
	}
}

func TestArithmetic(t *testing.T) {
	c0 := MustNew(0x0077ff).WithA(0.4)
	c1 := MustNew(255, 200, 64, 0.7)

	assert.Equal(t, rgba(255, 255, 255, 1), c0.Add(c1))
	assert.Equal(t, rgba(0, 0, 191, 1), c0.Sub(c1))
	assert.Equal(t, rgba(127, 159, 159, 1), c0.Avg(c1))

	assert.Equal(t, rgba(20, 40, 60, 0.75), RGBA(10, 20, 30, 0.25).Add(RGBA(10, 20, 30, 0.5)))
	assert.Equal(t, rgba(255, 0, 0, 1), Red.Sub(Black))

	assert.Equal(t, c0.Add(c1), Add(c0, c1))
	assert.Equal(t, c0.Sub(c1), Sub(c0, c1))
	assert.Equal(t, c0.Avg(c1), Avg(c0, c1))
}

func TestRandom(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := Random()
		assert.Equal(t, 1.0, c.A())
		assert.LessOrEqual(t, c.Int(), 0xffffff)
	}

	a := RandomFrom(rand.New(rand.NewPCG(7, 7)))
	b := RandomFrom(rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b)
}
