package chroma

import (
	"math/rand/v2"

	"github.com/32bitkid/chroma/parse"
)

// Not complements the packed integer form of c against 0xffffff.
func (c Color) Not() Color {
	return fromInt(parse.MaxInt - c.Int())
}

// Inv is an alias for Not.
func (c Color) Inv() Color { return c.Not() }

func (c Color) And(o Color) Color { return fromInt(c.Int() & o.Int()) }
func (c Color) Or(o Color) Color  { return fromInt(c.Int() | o.Int()) }
func (c Color) Xor(o Color) Color { return fromInt(c.Int() ^ o.Int()) }

// Add sums each channel, alpha included. Sums saturate instead of wrapping.
func (c Color) Add(o Color) Color {
	return RGBA(
		int(c.r)+int(o.r),
		int(c.g)+int(o.g),
		int(c.b)+int(o.b),
		c.a+o.a,
	)
}

// Sub subtracts each RGB channel, stopping at zero. The result is opaque.
func (c Color) Sub(o Color) Color {
	return RGB(
		int(c.r)-int(o.r),
		int(c.g)-int(o.g),
		int(c.b)-int(o.b),
	)
}

// Avg averages each RGB channel, rounding down. The result is opaque.
func (c Color) Avg(o Color) Color {
	return RGB(
		(int(c.r)+int(o.r))/2,
		(int(c.g)+int(o.g))/2,
		(int(c.b)+int(o.b))/2,
	)
}

func Not(x Color) Color    { return x.Not() }
func Inv(x Color) Color    { return x.Not() }
func And(x, y Color) Color { return x.And(y) }
func Or(x, y Color) Color  { return x.Or(y) }
func Xor(x, y Color) Color { return x.Xor(y) }
func Add(x, y Color) Color { return x.Add(y) }
func Sub(x, y Color) Color { return x.Sub(y) }
func Avg(x, y Color) Color { return x.Avg(y) }

// Random returns an opaque color drawn uniformly from [0, 0xffffff].
// It is safe for concurrent use.
func Random() Color {
	return fromInt(rand.IntN(parse.MaxInt + 1))
}

// RandomFrom is Random with a caller-supplied source, for reproducible
// sequences.
func RandomFrom(r *rand.Rand) Color {
	return fromInt(r.IntN(parse.MaxInt + 1))
}
