package chroma

import "github.com/32bitkid/chroma/blend"

// Blend combines c (the base) with o channel by channel using mode. The
// result is always opaque; alpha does not take part in blending. A mode
// outside the blend.Mode constants is not an error: c is returned unchanged,
// alpha included. Use blend.ParseMode to validate names from user input.
func (c Color) Blend(mode blend.Mode, o Color) Color {
	fn := mode.Func()
	if fn == nil {
		return c
	}
	return c.blendWith(fn, o)
}

func (c Color) blendWith(fn blend.Func, o Color) Color {
	return Color{
		r: blend.Channel(fn, c.r, o.r),
		g: blend.Channel(fn, c.g, o.g),
		b: blend.Channel(fn, c.b, o.b),
		a: 1,
	}
}

// The methods below are shorthands for Blend with the matching mode.

func (c Color) Multiply(o Color) Color   { return c.blendWith(blend.Multiply, o) }
func (c Color) Screen(o Color) Color     { return c.blendWith(blend.Screen, o) }
func (c Color) Overlay(o Color) Color    { return c.blendWith(blend.Overlay, o) }
func (c Color) HardLight(o Color) Color  { return c.blendWith(blend.HardLight, o) }
func (c Color) Divide(o Color) Color     { return c.blendWith(blend.Divide, o) }
func (c Color) Addition(o Color) Color   { return c.blendWith(blend.Addition, o) }
func (c Color) Subtract(o Color) Color   { return c.blendWith(blend.Subtract, o) }
func (c Color) Difference(o Color) Color { return c.blendWith(blend.Difference, o) }

// Blend is the two-argument form of Color.Blend.
func Blend(mode blend.Mode, x, y Color) Color {
	return x.Blend(mode, y)
}
