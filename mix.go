package chroma

import (
	"math"

	"github.com/32bitkid/chroma/convert"
	"github.com/32bitkid/chroma/parse"
	clr "github.com/lucasb-eyer/go-colorful"
)

func (c Color) colorful() clr.Color {
	return clr.Color{
		R: convert.ByteToUnit(c.r),
		G: convert.ByteToUnit(c.g),
		B: convert.ByteToUnit(c.b),
	}
}

func fromColorful(col clr.Color, a float64) Color {
	r, g, b := col.Clamped().RGB255()
	return Color{r: r, g: g, b: b, a: a}
}

func isGray(col clr.Color) bool {
	return col.R == col.G && col.G == col.B
}

// Mix interpolates from c (t = 0) to o (t = 1). Interpolation happens in
// CIE-L*a*b* unless either side is a gray, where L*a*b* would drift off
// the gray axis and RGB is used instead. Alpha is interpolated linearly.
func (c Color) Mix(o Color, t float64) Color {
	if math.IsNaN(t) {
		t = 0
	}
	t = parse.Clamp(t, 0, 1)
	c1, c2 := c.colorful(), o.colorful()
	a := parse.Unit(c.a + (o.a-c.a)*t)
	if isGray(c1) || isGray(c2) {
		return fromColorful(c1.BlendRgb(c2, t), a)
	}
	return fromColorful(c1.BlendLab(c2, t), a)
}

// Lighten raises the HCL luminance of c by p, where 1 spans black to white.
func (c Color) Lighten(p float64) Color {
	if math.IsNaN(p) {
		return c
	}
	h, ch, l := c.colorful().Hcl()
	return fromColorful(clr.Hcl(h, ch, l+p), c.a)
}

// Darken lowers the HCL luminance of c by p.
func (c Color) Darken(p float64) Color {
	return c.Lighten(-p)
}

// Mix is the two-argument form of Color.Mix.
func Mix(x, y Color, t float64) Color {
	return x.Mix(y, t)
}
