// Package chroma implements an RGBA color value that can be built from many
// literal forms and rendered back to hex, packed-integer, RGB and HSL.
//
// A Color holds three byte channels and a unit-interval alpha. It is an
// immutable value: every operation, including the per-channel With*
// setters, returns a new Color and leaves the receiver untouched, so colors
// can be copied and shared freely.
//
//	c, err := chroma.New("#07f")      // hex
//	c, err = chroma.New(0x0077ff)     // packed integer
//	c, err = chroma.New(0, 119, 255)  // positional bytes
//	c = c.Multiply(chroma.White)
//	fmt.Println(c)                    // #0077ff
package chroma

import (
	"image/color"

	"github.com/32bitkid/chroma/convert"
	"github.com/32bitkid/chroma/parse"
)

// Color is an RGB color with 8-bit channels and an alpha in [0,1].
// The zero value is transparent black; use New() or Black for opaque black.
type Color struct {
	r, g, b uint8
	a       float64
}

// HSL is a hue in degrees with saturation and lightness in percent.
type HSL struct {
	H, S, L float64
}

// Named opaque colors, plus fully transparent black.
var (
	White       = fromInt(0xffffff)
	Black       = fromInt(0x000000)
	Red         = fromInt(0xff0000)
	Green       = fromInt(0x00ff00)
	Blue        = fromInt(0x0000ff)
	Yellow      = fromInt(0xffff00)
	Cyan        = fromInt(0x00ffff)
	Magenta     = fromInt(0xff00ff)
	Transparent = Color{}
)

// New builds a Color from one of the accepted argument shapes:
//
//   - no arguments: opaque black
//   - a hex string: "#0077ff", "0077ff", "#07f", " 07f; "
//   - a packed integer in [0, 0xffffff]
//   - an HSL value, or a map with finite "h", "s" and "l" entries
//   - a record: a map with "r", "g", "b", "a" entries, a struct with
//     exported R, G, B, A fields, a Color, or any image/color.Color
//   - three or four positional values: r, g, b and optionally a
//
// Channel values are parsed leniently and clamped; only an unrecognized
// shape fails, with an *ArgumentsError.
func New(args ...any) (Color, error) {
	in, err := classify(args)
	if err != nil {
		return Color{}, err
	}
	return in.color(), nil
}

// MustNew is like New but panics if the arguments are not recognized.
func MustNew(args ...any) Color {
	c, err := New(args...)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHex parses a hex string such as "#0077ff", "07f" or " #07f; ".
func FromHex(hex string) (Color, error) {
	n, err := convert.HexToInt(hex)
	if err != nil {
		return Color{}, &ArgumentsError{Args: []any{hex}, Err: err}
	}
	return fromInt(n), nil
}

// FromInt decomposes a packed 24-bit integer. Values outside
// [0, 0xffffff] are rejected.
func FromInt(n int) (Color, error) {
	if !parse.IsInt(n) {
		return Color{}, &ArgumentsError{Args: []any{n}}
	}
	return fromInt(n), nil
}

// FromHSL builds an opaque color from hue degrees and percent saturation
// and lightness. The hue wraps; saturation and lightness are clamped.
func FromHSL(hsl HSL) Color {
	r, g, b := convert.HSLToRGB(hsl.H, hsl.S, hsl.L)
	return Color{r: r, g: g, b: b, a: 1}
}

// FromColor converts any image/color.Color, un-premultiplying its alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{r: n.R, g: n.G, b: n.B, a: float64(n.A) / parse.MaxByte}
}

// RGB builds an opaque color, clamping each channel to [0,255].
func RGB(r, g, b int) Color {
	return Color{r: parse.Byte(r), g: parse.Byte(g), b: parse.Byte(b), a: 1}
}

// RGBA is RGB with an alpha, clamped to [0,1]. A NaN alpha means opaque.
func RGBA(r, g, b int, a float64) Color {
	return Color{r: parse.Byte(r), g: parse.Byte(g), b: parse.Byte(b), a: parse.Unit(a)}
}

func fromInt(n int) Color {
	r, g, b := convert.IntToRGB(n)
	return Color{r: r, g: g, b: b, a: 1}
}

// R, G, B and A return the individual channels.
func (c Color) R() uint8   { return c.r }
func (c Color) G() uint8   { return c.g }
func (c Color) B() uint8   { return c.b }
func (c Color) A() float64 { return c.a }

// WithR returns a copy of c with the red channel set to v, clamped.
func (c Color) WithR(v int) Color {
	c.r = parse.Byte(v)
	return c
}

// WithG returns a copy of c with the green channel set to v, clamped.
func (c Color) WithG(v int) Color {
	c.g = parse.Byte(v)
	return c
}

// WithB returns a copy of c with the blue channel set to v, clamped.
func (c Color) WithB(v int) Color {
	c.b = parse.Byte(v)
	return c
}

// WithA returns a copy of c with the alpha set to v, clamped.
func (c Color) WithA(v float64) Color {
	c.a = parse.Unit(v)
	return c
}

// Hex returns the six lowercase hex digits of the RGB channels.
func (c Color) Hex() string {
	return convert.RGBToHex(c.r, c.g, c.b)
}

// Int returns the packed r<<16 | g<<8 | b value. Alpha is not included.
func (c Color) Int() int {
	return convert.RGBToInt(c.r, c.g, c.b)
}

// RGB returns the three byte channels.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// RGBA returns the byte channels followed by the alpha.
func (c Color) RGBA() (r, g, b uint8, a float64) {
	return c.r, c.g, c.b, c.a
}

// HSL converts c with the same conventions FromHSL accepts. Alpha is
// dropped.
func (c Color) HSL() HSL {
	h, s, l := convert.RGBToHSL(c.r, c.g, c.b)
	return HSL{H: h, S: s, L: l}
}

// NRGBA converts c for use with the image and image/color packages.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: convert.UnitToByte(c.a)}
}

// Clone returns c. Colors are values, so a plain copy is already a clone.
func (c Color) Clone() Color {
	return c
}

// Equal reports whether c and o have identical channels, alpha included.
func (c Color) Equal(o Color) bool {
	return c == o
}
