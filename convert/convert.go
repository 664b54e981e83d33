// Package convert translates colors between hex strings, packed 24-bit
// integers, byte triplets, unit-interval values and HSL.
package convert

import (
	"fmt"
	"math"
	"strconv"

	"github.com/32bitkid/chroma/parse"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// HexToInt parses a hex color (see parse.Hex for the accepted forms) into a
// packed integer.
func HexToInt(hex string) (int, error) {
	h, err := parse.Hex(hex)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", parse.ErrInvalidHex, err)
	}
	return int(n), nil
}

func HexToRGB(hex string) (r, g, b uint8, err error) {
	n, err := HexToInt(hex)
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = IntToRGB(n)
	return r, g, b, nil
}

// IntToHex formats a packed integer as six lowercase hex digits. Values
// outside [0, 0xffffff] are clamped first.
func IntToHex(n int) string {
	return fmt.Sprintf("%06x", parse.Clamp(n, 0, parse.MaxInt))
}

func IntToRGB(n int) (r, g, b uint8) {
	n = parse.Clamp(n, 0, parse.MaxInt)
	return uint8((n >> 16) & 0xff), uint8((n >> 8) & 0xff), uint8(n & 0xff)
}

func RGBToInt(r, g, b uint8) int {
	return int(r)<<16 | int(g)<<8 | int(b)
}

func RGBToHex(r, g, b uint8) string {
	return IntToHex(RGBToInt(r, g, b))
}

// ByteToUnit maps [0,255] onto [0,1].
func ByteToUnit(b uint8) float64 {
	return float64(b) / parse.MaxByte
}

// UnitToByte maps [0,1] onto [0,255], rounding to the nearest byte.
// Out-of-range input is clamped and NaN maps to 0.
func UnitToByte(u float64) uint8 {
	if math.IsNaN(u) {
		return 0
	}
	return uint8(math.Round(parse.Clamp(u, 0, 1) * parse.MaxByte))
}

// RGBToHSL returns hue in degrees [0,360) and saturation and lightness as
// percentages [0,100]. Greys have hue and saturation 0.
func RGBToHSL(r, g, b uint8) (h, s, l float64) {
	c := colorful.Color{R: ByteToUnit(r), G: ByteToUnit(g), B: ByteToUnit(b)}
	h, s, l = c.Hsl()
	return h, s * 100, l * 100
}

// HSLToRGB is the inverse of RGBToHSL. Hue wraps around modulo 360;
// saturation and lightness are clamped to [0,100]. Non-finite components
// count as 0.
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	h = math.Mod(finite(h), 360)
	if h < 0 {
		h += 360
	}
	s = parse.Clamp(finite(s), 0, 100) / 100
	l = parse.Clamp(finite(l), 0, 100) / 100
	return colorful.Hsl(h, s, l).Clamped().RGB255()
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
