// Package parse recognizes raw color input values and normalizes them into
// canonical byte and unit-interval values.
//
// Parsing is forgiving: values that are out of range are clamped, and values
// that cannot be read as numbers fall back to a default instead of failing.
// The only strict routine is Hex, since a malformed hex string cannot be
// corrected into anything meaningful.
package parse

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MaxByte is the largest value of a byte channel.
	MaxByte = 0xff
	// MaxInt is the largest packed 24-bit color.
	MaxInt = 0xffffff
)

var ErrInvalidHex = errors.New("parse: invalid hex color")

var (
	hexPattern   = regexp.MustCompile(`^\s*#?[a-fA-F0-9]{1,6}\s*;?\s*$`)
	hexNoise     = regexp.MustCompile(`[\s#;]+`)
	leadingInt   = regexp.MustCompile(`^\s*[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^\s*[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// IsHex reports whether s looks like a hex color: optional surrounding
// whitespace, an optional leading '#', one to six hex digits and an
// optional trailing ';', which may itself be followed by whitespace.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// IsInt reports whether v is a number in [0, MaxInt].
func IsInt(v any) bool {
	n, ok := Number(v)
	return ok && 0 <= n && n <= MaxInt
}

// IsByte reports whether v is a number in [0, MaxByte].
func IsByte(v any) bool {
	n, ok := Number(v)
	return ok && 0 <= n && n <= MaxByte
}

// IsFinite reports whether v is a number that is neither NaN nor infinite.
func IsFinite(v any) bool {
	n, ok := Number(v)
	return ok && !math.IsNaN(n) && !math.IsInf(n, 0)
}

// Number reads any Go integer or floating point value as a float64.
// Booleans, strings and everything else are not numbers.
func Number(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// Hex normalizes a hex color string to six lowercase digits. Whitespace,
// '#' and ';' are removed, a three digit shorthand is expanded by doubling
// each digit, and shorter strings are left-padded with zeros.
func Hex(s string) (string, error) {
	if !IsHex(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	x := hexNoise.ReplaceAllString(s, "")
	if len(x) == 3 {
		x = string([]byte{x[0], x[0], x[1], x[1], x[2], x[2]})
	}
	if len(x) < 6 {
		x = strings.Repeat("0", 6-len(x)) + x
	}
	return strings.ToLower(x), nil
}

// Byte reads v as a byte channel. Integers pass through, floats are
// truncated toward zero and strings contribute their leading integer.
// Anything unreadable, NaN or infinite yields 0. The result is clamped to
// [0, MaxByte].
func Byte(v any) uint8 {
	n, ok := integer(v)
	if !ok {
		return 0
	}
	return uint8(Clamp(n, 0, MaxByte))
}

// Unit reads v as a unit-interval value. Anything unreadable, NaN or
// infinite yields 1. The result is clamped to [0, 1].
func Unit(v any) float64 {
	n, ok := Number(v)
	if s, isString := v.(string); isString {
		n, ok = leadingNumber(s, leadingFloat)
	}
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 1
	}
	return Clamp(n, 0, 1)
}

// Int reads v as a packed 24-bit color with the same rules as Byte,
// clamped to [0, MaxInt].
func Int(v any) int {
	n, ok := integer(v)
	if !ok {
		return 0
	}
	return int(Clamp(n, 0, MaxInt))
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func integer(v any) (float64, bool) {
	n, ok := Number(v)
	if s, isString := v.(string); isString {
		n, ok = leadingNumber(s, leadingInt)
	}
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return math.Trunc(n), true
}

func leadingNumber(s string, pattern *regexp.Regexp) (float64, bool) {
	m := pattern.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
