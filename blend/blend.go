// Package blend implements per-channel photographic blend operations.
//
// Every operation is a Func over unit-interval values; Channel lifts a Func
// to byte channels by converting both operands to [0,1], applying the
// function, clamping the result and converting back.
package blend

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/32bitkid/chroma/convert"
)

// Func combines a channel of the base color a with the same channel of the
// blend color b. Both are in [0,1]; the result is clamped by Channel.
type Func func(a, b float64) float64

// Channel applies fn to a pair of byte channels.
func Channel(fn Func, x, y uint8) uint8 {
	return convert.UnitToByte(fn(convert.ByteToUnit(x), convert.ByteToUnit(y)))
}

func Multiply(a, b float64) float64 {
	return a * b
}

func Screen(a, b float64) float64 {
	return 1 - (1-a)*(1-b)
}

// Overlay multiplies or screens depending on the base value.
func Overlay(a, b float64) float64 {
	if a < 0.5 {
		return 2 * a * b
	}
	return 1 - 2*(1-a)*(1-b)
}

// HardLight is Overlay with the condition taken from the blend value.
func HardLight(a, b float64) float64 {
	if b < 0.5 {
		return 2 * a * b
	}
	return 1 - 2*(1-a)*(1-b)
}

// Divide treats division by zero as +Inf, which clamps to full intensity.
func Divide(a, b float64) float64 {
	if b == 0 {
		return 1
	}
	return a / b
}

func Addition(a, b float64) float64 {
	return a + b
}

func Subtract(a, b float64) float64 {
	return a - b
}

func Difference(a, b float64) float64 {
	return math.Abs(a - b)
}

var ErrUnknownMode = errors.New("blend: unknown mode")

// Mode names one of the blend functions. Only the declared constants are
// known modes; ParseMode is the checked way to get one from a name.
type Mode uint8

const (
	ModeMultiply Mode = iota
	ModeScreen
	ModeOverlay
	ModeHardLight
	ModeDivide
	ModeAddition
	ModeSubtract
	ModeDifference
)

var modes = [...]struct {
	name string
	fn   Func
}{
	ModeMultiply:   {"multiply", Multiply},
	ModeScreen:     {"screen", Screen},
	ModeOverlay:    {"overlay", Overlay},
	ModeHardLight:  {"hardLight", HardLight},
	ModeDivide:     {"divide", Divide},
	ModeAddition:   {"addition", Addition},
	ModeSubtract:   {"subtract", Subtract},
	ModeDifference: {"difference", Difference},
}

func (m Mode) String() string {
	if int(m) < len(modes) {
		return modes[m].name
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Func returns the blend function for m, or nil for an unknown mode.
// Color.Blend treats a nil Func as "no blend" and returns its receiver.
func (m Mode) Func() Func {
	if int(m) < len(modes) {
		return modes[m].fn
	}
	return nil
}

// Modes lists every mode in declaration order.
func Modes() []Mode {
	all := make([]Mode, len(modes))
	for i := range modes {
		all[i] = Mode(i)
	}
	return all
}

// ParseMode looks a mode up by name, ignoring case and '-' or '_'
// separators, so "hard-light", "hard_light" and "hardLight" all match.
func ParseMode(name string) (Mode, error) {
	key := normalize(name)
	for i, m := range modes {
		if normalize(m.name) == key {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

func normalize(name string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
}
