package chroma

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/32bitkid/chroma/parse"
)

// Format selects the textual form produced by Render.
type Format uint8

const (
	// FormatDefault is "#rrggbb" for opaque colors and "rgba(r,g,b,a)"
	// otherwise.
	FormatDefault Format = iota
	// FormatHex is always "#rrggbb"; alpha is dropped.
	FormatHex
	// FormatRGBA is always "rgba(r,g,b,a)".
	FormatRGBA
)

var formatNames = map[string]Format{
	"":        FormatDefault,
	"default": FormatDefault,
	"hex":     FormatHex,
	"rgba":    FormatRGBA,
}

// ParseFormat looks up a format by name: "default" (or ""), "hex" or "rgba".
func ParseFormat(name string) (Format, error) {
	f, ok := formatNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("chroma: unknown format %q", name)
	}
	return f, nil
}

func (c Color) String() string {
	return c.Render(FormatDefault)
}

func (c Color) Render(f Format) string {
	switch {
	case f == FormatRGBA, f == FormatDefault && c.a < 1:
		return "rgba(" +
			strconv.Itoa(int(c.r)) + "," +
			strconv.Itoa(int(c.g)) + "," +
			strconv.Itoa(int(c.b)) + "," +
			strconv.FormatFloat(c.a, 'f', -1, 64) + ")"
	default:
		return "#" + c.Hex()
	}
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

var functional = regexp.MustCompile(`^\s*rgba?\(([^,()]*),([^,()]*),([^,()]*)(?:,([^,()]*))?\)\s*$`)

// UnmarshalText accepts the hex forms New accepts as well as the
// functional "rgb(r,g,b)" and "rgba(r,g,b,a)" notations.
func (c *Color) UnmarshalText(text []byte) error {
	s := string(text)
	if parse.IsHex(s) {
		parsed, err := FromHex(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	m := functional.FindStringSubmatch(s)
	if m == nil {
		return &ArgumentsError{Args: []any{s}}
	}
	var a any
	if strings.TrimSpace(m[4]) != "" {
		a = m[4]
	}
	*c = positionalInput{m[1], m[2], m[3], a}.color()
	return nil
}
