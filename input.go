package chroma

import (
	"image/color"
	"math"
	"reflect"
	"strings"

	"github.com/32bitkid/chroma/convert"
	"github.com/32bitkid/chroma/parse"
)

// input is one recognized constructor shape. classify decides which shape
// the raw arguments have; color then normalizes it.
type input interface {
	color() Color
}

type defaultInput struct{}

type hexInput struct {
	value int
}

type packedInput int

type hslInput HSL

type recordInput struct {
	r, g, b, a any
}

type positionalInput []any

func (defaultInput) color() Color       { return Black }
func (in hexInput) color() Color        { return fromInt(in.value) }
func (in packedInput) color() Color     { return fromInt(int(in)) }
func (in hslInput) color() Color        { return FromHSL(HSL(in)) }
func (in positionalInput) color() Color { return in.record().color() }

func (in recordInput) color() Color {
	return Color{
		r: parse.Byte(in.r),
		g: parse.Byte(in.g),
		b: parse.Byte(in.b),
		a: parse.Unit(in.a),
	}
}

func (in positionalInput) record() recordInput {
	rec := recordInput{r: in[0], g: in[1], b: in[2]}
	if len(in) == 4 {
		rec.a = in[3]
	}
	return rec
}

func classify(args []any) (input, error) {
	switch len(args) {
	case 0:
		return defaultInput{}, nil
	case 1:
		if in, ok := classifyOne(args[0]); ok {
			return in, nil
		}
	case 3, 4:
		return positionalInput(args), nil
	}
	return nil, &ArgumentsError{Args: args}
}

// classifyOne tries the single-argument shapes in order: hex string,
// packed integer, HSL, record. Maps and structs that are not already a
// known color type are read by key or exported field name.
func classifyOne(v any) (input, bool) {
	if s, ok := v.(string); ok {
		n, err := convert.HexToInt(s)
		if err != nil {
			return nil, false
		}
		return hexInput{value: n}, true
	}

	if _, ok := parse.Number(v); ok {
		if !parse.IsInt(v) {
			return nil, false
		}
		return packedInput(parse.Int(v)), true
	}

	switch x := v.(type) {
	case HSL:
		return classifyHSL(x), true
	case *HSL:
		if x == nil {
			return nil, false
		}
		return classifyHSL(*x), true
	case Color:
		return recordInput{r: x.r, g: x.g, b: x.b, a: x.a}, true
	case *Color:
		if x == nil {
			return nil, false
		}
		return recordInput{r: x.r, g: x.g, b: x.b, a: x.a}, true
	case color.Color:
		c := FromColor(x)
		return recordInput{r: c.r, g: c.g, b: c.b, a: c.a}, true
	}

	if m, ok := stringMap(v); ok {
		return classifyMap(m), true
	}
	if m, ok := structFields(v); ok {
		return classifyMap(m), true
	}
	return nil, false
}

// classifyHSL falls back to an empty record, i.e. opaque black, when a
// component is not a finite number.
func classifyHSL(hsl HSL) input {
	if !parse.IsFinite(hsl.H) || !parse.IsFinite(hsl.S) || !parse.IsFinite(hsl.L) {
		return recordInput{}
	}
	return hslInput(hsl)
}

func classifyMap(m map[string]any) input {
	if parse.IsFinite(m["h"]) && parse.IsFinite(m["s"]) && parse.IsFinite(m["l"]) {
		h, _ := parse.Number(m["h"])
		s, _ := parse.Number(m["s"])
		l, _ := parse.Number(m["l"])
		return hslInput{H: h, S: s, L: l}
	}
	return recordInput{
		r: field(m, "r"),
		g: field(m, "g"),
		b: field(m, "b"),
		a: field(m, "a"),
	}
}

// field reads key from m. The legacy "_"-prefixed spelling wins unless it
// is empty: nil, false, "", zero or NaN fall through to the plain key.
func field(m map[string]any, key string) any {
	if v := m["_"+key]; !empty(v) {
		return v
	}
	return m[key]
}

func empty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	}
	n, ok := parse.Number(v)
	return ok && (n == 0 || math.IsNaN(n))
}

// stringMap accepts any map keyed by strings, such as map[string]int or a
// decoded JSON object.
func stringMap(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}
	m := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// structFields reads the exported fields of a struct, or of a non-nil
// pointer to one, keyed by lowercased field name. A struct{ R, G, B int }
// then reads like the equivalent record.
func structFields(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	rt := rv.Type()
	m := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		m[strings.ToLower(f.Name)] = rv.Field(i).Interface()
	}
	return m, true
}
