package chroma

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	c0 := MustNew(0x0077ff)
	assert.Equal(t, "#0077ff", c0.String())
	assert.Equal(t, "0077ff", c0.Hex())

	c0 = c0.WithA(0.4)
	assert.Equal(t, "0077ff", c0.Hex())
	assert.Equal(t, "rgba(0,119,255,0.4)", c0.String())

	c1 := MustNew(255, 200, 64, 0.7)
	assert.Equal(t, "ffc840", c1.Hex())
	assert.Equal(t, "rgba(255,200,64,0.7)", c1.String())
	assert.Equal(t, 0xffc840, c1.Int())
}

func TestRender(t *testing.T) {
	opaque := MustNew("#07f")
	assert.Equal(t, "#0077ff", opaque.Render(FormatDefault))
	assert.Equal(t, "#0077ff", opaque.Render(FormatHex))
	assert.Equal(t, "rgba(0,119,255,1)", opaque.Render(FormatRGBA))

	faded := opaque.WithA(0.25)
	assert.Equal(t, "rgba(0,119,255,0.25)", faded.Render(FormatDefault))
	assert.Equal(t, "#0077ff", faded.Render(FormatHex))
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]Format{"": FormatDefault, "default": FormatDefault, "HEX": FormatHex, " rgba ": FormatRGBA} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := ParseFormat("hsl")
	assert.Error(t, err)
}

func TestUnmarshalText(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#0077ff", rgba(0, 119, 255, 1)},
		{"07f", rgba(0, 119, 255, 1)},
		{"rgb(0,119,255)", rgba(0, 119, 255, 1)},
		{"rgba(0, 119, 255, 0.4)", rgba(0, 119, 255, 0.4)},
		{" rgba(300,-1,2,7) ", rgba(255, 0, 2, 1)},
		{"rgba(1,2,3,)", rgba(1, 2, 3, 1)},
	}

	for _, tt := range tests {
		var c Color
		require.NoError(t, c.UnmarshalText([]byte(tt.input)), tt.input)
		assert.Equal(t, tt.want, c, tt.input)
	}

	for _, s := range []string{"", "blue", "rgb(1,2)", "#12345678", "hsl(1,2,3)"} {
		var c Color
		err := c.UnmarshalText([]byte(s))
		assert.ErrorIs(t, err, ErrInvalidArguments, s)
	}
}

func TestJSON(t *testing.T) {
	type theme struct {
		Accent     Color `json:"accent"`
		Background Color `json:"background"`
	}

	in := theme{Accent: MustNew("#07f"), Background: RGBA(0, 0, 0, 0.5)}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"accent":"#0077ff","background":"rgba(0,0,0,0.5)"}`, string(raw))

	var out theme
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}
