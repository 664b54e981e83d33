// Package codec decodes streams of packed colors.
//
// Colors are packed back to back, most significant bit first, with no
// padding between them:
//
// format | bits | layout
// RGB24  |  24  | rrrrrrrr gggggggg bbbbbbbb
// RGB565 |  16  | rrrrrggg gggbbbbb
// RGB12  |  12  | rrrr gggg bbbb
//
// Narrow channels are widened to 8 bits by bit replication, so full
// intensity always decodes to 0xff.
package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/chroma"
)

var ErrUnknownFormat = errors.New("codec: unknown format")

type Format uint8

const (
	RGB24 Format = iota
	RGB565
	RGB12
)

var formatNames = [...]string{
	RGB24:  "rgb24",
	RGB565: "rgb565",
	RGB12:  "rgb12",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", f)
}

func (f Format) groupBytes() int {
	if f == RGB12 {
		return 3
	}
	return int(f.Bits() / 8)
}

// Bits is the width of one packed color.
func (f Format) Bits() uint {
	switch f {
	case RGB24:
		return 24
	case RGB565:
		return 16
	case RGB12:
		return 12
	}
	return 0
}

func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Decoder reads packed colors from a stream. It is not safe for concurrent
// use.
type Decoder struct {
	r      io.Reader
	format Format
	queue  []chroma.Color
}

func NewDecoder(r io.Reader, f Format) (*Decoder, error) {
	if f.Bits() == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return &Decoder{r: bufio.NewReader(r), format: f}, nil
}

// Decode returns the next color. At the end of the stream it returns
// io.EOF; a stream that ends part way through a color returns
// io.ErrUnexpectedEOF. The 4 bits of padding that an odd number of RGB12
// colors leaves in the final byte are ignored.
func (d *Decoder) Decode() (chroma.Color, error) {
	if len(d.queue) == 0 {
		if err := d.fill(); err != nil {
			return chroma.Color{}, err
		}
	}
	c := d.queue[0]
	d.queue = d.queue[1:]
	return c, nil
}

// fill decodes the next group: the smallest run of colors that ends on a
// byte boundary.
func (d *Decoder) fill() error {
	bits := d.format.Bits()
	group := make([]byte, d.format.groupBytes())
	n, err := io.ReadFull(d.r, group)
	if err != nil && err != io.ErrUnexpectedEOF {
		return err
	}

	count := uint(n) * 8 / bits
	if count == 0 {
		return io.ErrUnexpectedEOF
	}

	br := bitreader.NewReader(bytes.NewReader(group[:n]))
	for i := uint(0); i < count; i++ {
		code, err := br.Read32(bits)
		if err != nil {
			return err
		}
		d.queue = append(d.queue, d.unpack(code))
	}
	return nil
}

func (d *Decoder) unpack(code uint32) chroma.Color {
	switch d.format {
	case RGB565:
		r := widen(code>>11&0x1f, 5)
		g := widen(code>>5&0x3f, 6)
		b := widen(code&0x1f, 5)
		return chroma.RGB(r, g, b)
	case RGB12:
		r := widen(code>>8&0xf, 4)
		g := widen(code>>4&0xf, 4)
		b := widen(code&0xf, 4)
		return chroma.RGB(r, g, b)
	}
	c, _ := chroma.FromInt(int(code & 0xffffff))
	return c
}

// widen replicates the high bits of an n-bit channel into the low bits
// of a byte.
func widen(v uint32, n uint) int {
	v <<= 8 - n
	return int(v | v>>n)
}

// DecodeAll decodes every color in r.
func DecodeAll(r io.Reader, f Format) ([]chroma.Color, error) {
	d, err := NewDecoder(r, f)
	if err != nil {
		return nil, err
	}
	var colors []chroma.Color
	for {
		c, err := d.Decode()
		if err == io.EOF {
			return colors, nil
		}
		if err != nil {
			return colors, err
		}
		colors = append(colors, c)
	}
}
