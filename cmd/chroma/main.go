// Command chroma describes, combines and decodes colors.
//
//	chroma [-format default|hex|rgba] COLOR
//	chroma -op OP [-t AMOUNT] COLOR [COLOR]
//	chroma -decode rgb24|rgb565|rgb12 FILE
//	chroma -random
//
// A COLOR is a hex string ("#07f", "0077ff"), an "rgb(...)" or "rgba(...)"
// expression, or an integer with a 0x or decimal prefix ("0xff7700").
// The default output format can also be set with CHROMA_FORMAT.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/32bitkid/chroma"
	"github.com/32bitkid/chroma/blend"
	"github.com/32bitkid/chroma/codec"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	format  chroma.Format
	op      string
	decode  string
	random  bool
	amount  float64
	verbose bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("chroma", flag.ContinueOnError)
	fs.SetOutput(stderr)

	formatName := fs.String("format", envOr("CHROMA_FORMAT", "default"), "output format: default, hex or rgba")
	var opts options
	fs.StringVar(&opts.op, "op", "", "operation: "+strings.Join(opNames(), ", "))
	fs.StringVar(&opts.decode, "decode", "", "decode a packed color file: rgb24, rgb565 or rgb12")
	fs.BoolVar(&opts.random, "random", false, "print a random color")
	fs.Float64Var(&opts.amount, "t", 0.5, "amount for mix, lighten and darken")
	fs.BoolVar(&opts.verbose, "v", false, "log debug output")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	format, err := chroma.ParseFormat(*formatName)
	if err != nil {
		logger.Error("invalid format", "format", *formatName, "error", err)
		return 2
	}
	opts.format = format

	err = execute(opts, fs.Args(), stdout, logger)
	switch {
	case errors.Is(err, errUsage):
		logger.Error("invalid arguments", "error", err)
		fs.Usage()
		return 2
	case err != nil:
		logger.Error("failed", "error", err)
		return 1
	}
	return 0
}

func execute(opts options, args []string, w io.Writer, logger *slog.Logger) error {
	switch {
	case opts.random:
		c := chroma.Random()
		logger.Debug("random color", "int", c.Int())
		_, err := fmt.Fprintln(w, c.Render(opts.format))
		return err
	case opts.decode != "":
		if len(args) != 1 {
			return fmt.Errorf("%w: -decode takes one file", errUsage)
		}
		return decodeFile(opts, args[0], w, logger)
	case opts.op != "":
		return applyOp(opts, args, w, logger)
	case len(args) == 1:
		c, err := parseColor(args[0], logger)
		if err != nil {
			return err
		}
		return describe(c, opts.format, w)
	}
	return fmt.Errorf("%w: expected a color", errUsage)
}

func describe(c chroma.Color, f chroma.Format, w io.Writer) error {
	r, g, b, a := c.RGBA()
	hsl := c.HSL()
	_, err := fmt.Fprintf(w,
		"color %s\nhex   %s\nint   %d\nrgba  %d %d %d %s\nhsl   %.1f %.1f%% %.1f%%\n",
		c.Render(f), c.Hex(), c.Int(), r, g, b,
		strconv.FormatFloat(a, 'f', -1, 64), hsl.H, hsl.S, hsl.L)
	return err
}

func parseColor(s string, logger *slog.Logger) (chroma.Color, error) {
	var c chroma.Color
	if err := c.UnmarshalText([]byte(s)); err == nil {
		logger.Debug("parsed color", "input", s, "color", c)
		return c, nil
	}

	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return chroma.Color{}, fmt.Errorf("%w: %q", chroma.ErrInvalidArguments, s)
	}
	c, err = chroma.FromInt(int(n))
	if err != nil {
		return chroma.Color{}, err
	}
	logger.Debug("parsed packed integer", "input", s, "color", c)
	return c, nil
}

type unaryOp func(x chroma.Color, t float64) chroma.Color
type binaryOp func(x, y chroma.Color, t float64) chroma.Color

var unaryOps = map[string]unaryOp{
	"not":     func(x chroma.Color, _ float64) chroma.Color { return x.Not() },
	"inv":     func(x chroma.Color, _ float64) chroma.Color { return x.Inv() },
	"lighten": chroma.Color.Lighten,
	"darken":  chroma.Color.Darken,
}

var binaryOps = map[string]binaryOp{
	"add": func(x, y chroma.Color, _ float64) chroma.Color { return chroma.Add(x, y) },
	"sub": func(x, y chroma.Color, _ float64) chroma.Color { return chroma.Sub(x, y) },
	"avg": func(x, y chroma.Color, _ float64) chroma.Color { return chroma.Avg(x, y) },
	"and": func(x, y chroma.Color, _ float64) chroma.Color { return chroma.And(x, y) },
	"or":  func(x, y chroma.Color, _ float64) chroma.Color { return chroma.Or(x, y) },
	"xor": func(x, y chroma.Color, _ float64) chroma.Color { return chroma.Xor(x, y) },
	"mix": chroma.Mix,
}

func opNames() []string {
	var names []string
	for name := range unaryOps {
		names = append(names, name)
	}
	for name := range binaryOps {
		names = append(names, name)
	}
	for _, m := range blend.Modes() {
		names = append(names, m.String())
	}
	sort.Strings(names)
	return names
}

func applyOp(opts options, args []string, w io.Writer, logger *slog.Logger) error {
	colors := make([]chroma.Color, 0, len(args))
	for _, arg := range args {
		c, err := parseColor(arg, logger)
		if err != nil {
			return err
		}
		colors = append(colors, c)
	}

	var result chroma.Color
	if fn, ok := unaryOps[opts.op]; ok {
		if len(colors) != 1 {
			return fmt.Errorf("%w: %s takes one color", errUsage, opts.op)
		}
		result = fn(colors[0], opts.amount)
	} else {
		fn, ok := binaryOps[opts.op]
		if !ok {
			mode, err := blend.ParseMode(opts.op)
			if err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}
			fn = func(x, y chroma.Color, _ float64) chroma.Color { return x.Blend(mode, y) }
		}
		if len(colors) != 2 {
			return fmt.Errorf("%w: %s takes two colors", errUsage, opts.op)
		}
		result = fn(colors[0], colors[1], opts.amount)
	}

	logger.Debug("applied operation", "op", opts.op, "inputs", colors, "result", result)
	_, err := fmt.Fprintln(w, result.Render(opts.format))
	return err
}

func decodeFile(opts options, path string, w io.Writer, logger *slog.Logger) error {
	format, err := codec.ParseFormat(opts.decode)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	colors, err := codec.DecodeAll(f, format)
	for _, c := range colors {
		if _, werr := fmt.Fprintln(w, c.Render(opts.format)); werr != nil {
			return werr
		}
	}
	logger.Debug("decoded file", "path", path, "format", format, "colors", len(colors))
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
