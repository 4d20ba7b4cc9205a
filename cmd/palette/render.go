package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tools.zach/dev/palette/internal/config"
	"tools.zach/dev/palette/internal/css"
	"tools.zach/dev/palette/internal/source"
)

// ///////////////////////////////////////////////
// Reporter
// ///////////////////////////////////////////////

// reporter renders parse results and failures to its output writers. Commands
// hold a single reporter so tests can capture output with a bytes.Buffer.
type reporter struct {
	cfg    *config.Config
	out    io.Writer
	errOut io.Writer
}

// render returns the configured textual form of a parsed color, prefixed
// with an ANSI swatch when output.swatch is enabled.
func (r *reporter) render(col css.Color) string {
	text := r.cfg.FormatColor(col)
	if r.cfg.Output.Swatch {
		return swatch(col) + " " + text
	}
	return text
}

// swatch returns a two-cell block colored with the given RGB value via a
// 24-bit ANSI escape. [color.RGB] degrades to no escape codes when the
// terminal does not support color or NO_COLOR is set.
func swatch(col css.Color) string {
	return color.RGB(int(col.R), int(col.G), int(col.B)).Sprint("██")
}

// errorText returns a short message for a parse failure. The two most common
// failure modes get compact forms; everything else uses the error's own text.
func errorText(err error) string {
	var lenErr *css.InvalidLengthError
	switch {
	case errors.Is(err, css.ErrMissingHashPrefix):
		return "unsupported format"
	case errors.As(err, &lenErr):
		return fmt.Sprintf("invalid length: %d", lenErr.Length)
	}
	return err.Error()
}

// ///////////////////////////////////////////////
// Line Processing
// ///////////////////////////////////////////////

// reportLines parses every line of a palette source and prints one result
// row per line, "src:N: text -> result". Aliases from the config are
// resolved before parsing. Returns the number of lines that failed.
func (r *reporter) reportLines(src string, content []byte) (failed int) {
	for _, line := range source.Lines(content) {
		expr := r.cfg.ResolveAlias(line.Text)
		col, err := css.Parse(expr)
		if err != nil {
			fmt.Fprintf(r.errOut, "%s:%d: %s -> error: %s\n", src, line.Number, line.Text, errorText(err))
			failed++
			continue
		}
		fmt.Fprintf(r.out, "%s:%d: %s -> %s\n", src, line.Number, line.Text, r.render(col))
	}
	return failed
}
