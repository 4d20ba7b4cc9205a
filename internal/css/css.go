// Package css parses textual CSS color expressions into 8-bit RGB triples.
//
// Four grammars are supported: named colors ("red", "rebeccapurple"),
// hex codes ("#1A2B3C", "#FA0"), "rgb(r, g, b)" with decimal components,
// and "hsl(h, s%, l%)" with real-valued components. Every input maps to
// exactly one outcome: a [Color] or one of the error variants defined in
// errors.go. Parsing is pure and allocation-light; the package holds no
// mutable state, so [Parse] is safe to call from any number of goroutines.
package css

import (
	"strconv"
	"strings"
)

// ///////////////////////////////////////////////
// Dispatcher
// ///////////////////////////////////////////////

// Parse converts a CSS color expression into a [Color].
//
// Leading and trailing whitespace is trimmed, then the grammar branch is
// selected from the input's shape: an exact (case-insensitive) named-color
// match wins first, then a "#" prefix selects hex, then "rgb(" and "hsl("
// prefixes select their respective function syntaxes. Input matching none
// of the shapes fails with [ErrMissingHashPrefix].
//
// Errors carry enough payload to report a precise diagnostic without
// re-parsing; see errors.go for the full taxonomy.
func Parse(input string) (Color, error) {
	s := strings.TrimSpace(input)

	if c, ok := LookupName(s); ok {
		return c, nil
	}
	if body, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(body)
	}

	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "rgb("):
		return parseRGB(s)
	case strings.HasPrefix(lower, "hsl("):
		return parseHSL(s)
	}
	return Color{}, ErrMissingHashPrefix
}

// ///////////////////////////////////////////////
// Hex
// ///////////////////////////////////////////////

// parseHex parses the hex body following "#". A 3-digit body is expanded by
// duplicating each digit ("F" -> "FF") before the pairs are parsed; a
// 6-digit body is split into pairs at offsets 0, 2, 4. Any other length
// fails with [InvalidLengthError] carrying the observed length.
func parseHex(body string) (Color, error) {
	switch len(body) {
	case 3:
		r, err := parseHexPair(string([]byte{body[0], body[0]}))
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexPair(string([]byte{body[1], body[1]}))
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexPair(string([]byte{body[2], body[2]}))
		if err != nil {
			return Color{}, err
		}
		return Color{R: r, G: g, B: b}, nil
	case 6:
		r, err := parseHexPair(body[0:2])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexPair(body[2:4])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexPair(body[4:6])
		if err != nil {
			return Color{}, err
		}
		return Color{R: r, G: g, B: b}, nil
	default:
		return Color{}, &InvalidLengthError{Length: len(body)}
	}
}

// parseHexPair parses a 2-character hex pair into an 8-bit channel value.
// A pair containing anything outside [0-9A-Fa-f] fails with
// [HexComponentError] wrapping the underlying strconv diagnostic.
func parseHexPair(pair string) (uint8, error) {
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, &HexComponentError{Component: pair, Err: err}
	}
	return uint8(v), nil
}
