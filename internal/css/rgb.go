package css

import (
	"strconv"
	"strings"
)

// parseRGB parses a full "rgb(r, g, b)" expression. The interior is taken
// between the first "(" and the last ")"; a missing bracket or an empty
// interior fails with [ErrRGBSyntax], as does any component count other
// than 3. Components are parsed as signed decimal integers and must lie in
// [0, 255]; channels are assigned in source order.
func parseRGB(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < 0 || close <= open+1 {
		return Color{}, ErrRGBSyntax
	}

	parts := strings.Split(s[open+1:close], ",")
	if len(parts) != 3 {
		return Color{}, ErrRGBSyntax
	}

	var ch [3]uint8
	for i, part := range parts {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil {
			return Color{}, &RGBComponentError{Component: part}
		}
		if n < 0 || n > 255 {
			return Color{}, &RGBRangeError{Value: n}
		}
		ch[i] = uint8(n)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}
