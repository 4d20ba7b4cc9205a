package css

import "fmt"

// Color is an sRGB color with three 8-bit channels. It is a plain value:
// two colors are equal exactly when their channels match.
type Color struct {
	R, G, B uint8
}

// Hex returns the canonical lowercase hex rendering, e.g. "#1a2b3c".
// Feeding the result back through [Parse] reproduces the same color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String renders the color in rgb() function syntax, e.g. "rgb(26, 43, 60)".
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
