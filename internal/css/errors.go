// Error taxonomy for color parsing. Each condition is a distinct variant;
// no variant is ever coerced into another, and every variant carries the
// payload needed to render a precise diagnostic. Callers match with
// [errors.Is] for the sentinels and [errors.As] for the struct types.

package css

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions without payload.
var (
	// ErrMissingHashPrefix reports input that matches none of the known
	// grammar shapes. The name is historical: the minimal grammar only knew
	// hex codes, so "not hex" and "unrecognized" were the same condition.
	// It is kept as the catch-all so existing callers matching on it keep
	// working.
	ErrMissingHashPrefix = errors.New("color must start with '#': unsupported format")

	// ErrUnsupportedFormat reports a structurally or numerically malformed
	// hsl() expression.
	ErrUnsupportedFormat = errors.New("unsupported color format")

	// ErrRGBSyntax reports an rgb() expression with missing or empty
	// parentheses, or the wrong number of components.
	ErrRGBSyntax = errors.New("malformed rgb(): expected rgb(r, g, b)")
)

// InvalidLengthError reports a hex body whose digit count is neither 3 nor 6.
type InvalidLengthError struct {
	// Length is the number of characters after "#".
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid hex code length: %d characters, expected 3 or 6", e.Length)
}

// HexComponentError reports a 2-character hex pair that is not valid hex.
type HexComponentError struct {
	// Component is the offending pair as it was parsed (after any 3-digit
	// expansion).
	Component string
	// Err is the underlying numeric parse error.
	Err error
}

func (e *HexComponentError) Error() string {
	return fmt.Sprintf("invalid hex component %q: %v", e.Component, e.Err)
}

func (e *HexComponentError) Unwrap() error { return e.Err }

// RGBComponentError reports an rgb() component that is not a decimal integer.
type RGBComponentError struct {
	// Component is the offending substring, trimmed.
	Component string
}

func (e *RGBComponentError) Error() string {
	return fmt.Sprintf("invalid rgb() numeric component %q", e.Component)
}

// RGBRangeError reports an rgb() component outside [0, 255].
type RGBRangeError struct {
	// Value is the parsed integer, kept signed so negative inputs are
	// reported with their literal value.
	Value int
}

func (e *RGBRangeError) Error() string {
	return fmt.Sprintf("rgb() component out of range 0..255: %d", e.Value)
}
