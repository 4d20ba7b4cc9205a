package css

import (
	"math"
	"strconv"
	"strings"
)

// ///////////////////////////////////////////////
// hsl() Parsing
// ///////////////////////////////////////////////

// parseHSL parses a full "hsl(h, s%, l%)" expression. Hue is a real number
// in degrees (any finite value; reduced modulo 360). Saturation and
// lightness must carry a literal "%" suffix and are clamped into [0, 100]
// before conversion. Every structural or numeric failure reports
// [ErrUnsupportedFormat]; once the three numbers parse, conversion cannot
// fail.
func parseHSL(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < 0 || close <= open+1 {
		return Color{}, ErrUnsupportedFormat
	}

	parts := strings.Split(s[open+1:close], ",")
	if len(parts) != 3 {
		return Color{}, ErrUnsupportedFormat
	}

	hue, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Color{}, ErrUnsupportedFormat
	}
	sat, err := parsePercent(parts[1])
	if err != nil {
		return Color{}, ErrUnsupportedFormat
	}
	light, err := parsePercent(parts[2])
	if err != nil {
		return Color{}, ErrUnsupportedFormat
	}

	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	return hslToRGB(h/360, clamp01(sat/100), clamp01(light/100)), nil
}

// parsePercent parses a component that must end with a literal "%" suffix,
// returning the numeric value before the suffix.
func parsePercent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	num, ok := strings.CutSuffix(s, "%")
	if !ok {
		return 0, ErrUnsupportedFormat
	}
	return strconv.ParseFloat(num, 64)
}

// ///////////////////////////////////////////////
// HSL -> RGB Conversion
// ///////////////////////////////////////////////

// hslToRGB converts fractional HSL values (h in [0,1), s and l in [0,1])
// to an 8-bit [Color] using the CSS3 reference algorithm: the chroma
// midpoint q and base p are derived from lightness and saturation, then
// each channel evaluates the piecewise hue function at offsets +1/3, 0,
// and -1/3 from the hue.
func hslToRGB(h, s, l float64) Color {
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Color{
		R: channel(hueToChannel(p, q, h+1.0/3.0)),
		G: channel(hueToChannel(p, q, h)),
		B: channel(hueToChannel(p, q, h-1.0/3.0)),
	}
}

// hueToChannel evaluates the six-piecewise hue-to-fraction function at t,
// wrapping t into [0, 1) first. Branch thresholds are 1/6, 1/2, and 2/3.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t >= 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// channel scales a fraction in [0, 1] to an 8-bit channel, rounding to
// nearest (half away from zero) and clamping before narrowing.
func channel(f float64) uint8 {
	v := math.Round(f * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clamp01 restricts v to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
