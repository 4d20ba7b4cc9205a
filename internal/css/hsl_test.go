// Tests for the hsl() branch: conversion against CSS reference values,
// hue wrapping, saturation/lightness clamping, and the structural failures
// that all surface as [ErrUnsupportedFormat].

package css

import (
	"errors"
	"testing"
)

func TestParseHSL(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"hsl(0, 100%, 50%)", Color{R: 255, G: 0, B: 0}},
		{"hsl(120, 100%, 50%)", Color{R: 0, G: 255, B: 0}},
		{"hsl(240, 100%, 50%)", Color{R: 0, G: 0, B: 255}},
		{"hsl(60, 100%, 50%)", Color{R: 255, G: 255, B: 0}},
		{"hsl(180, 100%, 50%)", Color{R: 0, G: 255, B: 255}},
		{"hsl(300, 100%, 50%)", Color{R: 255, G: 0, B: 255}},
		{"hsl(0, 0%, 0%)", Color{R: 0, G: 0, B: 0}},
		{"hsl(0, 0%, 100%)", Color{R: 255, G: 255, B: 255}},
		{"hsl(0, 0%, 50%)", Color{R: 128, G: 128, B: 128}},
		{"hsl(0, 100%, 25%)", Color{R: 128, G: 0, B: 0}},
		{"HSL(0, 100%, 50%)", Color{R: 255, G: 0, B: 0}},
		{" hsl( 0 , 100% , 50% ) ", Color{R: 255, G: 0, B: 0}},
		{"hsl(0.0, 100.0%, 50.0%)", Color{R: 255, G: 0, B: 0}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestParseHSLHueWraps verifies hue is reduced modulo 360, so out-of-range
// and negative hues land on the same color as their canonical angle.
func TestParseHSLHueWraps(t *testing.T) {
	equiv := []struct{ a, b string }{
		{"hsl(360, 100%, 50%)", "hsl(0, 100%, 50%)"},
		{"hsl(480, 100%, 50%)", "hsl(120, 100%, 50%)"},
		{"hsl(-120, 100%, 50%)", "hsl(240, 100%, 50%)"},
		{"hsl(720, 100%, 50%)", "hsl(0, 100%, 50%)"},
	}
	for _, e := range equiv {
		a, err := Parse(e.a)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", e.a, err)
		}
		b, err := Parse(e.b)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", e.b, err)
		}
		if a != b {
			t.Errorf("Parse(%q) = %v, want %v (same as %q)", e.a, a, b, e.b)
		}
	}
}

// TestParseHSLClampsPercentages verifies saturation and lightness outside
// [0, 100] are clamped rather than rejected.
func TestParseHSLClampsPercentages(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"hsl(0, 150%, 50%)", Color{R: 255, G: 0, B: 0}},
		{"hsl(0, -10%, 50%)", Color{R: 128, G: 128, B: 128}},
		{"hsl(0, 100%, 120%)", Color{R: 255, G: 255, B: 255}},
		{"hsl(0, 100%, -5%)", Color{R: 0, G: 0, B: 0}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseHSLMalformed(t *testing.T) {
	inputs := []string{
		"hsl(0, 100, 50)",       // missing % suffixes
		"hsl(0, 100%, 50)",      // missing one % suffix
		"hsl(x, 100%, 50%)",     // non-numeric hue
		"hsl(0, x%, 50%)",       // non-numeric saturation
		"hsl(0, 100%)",          // too few components
		"hsl(0, 100%, 50%, 1)",  // too many components
		"hsl()",                 // empty interior
		"hsl(0, 100%, 50%",      // missing close paren
		"hsl(0, %, 50%)",        // empty number before suffix
		"hsl(0, 50 %, 50%)",     // space before suffix
	}
	for _, s := range inputs {
		_, err := Parse(s)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrUnsupportedFormat", s, err)
		}
	}
}

// TestHueToChannelBoundaries pins the piecewise branch thresholds. Values
// chosen so each branch of the hue function is exercised at least once.
func TestHueToChannelBoundaries(t *testing.T) {
	const p, q = 0.0, 1.0
	tests := []struct {
		t    float64
		want float64
	}{
		{0, 0},           // first branch at zero
		{1.0 / 12, 0.5},  // midpoint of first branch
		{1.0 / 6, 1},     // start of flat q branch
		{0.25, 1},        // inside flat branch
		{0.5, 1},         // start of descending branch
		{2.0 / 3, 0},     // start of flat p branch
		{0.75, 0},        // inside flat p branch
		{-1.0 / 3, 0},    // wraps to 2/3
		{1.0 + 1.0/6, 1}, // wraps to 1/6
	}
	for _, tt := range tests {
		got := hueToChannel(p, q, tt.t)
		if diff := got - tt.want; diff < -1e-9 || diff > 1e-9 {
			t.Errorf("hueToChannel(0, 1, %v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

// TestChannelRounding pins the rounding mode: half away from zero, clamped.
func TestChannelRounding(t *testing.T) {
	tests := []struct {
		f    float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128}, // 127.5 rounds up
		{0.1, 26},  // 25.5 rounds up
		{1.5, 255}, // clamped
		{-0.5, 0},  // clamped
	}
	for _, tt := range tests {
		if got := channel(tt.f); got != tt.want {
			t.Errorf("channel(%v) = %d, want %d", tt.f, got, tt.want)
		}
	}
}
