// render-swatches renders a palette file into a PNG swatch sheet.
//
// Reads one hex color per line (blank lines skipped), draws each as a solid
// square with its canonical hex value labeled underneath, and writes the
// composed grid as a single PNG. Useful for eyeballing a palette file or
// embedding a preview in docs.
//
// Font resolution for the labels:
//  1. Local file path from the -font flag
//  2. Google Fonts download from the -font-fallback spec (e.g. "google:Inter:600")
//
// Usage:
//
//	cd tools/render-swatches && go run . -palette ../../testdata/brand.palette -out sheet.png
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/font"
	"golang.org/x/image/font/opentype"
)

func main() {
	paletteFile := flag.String("palette", "", "Palette file with one hex color per line")
	outFile := flag.String("out", "sheet.png", "Output PNG path")
	cell := flag.Int("cell", 160, "Swatch cell size in pixels")
	cols := flag.Int("cols", 4, "Swatches per row")
	fontPath := flag.String("font", "", "Local font file for labels (TTF/OTF/WOFF2)")
	fontFallback := flag.String("font-fallback", "google:Inter:600", "Google Fonts spec for labels when -font is unset")
	flag.Parse()

	if *paletteFile == "" {
		fmt.Fprintln(os.Stderr, "error: -palette is required")
		flag.Usage()
		os.Exit(2)
	}

	swatches, err := loadPalette(*paletteFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: load palette: %v\n", err)
		os.Exit(1)
	}
	if len(swatches) == 0 {
		fmt.Fprintln(os.Stderr, "error: palette file has no colors")
		os.Exit(1)
	}

	fontCacheDir := filepath.Join(filepath.Dir(*outFile), ".fontcache")
	fontBytes, err := resolveFont(*fontPath, *fontFallback, fontCacheDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: resolve font: %v\n", err)
		os.Exit(1)
	}

	otFont, err := opentype.Parse(fontBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: parse font: %v\n", err)
		os.Exit(1)
	}

	pngData, err := RenderSheet(swatches, SheetOptions{Cell: *cell, Columns: *cols}, otFont)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: render sheet: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outFile, pngData, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: write %s: %v\n", *outFile, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d swatches)\n", *outFile, len(swatches))
}

// loadPalette reads a palette file and parses each non-blank line as a hex
// color. Parse failures abort with the offending line number so the sheet
// never silently drops a color.
func loadPalette(path string) ([]Swatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var swatches []Swatch
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := ParseHexColor(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		swatches = append(swatches, Swatch{Color: c, Label: canonicalHex(c)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return swatches, nil
}

// resolveFont tries to load a label font using this fallback chain:
//  1. Local file from fontPath
//  2. Google Fonts from fallbackSpec (e.g. "google:Inter:600")
func resolveFont(fontPath, fallbackSpec, fontCacheDir string) ([]byte, error) {
	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", fontPath, err)
		}
		return maybeConvertWOFF2(fontPath, data)
	}

	if fallbackSpec != "" {
		if _, _, ok := ParseGoogleFontSpec(fallbackSpec); ok {
			return FetchGoogleFont(fallbackSpec, fontCacheDir)
		}
	}

	return nil, fmt.Errorf("no font configured (set -font or -font-fallback)")
}

// maybeConvertWOFF2 converts WOFF2 font data to SFNT format if needed.
func maybeConvertWOFF2(path string, data []byte) ([]byte, error) {
	if isWOFF2Data(path, data) {
		sfnt, err := font.ToSFNT(data)
		if err != nil {
			return nil, fmt.Errorf("convert woff2 to sfnt: %w", err)
		}
		return sfnt, nil
	}
	return data, nil
}
