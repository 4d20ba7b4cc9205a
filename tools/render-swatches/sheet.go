// sheet.go implements PNG sheet rendering for the render-swatches tool.
// [RenderSheet] composes a grid of solid color cells, each with its canonical
// hex value drawn near the bottom edge in a contrast-picked label color.

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Swatch is one cell of the sheet: a color and its label text.
type Swatch struct {
	Color color.NRGBA
	Label string
}

// SheetOptions controls the sheet layout.
type SheetOptions struct {
	// Cell is the square cell size in pixels.
	Cell int
	// Columns is the number of swatches per row; the last row may be short.
	Columns int
}

// RenderSheet renders the swatches as a grid and returns the PNG bytes.
func RenderSheet(swatches []Swatch, opts SheetOptions, otFont *opentype.Font) ([]byte, error) {
	if opts.Cell <= 0 || opts.Columns <= 0 {
		return nil, fmt.Errorf("invalid sheet options: cell=%d cols=%d", opts.Cell, opts.Columns)
	}

	cols := opts.Columns
	if len(swatches) < cols {
		cols = len(swatches)
	}
	rows := (len(swatches) + cols - 1) / cols

	// Label size scales with the cell so small sheets stay legible.
	face, err := opentype.NewFace(otFont, &opentype.FaceOptions{
		Size:    float64(opts.Cell) / 8,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	img := image.NewNRGBA(image.Rect(0, 0, cols*opts.Cell, rows*opts.Cell))

	for i, sw := range swatches {
		x := (i % cols) * opts.Cell
		y := (i / cols) * opts.Cell
		cell := image.Rect(x, y, x+opts.Cell, y+opts.Cell)
		draw.Draw(img, cell, image.NewUniform(sw.Color), image.Point{}, draw.Src)
		drawLabel(img, face, cell, sw)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLabel draws the swatch label centered horizontally near the bottom of
// its cell, in white for dark swatches and black for light ones.
func drawLabel(img draw.Image, face font.Face, cell image.Rectangle, sw Swatch) {
	labelColor := color.NRGBA{A: 255}
	if isDark(sw.Color) {
		labelColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}

	bounds, advance := font.BoundString(face, sw.Label)
	textW := advance.Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	originX := cell.Min.X + (cell.Dx()-textW)/2
	originY := cell.Max.Y - textH

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
		Dot:  fixed.P(originX, originY),
	}
	d.DrawString(sw.Label)
}
