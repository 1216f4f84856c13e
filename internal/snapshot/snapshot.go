// Package snapshot renders the box row to a PNG image.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/marcus/boxrow/internal/fonts"
	"github.com/marcus/boxrow/internal/geometry"
	"github.com/marcus/boxrow/internal/layout"
)

// Options controls the rendered image.
type Options struct {
	FontSize float64
	Gap      int
	Margin   int
	// Active is the index drawn with the edit highlight, or -1.
	Active int
}

// DefaultOptions matches the desktop window.
func DefaultOptions() Options {
	return Options{FontSize: 16, Gap: 16, Margin: 24, Active: -1}
}

var (
	background = color.RGBA{R: 250, G: 250, B: 252, A: 255}
	rowBorder  = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	boxFill    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	boxBorder  = color.RGBA{R: 60, G: 70, B: 90, A: 255}
	activeFill = color.RGBA{R: 232, G: 242, B: 255, A: 255}
	activeEdge = color.RGBA{R: 40, G: 110, B: 220, A: 255}
	labelColor = color.RGBA{R: 30, G: 34, B: 44, A: 255}
)

// Render draws labels as a row of boxes and returns the image together with
// the box geometry it used.
func Render(labels []string, opts Options) (image.Image, []geometry.Rect, error) {
	dc, rects, err := draw(labels, opts)
	if err != nil {
		return nil, nil, err
	}
	return dc.Image(), rects, nil
}

// WritePNG renders labels and encodes the image as PNG to w.
func WritePNG(w io.Writer, labels []string, opts Options) error {
	dc, _, err := draw(labels, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func draw(labels []string, opts Options) (*gg.Context, []geometry.Rect, error) {
	face, err := fonts.Face(opts.FontSize)
	if err != nil {
		return nil, nil, err
	}
	defer face.Close()

	m := layout.PixelMetrics(face, opts.Margin, opts.Margin, opts.Gap)
	rects := layout.Compute(labels, opts.Active, m)
	w, h := layout.Extent(rects, m)

	dc := gg.NewContext(w, h)
	dc.SetColor(background)
	dc.Clear()
	dc.SetFontFace(face)

	// Row container outline.
	dc.SetColor(rowBorder)
	dc.SetLineWidth(1)
	dc.DrawRectangle(float64(opts.Margin)/2, float64(opts.Margin)/2, float64(w-opts.Margin), float64(h-opts.Margin))
	dc.Stroke()

	for i, r := range rects {
		fill, edge := boxFill, boxBorder
		if i == opts.Active {
			fill, edge = activeFill, activeEdge
		}
		x, y := float64(r.Left), float64(r.Top)
		bw, bh := float64(r.Width), float64(r.Height)

		dc.SetColor(fill)
		dc.DrawRectangle(x, y, bw, bh)
		dc.Fill()

		dc.SetColor(edge)
		dc.SetLineWidth(layout.PixelBorder)
		dc.DrawRectangle(x+0.5, y+0.5, bw-1, bh-1)
		dc.Stroke()

		dc.SetColor(labelColor)
		dc.DrawStringAnchored(labels[i], x+bw/2, y+bh/2, 0.5, 0.35)
	}

	return dc, rects, nil
}
