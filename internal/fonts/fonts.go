// Package fonts provides the Go font faces used by the pixel front ends.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	parseOnce sync.Once
	regular   *opentype.Font
	parseErr  error
)

func parsed() (*opentype.Font, error) {
	parseOnce.Do(func() {
		regular, parseErr = opentype.Parse(goregular.TTF)
	})
	return regular, parseErr
}

// Face returns a Go Regular face at size points (72 DPI, so points are pixels).
func Face(size float64) (font.Face, error) {
	f, err := parsed()
	if err != nil {
		return nil, fmt.Errorf("parse go regular: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %.1fpt: %w", size, err)
	}
	return face, nil
}

// FaceOrFallback returns Face(size), or the 7x13 bitmap face if the Go font
// cannot be loaded.
func FaceOrFallback(size float64) font.Face {
	face, err := Face(size)
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// Measure returns the advance width of s in whole pixels.
func Measure(face font.Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	adv := font.MeasureString(face, s)
	return max((int(adv)+32)>>6, 0)
}

// LineHeight returns ascent plus descent in whole pixels.
func LineHeight(face font.Face) int {
	m := face.Metrics()
	return m.Ascent.Round() + m.Descent.Round()
}
