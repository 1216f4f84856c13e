package layout

import (
	"golang.org/x/image/font"

	"github.com/marcus/boxrow/internal/fonts"
)

// Pixel box chrome
const (
	PixelBorder   = 1
	PixelPadX     = 12
	PixelPadY     = 8
	PixelCaret    = 2
	PixelMinWidth = 24
)

// PixelMetrics returns metrics for boxes drawn with face, a one pixel border,
// and fixed padding.
func PixelMetrics(face font.Face, originX, originY, gap int) Metrics {
	return Metrics{
		OriginX:    originX,
		OriginY:    originY,
		Gap:        gap,
		Height:     fonts.LineHeight(face) + 2*PixelPadY + 2*PixelBorder,
		Chrome:     2*PixelPadX + 2*PixelBorder,
		MinContent: PixelMinWidth,
		Caret:      PixelCaret,
		Measure: func(s string) int {
			return fonts.Measure(face, s)
		},
	}
}
