package layout

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestPixelMetrics(t *testing.T) {
	m := PixelMetrics(basicfont.Face7x13, 10, 20, 16)
	rects := Compute([]string{"Box 00", "-"}, -1, m)

	// 6 glyphs of 7px, plus 2*12 padding and 2*1 border.
	if rects[0].Width != 42+26 {
		t.Errorf("box 0 width = %d, want %d", rects[0].Width, 42+26)
	}
	// "-" is 7px, below the minimum content width.
	if rects[1].Width != PixelMinWidth+26 {
		t.Errorf("box 1 width = %d, want %d", rects[1].Width, PixelMinWidth+26)
	}
	if rects[1].Left != 10+rects[0].Width+16 {
		t.Errorf("box 1 left = %d", rects[1].Left)
	}
	if rects[0].Top != 20 {
		t.Errorf("top = %d, want 20", rects[0].Top)
	}
	if rects[0].Height != 13+2*PixelPadY+2*PixelBorder {
		t.Errorf("height = %d", rects[0].Height)
	}
}
