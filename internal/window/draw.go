package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/marcus/boxrow/internal/geometry"
	"github.com/marcus/boxrow/internal/layout"
)

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	rects := w.row.Geometry()
	texts := w.row.DisplayTexts()
	active, editing := w.row.Active()

	if len(rects) > 0 {
		width, height := layout.Extent(rects, w.metrics)
		strokeRect(screen, geometry.Rect{
			Left:   margin / 2,
			Top:    margin / 2,
			Width:  width - margin,
			Height: height - margin,
		}, 1, rowBorder)
	}

	ascent := w.face.Metrics().Ascent.Round()
	for i, r := range rects {
		fill, edge := boxFill, boxBorder
		switch {
		case editing && i == active:
			fill, edge = activeFill, activeEdge
		case i == w.hover:
			fill = boxHover
		}
		fillRect(screen, r, fill)
		strokeRect(screen, r, layout.PixelBorder, edge)

		tx := r.Left + layout.PixelBorder + layout.PixelPadX
		ty := r.Top + layout.PixelBorder + layout.PixelPadY + ascent
		text.Draw(screen, texts[i], w.face, tx, ty, labelColor)

		if editing && i == active {
			cx := tx + w.metrics.Measure(texts[i])
			fillRect(screen, geometry.Rect{
				Left:   cx,
				Top:    r.Top + layout.PixelBorder + layout.PixelPadY,
				Width:  layout.PixelCaret,
				Height: r.Height - 2*(layout.PixelBorder+layout.PixelPadY),
			}, activeEdge)
		}
	}

	status := w.status
	if status == "" {
		status = fmt.Sprintf("%d boxes. Click between boxes to insert, click a box to edit.", len(rects))
	}
	text.Draw(screen, status, w.statusFace, margin, w.screenH-10, statusColor)
	if editing {
		text.Draw(screen, "enter to keep, esc to discard", w.statusFace, w.screenW-200, w.screenH-10, mutedColor)
	}
}

func fillRect(dst *ebiten.Image, r geometry.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Left), float32(r.Top), float32(r.Width), float32(r.Height), clr, false)
}

func strokeRect(dst *ebiten.Image, r geometry.Rect, width float32, clr color.Color) {
	half := width / 2
	vector.StrokeRect(dst, float32(r.Left)+half, float32(r.Top)+half,
		float32(r.Width)-width, float32(r.Height)-width, width, clr, false)
}
