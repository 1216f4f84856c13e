// Package layout computes where each box of the row is drawn.
//
// The same computation serves the terminal (units are cells) and the pixel
// front ends (units are pixels); only the Metrics differ.
package layout

import (
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/boxrow/internal/geometry"
)

// Metrics describes how text turns into box sizes.
type Metrics struct {
	OriginX    int // left edge of the first box
	OriginY    int // top edge of the row
	Gap        int // space between neighbouring boxes
	Height     int // box height including chrome
	Chrome     int // horizontal border + padding added to the content width
	MinContent int // minimum content width
	Caret      int // extra content width for the box being edited
	Measure    func(string) int
}

// CellMetrics returns metrics for a lipgloss box with a rounded border and one
// cell of horizontal padding, drawn with its top edge at originY.
func CellMetrics(originX, originY, gap int) Metrics {
	return Metrics{
		OriginX:    originX,
		OriginY:    originY,
		Gap:        gap,
		Height:     3,
		Chrome:     4,
		MinContent: 1,
		Caret:      1,
		Measure:    ansi.StringWidth,
	}
}

// ContentWidth returns the content width of a box showing text.
func (m Metrics) ContentWidth(text string, active bool) int {
	w := 0
	if m.Measure != nil {
		w = m.Measure(text)
	}
	if active {
		w += m.Caret
	}
	return max(w, m.MinContent)
}

// Compute lays the texts out left to right. active is the index of the box
// being edited, or -1.
func Compute(texts []string, active int, m Metrics) []geometry.Rect {
	rects := make([]geometry.Rect, 0, len(texts))
	x := m.OriginX
	for i, text := range texts {
		w := m.ContentWidth(text, i == active) + m.Chrome
		rects = append(rects, geometry.Rect{
			Left:   x,
			Top:    m.OriginY,
			Width:  w,
			Height: m.Height,
		})
		x += w + m.Gap
	}
	return rects
}

// Extent returns the total width and height covered by rects, measured from
// the origin, including the trailing origin margin on the right.
func Extent(rects []geometry.Rect, m Metrics) (int, int) {
	if len(rects) == 0 {
		return 2 * m.OriginX, 2*m.OriginY + m.Height
	}
	last := rects[len(rects)-1]
	return last.Right() + m.OriginX, 2*m.OriginY + m.Height
}

// Provider binds live row state and metrics into a geometry.Provider. Texts
// and Active are called on every query so the geometry is never stale.
type Provider struct {
	Texts   func() []string
	Active  func() (int, bool)
	Metrics Metrics
}

// RowGeometry implements geometry.Provider.
func (p Provider) RowGeometry() []geometry.Rect {
	if p.Texts == nil {
		return nil
	}
	active := -1
	if p.Active != nil {
		if i, ok := p.Active(); ok {
			active = i
		}
	}
	return Compute(p.Texts(), active, p.Metrics)
}
