// Package geometry maps pointer positions onto a single row of rendered boxes.
//
// Coordinates are in whatever unit the front end renders in (terminal cells or
// pixels). All boxes are assumed to share the first box's row and height.
package geometry

// Point is a pointer position in document space.
type Point struct {
	X, Y int
}

// Rect is the on-screen geometry of one rendered box.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Contains reports whether p lies on the rect. Bounds are half-open.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width &&
		p.Y >= r.Top && p.Y < r.Top+r.Height
}

// Right returns the first column past the rect.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Provider supplies the current geometry of the row, left to right.
type Provider interface {
	RowGeometry() []Rect
}

// ProviderFunc adapts a function to a Provider.
type ProviderFunc func() []Rect

// RowGeometry calls f.
func (f ProviderFunc) RowGeometry() []Rect {
	return f()
}

// InBand reports whether y falls inside the vertical band of the row, taken
// from the first rect and inclusive at both ends.
func InBand(y int, rects []Rect) bool {
	if len(rects) == 0 {
		return false
	}
	first := rects[0]
	return y >= first.Top && y <= first.Top+first.Height
}

// Resolve maps a click to the gap index where a placeholder should be inserted.
// The index is in [1, len(rects)-1]; clicks before the first box, past the last
// box, or outside the band report false.
func Resolve(p Point, rects []Rect) (int, bool) {
	if !InBand(p.Y, rects) {
		return 0, false
	}

	idx := 0
	for idx < len(rects) {
		if rects[idx].Left > p.X {
			break
		}
		idx++
	}

	if idx <= 0 || idx >= len(rects) {
		return 0, false
	}
	return idx, true
}

// HitBox returns the index of the box under p.
func HitBox(p Point, rects []Rect) (int, bool) {
	for i, r := range rects {
		if r.Contains(p) {
			return i, true
		}
	}
	return 0, false
}
