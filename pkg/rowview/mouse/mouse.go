// Package mouse classifies bubbletea mouse messages and maps them onto named
// screen regions.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen rectangle in cells. Width and height are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named, hit-testable area with optional data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions in registration order. Later regions win on overlap.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Test returns the topmost region at (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			r := hm.regions[i]
			return &r
		}
	}
	return nil
}

// Regions returns the registered regions.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// Clear removes every region.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// ActionType classifies a mouse message.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionRelease
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionRelease:
		return "release"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll_up"
	case ActionScrollDown:
		return "scroll_down"
	case ActionScrollLeft:
		return "scroll_left"
	case ActionScrollRight:
		return "scroll_right"
	default:
		return "none"
	}
}

// MouseAction is the classified result of one message.
type MouseAction struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler owns a hit map and remembers the hovered region.
type Handler struct {
	HitMap  *HitMap
	hovered string
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleMouse classifies msg. Shift turns vertical wheel motion horizontal.
func (h *Handler) HandleMouse(msg tea.MouseMsg) MouseAction {
	action := MouseAction{X: msg.X, Y: msg.Y, Region: h.HitMap.Test(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			action.Type = ActionClick
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
			if msg.Shift {
				action.Type = ActionScrollLeft
			}
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
			if msg.Shift {
				action.Type = ActionScrollRight
			}
		case tea.MouseButtonWheelLeft:
			action.Type = ActionScrollLeft
		case tea.MouseButtonWheelRight:
			action.Type = ActionScrollRight
		}
	case tea.MouseActionRelease:
		action.Type = ActionRelease
	case tea.MouseActionMotion:
		action.Type = ActionHover
		h.hovered = ""
		if action.Region != nil {
			h.hovered = action.Region.ID
		}
	}

	return action
}

// Hovered returns the ID of the region under the last motion event.
func (h *Handler) Hovered() string {
	return h.hovered
}

// Clear removes every region and forgets the hover.
func (h *Handler) Clear() {
	h.HitMap.Clear()
	h.hovered = ""
}
