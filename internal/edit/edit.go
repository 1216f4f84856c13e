// Package edit models which box, if any, is being edited.
package edit

// State is either NoEdit or EditingAt. The unexported method closes the set.
type State interface {
	isState()
}

// NoEdit means no box is active.
type NoEdit struct{}

// EditingAt means the box at Index shows an edit field holding Draft.
type EditingAt struct {
	Index int
	Draft string
}

func (NoEdit) isState()    {}
func (EditingAt) isState() {}

// Active returns the edited index when s is EditingAt.
func Active(s State) (int, bool) {
	if e, ok := s.(EditingAt); ok {
		return e.Index, true
	}
	return 0, false
}

// Draft returns the in-flight text when s is EditingAt.
func Draft(s State) (string, bool) {
	if e, ok := s.(EditingAt); ok {
		return e.Draft, true
	}
	return "", false
}
