package rowview

import (
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/boxrow/internal/config"
)

// With the default config the boxes sit at x=[2,12) [14,24) [26,36), y=[2,5).
func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := New(config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(m.Close)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func click(m Model, x, y int) Model {
	next, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return next.(Model)
}

func press(m Model, k tea.KeyMsg) Model {
	next, _ := m.Update(k)
	return next.(Model)
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestNewPopulatesRow(t *testing.T) {
	m := newTestModel(t)

	want := []string{"Box 00", "Box 01", "Box 02"}
	if got := m.Row().Labels(); !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
	if !m.Row().Mounted() {
		t.Error("row should be mounted")
	}
}

func TestClickGapInserts(t *testing.T) {
	m := newTestModel(t)

	m = click(m, 13, 3)

	want := []string{"Box 00", "-", "Box 01", "Box 02"}
	if got := m.Row().Labels(); !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
	if !strings.Contains(m.status.text, "inserted") {
		t.Errorf("status = %q, want insert message", m.status.text)
	}
}

func TestClickOutsideGapsIgnored(t *testing.T) {
	cases := []struct {
		name string
		x, y int
	}{
		{"left of first box", 0, 3},
		{"right of last box", 40, 3},
		{"below the row", 13, 8},
		{"title line", 13, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t)
			m = click(m, tc.x, tc.y)
			if m.Row().Len() != 3 {
				t.Errorf("click at (%d,%d) changed the row: %v", tc.x, tc.y, m.Row().Labels())
			}
			if m.editing != -1 {
				t.Errorf("click at (%d,%d) started an edit", tc.x, tc.y)
			}
		})
	}
}

func TestClickLineBelowRowInserts(t *testing.T) {
	// The band is inclusive at the bottom, so line 5 still counts as the row
	// even though no box is drawn there. Under box 1 that is the gap after it.
	m := newTestModel(t)
	m = click(m, 19, 5)

	want := []string{"Box 00", "Box 01", "-", "Box 02"}
	if got := m.Row().Labels(); !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
	if m.editing != -1 {
		t.Errorf("editing = %d, want -1", m.editing)
	}

	m = newTestModel(t)
	m = click(m, 19, 6)
	if m.Row().Len() != 3 {
		t.Errorf("click on line 6 changed the row: %v", m.Row().Labels())
	}
}

func TestClickBoxEditsAndConfirms(t *testing.T) {
	m := newTestModel(t)

	m = click(m, 16, 3)
	if m.editing != 1 {
		t.Fatalf("editing = %d, want 1", m.editing)
	}
	if !m.input.Focused() {
		t.Fatal("input should be focused while editing")
	}

	m = typeText(m, "!")
	if got := m.Row().DisplayTexts()[1]; got != "Box 01!" {
		t.Errorf("draft = %q, want %q", got, "Box 01!")
	}
	if got := m.Row().Labels()[1]; got != "Box 01" {
		t.Errorf("label changed before confirm: %q", got)
	}

	m = press(m, enter)
	if m.editing != -1 {
		t.Errorf("editing = %d after enter, want -1", m.editing)
	}
	if got := m.Row().Labels()[1]; got != "Box 01!" {
		t.Errorf("label = %q, want %q", got, "Box 01!")
	}
}

func TestEscapeDiscardsDraft(t *testing.T) {
	m := newTestModel(t)

	m = click(m, 4, 3)
	m = typeText(m, "xyz")
	m = press(m, esc)

	if m.editing != -1 {
		t.Errorf("editing = %d after esc, want -1", m.editing)
	}
	if got := m.Row().Labels()[0]; got != "Box 00" {
		t.Errorf("label = %q, want unchanged", got)
	}
}

func TestClickWhileEditing(t *testing.T) {
	m := newTestModel(t)

	// Box 0 grows by one cell while active: [2,13).
	m = click(m, 4, 3)
	m = click(m, 12, 3)
	if m.editing != 0 {
		t.Fatalf("click inside the edited box should keep editing, editing = %d", m.editing)
	}

	// The edit is discarded first, so the gap is resolved against the
	// un-widened geometry: x=25 lies between box 1 and box 2.
	m = typeText(m, "zz")
	m = click(m, 25, 3)

	want := []string{"Box 00", "Box 01", "-", "Box 02"}
	if got := m.Row().Labels(); !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
	if m.editing != -1 {
		t.Errorf("editing = %d, want -1", m.editing)
	}
}

func TestClickOtherBoxSwitchesEdit(t *testing.T) {
	m := newTestModel(t)

	m = click(m, 4, 3)
	m = typeText(m, "?")
	// With the longer draft box 2 sits at [28,38); after the blur it is back
	// at [26,36). x=30 hits it either way.
	m = click(m, 30, 3)

	if m.editing != 2 {
		t.Fatalf("editing = %d, want 2", m.editing)
	}
	if got := m.input.Value(); got != "Box 02" {
		t.Errorf("input = %q, want %q", got, "Box 02")
	}
	if got := m.Row().Labels()[0]; got != "Box 00" {
		t.Errorf("abandoned draft was written: %q", got)
	}
}

func TestKeyboardInsertAndCursor(t *testing.T) {
	m := newTestModel(t)

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
	m = typeText(m, "i")
	want := []string{"Box 00", "Box 01", "-", "Box 02"}
	if got := m.Row().Labels(); !slices.Equal(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}

	// After the last box there is no gap to insert into.
	for range 5 {
		m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.cursor != 3 {
		t.Fatalf("cursor = %d, want clamped to 3", m.cursor)
	}
	m = typeText(m, "i")
	if m.Row().Len() != 4 {
		t.Errorf("len = %d, want 4", m.Row().Len())
	}
	if !m.status.isErr {
		t.Error("expected an error status")
	}
}

func TestKeyboardEdit(t *testing.T) {
	m := newTestModel(t)

	m = typeText(m, "l")
	m = press(m, enter)
	if m.editing != 1 {
		t.Fatalf("editing = %d, want 1", m.editing)
	}
	m = typeText(m, "q")
	m = press(m, enter)
	if got := m.Row().Labels()[1]; got != "Box 01q" {
		t.Errorf("label = %q, want %q", got, "Box 01q")
	}
}

func TestFindMovesCursor(t *testing.T) {
	m := newTestModel(t)

	m = typeText(m, "/")
	if !m.finding {
		t.Fatal("expected find mode")
	}
	m = typeText(m, "02")
	if !slices.Equal(m.matches, []int{2}) {
		t.Errorf("matches = %v, want [2]", m.matches)
	}
	m = press(m, enter)
	if m.finding {
		t.Error("find mode should end on enter")
	}
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
}

func TestBlinkReachesFocusedField(t *testing.T) {
	m := newTestModel(t)

	if _, cmd := m.Update(cursor.Blink()); cmd != nil {
		t.Error("blink with no focused field should not schedule another")
	}

	m = typeText(m, "/")
	if _, cmd := m.Update(cursor.Blink()); cmd == nil {
		t.Error("find query cursor should keep blinking")
	}
	m = press(m, esc)

	m = click(m, 4, 3)
	if _, cmd := m.Update(cursor.Blink()); cmd == nil {
		t.Error("edit cursor should keep blinking")
	}
}

func TestMatchLabels(t *testing.T) {
	labels := []string{"alpha", "beta", "alphabet"}

	if got := matchLabels("", labels); got != nil {
		t.Errorf("empty query matched %v", got)
	}
	got := matchLabels("bet", labels)
	if len(got) != 2 || !slices.Contains(got, 1) || !slices.Contains(got, 2) {
		t.Errorf("matchLabels(bet) = %v, want boxes 1 and 2", got)
	}
}

func TestHoverTracksBox(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.MouseMsg{X: 16, Y: 3, Action: tea.MouseActionMotion})
	m = next.(Model)
	if m.hover != 1 {
		t.Errorf("hover = %d, want 1", m.hover)
	}

	next, _ = m.Update(tea.MouseMsg{X: 13, Y: 3, Action: tea.MouseActionMotion})
	m = next.(Model)
	if m.hover != -1 {
		t.Errorf("hover = %d over a gap, want -1", m.hover)
	}
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t)

	m = typeText(m, "?")
	if !m.showHelp {
		t.Fatal("expected help to be shown")
	}
	if !strings.Contains(m.View(), "boxrow") {
		t.Error("help view should mention boxrow")
	}

	// Clicks are swallowed while help is open.
	m = click(m, 13, 3)
	if m.Row().Len() != 3 {
		t.Error("click went through the help overlay")
	}

	m = press(m, esc)
	if m.showHelp {
		t.Error("any key should close help")
	}
}

func TestViewPlacesRowAtOrigin(t *testing.T) {
	m := newTestModel(t)

	lines := strings.Split(m.View(), "\n")
	if len(lines) < rowOriginY+3 {
		t.Fatalf("view has %d lines", len(lines))
	}
	top := lines[rowOriginY]
	if !strings.HasPrefix(top, strings.Repeat(" ", rowOriginX)+"╭") {
		t.Errorf("row top line = %q", top)
	}
	if !strings.Contains(lines[rowOriginY+1], "Box 01") {
		t.Errorf("row content line = %q", lines[rowOriginY+1])
	}
}

func TestCloseUnmounts(t *testing.T) {
	m := newTestModel(t)

	m.Close()
	if m.Row().Mounted() {
		t.Error("row still mounted after Close")
	}
	if n := m.dispatcher.Listeners(); n != 0 {
		t.Errorf("listeners = %d, want 0", n)
	}

	// Clicks after Close do nothing.
	m = click(m, 13, 3)
	if m.Row().Len() != 3 {
		t.Errorf("len = %d after Close, want 3", m.Row().Len())
	}
}

func TestCopiedText(t *testing.T) {
	if got := copiedText(1); got != "copied 1 label" {
		t.Errorf("copiedText(1) = %q", got)
	}
	if got := copiedText(4); got != "copied 4 labels" {
		t.Errorf("copiedText(4) = %q", got)
	}
}
