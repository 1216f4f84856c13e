// Package rowview is the terminal front end for the box row.
package rowview

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/boxrow/internal/config"
	"github.com/marcus/boxrow/internal/events"
	"github.com/marcus/boxrow/internal/geometry"
	"github.com/marcus/boxrow/internal/layout"
	"github.com/marcus/boxrow/internal/pointer"
	"github.com/marcus/boxrow/internal/row"
	"github.com/marcus/boxrow/pkg/rowview/mouse"
)

// Screen layout: the title sits on line 0, line 1 is blank and the row
// starts on line 2, indented by two cells.
const (
	rowOriginX = 2
	rowOriginY = 2
	maxDraft   = 64
)

// Region IDs registered in the hit map.
const (
	regionBox = "box"
	regionRow = "row"
)

// statusLine is shared between the model copies bubbletea passes around and
// the row's event sink.
type statusLine struct {
	text  string
	isErr bool
}

// Model is the bubbletea model for the box row.
type Model struct {
	row        *row.Row
	dispatcher *pointer.Dispatcher
	metrics    layout.Metrics
	mouse      *mouse.Handler
	log        *slog.Logger

	placeholder string

	input textinput.Model
	query textinput.Model
	keys  keyMap
	help  help.Model

	width  int
	height int

	cursor  int
	hover   int
	editing int

	finding bool
	matches []int

	showHelp    bool
	helpContent string

	status *statusLine
}

// New builds a mounted model from cfg.
func New(cfg *config.Config, logger *slog.Logger) (Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	status := &statusLine{}
	r := row.New(row.Options{
		Count:       cfg.InitialCount,
		Format:      cfg.LabelFormat,
		Placeholder: cfg.Placeholder,
		Sink: func(e events.Event) {
			if e.Action == events.ActionIgnored {
				return
			}
			status.text = e.String()
			status.isErr = false
		},
		Logger: logger,
	})
	metrics := Metrics(cfg.Gap)
	r.SetGeometry(layout.Provider{Texts: r.DisplayTexts, Active: r.Active, Metrics: metrics})

	d := pointer.NewDispatcher()
	if err := r.Mount(d); err != nil {
		return Model{}, err
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = maxDraft

	query := textinput.New()
	query.Prompt = "/"
	query.PromptStyle = findPrompt
	query.Placeholder = "label"
	query.CharLimit = maxDraft

	return Model{
		row:         r,
		dispatcher:  d,
		metrics:     metrics,
		mouse:       mouse.NewHandler(),
		log:         logger,
		placeholder: r.Placeholder(),
		input:       input,
		query:       query,
		keys:        newKeyMap(),
		help:        help.New(),
		hover:       -1,
		editing:     -1,
		status:      status,
	}, nil
}

// Metrics returns the cell layout the view draws the row with.
func Metrics(gap int) layout.Metrics {
	return layout.CellMetrics(rowOriginX, rowOriginY, gap)
}

// Row returns the underlying row.
func (m Model) Row() *row.Row {
	return m.row
}

// Close unmounts the row from the click dispatcher.
func (m Model) Close() {
	m.row.Unmount()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.showHelp {
			m.helpContent = renderHelp(m.keys, m.width)
		}
		return m, nil

	case clipboardMsg:
		m.status.isErr = msg.err != nil
		if msg.err != nil {
			m.status.text = "copy failed: " + msg.err.Error()
			m.log.Warn("clipboard write failed", "err", msg.err)
		} else {
			m.status.text = copiedText(msg.count)
		}
		return m, nil

	case tea.MouseMsg:
		if m.showHelp {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if m.editing >= 0 {
			return m.handleEditKey(msg)
		}
		if m.finding {
			return m.handleFindKey(msg)
		}
		return m.handleKey(msg)
	}

	// Cursor blink and other non-key messages go to the focused field.
	var cmd tea.Cmd
	switch {
	case m.editing >= 0:
		m.input, cmd = m.input.Update(msg)
	case m.finding:
		m.query, cmd = m.query.Update(msg)
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.syncRegions()
	action := m.mouse.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionClick:
		m.dispatcher.Dispatch(geometry.Point{X: action.X, Y: action.Y})
		return m, m.syncEdit()
	case mouse.ActionHover:
		m.hover = -1
		if m.mouse.Hovered() == regionBox {
			if i, ok := action.Region.Data.(int); ok {
				m.hover = i
			}
		}
	case mouse.ActionScrollUp, mouse.ActionScrollLeft:
		if m.editing < 0 {
			m.moveCursor(-1)
		}
	case mouse.ActionScrollDown, mouse.ActionScrollRight:
		if m.editing < 0 {
			m.moveCursor(1)
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.edit):
		m.row.BeginEdit(m.cursor)
		return m, m.syncEdit()
	case key.Matches(msg, m.keys.insert):
		if !m.row.InsertAt(m.cursor + 1) {
			m.status.text = "insert needs a box on both sides"
			m.status.isErr = true
		}
	case key.Matches(msg, m.keys.copy):
		return m, copyLabels(m.row.Labels())
	case key.Matches(msg, m.keys.find):
		m.finding = true
		m.query.SetValue("")
		m.matches = nil
		return m, m.query.Focus()
	case key.Matches(msg, m.keys.help):
		m.showHelp = true
		m.helpContent = renderHelp(m.keys, m.width)
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.row.Blur()
		return m, tea.Quit
	case tea.KeyEnter:
		m.row.Confirm(m.input.Value())
		return m, m.syncEdit()
	case tea.KeyEsc:
		m.row.Blur()
		return m, m.syncEdit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.row.UpdateDraft(m.input.Value())
	return m, cmd
}

// syncEdit focuses or blurs the text input to follow the row's edit state.
func (m *Model) syncEdit() tea.Cmd {
	i, ok := m.row.Active()
	if !ok {
		m.editing = -1
		m.input.Blur()
		return nil
	}
	if i == m.editing {
		return nil
	}
	m.editing = i
	m.cursor = i
	m.input.SetValue(m.row.DisplayTexts()[i])
	m.input.CursorEnd()
	return m.input.Focus()
}

// syncRegions rebuilds the hit map from the current row geometry.
func (m *Model) syncRegions() {
	m.mouse.HitMap.Clear()
	boxes := m.boxRects()
	if len(boxes) > 0 {
		last := boxes[len(boxes)-1]
		m.mouse.HitMap.AddRect(regionRow, m.metrics.OriginX, m.metrics.OriginY,
			last.Right()-m.metrics.OriginX, m.metrics.Height, nil)
	}
	for i, b := range boxes {
		m.mouse.HitMap.AddRect(regionBox, b.Left, b.Top, b.Width, b.Height, i)
	}
}

func (m Model) boxRects() []geometry.Rect {
	active := -1
	if i, ok := m.row.Active(); ok {
		active = i
	}
	return layout.Compute(m.row.DisplayTexts(), active, m.metrics)
}

func (m *Model) moveCursor(delta int) {
	n := m.row.Len()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
}
