// Package row is the box row component: the label list, the edit state, and
// the click handling that ties them to the rendered geometry.
package row

import (
	"log/slog"

	"github.com/marcus/boxrow/internal/boxes"
	"github.com/marcus/boxrow/internal/edit"
	"github.com/marcus/boxrow/internal/events"
	"github.com/marcus/boxrow/internal/geometry"
	"github.com/marcus/boxrow/internal/pointer"
)

// Outcome is the result of handling one click.
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeEditStarted
	OutcomeInserted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEditStarted:
		return "edit_started"
	case OutcomeInserted:
		return "inserted"
	default:
		return "ignored"
	}
}

// Options configures a Row.
type Options struct {
	Count       int
	Format      string
	Placeholder string
	Geometry    geometry.Provider
	Sink        events.Sink
	Logger      *slog.Logger
}

// Row owns the box list and the edit state.
type Row struct {
	list        *boxes.List
	state       edit.State
	count       int
	format      string
	placeholder string
	geom        geometry.Provider
	sink        events.Sink
	log         *slog.Logger
	unsubscribe func()
}

// New returns an unmounted row. The list stays empty until Mount.
func New(opts Options) *Row {
	if opts.Format == "" {
		opts.Format = boxes.FormatPlain
	}
	if opts.Placeholder == "" {
		opts.Placeholder = boxes.Placeholder
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Row{
		list:        boxes.NewList(),
		state:       edit.NoEdit{},
		count:       opts.Count,
		format:      opts.Format,
		placeholder: opts.Placeholder,
		geom:        opts.Geometry,
		sink:        events.Fanout(opts.Sink, events.LogSink(opts.Logger)),
		log:         opts.Logger,
	}
}

// SetGeometry replaces the geometry provider. Providers usually read the row
// itself, so they are often bound after New.
func (r *Row) SetGeometry(p geometry.Provider) {
	r.geom = p
}

// Mount populates the list on first display and subscribes the click handler.
// Mounting an already mounted row does nothing.
func (r *Row) Mount(d *pointer.Dispatcher) error {
	if r.unsubscribe != nil {
		return nil
	}
	created, err := r.list.Populate(r.count, r.format)
	if err != nil {
		return err
	}
	if created {
		r.emit(events.Event{Action: events.ActionPopulate, Index: -1, Count: r.list.Len()})
	}
	r.unsubscribe = d.Subscribe(func(p geometry.Point) {
		r.HandleClick(p)
	})
	return nil
}

// Unmount releases the click subscription. It is safe to call more than once.
func (r *Row) Unmount() {
	if r.unsubscribe == nil {
		return
	}
	r.unsubscribe()
	r.unsubscribe = nil
}

// Mounted reports whether the row is subscribed to clicks.
func (r *Row) Mounted() bool {
	return r.unsubscribe != nil
}

// HandleClick applies one click. A click on a box starts editing it, a click
// in a gap between two boxes inserts a placeholder, anything else is ignored.
// While editing, a click on the edited box is ignored and any other click blurs
// the edit before being handled.
func (r *Row) HandleClick(p geometry.Point) Outcome {
	if r.geom == nil {
		return r.ignore(p, "no geometry")
	}

	if active, ok := edit.Active(r.state); ok {
		if i, hit := geometry.HitBox(p, r.geom.RowGeometry()); hit && i == active {
			return r.ignore(p, "inside edit field")
		}
		r.Blur()
	}

	rects := r.geom.RowGeometry()
	if len(rects) == 0 {
		return r.ignore(p, "no boxes")
	}
	if i, hit := geometry.HitBox(p, rects); hit {
		if r.BeginEdit(i) {
			return OutcomeEditStarted
		}
		return r.ignore(p, "stale box")
	}

	gap, ok := geometry.Resolve(p, rects)
	if !ok {
		return r.ignore(p, "outside gaps")
	}
	if !r.insert(gap) {
		return r.ignore(p, "stale gap")
	}
	return OutcomeInserted
}

// InsertAt inserts a placeholder in the gap before box gap. Only gaps strictly
// between two boxes are accepted.
func (r *Row) InsertAt(gap int) bool {
	if gap <= 0 || gap >= r.list.Len() {
		return false
	}
	if _, ok := edit.Active(r.state); ok {
		r.Blur()
	}
	return r.insert(gap)
}

func (r *Row) insert(gap int) bool {
	if gap <= 0 || gap >= r.list.Len() {
		return false
	}
	if err := r.list.Insert(gap, r.placeholder); err != nil {
		r.log.Debug("insert failed", "err", err)
		return false
	}
	r.emit(events.Event{Action: events.ActionInsert, Index: gap, Label: r.placeholder})
	return true
}

// BeginEdit makes box i active with its current label as the draft.
func (r *Row) BeginEdit(i int) bool {
	label, ok := r.list.At(i)
	if !ok {
		return false
	}
	r.state = edit.EditingAt{Index: i, Draft: label}
	r.emit(events.Event{Action: events.ActionEditBegin, Index: i, Label: label})
	return true
}

// UpdateDraft records the text currently in the edit field.
func (r *Row) UpdateDraft(text string) {
	if e, ok := r.state.(edit.EditingAt); ok {
		e.Draft = text
		r.state = e
	}
}

// Confirm writes value into the active box and leaves edit mode.
func (r *Row) Confirm(value string) bool {
	i, ok := edit.Active(r.state)
	if !ok {
		return false
	}
	r.state = edit.NoEdit{}
	if err := r.list.Set(i, value); err != nil {
		r.log.Debug("confirm failed", "err", err)
		return false
	}
	r.emit(events.Event{Action: events.ActionEditConfirm, Index: i, Label: value})
	return true
}

// Blur leaves edit mode without writing the draft.
func (r *Row) Blur() bool {
	i, ok := edit.Active(r.state)
	if !ok {
		return false
	}
	r.state = edit.NoEdit{}
	r.emit(events.Event{Action: events.ActionEditCancel, Index: i})
	return true
}

// Geometry returns the current box rectangles, or nil without a provider.
func (r *Row) Geometry() []geometry.Rect {
	if r.geom == nil {
		return nil
	}
	return r.geom.RowGeometry()
}

// State returns the current edit state.
func (r *Row) State() edit.State {
	return r.state
}

// Active returns the index being edited.
func (r *Row) Active() (int, bool) {
	return edit.Active(r.state)
}

// Labels returns a copy of the labels.
func (r *Row) Labels() []string {
	return r.list.Labels()
}

// Placeholder returns the label given to inserted boxes.
func (r *Row) Placeholder() string {
	return r.placeholder
}

// Len returns the number of boxes.
func (r *Row) Len() int {
	return r.list.Len()
}

// DisplayTexts returns what each box currently shows: its label, or the draft
// for the box being edited. The slice is a fresh copy.
func (r *Row) DisplayTexts() []string {
	texts := r.list.Labels()
	if i, ok := edit.Active(r.state); ok && i < len(texts) {
		texts[i], _ = edit.Draft(r.state)
	}
	return texts
}

func (r *Row) ignore(p geometry.Point, reason string) Outcome {
	r.emit(events.Event{Action: events.ActionIgnored, Index: -1, Reason: reason})
	r.log.Debug("click ignored", "x", p.X, "y", p.Y, "reason", reason)
	return OutcomeIgnored
}

func (r *Row) emit(e events.Event) {
	r.sink(e)
}
