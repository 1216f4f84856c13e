// Package events defines the actions the box row reports to its observers.
//
// Every state change of the row produces exactly one Event. Front ends show the
// latest event in their status line and the CLI logs them with slog.
package events

import (
	"fmt"
	"log/slog"
)

// ActionType names what happened to the row.
type ActionType string

// Canonical action types
const (
	ActionPopulate    ActionType = "populate"
	ActionInsert      ActionType = "insert"
	ActionEditBegin   ActionType = "edit_begin"
	ActionEditConfirm ActionType = "edit_confirm"
	ActionEditCancel  ActionType = "edit_cancel"
	ActionIgnored     ActionType = "ignored"
)

// Event describes one change. Index is -1 when no box is involved; Count is
// only set for populate.
type Event struct {
	Action ActionType
	Index  int
	Count  int
	Label  string
	Reason string
}

// Sink receives events in the order they happen.
type Sink func(Event)

// String renders a one-line, human readable description.
func (e Event) String() string {
	switch e.Action {
	case ActionPopulate:
		return fmt.Sprintf("created %d boxes", e.Count)
	case ActionInsert:
		return fmt.Sprintf("inserted %q at %d", e.Label, e.Index)
	case ActionEditBegin:
		return fmt.Sprintf("editing box %d", e.Index)
	case ActionEditConfirm:
		return fmt.Sprintf("box %d set to %q", e.Index, e.Label)
	case ActionEditCancel:
		return fmt.Sprintf("edit of box %d discarded", e.Index)
	case ActionIgnored:
		if e.Reason != "" {
			return "click ignored: " + e.Reason
		}
		return "click ignored"
	default:
		return string(e.Action)
	}
}

// LogValue implements slog.LogValuer.
func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("action", string(e.Action)),
		slog.Int("index", e.Index),
	}
	if e.Action == ActionPopulate {
		attrs = append(attrs, slog.Int("count", e.Count))
	}
	if e.Label != "" {
		attrs = append(attrs, slog.String("label", e.Label))
	}
	if e.Reason != "" {
		attrs = append(attrs, slog.String("reason", e.Reason))
	}
	return slog.GroupValue(attrs...)
}

// Fanout returns a sink that forwards to every non-nil sink.
func Fanout(sinks ...Sink) Sink {
	return func(e Event) {
		for _, s := range sinks {
			if s != nil {
				s(e)
			}
		}
	}
}

// LogSink returns a sink that logs every event except ignored clicks at debug
// level.
func LogSink(logger *slog.Logger) Sink {
	return func(e Event) {
		if e.Action == ActionIgnored {
			return
		}
		logger.Debug("row event", "event", e)
	}
}
