// Package boxes holds the ordered list of box labels shown in the row.
//
// The list only grows: labels are inserted between existing boxes or edited in
// place. There is no deletion.
package boxes

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

const (
	// DefaultCount is the number of boxes generated on first display.
	DefaultCount = 3
	// FormatPlain renders "Box 00", "Box 01", ...
	FormatPlain = "Box %02d"
	// FormatHash renders "Box #00", "Box #01", ...
	FormatHash = "Box #%02d"
	// Placeholder is the label inserted into a gap.
	Placeholder = "-"
)

// List is an ordered sequence of labels. Insertion order is display order.
type List struct {
	labels    []string
	populated bool
}

// NewList returns a list holding the given labels. A list created with labels
// counts as populated.
func NewList(labels ...string) *List {
	return &List{labels: slices.Clone(labels), populated: len(labels) > 0}
}

// Generate returns count labels rendered with format and the zero-based index.
func Generate(count int, format string) ([]string, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}
	labels := make([]string, 0, max(count, 0))
	for n := 0; n < count; n++ {
		labels = append(labels, fmt.Sprintf(format, n))
	}
	return labels, nil
}

// ValidateLabel checks that label fits on a single line of a box: no line
// breaks and no other non-printable runes.
func ValidateLabel(label string) error {
	if strings.ContainsFunc(label, func(r rune) bool { return !unicode.IsPrint(r) }) {
		return &LabelError{Label: label}
	}
	return nil
}

// ValidateFormat checks that format has exactly one integer verb and renders
// single-line labels.
func ValidateFormat(format string) error {
	if err := ValidateLabel(format); err != nil {
		return &FormatError{Format: format, Reason: "must not contain line breaks or control characters"}
	}
	verbs := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			i++
			continue
		}
		verbs++
		j := i + 1
		for j < len(format) && strings.IndexByte("+-# 0123456789", format[j]) >= 0 {
			j++
		}
		if j >= len(format) || strings.IndexByte("dxXob", format[j]) < 0 {
			return &FormatError{Format: format}
		}
		i = j
	}
	if verbs != 1 {
		return &FormatError{Format: format}
	}
	return nil
}

// Populate fills an empty list with count generated labels. It runs once: a
// list that was already populated is left untouched and false is returned.
func (l *List) Populate(count int, format string) (bool, error) {
	if l.populated {
		return false, nil
	}
	labels, err := Generate(count, format)
	if err != nil {
		return false, err
	}
	l.labels = labels
	l.populated = true
	return true, nil
}

// Populated reports whether the initial labels have been generated.
func (l *List) Populated() bool {
	return l.populated
}

// Len returns the number of boxes.
func (l *List) Len() int {
	return len(l.labels)
}

// Labels returns a copy of the labels in display order.
func (l *List) Labels() []string {
	return slices.Clone(l.labels)
}

// At returns the label at i.
func (l *List) At(i int) (string, bool) {
	if i < 0 || i >= len(l.labels) {
		return "", false
	}
	return l.labels[i], true
}

// Insert places label at index i, shifting the label at i and everything after
// it one position right. i may equal Len to append.
func (l *List) Insert(i int, label string) error {
	if i < 0 || i > len(l.labels) {
		return &IndexError{Op: "insert", Index: i, Len: len(l.labels)}
	}
	l.labels = slices.Insert(l.labels, i, label)
	return nil
}

// Set replaces the label at i.
func (l *List) Set(i int, label string) error {
	if i < 0 || i >= len(l.labels) {
		return &IndexError{Op: "set", Index: i, Len: len(l.labels)}
	}
	l.labels[i] = label
	return nil
}
