package boxes

import "fmt"

// IndexError represents an operation on a position outside the list
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for %d boxes", e.Op, e.Index, e.Len)
}

// FormatError is returned when a label format does not render an index
type FormatError struct {
	Format string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("label format %q %s", e.Format, e.Reason)
	}
	return fmt.Sprintf("label format %q must contain exactly one integer verb", e.Format)
}

// LabelError is returned for a label that cannot be drawn on one line
type LabelError struct {
	Label string
}

func (e *LabelError) Error() string {
	return fmt.Sprintf("label %q must not contain line breaks or control characters", e.Label)
}
