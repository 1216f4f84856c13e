package cmd

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"

	"github.com/marcus/boxrow/internal/boxes"
	"github.com/marcus/boxrow/internal/config"
	"github.com/marcus/boxrow/internal/geometry"
	"github.com/marcus/boxrow/pkg/rowview"
)

func TestResolveClick(t *testing.T) {
	labels := []string{"Box 00", "Box 01", "Box 02"}
	m := rowview.Metrics(2)

	tests := []struct {
		name   string
		x, y   int
		action string
		index  int
	}{
		{"gap between first two", 13, 3, "insert", 1},
		{"gap between last two", 25, 2, "insert", 2},
		{"bottom band edge", 24, 5, "insert", 2},
		{"on first box", 5, 3, "edit", 0},
		{"on last box", 35, 4, "edit", 2},
		{"left of row", 1, 3, "none", 0},
		{"right of row", 36, 3, "none", 0},
		{"above row", 13, 1, "none", 0},
		{"below row", 13, 6, "none", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := resolveClick(labels, m, geometry.Point{X: tt.x, Y: tt.y})
			if res.Action != tt.action {
				t.Fatalf("action = %q, want %q", res.Action, tt.action)
			}
			if tt.action == "none" {
				if res.Index != nil {
					t.Errorf("index = %d, want nil", *res.Index)
				}
				return
			}
			if res.Index == nil || *res.Index != tt.index {
				t.Errorf("index = %v, want %d", res.Index, tt.index)
			}
		})
	}
}

func TestResolveResultString(t *testing.T) {
	one, two := 1, 2
	tests := []struct {
		res  resolveResult
		want string
	}{
		{resolveResult{Action: "insert", Index: &one}, "insert at 1"},
		{resolveResult{Action: "edit", Index: &two, Label: "Box 02"}, `edit box 2 ("Box 02")`},
		{resolveResult{Action: "none"}, "no match"},
	}

	for _, tt := range tests {
		if got := tt.res.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRowLabels(t *testing.T) {
	cfg := config.Default()

	got, err := rowLabels(cfg, nil)
	if err != nil {
		t.Fatalf("rowLabels: %v", err)
	}
	if len(got) != cfg.InitialCount || got[0] != "Box 00" {
		t.Errorf("rowLabels(nil) = %v", got)
	}

	got, err = rowLabels(cfg, []string{"a", "b"})
	if err != nil {
		t.Fatalf("rowLabels: %v", err)
	}
	if len(got) != 2 || got[1] != "b" {
		t.Errorf("rowLabels(explicit) = %v", got)
	}
}

func TestLabelsFromFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addLabelFlag(fs)
	if err := fs.Parse([]string{"--label", "A", "--label", "B, C"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got, err := labelsFromFlags(fs, config.Default())
	if err != nil {
		t.Fatalf("labelsFromFlags: %v", err)
	}
	// StringArray keeps commas inside a value.
	if len(got) != 2 || got[1] != "B, C" {
		t.Errorf("labels = %q", got)
	}
}

func TestLabelsFromFlagsRejectsMultiLine(t *testing.T) {
	for _, bad := range []string{"two\nlines", "cr\r", "tab\there"} {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		addLabelFlag(fs)
		if err := fs.Parse([]string{"--label", "A", "--label", bad}); err != nil {
			t.Fatalf("Parse: %v", err)
		}

		_, err := labelsFromFlags(fs, config.Default())
		var le *boxes.LabelError
		if !errors.As(err, &le) {
			t.Errorf("labelsFromFlags(%q) error = %v, want *boxes.LabelError", bad, err)
		}
	}
}
