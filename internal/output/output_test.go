package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevOut, prevErr := Stdout, Stderr
	Stdout, Stderr = &out, &errOut
	t.Cleanup(func() { Stdout, Stderr = prevOut, prevErr })
	return &out, &errOut
}

func TestError(t *testing.T) {
	_, errOut := capture(t)
	Error("bad %s", "thing")

	got := errOut.String()
	if !strings.Contains(got, "ERROR:") || !strings.Contains(got, "bad thing") {
		t.Errorf("Error output = %q", got)
	}
}

func TestJSON(t *testing.T) {
	out, _ := capture(t)
	if err := JSON(map[string]int{"index": 2}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["index"] != 2 {
		t.Errorf("index = %d, want 2", decoded["index"])
	}
}

func TestKeyValues(t *testing.T) {
	out, _ := capture(t)
	KeyValues([]string{"gap", "placeholder"}, map[string]string{"gap": "2", "placeholder": "-"})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "gap          2" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "placeholder  -" {
		t.Errorf("line 1 = %q", lines[1])
	}
}
