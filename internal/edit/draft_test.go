package edit

import "testing"

func TestAppendRunes(t *testing.T) {
	tests := []struct {
		name  string
		draft string
		in    string
		limit int
		want  string
	}{
		{"plain", "Box", " 1", 0, "Box 1"},
		{"drops control runes", "a", "b\x00\x7fc\n", 0, "abc"},
		{"stops at limit", "abc", "defg", 5, "abcde"},
		{"already full", "abcde", "f", 5, "abcde"},
		{"multibyte counts runes", "é", "üö", 2, "éü"},
		{"empty input", "x", "", 3, "x"},
	}

	for _, tt := range tests {
		got := AppendRunes(tt.draft, []rune(tt.in), tt.limit)
		if got != tt.want {
			t.Errorf("%s: AppendRunes(%q, %q, %d) = %q, want %q", tt.name, tt.draft, tt.in, tt.limit, got, tt.want)
		}
	}
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a", ""},
		{"Box", "Bo"},
		{"naïve", "naïv"},
		{"añ", "a"},
	}

	for _, tt := range tests {
		if got := Backspace(tt.in); got != tt.want {
			t.Errorf("Backspace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPasteText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"first\nsecond", "first"},
		{"win\r\nline", "win"},
		{"a\tb", "a b"},
		{"\nleading", ""},
	}

	for _, tt := range tests {
		if got := PasteText(tt.in); got != tt.want {
			t.Errorf("PasteText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
