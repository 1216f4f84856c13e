package edit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxDraft is the longest draft, in runes, the pixel front end accepts.
const MaxDraft = 64

// AppendRunes appends the printable runes in rs to draft, stopping at limit
// runes. A limit of zero or less means no limit.
func AppendRunes(draft string, rs []rune, limit int) string {
	n := utf8.RuneCountInString(draft)
	var sb strings.Builder
	sb.WriteString(draft)
	for _, r := range rs {
		if limit > 0 && n >= limit {
			break
		}
		if !utf8.ValidRune(r) || !unicode.IsPrint(r) {
			continue
		}
		sb.WriteRune(r)
		n++
	}
	return sb.String()
}

// Backspace removes the last rune of draft.
func Backspace(draft string) string {
	if draft == "" {
		return ""
	}
	_, size := utf8.DecodeLastRuneInString(draft)
	if size <= 0 {
		size = 1
	}
	return draft[:len(draft)-size]
}

// PasteText reduces clipboard contents to what a single-line field keeps:
// the first line, with tabs turned into spaces.
func PasteText(clip string) string {
	if i := strings.IndexAny(clip, "\r\n"); i >= 0 {
		clip = clip[:i]
	}
	return strings.ReplaceAll(clip, "\t", " ")
}
