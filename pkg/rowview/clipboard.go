package rowview

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type clipboardMsg struct {
	count int
	err   error
}

// copyLabels writes one label per line to the system clipboard.
func copyLabels(labels []string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(strings.Join(labels, "\n"))
		return clipboardMsg{count: len(labels), err: err}
	}
}

func copiedText(n int) string {
	if n == 1 {
		return "copied 1 label"
	}
	return fmt.Sprintf("copied %d labels", n)
}
