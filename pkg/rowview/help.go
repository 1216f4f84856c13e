package rowview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpIntro = `# boxrow

Click **between two boxes** to insert a placeholder there. Click **a box** to
edit its label; press enter to keep the text or esc to drop it. Clicking
anywhere else while editing drops the edit first.

`

// helpMarkdown lists the bindings as a markdown table.
func helpMarkdown(k keyMap) string {
	var sb strings.Builder
	sb.WriteString(helpIntro)
	sb.WriteString("| Key | Action |\n|-----|--------|\n")
	for _, b := range []key.Binding{k.left, k.right, k.edit, k.insert, k.copy, k.find, k.cancel, k.help, k.quit} {
		h := b.Help()
		sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", h.Key, h.Desc))
	}
	sb.WriteString("\nPress any key to close.\n")
	return sb.String()
}

// renderHelp renders the help page for the given terminal width.
func renderHelp(k keyMap, width int) string {
	md := helpMarkdown(k)
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(md)
	}
	out, err := r.Render(md)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(md)
	}
	return strings.TrimRight(out, "\n")
}
