package rowview

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model. Lines are laid out so the row starts exactly at
// rowOriginY, matching the geometry clicks are resolved against.
func (m Model) View() string {
	if m.showHelp {
		return m.helpContent
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("boxrow"))
	sb.WriteString(mutedText.Render("  click between boxes to insert, click a box to edit"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderRow())
	sb.WriteString("\n\n")
	sb.WriteString(m.statusView())
	sb.WriteString("\n")
	sb.WriteString(m.footer())
	return sb.String()
}

func (m Model) renderRow() string {
	rects := m.boxRects()
	texts := m.row.DisplayTexts()

	parts := make([]string, 0, 2*len(rects)+1)
	parts = append(parts, strings.Repeat(" ", m.metrics.OriginX))
	for i, r := range rects {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", m.metrics.Gap))
		}
		parts = append(parts, m.renderBox(i, texts[i], r.Width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderBox draws box i so that its outer width equals width.
func (m Model) renderBox(i int, text string, width int) string {
	style := boxStyle
	content := text
	switch {
	case i == m.editing:
		style = boxEditingStyle
		content = m.input.View()
	case m.finding && slices.Contains(m.matches, i), i == m.hover:
		style = boxHoverStyle
	case i == m.cursor:
		style = boxCursorStyle
	}
	if i != m.editing && text == m.placeholder {
		content = placeholderStyle.Render(text)
	}
	// lipgloss widths include padding but not the border.
	return style.Width(width - 2).Render(content)
}

func (m Model) statusView() string {
	if m.finding {
		return m.query.View() + mutedText.Render(fmt.Sprintf("  %d match(es)", len(m.matches)))
	}
	if m.status.text == "" {
		return mutedText.Render(fmt.Sprintf("%d boxes", m.row.Len()))
	}
	if m.status.isErr {
		return errorText.Render(m.status.text)
	}
	return statusStyle.Render(m.status.text)
}

func (m Model) footer() string {
	var km help.KeyMap = browseKeys(m.keys)
	if m.editing >= 0 || m.finding {
		km = promptKeys(m.keys)
	}
	return m.help.View(km)
}
