package rowview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// matchLabels returns the indexes of labels matching query, best first.
func matchLabels(query string, labels []string) []int {
	if query == "" {
		return nil
	}
	found := fuzzy.Find(query, labels)
	out := make([]int, len(found))
	for i, f := range found {
		out[i] = f.Index
	}
	return out
}

func (m Model) handleFindKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.stopFind()
		return m, nil
	case tea.KeyEnter:
		if len(m.matches) > 0 {
			m.cursor = m.matches[0]
		} else if m.query.Value() != "" {
			m.status.text = "no box matches " + m.query.Value()
			m.status.isErr = true
		}
		m.stopFind()
		return m, nil
	}

	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	m.matches = matchLabels(m.query.Value(), m.row.Labels())
	return m, cmd
}

func (m *Model) stopFind() {
	m.finding = false
	m.matches = nil
	m.query.Blur()
}
