package rowview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit    key.Binding
	left    key.Binding
	right   key.Binding
	edit    key.Binding
	insert  key.Binding
	copy    key.Binding
	find    key.Binding
	help    key.Binding
	confirm key.Binding
	cancel  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous box"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next box"),
		),
		edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit box"),
		),
		insert: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "insert after box"),
		),
		copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy labels"),
		),
		find: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// browseKeys is the footer shown while no edit or search is active.
type browseKeys keyMap

func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.left, k.right, k.edit, k.insert, k.find, k.help, k.quit}
}

func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.left, k.right},
		{k.edit, k.insert},
		{k.copy, k.find},
		{k.help, k.quit},
	}
}

// promptKeys is the footer shown while an input field has focus.
type promptKeys keyMap

func (k promptKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.confirm, k.cancel}
}

func (k promptKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.confirm, k.cancel}}
}
