package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Clear  key.Binding
	Deal   key.Binding
	Focus  key.Binding
	Back   key.Binding
	Submit key.Binding
	Up     key.Binding
	Down   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "select card")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear selection")),
		Deal:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new deal")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "type a target")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to hand")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer target")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Focus, k.Deal, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Toggle, k.Clear},
		{k.Focus, k.Back, k.Submit, k.Up, k.Down},
		{k.Deal, k.Help, k.Quit},
	}
}
