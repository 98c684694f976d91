package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Save    key.Binding
	Export  key.Binding
	Potion  key.Binding
	Restore key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Export: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "export dex"),
		),
		Potion: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "potion"),
		),
		Restore: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "full restore"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// screenKeys narrows the help line to the bindings a screen responds to.
type screenKeys []key.Binding

func (s screenKeys) ShortHelp() []key.Binding  { return s }
func (s screenKeys) FullHelp() [][]key.Binding { return [][]key.Binding{s} }

func (m model) screenHelp() screenKeys {
	k := m.keys
	switch m.state {
	case stateField:
		return screenKeys{k.Up, k.Down, k.Confirm, k.Save, k.Export, k.Quit}
	case stateBattle:
		return screenKeys{k.Up, k.Down, k.Confirm, k.Back}
	case stateTeam:
		return screenKeys{k.Up, k.Down, k.Confirm, k.Potion, k.Restore, k.Back}
	case stateDex:
		return screenKeys{k.Up, k.Down, k.Back}
	default:
		return screenKeys{k.Up, k.Down, k.Confirm, k.Quit}
	}
}
