package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Home    key.Binding
	End     key.Binding
	Open    key.Binding
	Back    key.Binding
	New     key.Binding
	Like    key.Binding
	Dislike key.Binding
	Share   key.Binding
	Copy    key.Binding
	Reload  key.Binding
	PageUp  key.Binding
	PageDn  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home", "first")),
		End:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end", "last")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "read")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new blog")),
		Like:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
		Dislike: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dislike")),
		Share:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy link")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		PageUp:  key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDn:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Back, k.New, k.Like, k.Dislike, k.Share, k.Copy, k.Reload, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End, k.Open},
		{k.Like, k.Dislike, k.Share, k.Copy, k.PageUp, k.PageDn},
		{k.New, k.Back, k.Reload, k.Quit},
	}
}

type formKeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	AddTag    key.Binding
	RemoveTag key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

func defaultFormKeyMap() formKeyMap {
	return formKeyMap{
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		AddTag:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add category")),
		RemoveTag: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove category")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "publish")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.AddTag, k.RemoveTag, k.Submit, k.Cancel}
}

func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
