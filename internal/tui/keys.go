package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	search    key.Binding
	reload    key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	share     key.Binding
	archive   key.Binding
	archived  key.Binding
	category  key.Binding
	complete  key.Binding
	completed key.Binding
	priority  key.Binding
	sort      key.Binding
	save      key.Binding
	dictate   key.Binding
	cycle     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	logout:    key.NewBinding(key.WithKeys("L")),
	search:    key.NewBinding(key.WithKeys("/")),
	reload:    key.NewBinding(key.WithKeys("r")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	share:     key.NewBinding(key.WithKeys("y")),
	archive:   key.NewBinding(key.WithKeys("x")),
	archived:  key.NewBinding(key.WithKeys("a")),
	category:  key.NewBinding(key.WithKeys("c")),
	complete:  key.NewBinding(key.WithKeys(" ")),
	completed: key.NewBinding(key.WithKeys("f")),
	priority:  key.NewBinding(key.WithKeys("p")),
	sort:      key.NewBinding(key.WithKeys("s")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	dictate:   key.NewBinding(key.WithKeys("ctrl+r")),
	cycle:     key.NewBinding(key.WithKeys("ctrl+t")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
