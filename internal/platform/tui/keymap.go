package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tidal-drop/internal/core"
)

// GameKeyMap defines the key bindings while surfing.
type GameKeyMap struct {
	Jump        key.Binding
	Start       key.Binding
	Pause       key.Binding
	Leaderboard key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Leaderboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Start},
		{k.Pause, k.Leaderboard, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/up", "jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("l", "tab"),
			key.WithHelp("l", "leaderboard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NameEntryKeyMap defines the key bindings of the game-over name panel.
// Letters go to the text field, so only ctrl+c quits.
type NameEntryKeyMap struct {
	Save key.Binding
	Skip key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k NameEntryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Skip}
}

// FullHelp returns key bindings for the full help view.
func (k NameEntryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Save, k.Skip, k.Quit}}
}

// DefaultNameEntryKeyMap returns default key bindings.
func DefaultNameEntryKeyMap() NameEntryKeyMap {
	return NameEntryKeyMap{
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save score"),
		),
		Skip: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "skip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to host actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	game GameKeyMap
	name NameEntryKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		game: DefaultGameKeyMap(),
		name: DefaultNameEntryKeyMap(),
	}
}

// MapKey translates a key message while surfing.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.game.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.game.Jump):
		return core.ActionJump, false
	case key.Matches(msg, km.game.Start):
		return core.ActionStart, false
	case key.Matches(msg, km.game.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.game.Leaderboard):
		return core.ActionLeaderboard, false
	case msg.Type == tea.KeyEsc:
		return core.ActionSkip, false
	}

	return core.ActionNone, false
}

// MapNameKey translates a key message on the name panel. ActionNone means
// the key belongs to the text field.
func (km *KeyMapper) MapNameKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.name.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.name.Save):
		return core.ActionSave, false
	case key.Matches(msg, km.name.Skip):
		return core.ActionSkip, false
	}

	return core.ActionNone, false
}
