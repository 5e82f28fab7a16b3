package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"w", runeKey('w'), core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"a", runeKey('a'), core.ActionWalkLeft},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionWalkLeft},
		{"d", runeKey('d'), core.ActionWalkRight},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionWalkRight},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q is handled by the model", runeKey('q'), core.ActionNone},
		{"esc is handled by the model", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 7 {
		t.Errorf("ShortHelp() has %d bindings, expected 7", len(keys.ShortHelp()))
	}

	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != len(keys.ShortHelp()) {
		t.Errorf("FullHelp() has %d bindings, expected %d", total, len(keys.ShortHelp()))
	}
}
