package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rogue-invaders/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"b", runeKey('b'), core.ActionBack},
		{"s", runeKey('s'), core.ActionRestart},
		{"r", runeKey('r'), core.ActionRestart},
		{"p", runeKey('p'), core.ActionPause},
		{"m", runeKey('m'), core.ActionSound},
		{"q", runeKey('q'), core.ActionQuit},
		{"h is front end only", runeKey('h'), core.ActionNone},
		{"ctrl+c is front end only", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrameSkipsMovement(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if got := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyLeft}, &frame); got != core.ActionLeft {
		t.Errorf("action = %v, want Left", got)
	}
	if frame.Has(core.ActionLeft) {
		t.Error("movement should not be set directly on the frame")
	}

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame)
	if !frame.Has(core.ActionFire) {
		t.Error("fire should be set on the frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey('q'), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHelpListsEveryBinding(t *testing.T) {
	keys := DefaultKeyMap()

	seen := 0
	for _, col := range keys.FullHelp() {
		for _, b := range col {
			if b.Help().Key == "" || b.Help().Desc == "" {
				t.Errorf("binding %v has no help", b.Keys())
			}
			seen++
		}
	}
	if seen != 13 {
		t.Errorf("full help has %d bindings, want 13", seen)
	}
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
}
