package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/rogue-invaders/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "SCORE", core.ColorBrightWhite)
	s.DrawTextColored(6, 0, "42", core.ColorYellow)
	s.DrawTextCentered(2, "<o>", core.ColorBrightMagenta)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("newlines = %d, want 2", got)
	}
	for _, want := range []string{"SCORE", "42", "<o>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for _, c := range core.Colors() {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}

	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
