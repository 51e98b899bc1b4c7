package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-digger/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(1, 0, "DIG", core.ColorGreen)
	s.DrawText(4, 0, "$$", core.ColorBrightYellow)
	s.DrawText(0, 2, "░░", core.ColorBrown)

	out := RenderScreen(s)
	if lines := strings.Count(out, "\n") + 1; lines != 3 {
		t.Fatalf("expected 3 lines, got %d", lines)
	}
	for _, want := range []string{"DIG", "$$", "░░"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); !strings.Contains(got, "x") {
		t.Errorf("unknown color should fall back to default, got %q", got)
	}
}
