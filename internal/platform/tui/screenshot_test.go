package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-digger/internal/core"
)

func TestSaveScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "Score: 000025", core.ColorWhite)

	now := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
	path, err := SaveScreenshot(dir, "digger", s, now)
	if err != nil {
		t.Fatalf("SaveScreenshot: %v", err)
	}
	if filepath.Base(path) != "digger_20240309_140506.txt" {
		t.Errorf("unexpected file name %q", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if string(data) != s.String() {
		t.Errorf("screenshot content %q, want %q", data, s.String())
	}
	if !strings.HasPrefix(string(data), "Score: 0000") {
		t.Errorf("unexpected content %q", data)
	}
}
