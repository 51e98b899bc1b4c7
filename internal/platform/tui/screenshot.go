package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"github.com/vovakirdan/tui-digger/internal/core"
)

// SaveScreenshot writes the plain-text screen to dir and returns the path.
// The directory is created if needed.
func SaveScreenshot(dir, gameID string, s *core.Screen, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: cannot create directory %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", gameID, now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: cannot write %s: %w", path, err)
	}
	return path, nil
}

// copyToClipboard puts the plain-text screen on the system clipboard.
// Headless systems without a clipboard tool return an error.
func copyToClipboard(s *core.Screen) error {
	if clipboard.Unsupported {
		return fmt.Errorf("screenshot: clipboard not supported on this system")
	}
	return clipboard.WriteAll(s.String())
}

// defaultScreenshotDir is ~/.digger/screenshots.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".digger", "screenshots")
	}
	return filepath.Join(home, ".digger", "screenshots")
}
