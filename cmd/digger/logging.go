package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/games/digger"
	"github.com/vovakirdan/tui-digger/internal/storage"
)

// logToStderr marks commands that log to stderr instead of the log file.
// The TUI owns the terminal, so only non-interactive commands may.
const logToStderr = "log-stderr"

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// newLogger builds the application logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "digger",
		Level:           lvl,
	}), nil
}

// setupLogging picks the log destination for cmd and hands the logger to
// the game package.
func setupLogging(cmd *cobra.Command, _ []string) error {
	var w io.Writer = os.Stderr
	if _, ok := cmd.Annotations[logToStderr]; !ok {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return err
		}
		logFile = f
		w = f
	}

	l, err := newLogger(w, flagLogLevel)
	if err != nil {
		return err
	}
	logger = l
	digger.SetLogger(l)
	return nil
}

func openLogFile(path string) (*os.File, error) {
	path, err := storage.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
