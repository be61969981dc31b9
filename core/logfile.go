package core

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxLogSize is the size past which an existing log is rotated aside on open
const MaxLogSize = 10 * 1024 * 1024

// SetupLogging routes both the package logger and the standard log to dir/name when debug is set,
// and discards everything otherwise. The returned file is nil when logging is off or the file cannot be opened.
func SetupLogging(debug bool, dir, name string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		SetLogger(nil)
		return nil
	}

	f, err := openLogFile(dir, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.SetOutput(io.Discard)
		SetLogger(nil)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return f
}

// openLogFile appends to dir/name, moving an oversized file to a timestamped name first
func openLogFile(dir, name string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, name)

	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		rotated := filepath.Join(dir, fmt.Sprintf("%s-%s.log", base, time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			return nil, err
		}
	}

	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
