// Package logx builds the file-backed logger used while the terminal belongs
// to the UI, plus helpers that annotate it with domain fields.
package logx

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/pslog"

	"github.com/jask/tabdeck/internal/browser"
)

// New builds a structured logger writing to w at the named level.
// Unknown levels mean info.
func New(w io.Writer, level string) pslog.Logger {
	opts := pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		VerboseFields: true,
		MinLevel:      pslog.InfoLevel,
	}
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "warn", "warning":
		opts.MinLevel = pslog.WarnLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	}
	return pslog.NewWithOptions(w, opts)
}

// Discard returns a logger that drops everything.
func Discard() pslog.Logger {
	return New(io.Discard, "error")
}

// Open appends to the log file at path, creating parent directories.
// The returned closer releases the file.
func Open(path, level string) (pslog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}

// Ctx returns the logger bound to ctx.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithTab annotates log with the tab id, and marks private tabs without
// recording their URL.
func WithTab(log pslog.Logger, tab browser.TabSummary) pslog.Logger {
	if tab.ID != "" {
		log = log.With("tab", tab.ID)
	}
	if tab.Incognito {
		return log.With("incognito", true)
	}
	if tab.URL != "" {
		log = log.With("url", tab.URL)
	}
	return log
}

// WithScope annotates log with the UI scope that produced the entry.
func WithScope(log pslog.Logger, scope string) pslog.Logger {
	if scope != "" {
		log = log.With("scope", scope)
	}
	return log
}
