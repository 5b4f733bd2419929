// Package log provides structured logging for the PeerDAS KZG library.
// It wraps Go's log/slog with conveniences for per-component child
// loggers scoped to this repository's own subsystems, so a caller
// embedding this library can attribute log lines to the trusted setup
// loader or the CLI rather than to an undifferentiated root logger.
package log

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with component context.
type Logger struct {
	inner *slog.Logger
}

// defaultLogger is the process-wide logger used by Default.
var defaultLogger *Logger

func init() {
	defaultLogger = New(slog.LevelInfo)
}

// New creates a Logger that writes JSON to stderr at the given level.
func New(level slog.Level) *Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{inner: slog.New(h)}
}

// NewWithHandler creates a Logger backed by the supplied slog.Handler.
// This is useful for testing or for writing to a custom destination.
func NewWithHandler(h slog.Handler) *Logger {
	return &Logger{inner: slog.New(h)}
}

// SetDefault replaces the package-level default logger.
func SetDefault(l *Logger) {
	if l != nil {
		defaultLogger = l
	}
}

// Default returns the current package-level default logger.
func Default() *Logger {
	return defaultLogger
}

// Component names one of this repository's own subsystems, used to tag
// every log line it emits with a "component" attribute. A closed set,
// rather than an arbitrary string, keeps the tag vocabulary in sync
// with the boundaries the rest of the codebase actually logs at:
// trusted setup loading and the CLI. Hot-path packages (peerdas, fk20,
// poly) have no Component here; they're already instrumented via
// package metrics, and per-call logging there would compete with that
// on every commit, prove, and verify.
type Component string

const (
	// ComponentSetup tags log lines from kzgsetup.LoadFromJSON.
	ComponentSetup Component = "kzgsetup"
	// ComponentCLI tags log lines from cmd/peerdascli.
	ComponentCLI Component = "peerdascli"
)

// For returns a child logger tagged with the given component.
func (l *Logger) For(c Component) *Logger {
	return &Logger{inner: l.inner.With("component", string(c))}
}

// With returns a child logger with additional key-value context.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{inner: l.inner.With(args...)}
}

// hexAttrPreviewLen is how many leading/trailing bytes HexAttr shows of a
// value too long to log in full. Commitments (48 bytes) and proofs (48
// bytes) are always shown whole; blobs (128KiB) and cells (2KiB) are not.
const hexAttrPreviewLen = 24

// HexAttr renders b as a slog attribute under key, hex-encoded. Values up
// to 2*hexAttrPreviewLen bytes (enough for a full commitment, proof, or
// cell index digest) are logged in full; anything longer — a blob, a
// cell's field-element payload — is abbreviated to its first and last
// hexAttrPreviewLen bytes plus a length suffix, so a commit/verify/
// recover log line stays one line without silently truncating the short
// values callers actually want to compare by eye.
func HexAttr(key string, b []byte) slog.Attr {
	if len(b) <= 2*hexAttrPreviewLen {
		return slog.String(key, "0x"+hex.EncodeToString(b))
	}
	head := hex.EncodeToString(b[:hexAttrPreviewLen])
	tail := hex.EncodeToString(b[len(b)-hexAttrPreviewLen:])
	return slog.String(key, fmt.Sprintf("0x%s..%s (%d bytes)", head, tail, len(b)))
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.inner.Info(msg, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.inner.Warn(msg, args...) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
