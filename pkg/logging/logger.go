// Package logging provides structured logging for go-starwave.
// It wraps the standard slog package so the simulation, the front ends and
// the CLI log with the same JSON shape, an env-controlled level and a session
// ID carried through context.
package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
)

// LevelEnv is the environment variable that selects the log level.
const LevelEnv = "STARWAVE_LOG_LEVEL"

// Logger wraps slog.Logger with session-aware helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger writing JSON to stderr. Stdout belongs to the
// terminal front end, so nothing is logged there.
func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stderr)
}

// NewLoggerWithWriter creates a Logger writing JSON to w at the level
// selected by STARWAVE_LOG_LEVEL (DEBUG, INFO, WARN, ERROR; default INFO).
func NewLoggerWithWriter(w io.Writer) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       getLogLevelFromEnv(),
		ReplaceAttr: compactAttributes,
	})
	return &Logger{slog.New(handler)}
}

// Discard returns a Logger that drops everything. Handy for tests and for
// library callers that do not care about logs.
func Discard() *Logger {
	return &Logger{slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

// LogWithContext logs msg at level, adding the session ID from ctx if present.
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if sessionID := GetSessionID(ctx); sessionID != "" {
		args = append(args, "session_id", sessionID)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs an informational message.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message; err is attached under the "error" key.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

// Debug logs a debug message.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

type sessionIDKey struct{}

// WithSessionID stores a session ID in ctx, generating one when id is empty.
func WithSessionID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = GenerateSessionID()
	}
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// GetSessionID returns the session ID stored in ctx, or "".
func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateSessionID returns a random 16 hex character ID.
func GenerateSessionID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func getLogLevelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv(LevelEnv)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// compactAttributes rounds float attributes to two decimals. Positions and
// velocities accumulate long binary fractions that make frame logs unreadable.
func compactAttributes(groups []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindFloat64 {
		return a
	}
	f := a.Value.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return slog.String(a.Key, fmt.Sprint(f))
	}
	return slog.Float64(a.Key, math.Round(f*100)/100)
}

// WrapError wraps err with a formatted context message, preserving it for
// errors.Is and errors.As. A nil err stays nil.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}
