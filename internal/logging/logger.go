// Package logging wraps log/slog with the field names used across qdist.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// maxSupportLogged caps the number of codeword coordinates written per record.
const maxSupportLogged = 50

// Logger wraps slog.Logger with distance-search helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Noop creates a Logger that discards everything.
func Noop() *Logger {
	return New(slog.DiscardHandler)
}

// WithMethod tags every record with the search method name.
func (l *Logger) WithMethod(method string) *Logger {
	return &Logger{Logger: l.Logger.With("method", method)}
}

// LogStart records the parameters of a search run.
func (l *Logger) LogStart(ctx context.Context, n, checks int, classical bool, args ...any) {
	l.InfoContext(ctx, "search started",
		append([]any{"n", n, "checks", checks, "classical", classical}, args...)...)
}

// LogCodeword records a nontrivial codeword that improved the current bound.
func (l *Logger) LogCodeword(ctx context.Context, step, weight int, support []int) {
	shown := support
	if len(shown) > maxSupportLogged {
		shown = shown[:maxSupportLogged]
	}
	l.InfoContext(ctx, "codeword found",
		"step", step,
		"weight", weight,
		"support", shown,
		"truncated", len(support) > len(shown),
	)
}

// LogRound records periodic progress of the random-window trials.
func (l *Logger) LogRound(ctx context.Context, round, steps, minWeight int) {
	l.InfoContext(ctx, "round",
		"round", round,
		"steps", steps,
		"min_weight", minWeight,
	)
}

// LogSearchLevel records the start of one iterative-deepening level.
func (l *Logger) LogSearchLevel(ctx context.Context, weight, wmax, beg, end int) {
	l.DebugContext(ctx, "searching cluster level",
		"weight", weight,
		"wmax", wmax,
		"beg", beg,
		"end", end,
	)
}

// LogMinSyndrome records the smallest syndrome weight seen for one error weight.
func (l *Logger) LogMinSyndrome(ctx context.Context, weight, syndromeWeight int) {
	l.DebugContext(ctx, "min syndrome weight",
		"weight", weight,
		"syndrome_weight", syndromeWeight,
	)
}

// LogBounds records the combined distance bounds.
func (l *Logger) LogBounds(ctx context.Context, lower, upper int, exact bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "distance estimate failed",
			"error", err,
		)

		return
	}
	l.InfoContext(ctx, "distance bounds",
		"lower", lower,
		"upper", upper,
		"exact", exact,
	)
}
