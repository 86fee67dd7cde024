// Package logging provides structured logging setup for imob.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// Setup initializes the default slog logger writing to w (stderr when nil).
// Dev mode uses human-readable text at debug level; otherwise JSON at info.
func Setup(devMode bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	var handler slog.Handler
	if devMode {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	slog.SetDefault(slog.New(handler))
}

// RunE is the signature of a cobra command body.
type RunE func(cmd *cobra.Command, args []string) error

// Command wraps a cobra command body and logs its name, duration and outcome.
func Command(next RunE) RunE {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		err := next(cmd, args)
		duration := time.Since(start)

		level := slog.LevelDebug
		attrs := []any{
			"command", cmd.Name(),
			"args", len(args),
			"duration", duration.String(),
		}
		if err != nil {
			level = slog.LevelWarn
			attrs = append(attrs, "error", err.Error())
		}

		slog.Log(cmd.Context(), level, "command", attrs...)
		return err
	}
}
