package observability

import (
	"io"
	"log/slog"
)

// NewCLILogger builds a text logger writing to w, for commands whose stdout
// carries their output. Unrecognized levels fall back to info.
func NewCLILogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
