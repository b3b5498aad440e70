package driver

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// levelStyles color-codes slog levels in the driver's diagnostic log output.
var levelStyles = map[slog.Level]lipgloss.Style{
	slog.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	slog.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	slog.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	slog.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// NewLogger builds the interpreter's diagnostic logger: a text slog.Logger
// at the given level, with the level badge colorized via lipgloss. Errors
// surfaced through this logger are distinct from in-band `Error` Values
// this is ambient diagnostic output (Run logs a failed prelude load through
// it), not interpreter-level error propagation.
func NewLogger(levelName string) *slog.Logger {
	level := parseLevel(levelName)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				lvl, _ := a.Value.Any().(slog.Level)
				style, ok := levelStyles[lvl]
				if ok {
					a.Value = slog.StringValue(style.Render(a.Value.String()))
				}
			}
			return a
		},
	})
	return slog.New(handler)
}

func parseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
