package elev

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// InitLogger sends all log output to logPath. The terminal belongs to the view,
// so an empty path discards logs instead of writing to stdout.
func InitLogger(logPath string, level slog.Level) (io.Closer, error) {
	var out io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = logFile
		closer = logFile
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:       level,
		AddSource:   true,
		ReplaceAttr: compactAttr,
	})
	slog.SetDefault(slog.New(handler))
	return closer, nil
}

// compactAttr shortens timestamps to 15:04:05 and source paths to file:line.
func compactAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format("15:04:05"))
		}
	}
	if a.Key == slog.SourceKey {
		if source, ok := a.Value.Any().(*slog.Source); ok {
			a.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(source.File), source.Line))
		}
	}
	return a
}

func FormatQueue(queue []int) string {
	parts := make([]string, len(queue))
	for i, floor := range queue {
		parts[i] = fmt.Sprint(floor)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
