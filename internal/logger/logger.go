package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	root = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
)

// Configure replaces the process logger. Level strings follow zerolog
// ("trace", "debug", "info", "warn", "error"); unknown or empty values keep
// the info level.
func Configure(w io.Writer, level string) {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(level); err == nil && level != "" {
		lvl = parsed
	}

	mu.Lock()
	defer mu.Unlock()
	root = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// For returns a child logger tagged with the owning component.
func For(component string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With().Str("component", component).Logger()
}

// Writer adapts the process logger to io.Writer for libraries that log
// through one (GORM's logger does).
type Writer struct {
	Component string
}

func (w Writer) Write(p []byte) (int, error) {
	l := For(w.Component)
	l.Info().Msg(string(p))
	return len(p), nil
}
