// Package logging builds the zerolog logger used by the runecut command.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/scalecode-solutions/runecut/internal/config"
)

// ErrInvalidLevel is returned by [ParseLevel] for an unknown level name.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel converts a level name (debug, info, warn, error, disabled) to a
// zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off", "none":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%q: %w", s, ErrInvalidLevel)
	}
}

// New returns a logger writing to w and, when cfg.File is set, to a rotated
// log file. Output to a terminal is human readable; anything else gets JSON.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	console := w
	if isTerminal(w) {
		console = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	var closer io.Closer = nopCloser{}
	out := console
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		closer = file
		out = zerolog.MultiLevelWriter(console, file)
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Str("app", "runecut").Logger()
	return logger, closer, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
