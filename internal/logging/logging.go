// Package logging builds the process logger: human-readable console output,
// plus an optional rotating JSON file.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Level string
	File  string
	// Console overrides the console writer; nil means colorable stderr.
	Console io.Writer
}

// New returns a logger writing to the console and, when File is set, to a
// rotating log file.
func New(opts Options) (zerolog.Logger, error) {
	if err := SetLevel(opts.Level); err != nil {
		return zerolog.Nop(), err
	}

	out := opts.Console
	if out == nil {
		out = colorable.NewColorableStderr()
	}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}}
	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().
		Timestamp().
		Logger(), nil
}

// SetLevel changes the process-wide log level. Empty means info.
func SetLevel(level string) error {
	parsed := zerolog.InfoLevel
	if level != "" {
		var err error
		if parsed, err = zerolog.ParseLevel(level); err != nil {
			return fmt.Errorf("log level %q: %w", level, err)
		}
	}
	zerolog.SetGlobalLevel(parsed)
	return nil
}
