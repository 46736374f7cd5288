// Package logs builds the command line driver's structured logger.
package logs

import (
	"fmt"
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// Options configures New.
type Options struct {
	// Level is shared by every handler, so that it may be changed after
	// construction.
	Level *slog.LevelVar

	// Terminal receives human readable text records, usually os.Stderr.
	Terminal io.Writer

	// File, when non-nil, additionally receives JSON records.
	File io.Writer
}

// New returns a logger fanning out to every configured output.
func New(opts Options) *slog.Logger {
	level := opts.Level
	if level == nil {
		level = new(slog.LevelVar)
	}
	hopts := &slog.HandlerOptions{Level: level}

	var handlers []slog.Handler
	if opts.Terminal != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Terminal, hopts))
	}
	if opts.File != nil {
		handlers = append(handlers, slog.NewJSONHandler(opts.File, hopts))
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// Logf adapts a logger into the printf-style function accepted by the VM's
// trace option, logging each message at debug level.
func Logf(logger *slog.Logger) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) {
		if len(args) > 0 {
			mess = fmt.Sprintf(mess, args...)
		}
		logger.Debug(mess)
	}
}
