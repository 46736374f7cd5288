package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jcorbin/gobf/internal/config"
	"github.com/jcorbin/gobf/internal/logio"
	"github.com/jcorbin/gobf/internal/logs"
	"github.com/jcorbin/gobf/internal/panicerr"
)

func main() {
	ctx := context.Background()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Exit codes returned by run.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("gobf", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: %v [flags] PROGRAM\n", flags.Name())
		flags.PrintDefaults()
	}

	var (
		configPath string
		trace      bool
		dump       bool
		timeout    time.Duration
		logLevel   string
		logFile    string
	)
	flags.StringVar(&configPath, "config", "", "load settings from a TOML file")
	flags.BoolVar(&trace, "trace", false, "enable trace logging")
	flags.BoolVar(&dump, "dump", false, "log a VM dump after the run")
	flags.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&logFile, "log-file", "", "also write JSON logs to this file")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return exitUsage
	}
	path := flags.Arg(0)

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fmt.Fprintf(stderr, "ERROR: %v\n", err)
			return exitError
		}
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace = trace
		case "dump":
			cfg.Dump = dump
		case "timeout":
			cfg.Timeout = timeout
		case "log-level":
			cfg.Log.Level = logLevel
		case "log-file":
			cfg.Log.File = logFile
		}
	})

	logger, closeLog, err := openLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitError
	}
	defer closeLog()

	if err := panicerr.Recover("gobf", func() error {
		return runFile(ctx, cfg, logger, path, stdin, stdout)
	}); err != nil {
		switch outcome := panicerr.Classify(err); outcome {
		case panicerr.Panicked:
			logger.Debug("abnormal run", "outcome", outcome, "stack", panicerr.PanicStack(err))
		case panicerr.Exited:
			logger.Debug("abnormal run", "outcome", outcome)
		}
		logger.Error(err.Error())
		return exitError
	}
	return exitOK
}

func openLogger(cfg config.Config, stderr io.Writer) (*slog.Logger, func(), error) {
	level := new(slog.LevelVar)
	lvl, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Trace && lvl > slog.LevelDebug {
		lvl = slog.LevelDebug
	}
	level.Set(lvl)

	opts := logs.Options{Level: level, Terminal: stderr}
	closeLog := func() {}
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		opts.File = f
		closeLog = func() { f.Close() }
	}
	return logs.New(opts), closeLog, nil
}

func runFile(
	ctx context.Context,
	cfg config.Config,
	logger *slog.Logger,
	path string,
	stdin io.Reader,
	stdout io.Writer,
) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read program: %w", err)
	}
	defer f.Close()

	prog, err := CompileFrom(f)
	if err != nil {
		return err
	}
	logger.Debug("compiled", "path", path, "instructions", len(prog))

	opts := []VMOption{
		WithInput(stdin),
		WithOutput(stdout),
	}
	if cfg.Trace {
		opts = append(opts, WithLogf(logs.Logf(logger)))
	}
	vm := New(prog, opts...)

	if cfg.Dump {
		defer func() {
			lw := &logio.Writer{Logf: func(mess string, args ...interface{}) {
				logger.Info(fmt.Sprintf(mess, args...))
			}}
			defer lw.Close()
			vmDumper{vm: vm, out: lw, progWindow: 8, tapeWindow: 4}.dump()
		}()
	}

	if cfg.Timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	err = vm.Run(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("time limit %v exceeded: %w", cfg.Timeout, err)
	}
	return err
}
