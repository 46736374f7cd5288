// Package config handles the interpreter's TOML configuration file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents interpreter run settings, as loaded from a file like:
//
//	trace = false
//	timeout = "5s"
//	dump = false
//
//	[log]
//	level = "info"
//	file = "bf.log"
type Config struct {
	// Trace logs every executed instruction at debug level.
	Trace bool `toml:"trace"`

	// Timeout bounds a run's wall time; zero means no limit.
	Timeout time.Duration `toml:"timeout"`

	// Dump logs a VM state dump after the run ends.
	Dump bool `toml:"dump"`

	Log Log `toml:"log"`
}

// Log configures logging output.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Log: Log{Level: "info"}}
}

// Load parses a TOML configuration file, filling any unset fields from Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return Parse(path, string(data))
}

// Parse decodes TOML configuration text; name is only used in errors.
func Parse(name, data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse error in %s: %w", name, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Config{}, fmt.Errorf("unknown key %q in %s", undec[0].String(), name)
	}
	if _, err := cfg.Log.SlogLevel(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", name, err)
	}
	if cfg.Timeout < 0 {
		return Config{}, fmt.Errorf("invalid config %s: negative timeout %v", name, cfg.Timeout)
	}
	return cfg, nil
}

// SlogLevel parses the configured level name; the empty string means info.
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, err
	}
	return level, nil
}
