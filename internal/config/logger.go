package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the root logger. "human" output uses the console writer,
// anything else writes JSON lines.
func (c *Config) NewLogger(out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	if c.LogFormat == "human" {
		out = zerolog.ConsoleWriter{Out: out}
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
