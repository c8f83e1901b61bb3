// Package config loads runecut command settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/scalecode-solutions/runecut"
)

// Supported stream encodings.
const (
	EncodingAuto    = "auto" // input only: UTF-8 unless a UTF-16 BOM is present
	EncodingUTF8    = "utf8"
	EncodingUTF16LE = "utf16le"
	EncodingUTF16BE = "utf16be"
)

// Errors returned by [Config.Validate].
var (
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrInvalidPolicy   = errors.New("invalid policy")
)

// Config holds the settings shared by all commands. Environment variables
// provide the defaults and command-line flags override them.
type Config struct {
	Policy         runecut.Policy `env:"RUNECUT_POLICY" envDefault:"split"`
	InputEncoding  string         `env:"RUNECUT_INPUT_ENCODING" envDefault:"auto"`
	OutputEncoding string         `env:"RUNECUT_OUTPUT_ENCODING" envDefault:"utf8"`
	Log            LogConfig
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level      string `env:"RUNECUT_LOG_LEVEL" envDefault:"warn"`
	File       string `env:"RUNECUT_LOG_FILE"`
	MaxSizeMB  int    `env:"RUNECUT_LOG_MAX_SIZE_MB" envDefault:"10"`
	MaxBackups int    `env:"RUNECUT_LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"RUNECUT_LOG_MAX_AGE_DAYS" envDefault:"7"`
	Compress   bool   `env:"RUNECUT_LOG_COMPRESS" envDefault:"false"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks values that the environment parser cannot.
func (c *Config) Validate() error {
	c.InputEncoding = strings.ToLower(c.InputEncoding)
	c.OutputEncoding = strings.ToLower(c.OutputEncoding)

	switch c.InputEncoding {
	case EncodingAuto, EncodingUTF8, EncodingUTF16LE, EncodingUTF16BE:
	default:
		return fmt.Errorf("input %q: %w", c.InputEncoding, ErrInvalidEncoding)
	}
	switch c.OutputEncoding {
	case EncodingUTF8, EncodingUTF16LE, EncodingUTF16BE:
	default:
		return fmt.Errorf("output %q: %w", c.OutputEncoding, ErrInvalidEncoding)
	}
	if !c.Policy.Valid() {
		return fmt.Errorf("%v: %w", c.Policy, ErrInvalidPolicy)
	}
	return nil
}
