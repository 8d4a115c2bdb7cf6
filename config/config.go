// Package config defines the overall structure of the cselect
// configuration. Values are taken from a config yml file or environment
// variables or both.
package config

import (
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jakopako/cselect/fetch"
	"github.com/jakopako/cselect/output"
)

// Debug is set by the cli and switches the log level and additional
// debugging output.
var Debug bool

type contextKey string

// LoggerCtxKey is the context key under which a request scoped logger is
// stored.
const LoggerCtxKey contextKey = "logger"

func GetLogLevel() slog.Level {
	if Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Config combines the selector definitions with the fetcher and writer
// settings.
type Config struct {
	Selectors []SelectorConfig    `yaml:"selectors"`
	Combined  []CombinedConfig    `yaml:"combined"`
	Fetcher   fetch.FetcherConfig `yaml:"fetcher"`
	Writer    output.WriterConfig `yaml:"writer"`
}

func NewConfig(configPath string) (*Config, error) {
	var config Config
	if err := cleanenv.ReadConfig(configPath, &config); err != nil {
		return nil, err
	}
	if config.Fetcher.Type == "" {
		config.Fetcher.Type = fetch.STATIC_FETCHER_TYPE
	}
	if config.Writer.Type == "" {
		config.Writer.Type = output.STDOUT_WRITER_TYPE
	}
	return &config, nil
}
