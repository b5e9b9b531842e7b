// Package config loads tada settings.
//
// Sources, lowest to highest priority:
//  1. Defaults
//  2. TOML file (explicit path, ./tada.toml, or the user config dir)
//  3. .env in the working directory
//  4. TADA_* environment variables
//  5. CLI flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/idilsaglam/tada/internal/logging"
)

const (
	projectFileName = "tada.toml"
	envPrefix       = "TADA_"
)

// Config holds every runtime setting.
type Config struct {
	Theme      string `toml:"theme" env:"THEME"`
	Color      string `toml:"color" env:"COLOR"`
	DateFormat string `toml:"date_format" env:"DATE_FORMAT"`
	Seed       bool   `toml:"seed" env:"SEED"`
	Group      bool   `toml:"group" env:"GROUP"`
	LogLevel   string `toml:"log_level" env:"LOG_LEVEL"`
	LogFormat  string `toml:"log_format" env:"LOG_FORMAT"`
	LogFile    string `toml:"log_file" env:"LOG_FILE"`

	// ConfigFile is the TOML file that was loaded, if any.
	ConfigFile string `toml:"-"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Theme:      "classic",
		Color:      "auto",
		DateFormat: "2006-01-02",
		Seed:       true,
		LogLevel:   "warn",
		LogFormat:  "text",
	}
}

// Load builds the configuration from all sources. fs may be nil when no
// flags are involved; args are parsed with it otherwise.
func Load(fs *flag.FlagSet, args []string) (*Config, []string, error) {
	cfg := Defaults()

	flags := newFlagValues(fs)
	if fs != nil {
		if err := fs.Parse(args); err != nil {
			return nil, nil, fmt.Errorf("parsing flags: %w", err)
		}
		args = fs.Args()
	}

	path, err := findConfigFile(flags.configPath())
	if err != nil {
		return nil, nil, err
	}
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return nil, nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, nil, err
	}
	if err := loadEnv(&cfg); err != nil {
		return nil, nil, err
	}

	flags.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return &cfg, args, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// loadDotEnv exports variables from path without overriding the real
// environment. A missing file is fine.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// findConfigFile resolves which TOML file to read. An explicit path must
// exist; the implicit locations are optional.
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}
	if _, err := os.Stat(projectFileName); err == nil {
		return projectFileName, nil
	}
	if dir, err := os.UserConfigDir(); err == nil {
		p := filepath.Join(dir, "tada", "config.toml")
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// Validate rejects values the rest of the program cannot honour.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("invalid theme %q (want classic, neon or mono)", c.Theme)
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q (want auto, always or never)", c.Color)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if !logging.ValidFormat(c.LogFormat) {
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}
	if strings.TrimSpace(c.DateFormat) == "" {
		return errors.New("date_format must not be empty")
	}
	return nil
}

// LogOptions converts the logging fields for the logging package.
func (c *Config) LogOptions() logging.Options {
	opts := logging.DefaultOptions()
	opts.Level = c.LogLevel
	opts.Format = c.LogFormat
	return opts
}
