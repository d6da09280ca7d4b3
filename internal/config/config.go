// Package config loads shell presentation settings from ninjafiles.yaml,
// with overrides from a .env file and the process environment.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Config holds shell presentation settings. The tree itself carries no
// configuration; everything here shapes how the shell looks.
type Config struct {
	// Prompt is the suffix appended to the current path in the prompt.
	Prompt string `yaml:"prompt"`

	// NoColor disables styled output even on a capable terminal.
	NoColor bool `yaml:"no_color"`

	// Greeting controls whether the banner is printed at session start.
	Greeting bool `yaml:"greeting"`
}

const (
	ConfigFileName = "ninjafiles.yaml"
	EnvFileName    = ".env"

	envPrompt  = "NINJAFILES_PROMPT"
	envNoColor = "NINJAFILES_NO_COLOR"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Prompt:   "$ ",
		Greeting: true,
	}
}

// Load reads ninjafiles.yaml from dir.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithEnv loads the config from dir, falling back to defaults when the
// file is absent, then applies overrides from dir/.env and finally from the
// process environment. Precedence, lowest to highest: defaults, yaml file,
// .env file, process environment.
func LoadWithEnv(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err != nil {
		if !errors.Is(err, ErrConfigNotFound) {
			return nil, err
		}
		cfg = Default()
	}

	if envFile, err := godotenv.Read(filepath.Join(dir, EnvFileName)); err == nil {
		applyOverrides(cfg, func(key string) string { return envFile[key] })
	}

	applyOverrides(cfg, os.Getenv)

	return cfg, nil
}

func applyOverrides(cfg *Config, get func(string) string) {
	if v := get(envPrompt); v != "" {
		cfg.Prompt = v
	}
	if v := get(envNoColor); v != "" {
		if noColor, err := strconv.ParseBool(v); err == nil {
			cfg.NoColor = noColor
		}
	}
}
