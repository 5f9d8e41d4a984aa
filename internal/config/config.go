package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, the data files,
// metrics output and the interactive shell.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Storage contains the locations of the data files
	Storage struct {
		// AddressBookPath is used when the preferences file does not name one
		AddressBookPath string `env:"STORAGE_ADDRESS_BOOK_PATH" env-default:"data/addressbook.json" yaml:"addressBookPath"` //nolint: lll
		// UserPrefsPath is the preferences file
		UserPrefsPath string `env:"STORAGE_USER_PREFS_PATH" env-default:"data/preferences.json" yaml:"userPrefsPath"`
	} `yaml:"storage"`

	// Metrics contains the command metrics settings
	Metrics struct {
		// TextfilePath is where metrics are written after every command. Empty disables it.
		TextfilePath string `env:"METRICS_TEXTFILE_PATH" yaml:"textfilePath"`
	} `yaml:"metrics"`

	// Shell contains the interactive shell settings
	Shell struct {
		// Prompt is printed before every line read
		Prompt string `env:"SHELL_PROMPT" env-default:"> " yaml:"prompt"`
	} `yaml:"shell"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file is not an error: the configuration then comes from the
// environment and the defaults alone.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
