package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "./config.yaml"
	DefaultLogFile    = "resultmanagement.log"
)

var ConfigPath string

type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

type Config struct {
	Storage  StorageConfig `yaml:"storage"`
	Classes  []string      `yaml:"classes"`
	LogLevel string        `yaml:"logLevel"`
	LogFile  string        `yaml:"logFile"`
}

// Default is used when no config file exists.
func Default() *Config {
	return &Config{
		Storage:  StorageConfig{Backend: "json"},
		Classes:  []string{"11", "12"},
		LogLevel: "info",
		LogFile:  DefaultLogFile,
	}
}

func (c *Config) Validate() error {
	if len(c.Classes) == 0 {
		return fmt.Errorf("at least one class must be configured")
	}

	seen := make(map[string]bool, len(c.Classes))
	for _, class := range c.Classes {
		if class == "" {
			return fmt.Errorf("class name can not be empty")
		}
		if seen[class] {
			return fmt.Errorf("class %q is listed twice", class)
		}
		seen[class] = true
	}

	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}

	return nil
}

func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Load reads the config file, falling back to Default when it does not exist.
// Fields left out of the file keep their default values.
func Load(configPath string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return config, nil
}

func Dump(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}

	return nil
}
