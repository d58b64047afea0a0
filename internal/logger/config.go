package logger

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// fileConfig wraps Config under the logging key for YAML parsing
type fileConfig struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig returns the standard logging configuration
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/dungeond.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads logging configuration from a YAML file and applies
// environment variable overrides. A missing or unreadable file leaves
// the defaults in place.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err == nil {
				if fc.Logging.Level != "" {
					config.Level = fc.Logging.Level
				}
				config.ConsoleEnabled = fc.Logging.ConsoleEnabled
				config.FileEnabled = fc.Logging.FileEnabled
				if fc.Logging.ConsoleFormat != "" {
					config.ConsoleFormat = fc.Logging.ConsoleFormat
				}
				if fc.Logging.FilePath != "" {
					config.FilePath = fc.Logging.FilePath
				}
				if fc.Logging.FileFormat != "" {
					config.FileFormat = fc.Logging.FileFormat
				}
				if fc.Logging.FileMaxSizeMB > 0 {
					config.FileMaxSizeMB = fc.Logging.FileMaxSizeMB
				}
				if fc.Logging.FileMaxBackups > 0 {
					config.FileMaxBackups = fc.Logging.FileMaxBackups
				}
				if fc.Logging.FileMaxAgeDays > 0 {
					config.FileMaxAgeDays = fc.Logging.FileMaxAgeDays
				}
			}
		}
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Level = level
	}
	if format := os.Getenv("LOG_CONSOLE_FORMAT"); format != "" {
		config.ConsoleFormat = format
	}
	if fileEnabled := os.Getenv("LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.FileEnabled = enabled
		}
	}
	if path := os.Getenv("LOG_FILE_PATH"); path != "" {
		config.FilePath = path
	}

	return config, nil
}
