package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig describes the raw catalog source
type InputConfig struct {
	File string `yaml:"file" envconfig:"FILE" default:"netflix1.csv" validate:"required"`
}

// OutputConfig describes where cleaned data and chart artifacts land
type OutputConfig struct {
	CleanedFile string `yaml:"cleaned_file" envconfig:"CLEANED_FILE" default:"netflix_cleaned.csv" validate:"required"`
	ChartsDir   string `yaml:"charts_dir" envconfig:"CHARTS_DIR" default:"." validate:"required"`
	SummaryFile string `yaml:"summary_file" envconfig:"SUMMARY_FILE" default:"catalog_summary.txt"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/catalogcli.log"`
}

// Load loads configuration from environment variables and an optional
// YAML config file. File values win over environment defaults; explicit
// environment values win over the file, matching the merge order the
// callers rely on.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CATALOG", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileCfg, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(cfg, *fileCfg)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs overlays non-empty file values on top of the env-derived
// base config.
func mergeConfigs(base, file Config) Config {
	merged := base
	if file.Input.File != "" {
		merged.Input.File = file.Input.File
	}
	if file.Output.CleanedFile != "" {
		merged.Output.CleanedFile = file.Output.CleanedFile
	}
	if file.Output.ChartsDir != "" {
		merged.Output.ChartsDir = file.Output.ChartsDir
	}
	if file.Output.SummaryFile != "" {
		merged.Output.SummaryFile = file.Output.SummaryFile
	}
	if file.Logging.Level != "" {
		merged.Logging.Level = file.Logging.Level
	}
	if file.Logging.Output != "" {
		merged.Logging.Output = file.Logging.Output
	}
	if file.Logging.FilePath != "" {
		merged.Logging.FilePath = file.Logging.FilePath
	}
	return merged
}

// validate runs struct-tag validation over the merged configuration
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return err
	}
	return nil
}
