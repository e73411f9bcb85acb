package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultConfigFile is consulted when WEATHER_CONFIG_FILE is unset.
const DefaultConfigFile = "weather.yaml"

// Config is the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Cleaning CleaningConfig `yaml:"cleaning" envconfig:"CLEANING"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/cleaner.log"`
}

// CleaningConfig tunes the cleaning engines.
type CleaningConfig struct {
	// BufferSizeBytes sizes the underlying I/O stream buffers of the
	// buffered engine and of output writing.
	BufferSizeBytes int `yaml:"buffer_size_bytes" envconfig:"BUFFER_SIZE_BYTES" default:"524288" validate:"min=4096"`
	// SampleLines is how many cleaned lines the validation sample prints.
	SampleLines int `yaml:"sample_lines" envconfig:"SAMPLE_LINES" default:"10" validate:"min=0"`
}

// Load builds the configuration. Precedence, lowest to highest: struct-tag
// defaults, YAML file values, WEATHER_* environment variables. A missing
// config file is not an error.
func Load() (*Config, error) {
	var cfg Config

	// Defaults and environment in one pass. envconfig writes the default
	// tag into every field whose variable is unset, so the file layer
	// below must check the environment itself before overwriting.
	if err := envconfig.Process("WEATHER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	path := configFilePath()
	if _, err := os.Stat(path); err == nil {
		var file Config
		if err := loadFromFile(path, &file); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg.mergeFile(&file)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// mergeFile applies file values over the defaults envconfig filled in. A
// field keeps its environment value when its variable is set; a field the
// file never mentions (zero value) keeps its default.
func (c *Config) mergeFile(file *Config) {
	if file.Logging.Level != "" && !envSet("WEATHER_LOGGING_LEVEL") {
		c.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" && !envSet("WEATHER_LOGGING_FORMAT") {
		c.Logging.Format = file.Logging.Format
	}
	if file.Logging.Output != "" && !envSet("WEATHER_LOGGING_OUTPUT") {
		c.Logging.Output = file.Logging.Output
	}
	if file.Logging.FilePath != "" && !envSet("WEATHER_LOGGING_FILE_PATH") {
		c.Logging.FilePath = file.Logging.FilePath
	}
	if file.Cleaning.BufferSizeBytes != 0 && !envSet("WEATHER_CLEANING_BUFFER_SIZE_BYTES") {
		c.Cleaning.BufferSizeBytes = file.Cleaning.BufferSizeBytes
	}
	if file.Cleaning.SampleLines != 0 && !envSet("WEATHER_CLEANING_SAMPLE_LINES") {
		c.Cleaning.SampleLines = file.Cleaning.SampleLines
	}
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}

// Default returns the configuration produced by struct-tag defaults alone.
func Default() *Config {
	var cfg Config
	// An unset prefix leaves only the default tags to apply.
	if err := envconfig.Process("WEATHER_DEFAULTS", &cfg); err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return &cfg
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func configFilePath() string {
	if p := os.Getenv("WEATHER_CONFIG_FILE"); p != "" {
		return p
	}
	return DefaultConfigFile
}
