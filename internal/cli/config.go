package cli

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	df "github.com/seismo/detectionformats"
)

// EnvPrefix is the prefix of environment variables read by the CLI, e.g.
// DETECTIONFORMATS_LOG_LEVEL.
const EnvPrefix = "DETECTIONFORMATS"

// Config holds the CLI settings after flags, environment and the optional
// config file are merged by viper.
type Config struct {
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	Lang          string `mapstructure:"lang"`
	DuplicateKeys string `mapstructure:"duplicate_keys"`
	MaxDepth      int    `mapstructure:"max_depth"`
	MaxBytes      int64  `mapstructure:"max_bytes"`
	Format        string `mapstructure:"format"`
	Output        string `mapstructure:"output"`
}

var (
	logFormats    = []string{"text", "json"}
	duplicateKeys = []string{"ignore", "warn", "error"}
	inputFormats  = []string{"auto", "json", "yaml"}
	outputFormats = []string{"text", "json"}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("lang", "en")
	v.SetDefault("duplicate_keys", "warn")
	v.SetDefault("max_depth", 64)
	v.SetDefault("max_bytes", 16<<20)
	v.SetDefault("format", "auto")
	v.SetDefault("output", "text")
}

// loadConfig reads the optional config file and decodes the merged
// settings. An explicit file must exist; the implicit one may be absent.
func loadConfig(v *viper.Viper, file string) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("detectionformats")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.normalize()
	return cfg, cfg.validate()
}

func (c *Config) normalize() {
	c.LogFormat = strings.ToLower(c.LogFormat)
	c.DuplicateKeys = strings.ToLower(c.DuplicateKeys)
	c.Format = strings.ToLower(c.Format)
	c.Output = strings.ToLower(c.Output)
}

func (c Config) validate() error {
	checks := []struct {
		key, value string
		allowed    []string
	}{
		{"log_format", c.LogFormat, logFormats},
		{"duplicate_keys", c.DuplicateKeys, duplicateKeys},
		{"format", c.Format, inputFormats},
		{"output", c.Output, outputFormats},
	}
	for _, ch := range checks {
		if !slices.Contains(ch.allowed, ch.value) {
			return fmt.Errorf("invalid %s %q: must be one of %s", ch.key, ch.value, strings.Join(ch.allowed, ", "))
		}
	}
	if c.MaxDepth < 0 || c.MaxBytes < 0 {
		return errors.New("max_depth and max_bytes must not be negative")
	}
	return nil
}

// ParseOpt projects the config onto library parse options. sink receives
// duplicate-key warnings and dropped Data elements.
func (c Config) ParseOpt(sink func(df.Issue)) df.ParseOpt {
	sev := df.Warn
	switch c.DuplicateKeys {
	case "ignore":
		sev = df.Ignore
	case "error":
		sev = df.Error
	}
	return df.ParseOpt{
		Strictness: df.Strictness{OnDuplicateKey: sev},
		MaxDepth:   c.MaxDepth,
		MaxBytes:   c.MaxBytes,
		IssueSink:  sink,
	}
}
