// Package cli implements the detectionformats command line interface.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seismo/detectionformats/i18n"
)

// app is the state shared by the subcommands of one root command.
type app struct {
	v      *viper.Viper
	cfg    Config
	log    *logrus.Logger
	config string
}

// RootCommand creates and returns the root command.
func RootCommand() *cobra.Command {
	a := &app{v: viper.New()}
	setDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:           "detectionformats",
		Short:         "Validate and convert seismic Detection messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}

	if err := setupFlags(rootCmd, a); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(
		validateCommand(a),
		convertCommand(a),
		schemaCommand(a),
	)
	return rootCmd
}

// setupFlags defines the global flags and binds them to viper keys.
func setupFlags(rootCmd *cobra.Command, a *app) error {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.config, "config", "", "Path to a config file (yaml, json or toml)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "text", "Log format: text, json")
	flags.String("lang", "en", "Message language: en, ja")
	flags.String("duplicate-keys", "warn", "Duplicate object keys: ignore, warn, error")
	flags.Int("max-depth", 64, "Maximum nesting depth, 0 disables the check")
	flags.Int64("max-bytes", 16<<20, "Maximum input size in bytes, 0 disables the check")
	flags.String("format", "auto", "Input format: auto, json, yaml")
	flags.StringP("output", "o", "text", "Report format: text, json")

	for key, name := range map[string]string{
		"log_level":      "log-level",
		"log_format":     "log-format",
		"lang":           "lang",
		"duplicate_keys": "duplicate-keys",
		"max_depth":      "max-depth",
		"max_bytes":      "max-bytes",
		"format":         "format",
		"output":         "output",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("error binding flag %s: %w", name, err)
		}
	}
	return nil
}

// initialize runs before every subcommand, after flags are parsed.
func (a *app) initialize(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v, a.config)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = setupLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	i18n.SetLanguage(cfg.Lang)
	a.log.WithFields(logrus.Fields{
		"lang":           cfg.Lang,
		"duplicate_keys": cfg.DuplicateKeys,
		"max_depth":      cfg.MaxDepth,
		"max_bytes":      cfg.MaxBytes,
	}).Debug("configuration loaded")
	return nil
}
