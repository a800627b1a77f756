// Package cli implements the colorloom command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/subliminal-nightfall/colorloom/internal/config"
	"github.com/subliminal-nightfall/colorloom/internal/logging"
	"github.com/subliminal-nightfall/colorloom/internal/theme"
)

// Version is set at build time.
var Version = "dev"

type rootOptions struct {
	settingsPath string
	noProgress   bool

	settings config.Settings
	logger   zerolog.Logger
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "colorloom",
		Short:         "Generate editor and terminal themes from one palette",
		Long:          "colorloom reads a theme document and renders theme files for Ghostty, Zed, Cursor, Neovim and the website palette.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, &generateOptions{})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", config.DefaultThemePath, "path to the theme document (.toml or .yaml)")
	flags.StringVar(&opts.settingsPath, "settings", "", "path to a colorloom settings file")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", logging.FormatConsole, "log format (console, json)")
	flags.Bool("json", false, "write command results as JSON")
	flags.BoolVar(&opts.noProgress, "no-progress", false, "disable progress output")

	cmd.AddCommand(
		newValidateCmd(opts),
		newListCmd(opts),
		newGenerateCmd(opts),
		newPreviewCmd(opts),
	)
	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	configOpts := []config.Option{
		config.WithFlag(config.KeyConfig, flags.Lookup("config")),
		config.WithFlag(config.KeyLogLevel, flags.Lookup("log-level")),
		config.WithFlag(config.KeyLogFormat, flags.Lookup("log-format")),
		config.WithFlag(config.KeyOutputJSON, flags.Lookup("json")),
		config.WithFlag(config.KeyOutputRoot, flags.Lookup("out")),
	}
	if o.settingsPath != "" {
		configOpts = append(configOpts, config.WithSettingsFile(o.settingsPath))
	}

	settings, err := config.Load(configOpts...)
	if err != nil {
		return err
	}
	o.settings = settings

	if err := logging.Init(logging.Config{
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
		Writer: cmd.ErrOrStderr(),
	}); err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	o.logger = logging.Component("cli")
	return nil
}

func (o *rootOptions) loadTheme() (*theme.Config, error) {
	cfg, err := theme.Load(o.settings.ThemePath)
	if err != nil {
		return nil, err
	}
	o.logger.Debug().
		Str("path", o.settings.ThemePath).
		Int("variants", len(cfg.Variants)).
		Int("targets", len(cfg.Targets)).
		Msg("theme loaded")
	return cfg, nil
}
