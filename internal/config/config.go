// Package config loads colorloom's own settings: where the theme document
// lives, where output goes and how to log.
//
// Precedence is defaults < settings file < environment < bound flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyConfig     = "config"
	KeyOutputRoot = "output-root"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
	KeyOutputJSON = "output.json"
)

const (
	// DefaultThemePath is the theme document read when none is given.
	DefaultThemePath = "theme.toml"
	// SettingsFileName is discovered in the working directory.
	SettingsFileName = "colorloom.yaml"

	envPrefix = "COLORLOOM"
)

// Settings is the resolved tool configuration.
type Settings struct {
	ThemePath  string
	OutputRoot string
	LogLevel   string
	LogFormat  string
	JSON       bool
}

type initSettings struct {
	workingDir   string
	settingsPath string
	flags        map[string]*pflag.Flag
}

// Option configures Load.
type Option func(*initSettings)

// WithWorkingDir overrides the directory used for settings discovery and
// as the default output root.
func WithWorkingDir(dir string) Option {
	return func(s *initSettings) {
		s.workingDir = dir
	}
}

// WithSettingsFile uses an explicit settings file instead of discovery.
// An explicit file must exist.
func WithSettingsFile(path string) Option {
	return func(s *initSettings) {
		s.settingsPath = path
	}
}

// WithFlag binds a command-line flag to a key. Flags only override when set.
func WithFlag(key string, flag *pflag.Flag) Option {
	return func(s *initSettings) {
		if flag == nil {
			return
		}
		if s.flags == nil {
			s.flags = make(map[string]*pflag.Flag)
		}
		s.flags[key] = flag
	}
}

// Load resolves settings.
func Load(opts ...Option) (Settings, error) {
	v, err := New(opts...)
	if err != nil {
		return Settings{}, err
	}
	return FromViper(v), nil
}

// New builds the layered viper instance.
func New(opts ...Option) (*viper.Viper, error) {
	settings := initSettings{}
	for _, opt := range opts {
		opt(&settings)
	}

	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v, workingDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	explicit := strings.TrimSpace(settings.settingsPath) != ""
	path := settings.settingsPath
	if !explicit {
		path = filepath.Join(workingDir, SettingsFileName)
	}
	if err := mergeSettingsFile(v, path, explicit); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	for key, flag := range settings.flags {
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	}

	return v, nil
}

// FromViper reads Settings out of a viper instance.
func FromViper(v *viper.Viper) Settings {
	return Settings{
		ThemePath:  v.GetString(KeyConfig),
		OutputRoot: v.GetString(KeyOutputRoot),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFormat:  v.GetString(KeyLogFormat),
		JSON:       v.GetBool(KeyOutputJSON),
	}
}

func setDefaults(v *viper.Viper, workingDir string) {
	v.SetDefault(KeyConfig, DefaultThemePath)
	v.SetDefault(KeyOutputRoot, workingDir)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyOutputJSON, false)
}

func mergeSettingsFile(v *viper.Viper, path string, required bool) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("settings path %s is a directory", path)
	}
	//nolint:gosec // G304: settings file path comes from the user
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
