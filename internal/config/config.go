// Package config loads weeklift settings from config.yaml and WEEKLIFT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/julianstephens/weeklift/internal/constants"
	"github.com/julianstephens/weeklift/internal/utils"
)

type Config struct {
	StrictRequiredFields bool   `mapstructure:"strict_required_fields"`
	DefaultDay           string `mapstructure:"default_day"` // a weekday or "today"
	DefaultType          string `mapstructure:"default_type"`
	DefaultCategory      string `mapstructure:"default_category"`
	SeedPath             string `mapstructure:"seed_path"`
	Timezone             string `mapstructure:"timezone"`
	Debug                bool   `mapstructure:"debug"`

	// Path is the config file that was read, empty when running on defaults
	Path string `mapstructure:"-"`
	// Dir holds the config file and the logs directory
	Dir string `mapstructure:"-"`
}

// DefaultPath returns the config file location under the default config dir
func DefaultPath() string {
	return filepath.Join(constants.DefaultConfigDir, constants.ConfigFileName+"."+constants.ConfigFileType)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("strict_required_fields", false)
	v.SetDefault("default_day", string(constants.DefaultDay))
	v.SetDefault("default_type", string(constants.DefaultType))
	v.SetDefault("default_category", string(constants.DefaultCategory))
	v.SetDefault("seed_path", "")
	v.SetDefault("timezone", "Local")
	v.SetDefault("debug", false)
}

// Load reads the config file at path, falling back to defaults when it does not
// exist. Environment variables override file values.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	path, err := ExpandHome(path)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigType(constants.ConfigFileType)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{Dir: filepath.Dir(path)}

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		cfg.Path = path
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to stat config %s: %w", path, err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.SeedPath != "" {
		seed, err := ExpandHome(cfg.SeedPath)
		if err != nil {
			return Config{}, err
		}
		if !filepath.IsAbs(seed) && cfg.Path != "" {
			seed = filepath.Join(cfg.Dir, seed)
		}
		cfg.SeedPath = seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every enumerated value names something weeklift knows
func (c Config) Validate() error {
	if _, err := c.Day(); err != nil {
		return fmt.Errorf("default_day: %w", err)
	}
	if _, err := c.ExerciseType(); err != nil {
		return fmt.Errorf("default_type: %w", err)
	}
	if _, err := c.Category(); err != nil {
		return fmt.Errorf("default_category: %w", err)
	}
	if _, err := utils.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	return nil
}

// Day resolves default_day, mapping "today" through the configured timezone
func (c Config) Day() (constants.Day, error) {
	return utils.ResolveDay(c.DefaultDay, c.Timezone)
}

func (c Config) ExerciseType() (constants.ExerciseType, error) {
	return constants.ParseExerciseType(c.DefaultType)
}

func (c Config) Category() (constants.Category, error) {
	return constants.ParseCategory(c.DefaultCategory)
}
