package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	ConfigName = "config"
	AppDir     = "pochade"
	EnvPrefix  = "POCHADE"

	DefaultLicense        = "MIT"
	DefaultPackageManager = "npm"
)

// Config holds operator defaults that pre-fill scaffold prompts.
type Config struct {
	AuthorName     string `mapstructure:"author_name" yaml:"author_name"`
	AuthorEmail    string `mapstructure:"author_email" yaml:"author_email"`
	GitHubUsername string `mapstructure:"github_username" yaml:"github_username"`
	License        string `mapstructure:"license" yaml:"license"`
	PackageManager string `mapstructure:"package_manager" yaml:"package_manager"`
	TemplateDir    string `mapstructure:"template_dir" yaml:"template_dir,omitempty"`
	SkipInstall    bool   `mapstructure:"skip_install" yaml:"skip_install"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		License:        DefaultLicense,
		PackageManager: DefaultPackageManager,
	}
}

// GetGlobalConfigDir returns the global config directory
func GetGlobalConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppDir), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	return filepath.Join(home, ".config", AppDir), nil
}

// GetGlobalConfigPath returns the path of the global config file.
func GetGlobalConfigPath() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigName+".yaml"), nil
}

// LoadGlobal loads the global config, falling back to defaults when no file exists.
func LoadGlobal() (*Config, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom loads config.yaml from dir with POCHADE_* environment overrides.
// A missing file is not an error.
func LoadFrom(dir string) (*Config, error) {
	v := viper.New()

	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	defaults := Defaults()
	v.SetDefault("author_name", defaults.AuthorName)
	v.SetDefault("author_email", defaults.AuthorEmail)
	v.SetDefault("github_username", defaults.GitHubUsername)
	v.SetDefault("license", defaults.License)
	v.SetDefault("package_manager", defaults.PackageManager)
	v.SetDefault("template_dir", defaults.TemplateDir)
	v.SetDefault("skip_install", defaults.SkipInstall)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &config, nil
}

// SaveGlobal writes cfg to path as YAML, creating the parent directory.
func SaveGlobal(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	content, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
