// Package config provides configuration management for glint.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the glint prompt renderer.
type Config struct {
	LogLevel  string          `mapstructure:"log_level"`
	GitBranch GitBranchConfig `mapstructure:"git_branch"`
	GitStatus GitStatusConfig `mapstructure:"git_status"`
}

// GitBranchConfig holds the branch module settings.
type GitBranchConfig struct {
	Disabled         bool   `mapstructure:"disabled"`
	Format           string `mapstructure:"format"`
	Style            string `mapstructure:"style"`
	Symbol           string `mapstructure:"symbol"`
	TruncationLength int    `mapstructure:"truncation_length"`
}

// GitStatusConfig holds the status module settings: the master format plus
// one mini-format per status category. A category whose count is zero never
// renders, so the mini-formats only describe the nonzero case.
type GitStatusConfig struct {
	Disabled bool   `mapstructure:"disabled"`
	Format   string `mapstructure:"format"`
	Style    string `mapstructure:"style"`

	Conflicted string `mapstructure:"conflicted"`
	Ahead      string `mapstructure:"ahead"`
	Behind     string `mapstructure:"behind"`
	Diverged   string `mapstructure:"diverged"`
	Untracked  string `mapstructure:"untracked"`
	Stashed    string `mapstructure:"stashed"`
	Modified   string `mapstructure:"modified"`
	Staged     string `mapstructure:"staged"`
	Added      string `mapstructure:"added"`
	Renamed    string `mapstructure:"renamed"`
	Deleted    string `mapstructure:"deleted"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		GitBranch: GitBranchConfig{
			Format:           `[$symbol$branch]($style) `,
			Style:            "bold purple",
			Symbol:           "🌿 ",
			TruncationLength: 0,
		},
		GitStatus: GitStatusConfig{
			Format:     `[\[$all_status$ahead_behind\] ]($style)`,
			Style:      "bold red",
			Conflicted: "=",
			Ahead:      "⇡",
			Behind:     "⇣",
			Diverged:   "⇕",
			Untracked:  "?",
			Stashed:    `\$`,
			Modified:   "!",
			Staged:     "+",
			Added:      "+",
			Renamed:    "»",
			Deleted:    "✘",
		},
	}
}

// Load reads the configuration from path, or from the default location when
// path is empty. A missing file is not an error: the defaults apply, and
// glint never writes a config file on its own.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "glint", "config.toml"), nil
}

// setDefaults mirrors DefaultConfig into viper so partial files inherit the
// rest.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("log_level", defaults.LogLevel)

	v.SetDefault("git_branch.disabled", defaults.GitBranch.Disabled)
	v.SetDefault("git_branch.format", defaults.GitBranch.Format)
	v.SetDefault("git_branch.style", defaults.GitBranch.Style)
	v.SetDefault("git_branch.symbol", defaults.GitBranch.Symbol)
	v.SetDefault("git_branch.truncation_length", defaults.GitBranch.TruncationLength)

	v.SetDefault("git_status.disabled", defaults.GitStatus.Disabled)
	v.SetDefault("git_status.format", defaults.GitStatus.Format)
	v.SetDefault("git_status.style", defaults.GitStatus.Style)
	v.SetDefault("git_status.conflicted", defaults.GitStatus.Conflicted)
	v.SetDefault("git_status.ahead", defaults.GitStatus.Ahead)
	v.SetDefault("git_status.behind", defaults.GitStatus.Behind)
	v.SetDefault("git_status.diverged", defaults.GitStatus.Diverged)
	v.SetDefault("git_status.untracked", defaults.GitStatus.Untracked)
	v.SetDefault("git_status.stashed", defaults.GitStatus.Stashed)
	v.SetDefault("git_status.modified", defaults.GitStatus.Modified)
	v.SetDefault("git_status.staged", defaults.GitStatus.Staged)
	v.SetDefault("git_status.added", defaults.GitStatus.Added)
	v.SetDefault("git_status.renamed", defaults.GitStatus.Renamed)
	v.SetDefault("git_status.deleted", defaults.GitStatus.Deleted)
}
