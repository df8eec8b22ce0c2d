package config

import (
	"time"

	"github.com/bnema/duskmode/internal/domain/entity"
)

// Config represents the complete configuration for duskmode.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Server configures the hub and the local control API.
	Server ServerConfig `mapstructure:"server" yaml:"server" toml:"server"`
	// Agent configures the page-side process that renders stylesheets.
	Agent AgentConfig `mapstructure:"agent" yaml:"agent" toml:"agent"`
	Pages PagesConfig `mapstructure:"pages" yaml:"pages" toml:"pages"`
	// Defaults seed the global settings document on first run.
	Defaults   DefaultsConfig   `mapstructure:"defaults" yaml:"defaults" toml:"defaults"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
}

// DatabaseConfig holds the settings store location.
type DatabaseConfig struct {
	// Path is resolved to $XDG_DATA_HOME/duskmode/duskmode.sqlite when empty.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// LoggingConfig holds logger options.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
	// ToFile makes serve and agent also write JSON logs to <log_dir>/<command>.log.
	ToFile bool `mapstructure:"to_file" yaml:"to_file" toml:"to_file"`
	// LogDir is resolved to $XDG_STATE_HOME/duskmode/logs when empty.
	LogDir     string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
}

// ServerConfig holds hub options.
type ServerConfig struct {
	// ListenAddr serves both the agent websocket and the control API.
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr" toml:"listen_addr"`
	// Secret is the bearer token agents and the CLI present. Empty disables auth.
	Secret           string `mapstructure:"secret" yaml:"secret" toml:"secret"`
	RequestTimeoutMs int    `mapstructure:"request_timeout_ms" yaml:"request_timeout_ms" toml:"request_timeout_ms"`
}

// RequestTimeout returns how long the hub waits for an agent reply.
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutMs) * time.Millisecond
}

// AgentConfig holds agent options.
type AgentConfig struct {
	HubURL string `mapstructure:"hub_url" yaml:"hub_url" toml:"hub_url"`
	// StylesheetDir is resolved to $XDG_STATE_HOME/duskmode/stylesheets when empty.
	StylesheetDir    string `mapstructure:"stylesheet_dir" yaml:"stylesheet_dir" toml:"stylesheet_dir"`
	ReconnectDelayMs int    `mapstructure:"reconnect_delay_ms" yaml:"reconnect_delay_ms" toml:"reconnect_delay_ms"`
}

// ReconnectDelay returns the initial backoff between hub connection attempts.
func (a AgentConfig) ReconnectDelay() time.Duration {
	return time.Duration(a.ReconnectDelayMs) * time.Millisecond
}

// PagesConfig controls which pages are never styled.
type PagesConfig struct {
	InternalSchemes []string `mapstructure:"internal_schemes" yaml:"internal_schemes" toml:"internal_schemes"`
}

// DefaultsConfig mirrors entity.GlobalSettings for the first-run seed.
type DefaultsConfig struct {
	EnabledByDefault bool            `mapstructure:"enabled_by_default" yaml:"enabled_by_default" toml:"enabled_by_default"`
	Schedule         entity.Schedule `mapstructure:"schedule" yaml:"schedule" toml:"schedule"`
	Theme            entity.Theme    `mapstructure:"theme" yaml:"theme" toml:"theme"`
}

// GlobalSettings converts the seed into a settings document.
func (d DefaultsConfig) GlobalSettings() entity.GlobalSettings {
	return entity.GlobalSettings{
		EnabledByDefault: d.EnabledByDefault,
		Schedule:         d.Schedule,
		Theme:            d.Theme,
	}
}

// ColorScheme selects the CLI palette.
type ColorScheme string

const (
	ThemePreferDark  ColorScheme = "prefer-dark"
	ThemePreferLight ColorScheme = "prefer-light"
	ThemeDefault     ColorScheme = "default"
)

// AppearanceConfig holds CLI presentation options.
type AppearanceConfig struct {
	// ColorScheme is one of "default", "prefer-dark", "prefer-light".
	ColorScheme ColorScheme `mapstructure:"color_scheme" yaml:"color_scheme" toml:"color_scheme"`
}
