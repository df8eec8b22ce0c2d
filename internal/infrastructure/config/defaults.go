package config

import (
	"github.com/bnema/duskmode/internal/domain/entity"
	domainurl "github.com/bnema/duskmode/internal/domain/url"
)

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultLogMaxMB  = 10
	defaultLogKeep   = 3
	defaultLogDays   = 14

	// Server defaults
	DefaultListenAddr       = "127.0.0.1:7451"
	defaultRequestTimeoutMs = 3000 // ms

	// Agent defaults
	DefaultHubURL           = "ws://127.0.0.1:7451/ws"
	defaultReconnectDelayMs = 1000 // ms
)

// File permission constants
const (
	dirPerm  = 0755
	filePerm = 0644
	// secretFilePerm is used for config files, which may hold the hub secret.
	secretFilePerm = 0600
)

// DefaultConfig returns the default configuration.
// Database.Path, Logging.LogDir and Agent.StylesheetDir stay empty and are resolved against XDG on Load.
func DefaultConfig() *Config {
	seed := entity.DefaultGlobalSettings()
	schemes := make([]string, len(domainurl.DefaultInternalSchemes))
	copy(schemes, domainurl.DefaultInternalSchemes)

	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxMB,
			MaxBackups: defaultLogKeep,
			MaxAgeDays: defaultLogDays,
		},
		Server: ServerConfig{
			ListenAddr:       DefaultListenAddr,
			RequestTimeoutMs: defaultRequestTimeoutMs,
		},
		Agent: AgentConfig{
			HubURL:           DefaultHubURL,
			ReconnectDelayMs: defaultReconnectDelayMs,
		},
		Pages: PagesConfig{
			InternalSchemes: schemes,
		},
		Defaults: DefaultsConfig{
			EnabledByDefault: seed.EnabledByDefault,
			Schedule:         seed.Schedule,
			Theme:            seed.Theme,
		},
		Appearance: AppearanceConfig{
			ColorScheme: ThemeDefault,
		},
	}
}
