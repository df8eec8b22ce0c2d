package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a manager reading $XDG_CONFIG_HOME/duskmode/config.toml.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a manager reading an explicit config file.
func NewManagerForFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// DUSKMODE_SERVER_SECRET, DUSKMODE_DATABASE_PATH, ...
	v.SetEnvPrefix("DUSKMODE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shared with logging.NewFromEnv so both readers agree.
	if err := v.BindEnv("logging.level", "DUSKMODE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DUSKMODE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DUSKMODE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DUSKMODE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reload()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

// resolvePaths fills the XDG locations left empty in the file.
func resolvePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		dir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = dir
	}
	if config.Agent.StylesheetDir == "" {
		dir, err := GetStylesheetDir()
		if err != nil {
			return fmt.Errorf("failed to get stylesheet directory: %w", err)
		}
		config.Agent.StylesheetDir = dir
	}
	return nil
}

func normalizeConfig(config *Config) {
	switch ColorScheme(strings.ToLower(string(config.Appearance.ColorScheme))) {
	case ThemePreferDark, "dark":
		config.Appearance.ColorScheme = ThemePreferDark
	case ThemePreferLight, "light":
		config.Appearance.ColorScheme = ThemePreferLight
	default:
		config.Appearance.ColorScheme = ThemeDefault
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	schemes := make([]string, 0, len(config.Pages.InternalSchemes))
	for _, s := range config.Pages.InternalSchemes {
		s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ":")
		if s != "" {
			schemes = append(schemes, s)
		}
	}
	config.Pages.InternalSchemes = schemes
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Pages.InternalSchemes = append([]string(nil), m.config.Pages.InternalSchemes...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.configFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", m.configFile)

	if _, err := GenerateSchemaFile(filepath.Dir(m.configFile)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setServerDefaults(defaults)
	m.setAgentDefaults(defaults)
	m.setPagesDefaults(defaults)
	m.setSeedDefaults(defaults)
	m.viper.SetDefault("appearance.color_scheme", string(defaults.Appearance.ColorScheme))
	// Resolved in Load, declared so DUSKMODE_DATABASE_PATH is picked up.
	m.viper.SetDefault("database.path", "")
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.to_file", defaults.Logging.ToFile)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

func (m *Manager) setServerDefaults(defaults *Config) {
	m.viper.SetDefault("server.listen_addr", defaults.Server.ListenAddr)
	m.viper.SetDefault("server.secret", defaults.Server.Secret)
	m.viper.SetDefault("server.request_timeout_ms", defaults.Server.RequestTimeoutMs)
}

func (m *Manager) setAgentDefaults(defaults *Config) {
	m.viper.SetDefault("agent.hub_url", defaults.Agent.HubURL)
	m.viper.SetDefault("agent.stylesheet_dir", defaults.Agent.StylesheetDir)
	m.viper.SetDefault("agent.reconnect_delay_ms", defaults.Agent.ReconnectDelayMs)
}

func (m *Manager) setPagesDefaults(defaults *Config) {
	m.viper.SetDefault("pages.internal_schemes", defaults.Pages.InternalSchemes)
}

func (m *Manager) setSeedDefaults(defaults *Config) {
	seed := defaults.Defaults
	m.viper.SetDefault("defaults.enabled_by_default", seed.EnabledByDefault)
	m.viper.SetDefault("defaults.schedule.enabled", seed.Schedule.Enabled)
	m.viper.SetDefault("defaults.schedule.start", seed.Schedule.Start)
	m.viper.SetDefault("defaults.schedule.end", seed.Schedule.End)
	m.viper.SetDefault("defaults.theme.bg", seed.Theme.Background)
	m.viper.SetDefault("defaults.theme.surface", seed.Theme.Surface)
	m.viper.SetDefault("defaults.theme.text", seed.Theme.Text)
	m.viper.SetDefault("defaults.theme.link", seed.Theme.Link)
	m.viper.SetDefault("defaults.theme.accent", seed.Theme.Accent)
	m.viper.SetDefault("defaults.theme.border", seed.Theme.Border)
	m.viper.SetDefault("defaults.theme.brightness", seed.Theme.Brightness)
	m.viper.SetDefault("defaults.theme.contrast", seed.Theme.Contrast)
	m.viper.SetDefault("defaults.theme.font", seed.Theme.Font)
}
