package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)
	validationErrors = append(validationErrors, validateAgent(config)...)
	validationErrors = append(validationErrors, validatePages(config)...)
	validationErrors = append(validationErrors, validateSeed(config)...)
	validationErrors = append(validationErrors, validateColorScheme(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate reports every problem in cfg. Used by `duskmode config init`
// before writing a file.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(cfg)
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.ToFile && config.Logging.MaxSizeMB <= 0 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.max_size_mb must be positive when logging.to_file is set (got: %d)",
			config.Logging.MaxSizeMB,
		))
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must not be negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must not be negative")
	}
	return validationErrors
}

func validateServer(config *Config) []string {
	var validationErrors []string
	if _, _, err := net.SplitHostPort(config.Server.ListenAddr); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"server.listen_addr must be host:port (got: %q)",
			config.Server.ListenAddr,
		))
	}
	if config.Server.RequestTimeoutMs <= 0 {
		validationErrors = append(validationErrors, "server.request_timeout_ms must be positive")
	}
	return validationErrors
}

func validateAgent(config *Config) []string {
	var validationErrors []string
	u, err := url.Parse(config.Agent.HubURL)
	if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") || u.Host == "" {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"agent.hub_url must be a ws:// or wss:// URL (got: %q)",
			config.Agent.HubURL,
		))
	}
	if config.Agent.ReconnectDelayMs <= 0 {
		validationErrors = append(validationErrors, "agent.reconnect_delay_ms must be positive")
	}
	return validationErrors
}

func validatePages(config *Config) []string {
	var validationErrors []string
	for _, s := range config.Pages.InternalSchemes {
		if strings.ContainsAny(s, ":/ ") {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"pages.internal_schemes entries must be bare schemes like \"about\" (got: %q)", s,
			))
		}
	}
	return validationErrors
}

func validateSeed(config *Config) []string {
	problems := config.Defaults.GlobalSettings().Validate()
	for i, p := range problems {
		problems[i] = "defaults." + p
	}
	return problems
}

func validateColorScheme(config *Config) []string {
	switch config.Appearance.ColorScheme {
	case ThemePreferDark, ThemePreferLight, ThemeDefault, "":
		return nil
	default:
		return []string{fmt.Sprintf(
			"appearance.color_scheme must be one of: prefer-dark, prefer-light, default (got: %s)",
			config.Appearance.ColorScheme,
		)}
	}
}
