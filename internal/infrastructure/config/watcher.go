package config

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/duskmode/internal/logging"
)

// Watch reloads the config file whenever it changes on disk and notifies the
// OnConfigChange callbacks. A change that fails validation, or that leaves
// every section as it was, is not propagated.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()

		m.mu.Lock()
		previous := m.config
		if err := m.reload(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Str("file", e.Name).Msg("config change rejected")
			return
		}
		changed := ChangedSections(previous, m.config)
		if len(changed) == 0 {
			m.mu.Unlock()
			return
		}
		log.Info().Strs("sections", changed).Str("file", e.Name).Msg("config reloaded")
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// ChangedSections names the top-level sections that differ between a and b,
// in file order. A nil config differs in every section.
func ChangedSections(a, b *Config) []string {
	if a == nil || b == nil {
		if a == b {
			return nil
		}
		return []string{"database", "logging", "server", "agent", "pages", "defaults", "appearance"}
	}

	var changed []string
	add := func(name string, same bool) {
		if !same {
			changed = append(changed, name)
		}
	}
	add("database", a.Database == b.Database)
	add("logging", a.Logging == b.Logging)
	add("server", a.Server == b.Server)
	add("agent", a.Agent == b.Agent)
	add("pages", slices.Equal(a.Pages.InternalSchemes, b.Pages.InternalSchemes))
	add("defaults", reflect.DeepEqual(a.Defaults, b.Defaults))
	add("appearance", a.Appearance == b.Appearance)
	return changed
}

// notifyCallbacksLocked releases m.mu before running the callbacks.
func (m *Manager) notifyCallbacksLocked() {
	cfg := m.config
	callbacks := slices.Clone(m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(cfg)
	}
}

// OnConfigChange registers a callback run after every accepted reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload rebuilds m.config from viper. Must be called with m.mu held for write.
func (m *Manager) reload() error {
	cfg, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := resolvePaths(cfg); err != nil {
		return err
	}
	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = cfg
	return nil
}
