// Package config persists the relay set used by every networked command.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tami1A84/nostr-cli-app/internal/keyvault"
)

// Config holds application configuration.
type Config struct {
	Relays []string `json:"relays"`
}

// DefaultRelays is used when no relays have been configured.
var DefaultRelays = []string{
	"wss://relay-jp.nostr.wirednet.jp",
	"wss://yabu.me",
}

func configPath() (string, error) {
	dir, err := keyvault.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "relays.json"), nil
}

// Load reads the relay config, returning an empty set when the file is
// missing. Callers that need a working relay set should use
// EffectiveRelays to fall back to the defaults.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read relay config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse relay config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config to disk atomically.
func Save(cfg *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal relay config: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write relay config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename relay config: %w", err)
	}
	return nil
}

// EffectiveRelays returns the configured relays, or the defaults when
// none are configured.
func (c *Config) EffectiveRelays() []string {
	if len(c.Relays) == 0 {
		return DefaultRelays
	}
	return c.Relays
}

// Add appends a relay URL if not already present. Reports whether the
// set changed.
func (c *Config) Add(url string) bool {
	for _, r := range c.Relays {
		if r == url {
			return false
		}
	}
	c.Relays = append(c.Relays, url)
	return true
}

// Remove deletes a relay URL. Reports whether the set changed.
func (c *Config) Remove(url string) bool {
	for i, r := range c.Relays {
		if r == url {
			c.Relays = append(c.Relays[:i], c.Relays[i+1:]...)
			return true
		}
	}
	return false
}
