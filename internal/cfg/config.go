// Package cfg provides app configuration, loaded from and persisted to a
// config.json in the per-OS config directory.
package cfg

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Version is set at build time via ldflags.
var Version = "development"

//go:embed default-config.json
var defaultConfig embed.FS

// SyncConfig controls what the app ships to paired devices.
type SyncConfig struct {
	AutoSync      bool   `json:"autoSync"`
	SyncText      bool   `json:"syncText"`
	SyncRichText  bool   `json:"syncRichText"`
	SyncImages    bool   `json:"syncImages"`
	SyncFiles     bool   `json:"syncFiles"`
	MaxFileSizeMB uint32 `json:"maxFileSizeMB"`
}

// HistoryConfig controls local clipboard history retention.
type HistoryConfig struct {
	Enabled bool   `json:"enabled"`
	Days    uint32 `json:"days"`
}

type Config struct {
	sync.RWMutex `json:"-"`

	Sync     SyncConfig    `json:"sync"`
	History  HistoryConfig `json:"history"`
	RelayURL string        `json:"relayURL"`

	ConfigDir string `json:"-"`
	DataDir   string `json:"-"`

	firstLaunch bool
}

// NewConfig loads the config from the per-OS config directory, writing the
// default config on first launch.
func NewConfig() (*Config, error) {
	configDir, err := getConfigDir()
	if err != nil {
		return nil, fmt.Errorf("get config dir: %w", err)
	}
	dataDir, err := getDataDir()
	if err != nil {
		return nil, fmt.Errorf("get data dir: %w", err)
	}

	return loadConfig(configDir, dataDir)
}

func loadConfig(configDir, dataDir string) (*Config, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	c := &Config{
		ConfigDir: configDir,
		DataDir:   dataDir,
	}

	configFile := filepath.Join(configDir, "config.json")
	configData, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		c.firstLaunch = true
		configData, err = defaultConfig.ReadFile("default-config.json")
		if err != nil {
			return nil, fmt.Errorf("read default config: %w", err)
		}
		if err := os.WriteFile(configFile, configData, 0644); err != nil {
			return nil, fmt.Errorf("write config file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := json.Unmarshal(configData, c); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return c, nil
}

// Save persists the config to disk. Callers must hold at least a read lock.
func (c *Config) Save() error {
	configData, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	configFile := filepath.Join(c.ConfigDir, "config.json")
	if err := os.WriteFile(configFile, configData, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// GetSyncSettings returns the sync settings.
// Used on the frontend to populate the settings screen.
func (c *Config) GetSyncSettings() SyncConfig {
	c.RLock()
	defer c.RUnlock()
	return c.Sync
}

// UpdateSyncSettings replaces the sync settings.
// Used on the frontend when the user changes what gets synced.
func (c *Config) UpdateSyncSettings(s SyncConfig) error {
	c.Lock()
	defer c.Unlock()

	c.Sync = s
	return c.Save()
}

// GetHistorySettings returns the clipboard history settings.
func (c *Config) GetHistorySettings() HistoryConfig {
	c.RLock()
	defer c.RUnlock()
	return c.History
}

// UpdateHistorySettings replaces the clipboard history settings.
func (c *Config) UpdateHistorySettings(h HistoryConfig) error {
	c.Lock()
	defer c.Unlock()

	c.History = h
	return c.Save()
}

// GetRelayURL returns the relay server URL, empty when the default relay is
// in use.
func (c *Config) GetRelayURL() string {
	c.RLock()
	defer c.RUnlock()
	return c.RelayURL
}

// SetRelayURL points the app at a self-hosted relay server.
func (c *Config) SetRelayURL(url string) error {
	c.Lock()
	defer c.Unlock()

	c.RelayURL = url
	return c.Save()
}
