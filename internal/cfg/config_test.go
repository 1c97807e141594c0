package cfg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFirstLaunch(t *testing.T) {
	t.Parallel()

	configDir := t.TempDir()
	c, err := loadConfig(configDir, t.TempDir())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if !c.firstLaunch {
		t.Error("firstLaunch = false on a fresh config dir")
	}
	if _, err := os.Stat(filepath.Join(configDir, "config.json")); err != nil {
		t.Errorf("expected config.json to be written: %v", err)
	}

	// Defaults from the embedded config.
	if !c.Sync.AutoSync || !c.Sync.SyncText {
		t.Errorf("unexpected sync defaults: %+v", c.Sync)
	}
	if c.Sync.MaxFileSizeMB != 25 {
		t.Errorf("MaxFileSizeMB = %d, want 25", c.Sync.MaxFileSizeMB)
	}
	if !c.History.Enabled || c.History.Days != 30 {
		t.Errorf("unexpected history defaults: %+v", c.History)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()

	configDir := t.TempDir()
	dataDir := t.TempDir()

	c, err := loadConfig(configDir, dataDir)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if err := c.SetRelayURL("https://relay.example.com"); err != nil {
		t.Fatalf("SetRelayURL: %v", err)
	}
	if err := c.UpdateSyncSettings(SyncConfig{
		AutoSync:      true,
		SyncText:      true,
		SyncFiles:     true,
		MaxFileSizeMB: 10,
	}); err != nil {
		t.Fatalf("UpdateSyncSettings: %v", err)
	}

	reloaded, err := loadConfig(configDir, dataDir)
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}

	if reloaded.firstLaunch {
		t.Error("firstLaunch = true on a second load")
	}
	if got := reloaded.GetRelayURL(); got != "https://relay.example.com" {
		t.Errorf("RelayURL = %q, want %q", got, "https://relay.example.com")
	}
	if got := reloaded.GetSyncSettings(); !got.SyncFiles || got.MaxFileSizeMB != 10 {
		t.Errorf("sync settings did not round-trip: %+v", got)
	}
}

func TestUpdateHistorySettings(t *testing.T) {
	t.Parallel()

	c, err := loadConfig(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if err := c.UpdateHistorySettings(HistoryConfig{Enabled: false, Days: 7}); err != nil {
		t.Fatalf("UpdateHistorySettings: %v", err)
	}

	if got := c.GetHistorySettings(); got.Enabled || got.Days != 7 {
		t.Errorf("history settings = %+v, want disabled with 7 days", got)
	}
}
