package autostart

import (
	"os"
	"path/filepath"
	"testing"

	"howett.net/plist"
)

// setTestHome points HOME at a scratch directory so tests never touch the
// real LaunchAgents directory.
func setTestHome(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)

	return dir
}

func TestFreshEnvironment(t *testing.T) {
	home := setTestHome(t)
	m := Manager{}

	if enabled, err := m.IsEnabled(); err != nil {
		t.Fatalf("IsEnabled on a fresh profile: %v", err)
	} else if enabled {
		t.Error("IsEnabled = true on a fresh profile")
	}

	if err := m.Enable("/Applications/Toss.app/Contents/MacOS/Toss"); err != nil {
		t.Fatalf("Enable: %v", err)
	}

	plistPath := filepath.Join(home, "Library", "LaunchAgents", "com.toss.sync.plist")
	if _, err := os.Stat(plistPath); err != nil {
		t.Errorf("expected launch agent plist to exist: %v", err)
	}

	if enabled, err := m.IsEnabled(); err != nil {
		t.Fatalf("IsEnabled: %v", err)
	} else if !enabled {
		t.Error("IsEnabled = false after Enable")
	}
}

func TestRoundTrip(t *testing.T) {
	setTestHome(t)
	m := Manager{}

	if err := m.Enable("/Applications/Toss.app/Contents/MacOS/Toss"); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if enabled, _ := m.IsEnabled(); !enabled {
		t.Error("IsEnabled = false after Enable")
	}

	if err := m.Disable(); err != nil {
		t.Fatalf("Disable: %v", err)
	}
	if enabled, err := m.IsEnabled(); err != nil {
		t.Fatalf("IsEnabled: %v", err)
	} else if enabled {
		t.Error("IsEnabled = true after Disable")
	}
}

func TestDisableIsIdempotent(t *testing.T) {
	setTestHome(t)
	m := Manager{}

	for i := 0; i < 2; i++ {
		if err := m.Disable(); err != nil {
			t.Fatalf("Disable #%d: %v", i+1, err)
		}
	}
}

func TestEnableOverwritesRecord(t *testing.T) {
	setTestHome(t)
	m := Manager{}

	if err := m.Enable("/a/b"); err != nil {
		t.Fatalf("Enable: %v", err)
	}
	if err := m.Enable("/c/d"); err != nil {
		t.Fatalf("Enable: %v", err)
	}

	target, err := m.Target()
	if err != nil {
		t.Fatalf("Target: %v", err)
	}
	if target != "/c/d" {
		t.Errorf("Target = %q, want %q", target, "/c/d")
	}
}

func TestLaunchAgentContents(t *testing.T) {
	home := setTestHome(t)
	m := Manager{}

	if err := m.Enable("/Applications/Toss.app/Contents/MacOS/Toss"); err != nil {
		t.Fatalf("Enable: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, "Library", "LaunchAgents", "com.toss.sync.plist"))
	if err != nil {
		t.Fatalf("reading plist: %v", err)
	}

	var agent launchAgent
	if _, err := plist.Unmarshal(data, &agent); err != nil {
		t.Fatalf("parsing plist: %v", err)
	}

	if agent.Label != "com.toss.sync" {
		t.Errorf("Label = %q, want %q", agent.Label, "com.toss.sync")
	}
	if len(agent.ProgramArguments) != 1 || agent.ProgramArguments[0] != "/Applications/Toss.app/Contents/MacOS/Toss" {
		t.Errorf("ProgramArguments = %v, want the bare executable path", agent.ProgramArguments)
	}
	if !agent.RunAtLoad {
		t.Error("RunAtLoad = false, want true")
	}
}

func TestForeignLaunchAgentReadsAsDisabled(t *testing.T) {
	home := setTestHome(t)
	m := Manager{}

	launchDir := filepath.Join(home, "Library", "LaunchAgents")
	if err := os.MkdirAll(launchDir, 0755); err != nil {
		t.Fatal(err)
	}

	data, err := plist.MarshalIndent(launchAgent{
		Label:            "com.example.other",
		ProgramArguments: []string{"/usr/bin/true"},
		RunAtLoad:        true,
	}, plist.XMLFormat, "\t")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(launchDir, "com.toss.sync.plist"), data, 0644); err != nil {
		t.Fatal(err)
	}

	if enabled, err := m.IsEnabled(); err != nil {
		t.Fatalf("IsEnabled: %v", err)
	} else if enabled {
		t.Error("IsEnabled = true for a record with a foreign label")
	}
}
