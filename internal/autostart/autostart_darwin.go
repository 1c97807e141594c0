// autostart_darwin.go keeps the auto-start record as a launchd agent plist
// in ~/Library/LaunchAgents.

package autostart

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"howett.net/plist"
)

const launchdLabel = "com.toss.sync"

type launchAgent struct {
	Label            string   `plist:"Label"`
	ProgramArguments []string `plist:"ProgramArguments"`
	RunAtLoad        bool     `plist:"RunAtLoad"`
	ProcessType      string   `plist:"ProcessType"`
}

func (m Manager) IsEnabled() (bool, error) {
	agent, err := loadLaunchAgent()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return agent.Label == launchdLabel && len(agent.ProgramArguments) > 0 && agent.ProgramArguments[0] != "", nil
}

func (m Manager) Enable(execPath string) error {
	execPath, err := resolveExecPath(execPath)
	if err != nil {
		return fmt.Errorf("resolve exec path: %w", err)
	}

	launchDir, err := getLaunchDir()
	if err != nil {
		return fmt.Errorf("get launch dir: %w", err)
	}
	if err := os.MkdirAll(launchDir, 0755); err != nil {
		return fmt.Errorf("create launch dir: %w", err)
	}

	data, err := plist.MarshalIndent(launchAgent{
		Label:            launchdLabel,
		ProgramArguments: []string{execPath},
		RunAtLoad:        true,
		ProcessType:      "Interactive",
	}, plist.XMLFormat, "\t")
	if err != nil {
		return fmt.Errorf("marshal plist: %w", err)
	}

	plistPath, err := getPlistPath()
	if err != nil {
		return fmt.Errorf("get plist path: %w", err)
	}
	if err := os.WriteFile(plistPath, data, 0644); err != nil {
		return fmt.Errorf("write plist: %w", err)
	}

	return nil
}

func (m Manager) Disable() error {
	plistPath, err := getPlistPath()
	if err != nil {
		return fmt.Errorf("get plist path: %w", err)
	}

	if err := os.Remove(plistPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove plist: %w", err)
	}

	return nil
}

// Target returns the executable path stored in the auto-start record.
func (m Manager) Target() (string, error) {
	agent, err := loadLaunchAgent()
	if err != nil {
		return "", err
	}

	if len(agent.ProgramArguments) == 0 {
		return "", errors.New("launch agent has no program arguments")
	}
	return agent.ProgramArguments[0], nil
}

func loadLaunchAgent() (launchAgent, error) {
	var agent launchAgent

	plistPath, err := getPlistPath()
	if err != nil {
		return agent, fmt.Errorf("get plist path: %w", err)
	}

	data, err := os.ReadFile(plistPath)
	if err != nil {
		return agent, fmt.Errorf("read plist: %w", err)
	}

	if _, err := plist.Unmarshal(data, &agent); err != nil {
		return agent, fmt.Errorf("unmarshal plist: %w", err)
	}

	return agent, nil
}

func getPlistPath() (string, error) {
	launchDir, err := getLaunchDir()
	if err != nil {
		return "", fmt.Errorf("get launch dir: %w", err)
	}

	return filepath.Join(launchDir, launchdLabel+".plist"), nil
}

func getLaunchDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home dir: %w", err)
	}

	return filepath.Join(homeDir, "Library", "LaunchAgents"), nil
}
