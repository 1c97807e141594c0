// autostart_windows.go keeps the auto-start record as a string value under
// HKEY_CURRENT_USER\Software\Microsoft\Windows\CurrentVersion\Run, which the
// Settings "Startup Apps" page surfaces to the user.
//
// References:
// - https://learn.microsoft.com/en-us/windows/win32/setupapi/run-and-runonce-registry-keys

package autostart

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const (
	regValue = appName
	regPath  = `SOFTWARE\Microsoft\Windows\CurrentVersion\Run`
)

func (m Manager) IsEnabled() (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, regPath, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("open registry key: %w", err)
	}
	defer key.Close()

	value, _, err := key.GetStringValue(regValue)
	switch {
	case errors.Is(err, registry.ErrNotExist) || errors.Is(err, registry.ErrUnexpectedType):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("get string value: %w", err)
	}

	return parseCommand(value) != "", nil
}

func (m Manager) Enable(execPath string) error {
	execPath, err := resolveExecPath(execPath)
	if err != nil {
		return fmt.Errorf("resolve exec path: %w", err)
	}

	// CreateKey rather than OpenKey so that a fresh user profile, where the
	// Run key may not exist yet, still works.
	key, _, err := registry.CreateKey(registry.CURRENT_USER, regPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create registry key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue(regValue, quoteCommand(execPath)); err != nil {
		return fmt.Errorf("set string value: %w", err)
	}

	return nil
}

func (m Manager) Disable() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, regPath, registry.SET_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open registry key: %w", err)
	}
	defer key.Close()

	if err := key.DeleteValue(regValue); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("delete value: %w", err)
	}

	return nil
}

// Target returns the executable path stored in the auto-start record.
func (m Manager) Target() (string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, regPath, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("open registry key: %w", err)
	}
	defer key.Close()

	value, _, err := key.GetStringValue(regValue)
	if err != nil {
		return "", fmt.Errorf("get string value: %w", err)
	}

	return parseCommand(value), nil
}
