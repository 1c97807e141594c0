// autostart_linux.go keeps the auto-start record as a desktop entry in the
// per-user autostart directory, $XDG_CONFIG_HOME/autostart, falling back to
// ~/.config/autostart.
//
// References:
// - https://specifications.freedesktop.org/autostart-spec/autostart-spec-latest.html

package autostart

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/adrg/xdg"
	"gopkg.in/ini.v1"
)

const desktopTemplate = `[Desktop Entry]
Type=Application
Name={{.Name}}
Exec={{.ExecPath}}
Terminal=false
NoDisplay=false
Hidden=false
X-GNOME-Autostart-enabled=true
`

type desktopTemplateParameters struct {
	Name     string
	ExecPath string
}

func (m Manager) IsEnabled() (bool, error) {
	if _, err := os.Stat(getDesktopPath()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat .desktop file: %w", err)
	}

	entry, err := loadDesktopEntry()
	if err != nil {
		return false, err
	}

	// A Hidden entry is ignored by session managers, so it does not count
	// as enabled even though the file exists.
	if entry.Key("Hidden").MustBool(false) {
		return false, nil
	}

	return parseCommand(entry.Key("Exec").String()) != "", nil
}

func (m Manager) Enable(execPath string) error {
	execPath, err := resolveExecPath(execPath)
	if err != nil {
		return fmt.Errorf("resolve exec path: %w", err)
	}

	autostartDir := getAutostartDir()
	if err := os.MkdirAll(autostartDir, 0755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}

	f, err := os.Create(getDesktopPath())
	if err != nil {
		return fmt.Errorf("create .desktop file: %w", err)
	}
	defer f.Close()

	t := template.Must(template.New("desktop").Parse(desktopTemplate))

	if err := t.Execute(f, desktopTemplateParameters{
		Name:     appName,
		ExecPath: execPath,
	}); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	return nil
}

func (m Manager) Disable() error {
	if err := os.Remove(getDesktopPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove .desktop file: %w", err)
	}

	return nil
}

// Target returns the executable path stored in the auto-start record.
func (m Manager) Target() (string, error) {
	entry, err := loadDesktopEntry()
	if err != nil {
		return "", err
	}

	return parseCommand(entry.Key("Exec").String()), nil
}

// loadDesktopEntry parses the autostart .desktop file. Desktop entries follow
// INI syntax, with the record living in the [Desktop Entry] section.
func loadDesktopEntry() (*ini.Section, error) {
	file, err := ini.Load(getDesktopPath())
	if err != nil {
		return nil, fmt.Errorf("load .desktop file: %w", err)
	}

	section, err := file.GetSection("Desktop Entry")
	if err != nil {
		return nil, fmt.Errorf("get Desktop Entry section: %w", err)
	}

	return section, nil
}

func getAutostartDir() string {
	return filepath.Join(xdg.ConfigHome, "autostart")
}

// getDesktopPath returns the path of the .desktop file that autostarts the app.
func getDesktopPath() string {
	return filepath.Join(getAutostartDir(), programName+".desktop")
}
