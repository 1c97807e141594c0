package cfg

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appFolderName = "toss"

// The XDG Base Directory Specification governs where per-user config and
// data live on Linux:
// https://specifications.freedesktop.org/basedir-spec/basedir-spec-latest.html

func getConfigDir() (string, error) {
	return filepath.Join(xdg.ConfigHome, appFolderName), nil
}

func getDataDir() (string, error) {
	return filepath.Join(xdg.DataHome, appFolderName), nil
}
