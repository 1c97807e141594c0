package cfg

import (
	"os"
	"path/filepath"
)

const (
	appFolderName = "Toss"
	configDirName = "Config"
)

func getConfigDir() (string, error) {
	// Files in ~/Library/Preferences should only be managed through native
	// APIs per Apple's guidelines, so a subfolder of
	// ~/Library/Application Support is used instead.
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, "Library", "Application Support", appFolderName, configDirName), nil
}

func getDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, "Library", "Application Support", appFolderName), nil
}
