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
	// LOCALAPPDATA rather than APPDATA: the config holds machine-specific
	// state that should not roam between machines.
	if os.Getenv("LOCALAPPDATA") != "" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), appFolderName, configDirName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, "AppData", "Local", appFolderName, configDirName), nil
}

func getDataDir() (string, error) {
	if os.Getenv("LOCALAPPDATA") != "" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), appFolderName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, "AppData", "Local", appFolderName), nil
}
