package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths holds the directory layout for smartsearch files.
type Paths struct {
	// ConfigDir is the directory for configuration files.
	ConfigDir string

	// DataDir is the directory for data files such as the state database.
	DataDir string
}

// DefaultPaths returns the default paths based on the XDG Base Directory
// spec. On Windows, it uses %APPDATA% instead.
func DefaultPaths() *Paths {
	home := homeDir()

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(home, "AppData", "Local")
		}
		return &Paths{
			ConfigDir: filepath.Join(appData, "smartsearch"),
			DataDir:   filepath.Join(localAppData, "smartsearch"),
		}
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	return &Paths{
		ConfigDir: filepath.Join(configHome, "smartsearch"),
		DataDir:   filepath.Join(dataHome, "smartsearch"),
	}
}

// homeDir returns the user's home directory, falling back to the current
// directory when it cannot be determined.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
