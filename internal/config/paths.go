// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global eyecare directory.
	GlobalDirName = ".eyecare"

	// EnvConfigFile overrides the config file location.
	EnvConfigFile = "EYECARE_CONFIG"

	// EnvDebug enables the diagnostic log when set to a truthy value.
	EnvDebug = "EYECARE_DEBUG"
)

// File names
const (
	ConfigFileName   = "config.yaml"
	DebugLogFileName = "debug_log.txt"
	LockFileName     = "eyecared.lock"
)

// GlobalDir returns the path to the global eyecare directory (~/.eyecare/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// DefaultReminderFile returns the config file path, honoring EYECARE_CONFIG.
func DefaultReminderFile() (string, error) {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return path, nil
	}
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// GlobalDebugLogFile returns the path to the diagnostic log.
func GlobalDebugLogFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DebugLogFileName), nil
}

// GlobalLockFile returns the path to the single-instance lock file.
func GlobalLockFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LockFileName), nil
}

// EnsureGlobalDir creates the global eyecare directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// DebugEnabled reports whether EYECARE_DEBUG asks for the diagnostic log.
func DebugEnabled() bool {
	switch os.Getenv(EnvDebug) {
	case "true", "1", "yes":
		return true
	}
	return false
}
