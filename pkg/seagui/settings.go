// Package seagui provides shared functionality for the SeaADBTools GUI:
// persistent settings and the script runner that feeds expanded commands
// to a device executor.
package seagui

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ThemeMode represents the GUI theme setting
type ThemeMode string

const (
	ThemeAuto  ThemeMode = "auto"  // Follow OS preference
	ThemeDark  ThemeMode = "dark"  // Force dark theme
	ThemeLight ThemeMode = "light" // Force light theme
)

// Settings holds the persisted GUI configuration.
type Settings struct {
	Theme        ThemeMode `yaml:"theme"`
	ADBPath      string    `yaml:"adb_path"`
	FastbootPath string    `yaml:"fastboot_path"`
	LastDevice   string    `yaml:"last_device"`
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{Theme: ThemeAuto}
}

// GetConfigDir returns the configuration directory path.
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seaadb")
}

// GetConfigPath returns the full path to the config file.
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// LoadSettings reads settings from path. A missing file returns defaults
// without error; the file is created on the next SaveSettings.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return DefaultSettings(), err
	}
	if settings.Theme != ThemeDark && settings.Theme != ThemeLight {
		settings.Theme = ThemeAuto
	}
	return settings, nil
}

// SaveSettings writes settings to path, creating parent directories as needed.
func SaveSettings(path string, settings *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
