package seagui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Theme != ThemeAuto {
		t.Errorf("default theme = %q, want auto", settings.Theme)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &Settings{
		Theme:        ThemeDark,
		ADBPath:      "/opt/platform-tools/adb",
		FastbootPath: "/opt/platform-tools/fastboot",
		LastDevice:   "emulator-5554",
	}
	if err := SaveSettings(path, want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoadSettingsInvalidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: neon\nlast_device: abc\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Theme != ThemeAuto {
		t.Errorf("theme = %q, want auto fallback", settings.Theme)
	}
	if settings.LastDevice != "abc" {
		t.Errorf("last_device = %q, want abc", settings.LastDevice)
	}
}

func TestLoadSettingsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	settings, err := LoadSettings(path)
	if err == nil {
		t.Error("expected parse error")
	}
	if settings == nil || settings.Theme != ThemeAuto {
		t.Errorf("expected defaults on parse failure, got %+v", settings)
	}
}
