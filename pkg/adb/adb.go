// Package adb wraps the adb and fastboot command-line tools. It is the
// execution side of the automation console: the script engine produces
// resolved command strings, this package runs them against a device and
// returns the captured output.
package adb

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Manager encapsulates adb/fastboot invocation and path configuration.
type Manager struct {
	ADBPath      string
	FastbootPath string
}

// NewManager creates a Manager. Empty paths are auto-detected from PATH
// and common SDK install locations.
func NewManager(adbPath, fastbootPath string) *Manager {
	if adbPath == "" {
		adbPath = AutoDetect("adb")
	}
	if fastbootPath == "" {
		fastbootPath = AutoDetect("fastboot")
	}
	return &Manager{ADBPath: adbPath, FastbootPath: fastbootPath}
}

// IsAvailable reports whether an adb binary can be invoked at all.
func (m *Manager) IsAvailable() bool {
	if m.ADBPath != "" {
		if _, err := os.Stat(m.ADBPath); err == nil {
			return true
		}
	}
	_, err := exec.LookPath("adb")
	return err == nil
}

// Exec runs adb with the provided args and returns combined output.
func (m *Manager) Exec(args ...string) (string, error) {
	bin := m.ADBPath
	if bin == "" {
		bin = "adb"
	}
	cmd := exec.Command(bin, args...)
	cmd.Env = os.Environ()
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// ExecSerial runs adb for a specific serial by injecting "-s <serial>".
func (m *Manager) ExecSerial(serial string, args ...string) (string, error) {
	if strings.TrimSpace(serial) != "" {
		args = append([]string{"-s", serial}, args...)
	}
	return m.Exec(args...)
}

// ExecFastboot runs fastboot for a specific serial.
func (m *Manager) ExecFastboot(serial string, args ...string) (string, error) {
	bin := m.FastbootPath
	if bin == "" {
		found, err := exec.LookPath("fastboot")
		if err != nil {
			return "", errors.New("fastboot executable not found")
		}
		bin = found
	}
	if strings.TrimSpace(serial) != "" {
		args = append([]string{"-s", serial}, args...)
	}
	cmd := exec.Command(bin, args...)
	cmd.Env = os.Environ()
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// Version returns the adb version banner.
func (m *Manager) Version() (string, error) {
	return m.Exec("version")
}

// EnsureServer starts the adb server if it is not already running.
func (m *Manager) EnsureServer() {
	_, _ = m.Exec("start-server")
}

// AutoDetect tries to find the named platform tool ("adb" or "fastboot")
// in PATH or common SDK install locations. Returns "" when not found.
func AutoDetect(tool string) string {
	exe := tool
	if runtime.GOOS == "windows" {
		exe += ".exe"
	}
	if p, err := exec.LookPath(exe); err == nil {
		return p
	}

	sdkRoots := []string{
		os.Getenv("ANDROID_SDK_ROOT"),
		os.Getenv("ANDROID_HOME"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		switch runtime.GOOS {
		case "darwin":
			sdkRoots = append(sdkRoots, filepath.Join(home, "Library", "Android", "sdk"))
		case "windows":
			sdkRoots = append(sdkRoots, filepath.Join(home, "AppData", "Local", "Android", "Sdk"))
		default:
			sdkRoots = append(sdkRoots,
				filepath.Join(home, "Android", "Sdk"),
				filepath.Join(home, "Android", "sdk"))
		}
	}
	for _, root := range sdkRoots {
		if root == "" {
			continue
		}
		cand := filepath.Join(root, "platform-tools", exe)
		if fileExists(cand) {
			return cand
		}
	}

	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{"/usr/local/bin/" + exe, "/opt/homebrew/bin/" + exe}
	case "linux":
		candidates = []string{"/usr/bin/" + exe, "/usr/local/bin/" + exe}
	case "windows":
		candidates = []string{filepath.Join("C:\\", "Android", "platform-tools", exe)}
	}
	for _, c := range candidates {
		if fileExists(c) {
			return c
		}
	}
	return ""
}

func fileExists(p string) bool {
	if p == "" {
		return false
	}
	st, err := os.Stat(p)
	if err != nil {
		return false
	}
	return !st.IsDir()
}
