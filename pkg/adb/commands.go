package adb

import (
	"errors"
	"strings"
)

// deviceTempDir is the scratch directory used on-device for screenshots.
const deviceTempDir = "/sdcard/SeaADBTools/temp"

// Reboot reboots the device; mode may be "", "recovery", or "bootloader".
func (m *Manager) Reboot(serial, mode string) (string, error) {
	args := []string{"reboot"}
	if mode != "" {
		args = append(args, mode)
	}
	return m.ExecSerial(serial, args...)
}

// RebootBootloader reboots the device into the bootloader (fastboot mode).
func (m *Manager) RebootBootloader(serial string) (string, error) {
	return m.ExecSerial(serial, "reboot-bootloader")
}

// Screenshot captures the device screen and pulls it to localPath.
// The on-device temp file is removed afterwards.
func (m *Manager) Screenshot(serial, localPath string) (string, error) {
	if strings.TrimSpace(localPath) == "" {
		return "", errors.New("empty screenshot destination")
	}
	remote := deviceTempDir + "/screenshot.png"
	if out, err := m.ExecSerial(serial, "shell", "mkdir", "-p", deviceTempDir); err != nil {
		return out, err
	}
	if out, err := m.ExecSerial(serial, "shell", "screencap", "-p", remote); err != nil {
		return out, err
	}
	out, err := m.ExecSerial(serial, "pull", remote, localPath)
	_, _ = m.ExecSerial(serial, "shell", "rm", "-f", remote)
	return out, err
}

// InstallAPK installs a local APK on the device.
func (m *Manager) InstallAPK(serial, apkPath string) (string, error) {
	if strings.TrimSpace(apkPath) == "" {
		return "", errors.New("empty apk path")
	}
	return m.ExecSerial(serial, "install", apkPath)
}

// Flash writes an image file to the named partition via fastboot.
func (m *Manager) Flash(serial, partition, imagePath string) (string, error) {
	if strings.TrimSpace(partition) == "" || strings.TrimSpace(imagePath) == "" {
		return "", errors.New("flash requires a partition and an image path")
	}
	return m.ExecFastboot(serial, "flash", partition, imagePath)
}

// UnlockBootloader issues "fastboot oem unlock". Callers are expected to
// confirm with the user first; this wipes most devices.
func (m *Manager) UnlockBootloader(serial string) (string, error) {
	return m.ExecFastboot(serial, "oem", "unlock")
}

// Push uploads a local file to a remote directory on the device.
func (m *Manager) Push(serial, localPath, remoteDir string) (string, error) {
	if strings.TrimSpace(localPath) == "" || strings.TrimSpace(remoteDir) == "" {
		return "", errors.New("invalid push arguments")
	}
	if !strings.HasSuffix(remoteDir, "/") {
		remoteDir += "/"
	}
	return m.ExecSerial(serial, "push", localPath, remoteDir)
}

// Pull downloads a remote path to a local destination.
func (m *Manager) Pull(serial, remotePath, localPath string) (string, error) {
	if strings.TrimSpace(remotePath) == "" || strings.TrimSpace(localPath) == "" {
		return "", errors.New("invalid pull arguments")
	}
	return m.ExecSerial(serial, "pull", remotePath, localPath)
}
