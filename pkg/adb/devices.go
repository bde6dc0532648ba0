package adb

import "strings"

// Device is one attached device as reported by adb or fastboot.
type Device struct {
	Serial      string
	State       string
	Product     string
	Model       string
	Device      string
	TransportID string
}

// Devices enumerates attached devices, merging "adb devices -l" with
// "fastboot devices". ADB info wins when a serial appears in both lists.
// The raw tool output is returned alongside for display.
func (m *Manager) Devices() ([]Device, string, error) {
	m.EnsureServer()
	adbOut, adbErr := m.Exec("devices", "-l")
	devices := parseDevices(adbOut)

	fbOut, _ := m.ExecFastboot("", "devices")

	seen := make(map[string]bool, len(devices))
	for _, d := range devices {
		seen[d.Serial] = true
	}
	for _, d := range parseFastbootDevices(fbOut) {
		if !seen[d.Serial] {
			devices = append(devices, d)
		}
	}

	return devices, adbOut + "\n" + fbOut, adbErr
}

// Serials returns the serials of devices that are usable targets
// (online adb devices and fastboot devices, no offline/unauthorized).
func (m *Manager) Serials() ([]string, error) {
	devices, _, err := m.Devices()
	var serials []string
	for _, d := range devices {
		if d.State == "device" || d.State == "fastboot" || d.State == "recovery" {
			serials = append(serials, d.Serial)
		}
	}
	return serials, err
}

// parseDevices parses "adb devices -l" output.
func parseDevices(output string) []Device {
	var devices []Device
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// skip headers and server startup noise
		if strings.HasPrefix(line, "List of devices") ||
			strings.HasPrefix(line, "*") ||
			strings.Contains(line, "daemon") ||
			strings.Contains(line, "adb server") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		d := Device{Serial: fields[0]}
		rest := fields[1:]
		if !strings.Contains(rest[0], ":") {
			d.State = rest[0]
			rest = rest[1:]
		}
		for _, tok := range rest {
			key, val, found := strings.Cut(tok, ":")
			if !found {
				continue
			}
			switch key {
			case "product":
				d.Product = val
			case "model":
				d.Model = val
			case "device":
				d.Device = val
			case "transport_id":
				d.TransportID = val
			}
		}
		devices = append(devices, d)
	}
	return devices
}

// parseFastbootDevices parses "fastboot devices" output.
func parseFastbootDevices(output string) []Device {
	var devices []Device
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == "fastboot" {
			devices = append(devices, Device{
				Serial: fields[0],
				State:  "fastboot",
			})
		}
	}
	return devices
}
