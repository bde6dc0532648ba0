package adb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDevices(t *testing.T) {
	output := "List of devices attached\n" +
		"emulator-5554          device product:sdk_gphone64_x86_64 model:sdk_gphone64_x86_64 device:emu64xa transport_id:1\n" +
		"R58M123ABCD            unauthorized transport_id:2\n" +
		"192.168.1.20:5555      offline\n" +
		"* daemon not running; starting now at tcp:5037\n" +
		"* daemon started successfully\n"

	got := parseDevices(output)
	want := []Device{
		{
			Serial:      "emulator-5554",
			State:       "device",
			Product:     "sdk_gphone64_x86_64",
			Model:       "sdk_gphone64_x86_64",
			Device:      "emu64xa",
			TransportID: "1",
		},
		{Serial: "R58M123ABCD", State: "unauthorized", TransportID: "2"},
		{Serial: "192.168.1.20:5555", State: "offline"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseDevices mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDevicesEmpty(t *testing.T) {
	if got := parseDevices("List of devices attached\n\n"); len(got) != 0 {
		t.Errorf("expected no devices, got %v", got)
	}
}

func TestParseFastbootDevices(t *testing.T) {
	output := "1A2B3C4D\tfastboot\nXYZ987\t fastboot\n"
	got := parseFastbootDevices(output)
	want := []Device{
		{Serial: "1A2B3C4D", State: "fastboot"},
		{Serial: "XYZ987", State: "fastboot"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseFastbootDevices mismatch (-want +got):\n%s", diff)
	}
}
