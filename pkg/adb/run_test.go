package adb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		command string
		family  Family
		args    []string
	}{
		{"devices", FamilyADB, []string{"devices"}},
		{"shell input keyevent 26", FamilyADB, []string{"shell", "input", "keyevent", "26"}},
		{"fastboot reboot", FamilyFastboot, []string{"reboot"}},
		{"fastboot flash boot boot.img", FamilyFastboot, []string{"flash", "boot", "boot.img"}},
		{`install "/tmp/my app.apk"`, FamilyADB, []string{"install", "/tmp/my app.apk"}},
		{`push 'a file.txt' /sdcard/`, FamilyADB, []string{"push", "a file.txt", "/sdcard/"}},
	}
	for _, tt := range tests {
		family, args, err := SplitCommand(tt.command)
		if err != nil {
			t.Errorf("SplitCommand(%q) error: %v", tt.command, err)
			continue
		}
		if family != tt.family {
			t.Errorf("SplitCommand(%q) family = %v, want %v", tt.command, family, tt.family)
		}
		if diff := cmp.Diff(tt.args, args); diff != "" {
			t.Errorf("SplitCommand(%q) args mismatch (-want +got):\n%s", tt.command, diff)
		}
	}
}

func TestSplitCommandEmpty(t *testing.T) {
	if _, _, err := SplitCommand("   "); err == nil {
		t.Error("expected error for blank command")
	}
}

func TestSplitCommandUnterminatedQuote(t *testing.T) {
	if _, _, err := SplitCommand(`install "broken`); err == nil {
		t.Error("expected error for unterminated quote")
	}
}

func TestFamilyString(t *testing.T) {
	if FamilyADB.String() != "adb" || FamilyFastboot.String() != "fastboot" {
		t.Errorf("unexpected family names: %v %v", FamilyADB, FamilyFastboot)
	}
}
