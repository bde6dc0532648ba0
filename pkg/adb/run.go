package adb

import (
	"errors"

	"github.com/google/shlex"
)

// Family identifies which tool a command is routed to.
type Family int

const (
	FamilyADB Family = iota
	FamilyFastboot
)

func (f Family) String() string {
	if f == FamilyFastboot {
		return "fastboot"
	}
	return "adb"
}

// SplitCommand splits a resolved command line into a tool family and an
// argv slice. A leading "fastboot" token selects the fastboot family and
// is stripped; everything else runs under adb. Quoting follows shell
// rules so paths with spaces survive.
func SplitCommand(command string) (Family, []string, error) {
	args, err := shlex.Split(command)
	if err != nil {
		return FamilyADB, nil, err
	}
	if len(args) == 0 {
		return FamilyADB, nil, errors.New("empty command")
	}
	if args[0] == "fastboot" {
		return FamilyFastboot, args[1:], nil
	}
	return FamilyADB, args, nil
}

// Run executes one expanded script command against the given device,
// dispatching to adb or fastboot based on the leading token.
func (m *Manager) Run(serial, command string) (string, error) {
	family, args, err := SplitCommand(command)
	if err != nil {
		return "", err
	}
	if family == FamilyFastboot {
		if len(args) == 0 {
			return "", errors.New("fastboot command has no arguments")
		}
		return m.ExecFastboot(serial, args...)
	}
	return m.ExecSerial(serial, args...)
}
