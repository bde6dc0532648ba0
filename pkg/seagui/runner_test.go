package seagui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeExecutor struct {
	failOn string
	seen   []string
}

func (f *fakeExecutor) Execute(command string) (string, error) {
	f.seen = append(f.seen, command)
	if command == f.failOn {
		return "", errors.New("device not found")
	}
	return "ok: " + command, nil
}

func TestScriptRunnerRunsAll(t *testing.T) {
	exec := &fakeExecutor{}
	var outputs []string
	doneCount := -1
	runner := &ScriptRunner{
		Executor: exec,
		OnOutput: func(i int, out string) { outputs = append(outputs, out) },
		OnDone:   func(n int) { doneCount = n },
	}

	commands := []string{"devices", "shell input keyevent 26", "reboot"}
	executed, err := runner.Run(commands)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if executed != 3 || doneCount != 3 {
		t.Errorf("executed = %d, doneCount = %d, want 3", executed, doneCount)
	}
	if diff := cmp.Diff(commands, exec.seen); diff != "" {
		t.Errorf("command order mismatch (-want +got):\n%s", diff)
	}
	if len(outputs) != 3 || outputs[0] != "ok: devices" {
		t.Errorf("unexpected outputs: %v", outputs)
	}
}

func TestScriptRunnerStopsOnFailure(t *testing.T) {
	exec := &fakeExecutor{failOn: "shell broken"}
	var failedCommand string
	doneCount := -1
	runner := &ScriptRunner{
		Executor: exec,
		OnError:  func(i int, cmd string, err error) { failedCommand = cmd },
		OnDone:   func(n int) { doneCount = n },
	}

	executed, err := runner.Run([]string{"devices", "shell broken", "reboot"})
	if err == nil {
		t.Fatal("expected error")
	}
	if executed != 1 || doneCount != 1 {
		t.Errorf("executed = %d, doneCount = %d, want 1", executed, doneCount)
	}
	if failedCommand != "shell broken" {
		t.Errorf("failed command = %q", failedCommand)
	}
	if len(exec.seen) != 2 {
		t.Errorf("executor saw %d commands, want 2 (stop after failure)", len(exec.seen))
	}
}

func TestScriptRunnerEmpty(t *testing.T) {
	runner := &ScriptRunner{Executor: &fakeExecutor{}}
	executed, err := runner.Run(nil)
	if err != nil || executed != 0 {
		t.Errorf("empty run: executed = %d, err = %v", executed, err)
	}
}
