package seagui

// Executor runs one expanded script command against a device and returns
// its combined output.
type Executor interface {
	Execute(command string) (string, error)
}

// ScriptRunner drives a list of expanded commands through an Executor,
// reporting progress through optional callbacks. Execution is serial and
// stops at the first command that fails.
type ScriptRunner struct {
	Executor Executor

	OnCommand func(index int, command string)
	OnOutput  func(index int, output string)
	OnError   func(index int, command string, err error)
	OnDone    func(executed int)
}

// Run executes commands in order. It returns the number of commands that
// completed and the error from the first failure, if any.
func (r *ScriptRunner) Run(commands []string) (int, error) {
	executed := 0
	for i, command := range commands {
		if r.OnCommand != nil {
			r.OnCommand(i, command)
		}
		output, err := r.Executor.Execute(command)
		if err != nil {
			if r.OnError != nil {
				r.OnError(i, command, err)
			}
			if r.OnDone != nil {
				r.OnDone(executed)
			}
			return executed, err
		}
		if r.OnOutput != nil {
			r.OnOutput(i, output)
		}
		executed++
	}
	if r.OnDone != nil {
		r.OnDone(executed)
	}
	return executed, nil
}
