package seascript

// SourcePosition tracks the position of a script line in its source file
type SourcePosition struct {
	Line     int
	Column   int
	Length   int
	Filename string
}

// Directive is a classified script line. Exactly one variant is produced
// per non-empty, non-comment line.
type Directive interface {
	isDirective()
}

// DeviceDirective switches the active device: "device <serial>"
type DeviceDirective struct {
	Name string
}

func (DeviceDirective) isDirective() {}

// SetDirective assigns a variable: "set <name> <value...>".
// The value is stored literally, never macro-expanded at assignment time.
type SetDirective struct {
	Name  string
	Value string
}

func (SetDirective) isDirective() {}

// IfDirective opens a conditional region: "if <var> == <expected>"
type IfDirective struct {
	Var      string
	Expected string
}

func (IfDirective) isDirective() {}

// EndIfDirective closes a conditional region: the exact line "endif"
type EndIfDirective struct{}

func (EndIfDirective) isDirective() {}

// LoopDirective opens a repetition block: "loop <count>".
// The count is a literal non-negative integer token, not substitutable.
type LoopDirective struct {
	Count int
}

func (LoopDirective) isDirective() {}

// EndLoopDirective closes a repetition block: the exact line "endloop"
type EndLoopDirective struct{}

func (EndLoopDirective) isDirective() {}

// CommandDirective is any line that is not a recognized directive; the
// text is emitted (after substitution) as an executable command.
type CommandDirective struct {
	Text string
}

func (CommandDirective) isDirective() {}

// ErrorKind identifies the class of expansion failure
type ErrorKind int

const (
	// ErrMalformedDirective is a recognized keyword with missing or invalid arguments
	ErrMalformedDirective ErrorKind = iota
	// ErrNestedLoop is a "loop" encountered while a loop block is already open
	ErrNestedLoop
	// ErrNestedIf is an "if" encountered while a conditional gate is already closed
	ErrNestedIf
	// ErrUnmatchedEndLoop is an "endloop" with no open loop
	ErrUnmatchedEndLoop
	// ErrUnterminatedBlock is end of input inside an open loop or conditional
	ErrUnterminatedBlock
)

// String returns the canonical name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedDirective:
		return "MalformedDirective"
	case ErrNestedLoop:
		return "NestedLoopNotSupported"
	case ErrNestedIf:
		return "NestedIfNotSupported"
	case ErrUnmatchedEndLoop:
		return "UnmatchedEndLoop"
	case ErrUnterminatedBlock:
		return "UnterminatedBlock"
	default:
		return "Unknown"
	}
}

// ScriptError represents an expansion error with position information
type ScriptError struct {
	Kind     ErrorKind
	Message  string
	Position *SourcePosition
	Context  []string
}

func (e *ScriptError) Error() string {
	return e.Message
}

// Line returns the 1-based source line the error refers to, or 0 if unknown
func (e *ScriptError) Line() int {
	if e.Position == nil {
		return 0
	}
	return e.Position.Line
}

// Config holds configuration for SeaScript
type Config struct {
	Debug            bool
	ShowErrorContext bool
	ContextLines     int
	// MaxLoopCount bounds the "loop" directive count; 0 disables the check
	MaxLoopCount int
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		ShowErrorContext: true,
		ContextLines:     2,
		MaxLoopCount:     10000,
	}
}
