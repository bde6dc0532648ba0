package seascript

import "fmt"

// expandState is the block expander's current mode
type expandState int

const (
	// stateNormal: lines are classified, substituted, and emitted directly
	stateNormal expandState = iota
	// stateInLoop: lines are captured into the loop buffer until "endloop"
	stateInLoop
	// stateGateClosed: lines are discarded until the matching "endif"
	stateGateClosed
)

// expandContext holds all mutable state for one expansion pass. A fresh
// context is created per call, so independent scripts can be expanded
// concurrently with no coordination.
type expandContext struct {
	vars     map[string]string
	device   string
	filename string
	source   []string // original raw lines, kept for error context
	maxLoop  int

	state expandState

	// loop capture, valid only in stateInLoop
	loopCount    int
	loopOpenLine int
	loopBuffer   []string

	// conditional gate, valid only in stateGateClosed
	gateDepth    int
	gateOpenLine int

	output []string
}

func newExpandContext(source []string, filename, device string) *expandContext {
	return &expandContext{
		vars:     map[string]string{"device": device},
		device:   device,
		filename: filename,
		source:   source,
		state:    stateNormal,
	}
}

// expand runs the full pass over the raw line sequence and returns the
// flat, fully-resolved command list. On error nothing is returned; a
// partially-resolved automation script is unsafe to run against a device.
func (s *SeaScript) expand(raw []string, filename, device string) ([]string, error) {
	ctx := newExpandContext(raw, filename, device)
	ctx.maxLoop = s.config.MaxLoopCount

	for _, line := range prepareLines(raw) {
		dir, cerr := classifyLine(line.text)
		if cerr != nil {
			return nil, ctx.errorAt(cerr.Kind, line, cerr.Message)
		}
		if err := ctx.dispatch(dir, line); err != nil {
			return nil, err
		}
	}

	switch ctx.state {
	case stateInLoop:
		return nil, ctx.errorAtLine(ErrUnterminatedBlock, ctx.loopOpenLine,
			"loop block opened here is never closed with endloop")
	case stateGateClosed:
		return nil, ctx.errorAtLine(ErrUnterminatedBlock, ctx.gateOpenLine,
			"if block opened here is never closed with endif")
	}

	s.logger.Debug("expanded %d raw lines into %d commands for device %q",
		len(raw), len(ctx.output), device)
	if ctx.output == nil {
		ctx.output = []string{}
	}
	return ctx.output, nil
}

// dispatch advances the state machine by one classified line
func (ctx *expandContext) dispatch(dir Directive, line scriptLine) error {
	switch ctx.state {
	case stateGateClosed:
		return ctx.dispatchGateClosed(dir, line)
	case stateInLoop:
		return ctx.dispatchInLoop(dir, line)
	default:
		return ctx.dispatchNormal(dir, line)
	}
}

func (ctx *expandContext) dispatchNormal(dir Directive, line scriptLine) error {
	switch d := dir.(type) {
	case DeviceDirective:
		ctx.device = d.Name
		ctx.vars["device"] = d.Name

	case SetDirective:
		ctx.vars[d.Name] = d.Value

	case IfDirective:
		value, ok := ctx.vars[d.Var]
		if !ok || value != d.Expected {
			ctx.state = stateGateClosed
			ctx.gateDepth = 1
			ctx.gateOpenLine = line.num
		}

	case EndIfDirective:
		// stray endif with no open gate is tolerated as a no-op

	case LoopDirective:
		if ctx.maxLoop > 0 && d.Count > ctx.maxLoop {
			return ctx.errorAt(ErrMalformedDirective, line,
				fmt.Sprintf("loop count %d exceeds the configured maximum of %d", d.Count, ctx.maxLoop))
		}
		ctx.state = stateInLoop
		ctx.loopCount = d.Count
		ctx.loopOpenLine = line.num
		ctx.loopBuffer = nil

	case EndLoopDirective:
		return ctx.errorAt(ErrUnmatchedEndLoop, line, "endloop with no open loop")

	case CommandDirective:
		ctx.output = append(ctx.output, substitute(d.Text, ctx.vars))
	}
	return nil
}

// dispatchInLoop treats the loop body as a flat command template: only
// "loop" and "endloop" are interpreted, every other line (directive-shaped
// or not) is captured as substituted text using the table state now in
// effect, not at emission time.
func (ctx *expandContext) dispatchInLoop(dir Directive, line scriptLine) error {
	switch dir.(type) {
	case EndLoopDirective:
		for i := 0; i < ctx.loopCount; i++ {
			ctx.output = append(ctx.output, ctx.loopBuffer...)
		}
		ctx.state = stateNormal
		ctx.loopBuffer = nil
		ctx.loopCount = 0

	case LoopDirective:
		return ctx.errorAt(ErrNestedLoop, line, "loop blocks do not nest")

	default:
		ctx.loopBuffer = append(ctx.loopBuffer, substitute(line.text, ctx.vars))
	}
	return nil
}

// dispatchGateClosed discards everything except the endif that closes the
// gate; discarded lines are neither substituted nor emitted and have no
// side effects on the variable table.
func (ctx *expandContext) dispatchGateClosed(dir Directive, line scriptLine) error {
	switch dir.(type) {
	case EndIfDirective:
		ctx.gateDepth--
		if ctx.gateDepth <= 0 {
			ctx.state = stateNormal
		}

	case IfDirective:
		return ctx.errorAt(ErrNestedIf, line, "if blocks do not nest")
	}
	return nil
}

func (ctx *expandContext) errorAt(kind ErrorKind, line scriptLine, message string) *ScriptError {
	return &ScriptError{
		Kind:    kind,
		Message: message,
		Position: &SourcePosition{
			Line:     line.num,
			Column:   1,
			Length:   len(line.text),
			Filename: ctx.filename,
		},
		Context: ctx.source,
	}
}

// errorAtLine builds an error pointing at a line we no longer hold the
// text of (the opener of an unterminated block)
func (ctx *expandContext) errorAtLine(kind ErrorKind, num int, message string) *ScriptError {
	length := 1
	if num >= 1 && num <= len(ctx.source) {
		length = max(1, len(ctx.source[num-1]))
	}
	return &ScriptError{
		Kind:    kind,
		Message: message,
		Position: &SourcePosition{
			Line:     num,
			Column:   1,
			Length:   length,
			Filename: ctx.filename,
		},
		Context: ctx.source,
	}
}
