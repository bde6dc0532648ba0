package seascript

import (
	"fmt"
	"strconv"
	"strings"
)

// scriptLine is one trimmed, non-empty, non-comment line of script source,
// together with its 1-based line number in the original input.
type scriptLine struct {
	text string
	num  int
}

// prepareLines trims each raw line and drops blank lines and full-line
// comments (first non-whitespace character '#'). Original line numbers are
// preserved so errors point at the source, not the filtered sequence.
func prepareLines(raw []string) []scriptLine {
	var lines []scriptLine
	for i, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, scriptLine{text: trimmed, num: i + 1})
	}
	return lines
}

// classifyLine tags one prepared line as a Directive. Keyword matching is
// on the first whitespace-delimited token, case-sensitive; "endif" and
// "endloop" must be the entire line. Anything unrecognized is a plain
// command. A recognized keyword with bad arguments returns a ScriptError
// of kind ErrMalformedDirective with no position; the expander fills in
// the position and context.
func classifyLine(text string) (Directive, *ScriptError) {
	if text == "endif" {
		return EndIfDirective{}, nil
	}
	if text == "endloop" {
		return EndLoopDirective{}, nil
	}

	fields := strings.Fields(text)
	switch fields[0] {
	case "device":
		if len(fields) < 2 {
			return nil, malformed("device directive requires a device identifier")
		}
		return DeviceDirective{Name: fields[1]}, nil

	case "set":
		if len(fields) < 3 {
			return nil, malformed("set directive requires a name and a value")
		}
		return SetDirective{
			Name:  fields[1],
			Value: strings.Join(fields[2:], " "),
		}, nil

	case "if":
		cond := strings.TrimSpace(text[len("if"):])
		varName, expected, found := strings.Cut(cond, "==")
		if !found {
			return nil, malformed("if directive requires a condition of the form <var> == <value>")
		}
		return IfDirective{
			Var:      strings.TrimSpace(varName),
			Expected: strings.TrimSpace(expected),
		}, nil

	case "loop":
		if len(fields) < 2 {
			return nil, malformed("loop directive requires a repeat count")
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil || count < 0 {
			return nil, malformed(fmt.Sprintf("loop count must be a non-negative integer, got %q", fields[1]))
		}
		return LoopDirective{Count: count}, nil
	}

	return CommandDirective{Text: text}, nil
}

func malformed(message string) *ScriptError {
	return &ScriptError{
		Kind:    ErrMalformedDirective,
		Message: message,
	}
}
