// Package seascript implements the SeaScript device-automation language:
// a line-oriented macro facility that sequences ADB/Fastboot commands with
// variables, device-context switches, repetition, and conditional gating.
//
// The package turns script source into a flat, fully-resolved list of
// command strings; it never executes anything itself. Basic usage:
//
//	sea := seascript.New(nil)
//	commands, err := sea.ExpandSource(source, "flash.sea", "emulator-5554")
//	if err != nil {
//		// *seascript.ScriptError with kind, line, and source context
//	}
//	for _, cmd := range commands {
//		// hand cmd to the executor of your choice, in order
//	}
package seascript

import "strings"

// SeaScript is the script expansion engine. One instance may expand any
// number of scripts; every Expand call owns its own variable table and
// block state, so concurrent expansion of independent scripts is safe.
type SeaScript struct {
	config *Config
	logger *Logger
}

// New creates a new SeaScript engine. A nil config uses DefaultConfig.
func New(config *Config) *SeaScript {
	if config == nil {
		config = DefaultConfig()
	}
	return &SeaScript{
		config: config,
		logger: NewLogger(config.Debug),
	}
}

// Logger returns the engine's logger so embedding applications can
// redirect or silence it
func (s *SeaScript) Logger() *Logger {
	return s.logger
}

// Expand resolves an ordered sequence of raw script lines against an
// initial active device and returns the resolved command sequence.
// Expansion is all-or-nothing: on error no commands are returned.
// The returned error is always a *ScriptError.
func (s *SeaScript) Expand(lines []string, device string) ([]string, error) {
	return s.ExpandNamed(lines, "", device)
}

// ExpandNamed is Expand with a filename used in error positions
func (s *SeaScript) ExpandNamed(lines []string, filename, device string) ([]string, error) {
	commands, err := s.expand(lines, filename, device)
	if err != nil {
		if serr, ok := err.(*ScriptError); ok {
			if s.config.ShowErrorContext {
				s.logger.ExpansionError(serr, s.config.ContextLines)
			} else {
				s.logger.ExpansionError(serr, -1)
			}
		}
		return nil, err
	}
	return commands, nil
}

// ExpandSource splits script source into lines and expands it
func (s *SeaScript) ExpandSource(source, filename, device string) ([]string, error) {
	return s.ExpandNamed(SplitLines(source), filename, device)
}

// SplitLines splits script source into raw lines, tolerating both Unix
// and Windows line endings. Script files are UTF-8 text.
func SplitLines(source string) []string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	return strings.Split(source, "\n")
}
