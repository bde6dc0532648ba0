package seascript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrepareLinesDropsCommentsAndBlanks(t *testing.T) {
	raw := []string{
		"# header comment",
		"",
		"   ",
		"  shell echo hi  ",
		"\t# indented comment",
		"reboot",
	}

	lines := prepareLines(raw)

	want := []scriptLine{
		{text: "shell echo hi", num: 4},
		{text: "reboot", num: 6},
	}
	if diff := cmp.Diff(want, lines, cmp.AllowUnexported(scriptLine{})); diff != "" {
		t.Errorf("prepared lines mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Directive
	}{
		{"device", "device emulator-5554", DeviceDirective{Name: "emulator-5554"}},
		{"device extra tokens ignored", "device serial junk", DeviceDirective{Name: "serial"}},
		{"set single word", "set mode fast", SetDirective{Name: "mode", Value: "fast"}},
		{"set multi word value", "set msg hello   brave world", SetDirective{Name: "msg", Value: "hello brave world"}},
		{"if", "if device == pixel7", IfDirective{Var: "device", Expected: "pixel7"}},
		{"if tight spacing", "if mode==fast", IfDirective{Var: "mode", Expected: "fast"}},
		{"if empty expected", "if mode ==", IfDirective{Var: "mode", Expected: ""}},
		{"endif", "endif", EndIfDirective{}},
		{"endloop", "endloop", EndLoopDirective{}},
		{"loop", "loop 3", LoopDirective{Count: 3}},
		{"loop zero", "loop 0", LoopDirective{Count: 0}},
		{"plain command", "shell am start -n com.example/.Main", CommandDirective{Text: "shell am start -n com.example/.Main"}},
		{"keyword prefix is not a keyword", "devices", CommandDirective{Text: "devices"}},
		{"endif with trailing text is a command", "endif now", CommandDirective{Text: "endif now"}},
		{"endloop with trailing text is a command", "endloop now", CommandDirective{Text: "endloop now"}},
		{"case sensitive keywords", "Loop 3", CommandDirective{Text: "Loop 3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classifyLine(tt.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("directive mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyLineMalformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"device bare", "device"},
		{"set bare", "set"},
		{"set without value", "set name"},
		{"if without operator", "if device equals x"},
		{"loop bare", "loop"},
		{"loop non-numeric", "loop many"},
		{"loop negative", "loop -2"},
		{"loop substituted count", "loop ${n}"},
		{"loop float", "loop 1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classifyLine(tt.line)
			if err == nil {
				t.Fatalf("expected MalformedDirective for %q", tt.line)
			}
			if err.Kind != ErrMalformedDirective {
				t.Errorf("expected MalformedDirective, got %s", err.Kind)
			}
		})
	}
}
