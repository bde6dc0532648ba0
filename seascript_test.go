package seascript

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpandSource(t *testing.T) {
	sea := New(nil)

	source := "# flash helper\r\nset img boot.img\r\nflash boot ${img}\r\n"
	commands, err := sea.ExpandSource(source, "flash.sea", "pixel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"flash boot boot.img"}
	if diff := cmp.Diff(want, commands); diff != "" {
		t.Errorf("source expansion mismatch (-want +got):\n%s", diff)
	}
}

func TestExpandSourceErrorCarriesFilename(t *testing.T) {
	sea := newQuiet(nil)

	_, err := sea.ExpandSource("loop nope\n", "bad.sea", "X")
	serr := expectKind(t, err, ErrMalformedDirective, 1)
	if serr.Position == nil || serr.Position.Filename != "bad.sea" {
		t.Errorf("expected filename bad.sea in error position, got %+v", serr.Position)
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\r\nb\nc")
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("SplitLines mismatch (-want +got):\n%s", diff)
	}
}

func TestExpansionErrorRendering(t *testing.T) {
	sea := New(nil)

	var buf strings.Builder
	sea.Logger().SetOutput(io.Discard, &buf)

	_, err := sea.ExpandSource("shell echo hi\nendloop\n", "r.sea", "X")
	if err == nil {
		t.Fatal("expected error")
	}

	out := buf.String()
	for _, fragment := range []string{"UnmatchedEndLoop", "line 2", "r.sea", "endloop", "^"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("error rendering missing %q:\n%s", fragment, out)
		}
	}
}
