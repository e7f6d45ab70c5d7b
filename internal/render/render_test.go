package render_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/calvinalkan/moesim/internal/coherence"
	"github.com/calvinalkan/moesim/internal/render"
)

func Test_Snapshot_Lists_Every_Block_And_Cache(t *testing.T) {
	t.Parallel()

	sys := coherence.NewSystem(coherence.SystemOptions{Seed: 1, HasSeed: true})
	if _, err := sys.Read(0, 5); err != nil {
		t.Fatalf("Read: %v", err)
	}

	var buf strings.Builder
	render.Snapshot(&buf, sys.Snapshot())

	out := buf.String()

	if !strings.Contains(out, "block 31") {
		t.Fatalf("output missing last block:\n%s", out)
	}

	if !strings.Contains(out, "cache 3") {
		t.Fatalf("output missing last cache:\n%s", out)
	}

	if !strings.Contains(out, "tag=1") {
		t.Fatalf("output missing the filled line's tag:\n%s", out)
	}
}

func Test_Snapshot_Marks_Invalid_Lines(t *testing.T) {
	t.Parallel()

	sys := coherence.NewSystem(coherence.SystemOptions{Seed: 1, HasSeed: true})

	var buf strings.Builder
	render.Snapshot(&buf, sys.Snapshot())

	out := buf.String()

	invalidLine := regexp.MustCompile(`\bI\b`)
	if got := len(invalidLine.FindAllString(out, -1)); got != coherence.NumCaches*coherence.NumLines {
		t.Fatalf("got %d Invalid lines rendered, want %d on a fresh system:\n%s", got, coherence.NumCaches*coherence.NumLines, out)
	}
}
