// Package render formats a coherence.SystemView as the human-readable
// dump the driver prints after every accepted request: one line per main
// memory block, then for each cache a header line followed by one row per
// cache line, Invalid lines shown as "I" with no tag or data.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/calvinalkan/moesim/internal/coherence"
)

// Snapshot writes a full dump of view to out.
func Snapshot(out io.Writer, view coherence.SystemView) {
	fmt.Fprintln(out, "-- main memory --")

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	for block, data := range view.MainMemory {
		fmt.Fprintf(tw, "block %2d\t%s\n", block, formatBlock(data))
	}

	tw.Flush() //nolint:errcheck // writing to an in-memory buffer or terminal

	fmt.Fprintln(out, "\n-- caches --")

	for cacheID, cache := range view.Caches {
		fmt.Fprintf(out, "cache %d (fifo=%d):\n", cacheID, cache.FIFOIndex)

		ctw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

		for line, l := range cache.Lines {
			if l.State == coherence.Invalid {
				fmt.Fprintf(ctw, "  line %d\tI\t-\t-\n", line)

				continue
			}

			fmt.Fprintf(ctw, "  line %d\t%s\ttag=%d\t%s\n", line, l.State, l.Tag, formatBlock(l.Data))
		}

		ctw.Flush() //nolint:errcheck // writing to an in-memory buffer or terminal
	}
}

// formatBlock renders a block's words as a bracketed, comma-separated list.
func formatBlock(b coherence.Block) string {
	words := make([]string, len(b))
	for i, w := range b {
		words[i] = fmt.Sprintf("%d", w)
	}

	return "[" + strings.Join(words, ", ") + "]"
}
