package main

import (
	"fmt"
	"os"

	"github.com/calvinalkan/moesim/internal/driver"
	"github.com/calvinalkan/moesim/internal/transcript"
)

// transcriptLogger adapts transcript.Writer to driver.Logger, printing a
// warning to stderr instead of aborting the REPL if a write fails — a
// full disk or a lock timeout on the transcript shouldn't take down an
// otherwise-healthy session.
type transcriptLogger struct {
	writer *transcript.Writer
}

var _ driver.Logger = (*transcriptLogger)(nil)

func newTranscriptLogger(path string) *transcriptLogger {
	return &transcriptLogger{writer: transcript.Open(path)}
}

// Log implements driver.Logger.
func (l *transcriptLogger) Log(line string) {
	if err := l.writer.Append(line); err != nil {
		fmt.Fprintln(os.Stderr, "warning: transcript:", err)
	}
}
