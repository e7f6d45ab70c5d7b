package driver

import (
	"bufio"
	"io"
)

// Prompter abstracts the source of menu answers: an interactive
// liner.State in normal use, or a line-at-a-time file reader in
// --script (batch) mode.
type Prompter interface {
	// Prompt displays label and returns the next answer. It returns
	// io.EOF (wrapped or not) when the input source is exhausted.
	Prompt(label string) (string, error)
	// AppendHistory records an accepted answer. A no-op for
	// non-interactive prompters.
	AppendHistory(item string)
}

// scriptPrompter reads answers one per line from a script file, ignoring
// the prompt label entirely — the script supplies every answer in order,
// the way original_source/teste.py drives the simulator from a fixed
// sequence of choices instead of a human at a terminal.
type scriptPrompter struct {
	scanner *bufio.Scanner
}

// NewScriptPrompter returns a Prompter that answers every Prompt call with
// the next non-empty line of r.
func NewScriptPrompter(r io.Reader) Prompter {
	return &scriptPrompter{scanner: bufio.NewScanner(r)}
}

func (p *scriptPrompter) Prompt(string) (string, error) {
	for p.scanner.Scan() {
		line := p.scanner.Text()
		if line != "" {
			return line, nil
		}
	}

	if err := p.scanner.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func (p *scriptPrompter) AppendHistory(string) {}
