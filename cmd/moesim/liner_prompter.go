package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/calvinalkan/moesim/internal/driver"
)

// linerPrompter drives driver.Driver interactively over a
// github.com/peterh/liner line editor, the way cmd/sloty's REPL does:
// history, Ctrl-C aborts, and tab completion over the menu's commands.
type linerPrompter struct {
	state       *liner.State
	historyFile string
}

var _ driver.Prompter = (*linerPrompter)(nil)

// newLinerPrompter constructs a linerPrompter and loads historyFile, if
// non-empty and present.
func newLinerPrompter(historyFile string) *linerPrompter {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(completer)

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}

	return &linerPrompter{state: state, historyFile: historyFile}
}

// Prompt implements driver.Prompter, translating liner's own abort
// sentinel into io.EOF so package driver only has to recognize one
// "input exhausted" condition.
func (p *linerPrompter) Prompt(label string) (string, error) {
	line, err := p.state.Prompt(label)
	if err != nil {
		if err == liner.ErrPromptAborted { //nolint:errorlint // liner returns this as a bare sentinel
			return "", io.EOF
		}

		return "", err
	}

	return line, nil
}

// AppendHistory implements driver.Prompter.
func (p *linerPrompter) AppendHistory(item string) {
	p.state.AppendHistory(item)
}

// Close saves history (if configured) and releases the terminal.
func (p *linerPrompter) Close() {
	if p.historyFile != "" {
		if dir := filepath.Dir(p.historyFile); dir != "." {
			_ = os.MkdirAll(dir, 0o755)
		}

		if f, err := os.Create(p.historyFile); err == nil {
			_, _ = p.state.WriteHistory(f)
			_ = f.Close()
		}
	}

	_ = p.state.Close()
}

var menuWords = []string{"h", "j", "v", "y", "l", "e", "s", "reset"}

func completer(line string) []string {
	lower := strings.ToLower(line)

	var completions []string

	for _, w := range menuWords {
		if strings.HasPrefix(w, lower) {
			completions = append(completions, w)
		}
	}

	return completions
}
