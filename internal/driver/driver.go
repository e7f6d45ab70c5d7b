// Package driver implements the interactive menu that sits on top of
// package coherence, the way cmd/sloty's REPL sits on top of its
// slotcache: a character-driven prompt loop, re-prompting on anything
// that would otherwise reach the engine as a precondition violation.
package driver

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/calvinalkan/moesim/internal/coherence"
	"github.com/calvinalkan/moesim/internal/render"
	"github.com/calvinalkan/moesim/internal/vocabulary"
)

// cacheKeys maps the menu's cache-select characters to cache ids, in
// the fixed order the menu presents them.
var cacheKeys = []string{"h", "j", "v", "y"}

const quitKey = "s"

// Logger receives one entry per completed request: the request line,
// followed by the snapshot printed afterward. cmd/moesim's
// transcriptLogger adapts transcript.Writer to this interface.
type Logger interface {
	Log(line string)
}

// NoopLogger discards everything logged to it.
type NoopLogger struct{}

// Log implements Logger.
func (NoopLogger) Log(string) {}

// Driver runs the read-eval-print loop described in SPEC_FULL.md §6.4
// against a coherence.System, using out for all output and prompter for
// all input.
type Driver struct {
	system       *coherence.System
	prompter     Prompter
	out          io.Writer
	log          Logger
	promptPrefix string
}

// New returns a Driver operating on system.
func New(system *coherence.System, prompter Prompter, out io.Writer, log Logger) *Driver {
	if log == nil {
		log = NoopLogger{}
	}

	return &Driver{system: system, prompter: prompter, out: out, log: log}
}

// SetPromptPrefix prepends prefix to every menu prompt, letting callers
// honor a configured prompt string the way a REPL's top-level prompt is
// configurable.
func (d *Driver) SetPromptPrefix(prefix string) {
	d.promptPrefix = prefix
}

func (d *Driver) prompt(label string) (string, error) {
	return d.prompter.Prompt(d.promptPrefix + label)
}

// Run drives the menu until the user quits or the input source is
// exhausted. A reset request, if the caller supplies resetFn, swaps the
// Driver's underlying System for a freshly constructed one without
// ending the loop.
func (d *Driver) Run(resetFn func() *coherence.System) error {
	for {
		cacheID, done, err := d.promptCache()
		if err != nil {
			if errors.Is(err, errDone) {
				return nil
			}

			return err
		}

		if done {
			return nil
		}

		if cacheID == resetCommand {
			if resetFn != nil {
				d.system = resetFn()
				fmt.Fprintln(d.out, "system reset")
			}

			continue
		}

		op, done, err := d.promptOperation()
		if err != nil {
			if errors.Is(err, errDone) {
				return nil
			}

			return err
		}

		if done {
			return nil
		}

		address, err := d.promptAddress()
		if err != nil {
			if errors.Is(err, errDone) {
				return nil
			}

			return err
		}

		if err := d.perform(cacheID, op, address); err != nil {
			if errors.Is(err, errDone) {
				return nil
			}

			fmt.Fprintln(d.out, "error:", err)

			continue
		}

		render.Snapshot(d.out, d.system.Snapshot())
	}
}

const resetCommand = -1

// promptCache reads a cache-select character, re-prompting on anything
// that is not a known key, the quit key, or "reset".
func (d *Driver) promptCache() (int, bool, error) {
	for {
		answer, err := d.prompt("cache [h,j,v,y] or s to quit: ")
		if err != nil {
			return 0, false, terminate(err)
		}

		answer = strings.TrimSpace(strings.ToLower(answer))

		if answer == quitKey {
			return 0, true, nil
		}

		if answer == "reset" {
			return resetCommand, false, nil
		}

		for id, key := range cacheKeys {
			if answer == key {
				d.prompter.AppendHistory(answer)

				return id, false, nil
			}
		}

		fmt.Fprintln(d.out, "unrecognized cache:", answer)
	}
}

// operation identifies which engine call a completed request maps to.
type operation int

const (
	opRead operation = iota
	opWrite
)

func (d *Driver) promptOperation() (operation, bool, error) {
	for {
		answer, err := d.prompt("operation [l=read, e=write] or s to quit: ")
		if err != nil {
			return 0, false, terminate(err)
		}

		answer = strings.TrimSpace(strings.ToLower(answer))

		switch answer {
		case quitKey:
			return 0, true, nil
		case "l":
			d.prompter.AppendHistory(answer)

			return opRead, false, nil
		case "e":
			d.prompter.AppendHistory(answer)

			return opWrite, false, nil
		default:
			fmt.Fprintln(d.out, "unrecognized operation:", answer)
		}
	}
}

// promptAddress reads a flower name and resolves it to an address,
// re-prompting on any name the vocabulary does not recognize.
func (d *Driver) promptAddress() (int, error) {
	for {
		answer, err := d.prompt("flower name: ")
		if err != nil {
			return 0, terminate(err)
		}

		address, ok := vocabulary.Address(answer)
		if !ok {
			fmt.Fprintln(d.out, "unknown flower:", answer)

			continue
		}

		d.prompter.AppendHistory(answer)

		return address, nil
	}
}

// promptValue reads a non-negative integer, re-prompting on anything
// strconv.Atoi rejects or that is negative.
func (d *Driver) promptValue() (int, error) {
	for {
		answer, err := d.prompt("value: ")
		if err != nil {
			return 0, terminate(err)
		}

		value, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil || value < 0 {
			fmt.Fprintln(d.out, "expected a non-negative integer, got:", answer)

			continue
		}

		d.prompter.AppendHistory(answer)

		return value, nil
	}
}

func (d *Driver) perform(cacheID int, op operation, address int) error {
	logWithSnapshot := func(line string) {
		var snap strings.Builder
		render.Snapshot(&snap, d.system.Snapshot())
		d.log.Log(line + "\n" + strings.TrimRight(snap.String(), "\n"))
	}

	switch op {
	case opRead:
		value, err := d.system.Read(cacheID, address)
		if err != nil {
			return err
		}

		line := fmt.Sprintf("read cache=%d addr=%d -> %d", cacheID, address, value)
		fmt.Fprintln(d.out, line)
		logWithSnapshot(line)

		return nil

	case opWrite:
		value, err := d.promptValue()
		if err != nil {
			return err
		}

		if _, err := d.system.Write(cacheID, address, value); err != nil {
			return err
		}

		line := fmt.Sprintf("write cache=%d addr=%d value=%d", cacheID, address, value)
		fmt.Fprintln(d.out, line)
		logWithSnapshot(line)

		return nil

	default:
		return fmt.Errorf("unknown operation %v", op)
	}
}

// errDone marks an exhausted input source — end of a --script file,
// EOF on stdin, or liner's own Ctrl-D/Ctrl-C abort. Run treats it as a
// clean exit rather than a failure.
var errDone = errors.New("driver: input exhausted")

// terminate classifies a Prompter error as errDone when it represents
// exhausted input, so callers can tell "the user quit" apart from a
// genuine I/O failure. Prompter implementations are expected to map
// their own abort sentinels (liner's ErrPromptAborted included) onto
// io.EOF before returning, so this is the only check needed here.
func terminate(err error) error {
	if errors.Is(err, io.EOF) {
		return errDone
	}

	return err
}
