// Package transcript appends driver-level activity (accepted requests and
// the snapshot taken after each one) to a log file, for the optional
// --log-commands mode of cmd/moesim. This is convenience tooling around
// the driver, not engine state: the coherence engine itself persists
// nothing.
package transcript

import (
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/natefinch/atomic"
)

const lockTimeout = 5 * time.Second

// Writer appends entries to a transcript file, rewriting it atomically on
// every Append so a reader never observes a partially written file.
type Writer struct {
	path string
}

// Open returns a Writer targeting path. The file need not exist yet; the
// first Append creates it.
func Open(path string) *Writer {
	return &Writer{path: path}
}

// Append adds entry, preceded by a blank line if the file is non-empty,
// and rewrites the file atomically.
func (w *Writer) Append(entry string) error {
	lock, err := acquireLock(w.path + ".lock")
	if err != nil {
		return fmt.Errorf("acquiring transcript lock: %w", err)
	}
	defer lock.release()

	existing, err := os.ReadFile(w.path) //nolint:gosec // path is operator-controlled
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading transcript: %w", err)
	}

	var sb strings.Builder

	sb.Write(existing)

	if len(existing) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString(entry)
	sb.WriteString("\n")

	if err := atomic.WriteFile(w.path, strings.NewReader(sb.String())); err != nil {
		return fmt.Errorf("writing transcript: %w", err)
	}

	return nil
}

type fileLock struct {
	file *os.File
}

func acquireLock(lockPath string) (*fileLock, error) {
	file, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0o600) //nolint:gosec // path is operator-controlled
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(lockTimeout)

	const retryInterval = 10 * time.Millisecond

	for {
		if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err == nil {
			return &fileLock{file: file}, nil
		}

		if time.Now().After(deadline) {
			_ = file.Close()

			return nil, fmt.Errorf("timed out locking %s", lockPath)
		}

		time.Sleep(retryInterval)
	}
}

func (l *fileLock) release() {
	_ = syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN)
	_ = l.file.Close()
}
