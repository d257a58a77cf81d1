// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: logwriter/logwriter.go
// Summary: Per-session append-only transcript log.
// Usage: control.New's logw parameter accepts *Writer directly (it
// implements io.Writer); cmd/terminator constructs one per session.
// Notes: Grounded on original_source's LogWriter.java: URL-encoded command
// plus timestamp filename, flush-on-newline, and "once opening the file
// fails, logging stays permanently suspended" -- enriched with
// github.com/google/uuid to disambiguate two sessions started in the same
// second with the same command, and github.com/dustin/go-humanize for the
// human-readable Info() string.

package logwriter

import (
	"bufio"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Writer is an append-only, flush-on-newline session transcript.
type Writer struct {
	mu        sync.Mutex
	file      *os.File
	buf       *bufio.Writer
	written   int64
	suspended bool
	permanent bool
	info      string
}

// New opens a new log file under dir named from command and the current
// time, disambiguated with a short UUID suffix. If dir does not exist, or
// the file can't be created, the returned Writer is permanently suspended
// (every Write is a silent no-op) exactly as LogWriter falls back when its
// configured logs directory is missing -- callers don't need to check an
// error return for this reason, matching the original's "can't un-suspend
// after an open failure" contract.
func New(dir string, command []string) *Writer {
	w := &Writer{}
	if err := w.open(dir, command); err != nil {
		w.suspended = true
		w.permanent = true
	}
	return w
}

func (w *Writer) open(dir string, command []string) error {
	if _, err := os.Stat(dir); err != nil {
		w.info = "(" + dir + " does not exist)"
		return err
	}
	prefix := url.QueryEscape(strings.Join(command, " "))
	timestamp := time.Now().Format("2006-01-02-150405Z0700")
	disambig := uuid.New().String()[:8]
	name := prefix + "-" + timestamp + "-" + disambig + ".txt"
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		w.info = "(could not open " + path + ")"
		return err
	}
	w.file = f
	w.buf = bufio.NewWriter(f)
	w.info = path
	return nil
}

// Write appends p to the log, flushing whenever p contains a newline. It
// never returns an error: a logging failure must not interrupt the
// terminal session it is recording, mirroring LogWriter.append's
// Log.warn-and-continue behavior on a flush failure.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.suspended || w.buf == nil {
		return len(p), nil
	}
	n, _ := w.buf.Write(p)
	w.written += int64(n)
	if strings.ContainsRune(string(p), '\n') {
		w.buf.Flush()
	}
	return len(p), nil
}

// SetSuspended pauses or resumes logging. A permanently-suspended Writer
// (one that never managed to open a file) ignores this, matching
// LogWriter.setSuspended's no-op when stream is nil.
func (w *Writer) SetSuspended(suspended bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.permanent || w.buf == nil {
		return
	}
	if !suspended {
		w.buf.Flush()
	}
	w.suspended = suspended
}

// IsSuspended reports the current suspend state.
func (w *Writer) IsSuspended() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.suspended
}

// Close flushes and closes the underlying file, permanently suspending
// further writes.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	w.suspended = true
	w.permanent = true
	w.buf.Flush()
	err := w.file.Close()
	w.file = nil
	return err
}

// Info describes where this session is logging and how much has been
// written so far, e.g. "/home/user/.terminator-logs/sh-2026...txt (4.2 kB)".
func (w *Writer) Info() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.written == 0 {
		return w.info
	}
	return w.info + " (" + humanize.Bytes(uint64(w.written)) + ")"
}
