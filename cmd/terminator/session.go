// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/terminator/session.go
// Summary: Wires one tab's PTY host, interpreter, screen, and log writer
// together, matching the three-thread-plus-UI model of spec.md §5: a reader
// goroutine (readLoop, owns decode+parse+dispatch via control.Interpreter),
// a writer goroutine (control.Interpreter's own, started by Start), a
// forker/reaper goroutine (ptyhost.Host's own), and this session's pump
// goroutine playing the "UI thread" role that owns Screen.Apply.

package main

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/007durgesh219/terminator/cell"
	"github.com/007durgesh219/terminator/config"
	"github.com/007durgesh219/terminator/control"
	"github.com/007durgesh219/terminator/logwriter"
	"github.com/007durgesh219/terminator/ptyhost"
	"github.com/007durgesh219/terminator/screen"
)

// session is one tab: one child process, one screen model.
type session struct {
	name string

	host   *ptyhost.Host
	interp *control.Interpreter
	screen *screen.Screen
	log    *logwriter.Writer

	uiCh     chan screen.Batch
	Repaint  chan struct{}
	done     chan struct{}
}

func toCellColor(c config.Color) cell.Color {
	return cell.Color{Mode: cell.ColorModeRGB, R: c.R, G: c.G, B: c.B}
}

// controllingTerminalSize seeds the child PTY's initial size from the real
// terminal stdout is attached to, falling back to settings' resource-file
// defaults when stdout isn't a TTY (e.g. under a test harness or when piped).
func controllingTerminalSize(settings *config.Settings) (cols, rows int) {
	cols, rows = settings.InitialColumnCount, settings.InitialRowCount
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 0 {
		cols, rows = w, h
	}
	return cols, rows
}

func defaultCommand(settings *config.Settings) []string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	if settings.LoginShell {
		return []string{shell, "-l"}
	}
	return []string{shell}
}

// newSession starts the child process behind spec and begins pumping its
// output into a fresh Screen. logDir, if non-empty, enables per-session
// transcript logging (logwriter.New).
func newSession(spec sessionSpec, settings *config.Settings, obs control.Observer, logDir string) (*session, error) {
	command := spec.command
	if len(command) == 0 {
		command = defaultCommand(settings)
	}
	cols, rows := controllingTerminalSize(settings)

	host := ptyhost.NewHost()
	rw, err := host.Start(command, spec.workingDir, ptyhost.BuildEnv(nil), cols, rows)
	if err != nil {
		return nil, err
	}

	var logw *logwriter.Writer
	if logDir != "" {
		logw = logwriter.New(logDir, command)
	}

	uiCh := make(chan screen.Batch, 16)
	s := &session{
		name:    spec.name,
		host:    host,
		screen:  screen.NewScreen(cols, rows, 0),
		log:     logw,
		uiCh:    uiCh,
		Repaint: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	s.interp = control.New(uiCh, obs, rw, logWriterOrNil(logw), toCellColor(settings.Foreground), toCellColor(settings.Background))
	s.interp.Start()

	go s.pump()
	go s.readLoop(rw)
	go s.reapLoop()
	return s, nil
}

// logWriterOrNil avoids handing control.New a non-nil io.Writer interface
// wrapping a nil *logwriter.Writer, which would make its own nil check
// ineffective (a classic Go "typed nil" trap).
func logWriterOrNil(w *logwriter.Writer) io.Writer {
	if w == nil {
		return nil
	}
	return w
}

// pump is this session's UI-thread stand-in: the only goroutine that calls
// Screen.ApplyBatch, per the Design Note's single-writer rule.
func (s *session) pump() {
	for b := range s.uiCh {
		s.screen.ApplyBatch(b.Actions)
		close(b.Done)
		select {
		case s.Repaint <- struct{}{}:
		default:
		}
	}
}

func (s *session) readLoop(rw io.Reader) {
	buf := make([]byte, 4096)
	for {
		n, err := rw.Read(buf)
		if n > 0 {
			s.interp.Feed(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

func (s *session) reapLoop() {
	reap := <-s.host.Reaped()
	s.interp.AnnounceConnectionLost(reap.Message())
	close(s.done)
}

// Done reports the channel closed once the child has been reaped and its
// exit message has been applied to the screen.
func (s *session) Done() <-chan struct{} { return s.done }

// Close tears the session down: signals the child, stops the writer
// goroutine, and closes the log.
func (s *session) Close() {
	s.host.Destroy()
	s.interp.Stop()
	close(s.uiCh)
	if s.log != nil {
		s.log.Close()
	}
}
