// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: control/observer.go
// Summary: Narrow capability interface for front-end notifications that
// don't belong in the screen model itself.
// Usage: Interpreter calls these synchronously as the corresponding
// actions are decoded; a front-end implements Observer to flash the
// window, update a title bar, or tear down a pane.
// Notes: Generalizes the teacher's vterm.go closure-field pattern
// (TitleChanged func(string), WriteToPty func([]byte)) into a single small
// interface, per the spec's "prefer capability interfaces over scattered
// callback fields" design note.

package control

// Observer receives side-effect notifications an Interpreter can't express
// purely as screen.Action values.
type Observer interface {
	// Bell is called for every BEL byte received in the ground state; a BEL
	// that terminates an OSC sequence does not call it. A front-end
	// typically flashes the window or rings the system bell.
	Bell()

	// TitleChanged is called whenever OSC 0/1/2 sets a new window title.
	TitleChanged(title string)

	// CursorVisibilityChanged is called when DECTCEM (CSI ?25h/l) changes.
	CursorVisibilityChanged(visible bool)

	// Closed is called once after the child process has terminated and its
	// exit has been fully reported (see Interpreter.AnnounceConnectionLost).
	Closed()
}

// NopObserver implements Observer with no-ops, for callers that don't need
// any of these notifications (e.g. headless tests).
type NopObserver struct{}

func (NopObserver) Bell()                             {}
func (NopObserver) TitleChanged(string)                {}
func (NopObserver) CursorVisibilityChanged(bool)        {}
func (NopObserver) Closed()                            {}
