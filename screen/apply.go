// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/apply.go
// Summary: Single dispatch point for Action values, plus the bounded-channel
// synchronous rendezvous a UI thread uses to wait for a batch to land.
// Usage: control hands the actions produced for one read() of PTY output
// to Send; the UI goroutine (Pump, or an equivalent consumer) applies them
// with ApplyBatch.
// Notes: Grounded on spec.md's "Synchronous UI handoff" design note: a
// reader goroutine produces a batch, hands it to the UI goroutine over a
// bounded channel, and blocks until the UI goroutine signals it applied
// the batch -- bounding how far the UI can fall behind the PTY without
// resorting to a front-end-specific callback.

package screen

// Apply mutates the screen according to a single Action. DesignateCharset
// and InvokeCharset are recognized but produce no screen-level effect: the
// control package owns charset translation and never forwards those two
// kinds here (they exist in Action for state accumulation like
// SaveCursor/RestoreCursor). Unhandled kinds are ignored so new Action
// variants can be added without breaking callers mid-migration.
func (s *Screen) Apply(a Action) {
	switch a.Kind {
	case ActionPlainText:
		s.WriteText(a.Text)
	case ActionSpecialChar:
		switch a.Special {
		case SpecialLF:
			s.lineFeed()
		case SpecialCR:
			s.carriageReturn()
		case SpecialBS:
			s.backspace()
		case SpecialHT:
			s.htab()
		case SpecialVT:
			s.vtab()
		}
	case ActionSetStyle:
		s.curStyle = a.Style
	case ActionCursorMove:
		if a.MoveKind == CursorAbs {
			s.moveCursorAbs(a.Row, a.Col)
		} else {
			s.moveCursorRel(a.Row, a.Col)
		}
	case ActionEraseInDisplay:
		s.EraseInDisplay(a.EraseMode)
	case ActionEraseInLine:
		s.EraseInLine(a.EraseMode)
	case ActionInsertLines:
		s.insertLinesAt(s.cy, a.N)
	case ActionDeleteLines:
		s.deleteLinesAt(s.cy, a.N)
	case ActionInsertChars:
		s.InsertChars(a.N)
	case ActionDeleteChars:
		s.DeleteChars(a.N)
	case ActionEraseChars:
		s.EraseChars(a.N)
	case ActionSetScrollRegion:
		s.SetScrollRegion(a.Col, a.Row)
	case ActionSaveCursor:
		s.SaveCursor()
	case ActionRestoreCursor:
		s.RestoreCursor()
	case ActionSetMode:
		s.SetMode(a.Mode, a.On)
	case ActionTabSet:
		s.TabSet()
	case ActionTabClear:
		s.TabClear(a.TabClear)
	case ActionResize:
		s.Resize(a.Col, a.Row)
	case ActionWindowTitle:
		s.title = a.WindowTitle
	case ActionClearScrollback:
		s.ClearScrollback()
	case ActionFullReset:
		s.FullReset()
	case ActionSetDefaultColor:
		if a.DefaultSlot == DefaultColorForeground {
			s.defaultFG, s.defaultFGSet = a.Color, true
		} else {
			s.defaultBG, s.defaultBGSet = a.Color, true
		}
	case ActionDesignateCharset, ActionInvokeCharset, ActionBell, ActionQueryDefaultColor:
		// No screen-level effect; control/observer handle these (the query
		// reply is written straight back to the PTY by control, never
		// reaching the screen model).
	}
}

// ApplyBatch applies each action in order. Screen holds no lock, so a batch
// is atomic with respect to other callers only when a single goroutine
// (Pump, or an equivalent consumer fed through Send) is the one applying
// batches to a given Screen.
func (s *Screen) ApplyBatch(actions []Action) {
	for _, a := range actions {
		s.Apply(a)
	}
}

// Batch is one unit of the reader-to-UI handoff: a slice of actions
// produced from a single PTY read, plus a channel the UI goroutine closes
// once it has called ApplyBatch, letting the reader goroutine proceed
// without racing ahead of what has actually been drawn.
type Batch struct {
	Actions []Action
	Done    chan struct{}
}

// NewBatch wraps actions with a fresh, unclosed Done channel.
func NewBatch(actions []Action) Batch {
	return Batch{Actions: actions, Done: make(chan struct{})}
}

// Pump runs on the UI goroutine: it drains batches off in, applies each to
// s, and signals Done, until in is closed. Bounding in's buffer size is how
// the reader goroutine is kept from running arbitrarily far ahead of the
// UI; Pump itself has no buffering of its own.
func (s *Screen) Pump(in <-chan Batch) {
	for b := range in {
		s.ApplyBatch(b.Actions)
		close(b.Done)
	}
}

// Send hands a batch to the UI goroutine via out and blocks until Pump (or
// an equivalent consumer) has applied it. Called from the reader goroutine.
func Send(out chan<- Batch, actions []Action) {
	b := NewBatch(actions)
	out <- b
	<-b.Done
}
