// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/cursor.go
// Summary: Cursor motion, plain-text writing with autowrap, and DECSC/DECRC.
// Usage: Called by Apply for PlainText/SpecialChar/CursorMove/SaveCursor/
// RestoreCursor actions.
// Notes: Grounded on the teacher's vterm_cursor.go and vterm_edit_line.go
// (deferred-wrap "wrapPending" flag so a character exactly filling the
// last column does not wrap until the next cell is written).

package screen

import "github.com/007durgesh219/terminator/cell"

// WriteText writes text (already charset-translated upstream in control)
// at the cursor one grapheme cluster at a time, honoring autowrap and
// insert mode.
func (s *Screen) WriteText(text string) {
	for _, g := range cell.SplitGraphemes(text) {
		s.writeGrapheme(g)
	}
}

func (s *Screen) writeGrapheme(g string) {
	w := cell.RuneWidth([]rune(g)[0])
	if w <= 0 {
		w = 1
	}
	if s.wrapPending {
		s.lineFeed()
		s.cx = 0
		s.wrapPending = false
	}
	l := s.Line(s.cy)
	if l == nil {
		return
	}
	if s.insertMode {
		l.InsertText(s.cx, g, s.curStyle)
		if l.Length() > s.cols {
			l.KillText(s.cols, l.Length())
		}
	} else {
		l.WriteText(s.cx, g, s.curStyle)
	}
	s.cx += w
	if s.cx >= s.cols {
		s.cx = s.cols - 1
		if s.autowrap {
			s.wrapPending = true
		}
	}
}

// LineFeed advances the cursor one row, scrolling the region if needed.
// In LNM mode a linefeed also returns the cursor to column 0.
func (s *Screen) lineFeed() {
	if s.cy == s.marginBottom {
		s.ScrollUp(1)
	} else if s.cy < s.rows-1 {
		s.cy++
	}
	if s.lnm {
		s.cx = 0
	}
}

// CarriageReturn moves the cursor to column 0.
func (s *Screen) carriageReturn() {
	s.cx = 0
	s.wrapPending = false
}

// Backspace moves the cursor left one column, never wrapping to the
// previous line.
func (s *Screen) backspace() {
	if s.cx > 0 {
		s.cx--
	}
	s.wrapPending = false
}

// HTab advances the cursor to the next tab stop, or the right margin if
// none remains.
func (s *Screen) htab() {
	for c := s.cx + 1; c < s.cols; c++ {
		if s.tabStops[c] {
			s.cx = c
			return
		}
	}
	s.cx = s.cols - 1
}

// VTab behaves like a linefeed (DEC VT is a vertical-tab alias for NL here).
func (s *Screen) vtab() { s.lineFeed() }

// moveCursorAbs positions the cursor, honoring origin mode for the row.
func (s *Screen) moveCursorAbs(row, col int) {
	top := s.originTop()
	bottom := s.originBottom()
	r := top + row
	if r > bottom {
		r = bottom
	}
	s.cy = r
	s.cx = col
	s.wrapPending = false
	s.clampCursor()
}

func (s *Screen) moveCursorRel(drow, dcol int) {
	s.cy += drow
	s.cx += dcol
	s.wrapPending = false
	s.clampCursor()
}

// SaveCursor implements DECSC's screen-owned subset (position, style,
// origin mode). Charset state is saved separately by the control package.
func (s *Screen) SaveCursor() {
	s.saved = SavedCursor{
		Row: s.cy, Col: s.cx, Style: s.curStyle, OriginMode: s.originMode, valid: true,
	}
}

// RestoreCursor implements DECRC's screen-owned subset. A no-op if nothing
// was ever saved.
func (s *Screen) RestoreCursor() {
	if !s.saved.valid {
		return
	}
	s.cy, s.cx = s.saved.Row, s.saved.Col
	s.curStyle = s.saved.Style
	s.originMode = s.saved.OriginMode
	s.wrapPending = false
	s.clampCursor()
}
