// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/modes.go
// Summary: Mode flags, scroll-region setup, tab stops, resize.
// Usage: Called by Apply for SetMode/SetScrollRegion/TabSet/TabClear/Resize.
// Notes: Grounded on the teacher's vterm_modes.go.

package screen

import "github.com/007durgesh219/terminator/cell"

// SetMode flips a boolean terminal mode on or off.
func (s *Screen) SetMode(m Mode, on bool) {
	switch m {
	case ModeInsert:
		s.insertMode = on
	case ModeAutoWrap:
		s.autowrap = on
	case ModeOriginMode:
		s.originMode = on
		s.moveCursorAbs(0, 0)
	case ModeCursorVisible:
		s.cursorVisible = on
	case ModeLNM:
		s.lnm = on
	case ModeAltScreen:
		s.setAltScreen(on)
	case ModeAppCursorKeys:
		s.appCursorKeys = on
	case ModeBracketedPaste:
		s.bracketedPaste = on
	// ModeLeftRightMargin is recognized but has no effect on the screen
	// model itself (spec.md's Non-goals exclude left/right margin support).
	default:
	}
}

// AppCursorKeys reports whether DECCKM (application cursor keys, CSI
// ?1h/l) is set, so a front-end knows whether to send SS3 or CSI sequences
// for the arrow keys.
func (s *Screen) AppCursorKeys() bool { return s.appCursorKeys }

// BracketedPaste reports whether bracketed-paste mode (CSI ?2004h/l) is
// set, so a front-end knows whether to wrap pasted text in
// ESC[200~/ESC[201~.
func (s *Screen) BracketedPaste() bool { return s.bracketedPaste }

func (s *Screen) setAltScreen(on bool) {
	if on == s.usingAlt {
		return
	}
	s.usingAlt = on
	for r := range s.alt {
		s.alt[r].Clear()
	}
	s.cx, s.cy = 0, 0
	s.wrapPending = false
}

// CursorVisible reports whether DECTCEM is currently set.
func (s *Screen) CursorVisible() bool { return s.cursorVisible }

// SetScrollRegion implements DECSTBM. top/bottom are 1-based inclusive as
// received from CSI; 0 means "unspecified", defaulting to the full screen.
func (s *Screen) SetScrollRegion(top, bottom int) {
	if top <= 0 {
		top = 1
	}
	if bottom <= 0 || bottom > s.rows {
		bottom = s.rows
	}
	if top >= bottom {
		top, bottom = 1, s.rows
	}
	s.marginTop = top - 1
	s.marginBottom = bottom - 1
	s.moveCursorAbs(0, 0)
}

// TabSet marks the current cursor column as a tab stop.
func (s *Screen) TabSet() {
	s.tabStops[s.cx] = true
}

// TabClear implements CSI g: clear the stop at the cursor, or every stop.
func (s *Screen) TabClear(mode TabClearMode) {
	switch mode {
	case TabClearCurrent:
		delete(s.tabStops, s.cx)
	case TabClearAll:
		s.tabStops = make(map[int]bool)
	}
}

// FullReset implements ESC c (RIS): clears both buffers and scrollback,
// homes the cursor, and restores every mode to its power-on default.
func (s *Screen) FullReset() {
	for r := range s.primary {
		s.primary[r].Clear()
	}
	for r := range s.alt {
		s.alt[r].Clear()
	}
	s.scrollback = nil
	s.usingAlt = false
	s.cx, s.cy = 0, 0
	s.wrapPending = false
	s.curStyle = cell.DefaultStyle
	s.marginTop = 0
	s.marginBottom = s.rows - 1
	s.autowrap = true
	s.originMode = false
	s.insertMode = false
	s.cursorVisible = true
	s.lnm = false
	s.appCursorKeys = false
	s.bracketedPaste = false
	s.saved = SavedCursor{}
	s.title = ""
	s.defaultFGSet = false
	s.defaultBGSet = false
	s.resetTabStops()
}

// Resize changes the grid dimensions with no reflow: existing lines keep
// their stored length, the cursor clamps into the new bounds, the scroll
// region resets to the full screen, and the alternate screen is
// reallocated at the new size. Primary scrollback is preserved untouched.
func (s *Screen) Resize(cols, rows int) {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	s.primary = resizeGrid(s.primary, rows)
	s.alt = makeGrid(rows)
	s.cols = cols
	s.rows = rows
	s.marginTop = 0
	s.marginBottom = rows - 1
	s.clampCursor()
	s.resetTabStops()
}

func resizeGrid(g []*cell.Line, rows int) []*cell.Line {
	if len(g) == rows {
		return g
	}
	out := make([]*cell.Line, rows)
	if rows >= len(g) {
		copy(out, g)
		for i := len(g); i < rows; i++ {
			out[i] = cell.NewLine()
		}
		return out
	}
	// Shrinking: keep the bottom-most `rows` lines, consistent with a
	// scroll-up-like loss of the oldest visible content.
	copy(out, g[len(g)-rows:])
	return out
}
