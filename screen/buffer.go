// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/buffer.go
// Summary: Primary/alternate grid storage and FIFO scrollback.
// Usage: Backs Screen, which Apply mutates one Action at a time.
// Notes: Grounded on the teacher's vterm_scroll.go/vterm_erase.go function
// breakdown, but storage is a flat cell.Line FIFO rather than the teacher's
// paged/virtualized MemoryBuffer+DisplayBuffer stack.

package screen

import "github.com/007durgesh219/terminator/cell"

// DefaultMaxScrollback is used when NewScreen is given a non-positive cap.
const DefaultMaxScrollback = 10000

// SavedCursor captures the subset of cursor-related state DECSC/DECRC swap.
type SavedCursor struct {
	Row, Col   int
	Style      cell.Style
	OriginMode bool
	valid      bool
}

// Screen is the terminal's two-buffer (primary + alternate) text model.
type Screen struct {
	cols, rows int

	primary   []*cell.Line // visible grid, len == rows
	alt       []*cell.Line // visible grid, len == rows
	scrollback []*cell.Line
	maxScrollback int

	usingAlt bool

	cx, cy      int
	wrapPending bool

	curStyle cell.Style

	marginTop, marginBottom int // 0-based, inclusive

	tabStops map[int]bool

	autowrap    bool
	originMode  bool
	insertMode  bool
	cursorVisible bool
	lnm         bool // linefeed/new-line mode
	appCursorKeys  bool
	bracketedPaste bool

	saved SavedCursor

	title string

	defaultFG, defaultBG     cell.Color
	defaultFGSet, defaultBGSet bool
}

// NewScreen allocates a Screen of the given size. maxScrollback <= 0 uses
// DefaultMaxScrollback.
func NewScreen(cols, rows, maxScrollback int) *Screen {
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	if maxScrollback <= 0 {
		maxScrollback = DefaultMaxScrollback
	}
	s := &Screen{
		cols:          cols,
		rows:          rows,
		maxScrollback: maxScrollback,
		autowrap:      true,
		cursorVisible: true,
		curStyle:      cell.DefaultStyle,
	}
	s.primary = makeGrid(rows)
	s.alt = makeGrid(rows)
	s.marginTop = 0
	s.marginBottom = rows - 1
	s.resetTabStops()
	return s
}

func makeGrid(rows int) []*cell.Line {
	g := make([]*cell.Line, rows)
	for i := range g {
		g[i] = cell.NewLine()
	}
	return g
}

func (s *Screen) resetTabStops() {
	s.tabStops = make(map[int]bool)
	for c := 0; c < s.cols; c += 8 {
		s.tabStops[c] = true
	}
}

// active returns the grid currently in view.
func (s *Screen) active() []*cell.Line {
	if s.usingAlt {
		return s.alt
	}
	return s.primary
}

// Cols and Rows report the current grid size.
func (s *Screen) Cols() int { return s.cols }
func (s *Screen) Rows() int { return s.rows }

// Cursor reports the current 0-based cursor position.
func (s *Screen) Cursor() (row, col int) { return s.cy, s.cx }

// Line returns the visible line at row (0-based), or nil if out of range.
func (s *Screen) Line(row int) *cell.Line {
	g := s.active()
	if row < 0 || row >= len(g) {
		return nil
	}
	return g[row]
}

// Scrollback returns the history lines, oldest first.
func (s *Screen) Scrollback() []*cell.Line { return s.scrollback }

// Title returns the last window title set via an ActionWindowTitle.
func (s *Screen) Title() string { return s.title }

// DefaultForeground reports the OSC 10 override of the default foreground
// color, if an application has ever set one.
func (s *Screen) DefaultForeground() (cell.Color, bool) { return s.defaultFG, s.defaultFGSet }

// DefaultBackground reports the OSC 11 override of the default background
// color, if an application has ever set one.
func (s *Screen) DefaultBackground() (cell.Color, bool) { return s.defaultBG, s.defaultBGSet }

// UsingAltScreen reports whether the alternate buffer is active.
func (s *Screen) UsingAltScreen() bool { return s.usingAlt }

func (s *Screen) clampCursor() {
	if s.cx < 0 {
		s.cx = 0
	}
	if s.cx >= s.cols {
		s.cx = s.cols - 1
	}
	if s.cy < 0 {
		s.cy = 0
	}
	if s.cy >= s.rows {
		s.cy = s.rows - 1
	}
}

// originTop/originBottom give the rows cursor addressing is relative to
// when DEC origin mode is active.
func (s *Screen) originTop() int {
	if s.originMode {
		return s.marginTop
	}
	return 0
}

func (s *Screen) originBottom() int {
	if s.originMode {
		return s.marginBottom
	}
	return s.rows - 1
}
