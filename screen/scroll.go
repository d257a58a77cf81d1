// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/scroll.go
// Summary: Scroll-region-aware line scrolling and FIFO scrollback eviction.
// Usage: ScrollUp is called by lineFeed; insertLinesAt/deleteLinesAt are
// called by Apply for CSI IL/DL. CSI S/T are not handled.
// Notes: Grounded on the teacher's vterm_scroll.go (ScrollUp/ScrollDown,
// margin-aware shifting); scrollback is a flat slice capped at
// maxScrollback, FIFO-evicted, rather than the teacher's paged store.

package screen

import "github.com/007durgesh219/terminator/cell"

// ScrollUp moves n lines off the top of the scroll region. When the region
// spans the whole screen and the primary buffer is active, evicted lines
// are pushed onto scrollback.
func (s *Screen) ScrollUp(n int) {
	if n <= 0 {
		return
	}
	g := s.active()
	top, bottom := s.marginTop, s.marginBottom
	if top < 0 {
		top = 0
	}
	if bottom >= len(g) {
		bottom = len(g) - 1
	}
	region := bottom - top + 1
	if region <= 0 {
		return
	}
	if n > region {
		n = region
	}

	wholeScreen := top == 0 && bottom == s.rows-1
	for i := 0; i < n; i++ {
		if wholeScreen && !s.usingAlt {
			s.pushScrollback(g[top])
		}
		copy(g[top:bottom], g[top+1:bottom+1])
		g[bottom] = cell.NewLine()
	}
}

// ScrollDown moves n lines into the top of the scroll region, discarding
// lines pushed off the bottom. Never touches scrollback.
func (s *Screen) ScrollDown(n int) {
	if n <= 0 {
		return
	}
	g := s.active()
	top, bottom := s.marginTop, s.marginBottom
	if top < 0 {
		top = 0
	}
	if bottom >= len(g) {
		bottom = len(g) - 1
	}
	region := bottom - top + 1
	if region <= 0 {
		return
	}
	if n > region {
		n = region
	}
	for i := 0; i < n; i++ {
		copy(g[top+1:bottom+1], g[top:bottom])
		g[top] = cell.NewLine()
	}
}

func (s *Screen) pushScrollback(l *cell.Line) {
	s.scrollback = append(s.scrollback, l)
	if over := len(s.scrollback) - s.maxScrollback; over > 0 {
		s.scrollback = s.scrollback[over:]
	}
}

// ClearScrollback discards all history lines without touching the visible
// grid. Reached from the ED 3 extension (EraseInDisplay mode 3) and from an
// ActionClearScrollback action -- never invoked by plain ED 0/1/2.
func (s *Screen) ClearScrollback() {
	s.scrollback = nil
}

// insertLinesAt implements CSI IL: n blank lines appear at the cursor row,
// pushing lines at/below it down within the scroll region (no scrollback).
func (s *Screen) insertLinesAt(row, n int) {
	g := s.active()
	top, bottom := s.marginTop, s.marginBottom
	if row < top || row > bottom {
		return
	}
	if n <= 0 {
		return
	}
	if n > bottom-row+1 {
		n = bottom - row + 1
	}
	for i := 0; i < n; i++ {
		copy(g[row+1:bottom+1], g[row:bottom])
		g[row] = cell.NewLine()
	}
}

// deleteLinesAt implements CSI DL: n lines are removed at the cursor row,
// lines below shift up within the scroll region, blank lines appear at the
// bottom of the region.
func (s *Screen) deleteLinesAt(row, n int) {
	g := s.active()
	top, bottom := s.marginTop, s.marginBottom
	if row < top || row > bottom {
		return
	}
	if n <= 0 {
		return
	}
	if n > bottom-row+1 {
		n = bottom - row + 1
	}
	for i := 0; i < n; i++ {
		copy(g[row:bottom], g[row+1:bottom+1])
		g[bottom] = cell.NewLine()
	}
}
