// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/erase.go
// Summary: Erase-in-display/line and character erase/insert/delete.
// Usage: Called by Apply for CSI J/K/@/P/X.
// Notes: Grounded on the teacher's vterm_erase.go/vterm_edit_char.go.
// Plain ED/EL never touch scrollback (spec's resolved Open Question);
// ED 3 is the only path that reaches ClearScrollback.

package screen

// EraseInDisplay implements CSI J. mode: 0=cursor..end, 1=start..cursor,
// 2=whole screen, 3=whole screen plus scrollback (xterm extension).
func (s *Screen) EraseInDisplay(mode int) {
	g := s.active()
	switch mode {
	case 0:
		s.eraseLineRange(s.cy, s.cx, s.cols)
		for r := s.cy + 1; r < len(g); r++ {
			g[r].Clear()
		}
	case 1:
		for r := 0; r < s.cy; r++ {
			g[r].Clear()
		}
		s.eraseLineRange(s.cy, 0, s.cx+1)
	case 2:
		for r := range g {
			g[r].Clear()
		}
	case 3:
		for r := range g {
			g[r].Clear()
		}
		s.ClearScrollback()
	}
}

// EraseInLine implements CSI K. mode: 0=cursor..end, 1=start..cursor, 2=whole line.
func (s *Screen) EraseInLine(mode int) {
	switch mode {
	case 0:
		s.eraseLineRange(s.cy, s.cx, s.cols)
	case 1:
		s.eraseLineRange(s.cy, 0, s.cx+1)
	case 2:
		s.eraseLineRange(s.cy, 0, s.cols)
	}
}

func (s *Screen) eraseLineRange(row, a, b int) {
	l := s.Line(row)
	if l == nil {
		return
	}
	if a < 0 {
		a = 0
	}
	if b <= a {
		return
	}
	l.WriteText(a, spaces(b-a), s.curStyle)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}
	return string(buf)
}

// EraseChars implements CSI X: overwrite n cells at the cursor with blanks,
// without shifting content.
func (s *Screen) EraseChars(n int) {
	l := s.Line(s.cy)
	if l == nil || n <= 0 {
		return
	}
	end := s.cx + n
	if end > l.Length() {
		end = l.Length()
	}
	if end > s.cx {
		l.KillText(s.cx, end)
		l.InsertText(s.cx, spaces(end-s.cx), s.curStyle)
	}
}

// InsertChars implements CSI @: insert n blanks at the cursor, shifting
// the rest of the line right (overflow past the right margin is dropped).
func (s *Screen) InsertChars(n int) {
	l := s.Line(s.cy)
	if l == nil || n <= 0 {
		return
	}
	l.InsertText(s.cx, spaces(n), s.curStyle)
	if l.Length() > s.cols {
		l.KillText(s.cols, l.Length())
	}
}

// DeleteChars implements CSI P: remove n cells at the cursor, shifting the
// rest of the line left; blanks appear at the right margin.
func (s *Screen) DeleteChars(n int) {
	l := s.Line(s.cy)
	if l == nil || n <= 0 {
		return
	}
	end := s.cx + n
	if end > l.Length() {
		end = l.Length()
	}
	if end > s.cx {
		l.KillText(s.cx, end)
	}
}
