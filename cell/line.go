// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cell/line.go
// Summary: Tab-aware styled line storage for the screen model.
// Usage: Consumed by the screen model (primary/alt grids, scrollback) and
// by clipboard/selection code that needs tab-faithful text.
// Notes: Internal tab encoding mirrors terminator's original TextLine: a
// tab run begins with TabStart and is padded with TabContinue sentinels so
// that later tab-stop changes never corrupt already-drawn content.

package cell

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	// TabStart marks the first column of a tab run.
	TabStart = '\t'
	// TabContinue marks a column covered by a tab run but not its start.
	TabContinue = '\r'
)

// Line stores one screen line as a code-point sequence with a parallel,
// equal-length style array. Tabs occupy a run of cells: TabStart followed
// by TabContinue for each additional column the tab spans.
type Line struct {
	chars  []rune
	styles []Style
}

// NewLine returns an empty line.
func NewLine() *Line {
	return &Line{}
}

// Clear truncates the line to zero length.
func (l *Line) Clear() {
	l.chars = l.chars[:0]
	l.styles = l.styles[:0]
}

// Length returns the number of stored columns (including tab-continue cells).
func (l *Line) Length() int { return len(l.chars) }

// StyleAt returns the style of the cell at index i.
func (l *Line) StyleAt(i int) Style {
	if i < 0 || i >= len(l.styles) {
		return DefaultStyle
	}
	return l.styles[i]
}

// RuneAt returns the raw stored rune at index i, sentinels included.
func (l *Line) RuneAt(i int) rune {
	if i < 0 || i >= len(l.chars) {
		return ' '
	}
	return l.chars[i]
}

// DisplayString projects tab sentinels to spaces.
func (l *Line) DisplayString() string {
	var b strings.Builder
	b.Grow(len(l.chars))
	for _, c := range l.chars {
		if c == TabStart || c == TabContinue {
			b.WriteRune(' ')
		} else {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// TabbedString returns the text over [a,b), keeping TabStart (as the literal
// tab character) and dropping TabContinue sentinels, for clipboard use.
func (l *Line) TabbedString(a, b int) string {
	if a < 0 {
		a = 0
	}
	if b > len(l.chars) {
		b = len(l.chars)
	}
	if a >= b {
		return ""
	}
	var sb strings.Builder
	for i := a; i < b; i++ {
		if l.chars[i] == TabContinue {
			continue
		}
		sb.WriteRune(l.chars[i])
	}
	return sb.String()
}

// EffectiveStart returns the greatest j <= i whose char is not TabContinue.
func (l *Line) EffectiveStart(i int) int {
	if i >= len(l.chars) {
		return i
	}
	for j := i; j >= 0; j-- {
		if l.chars[j] != TabContinue {
			return j
		}
	}
	return 0
}

// EffectiveEnd returns the least j >= i whose char is not TabContinue.
func (l *Line) EffectiveEnd(i int) int {
	if i >= len(l.chars) {
		return i
	}
	for j := i; j < len(l.chars); j++ {
		if l.chars[j] != TabContinue {
			return j
		}
	}
	return len(l.chars)
}

func (l *Line) ensureOffset(offset int) {
	if offset < len(l.chars) {
		return
	}
	pad := offset - len(l.chars)
	for i := 0; i < pad; i++ {
		l.chars = append(l.chars, ' ')
		l.styles = append(l.styles, DefaultStyle)
	}
}

// InsertText inserts s at offset, shifting existing content right.
// Negative offsets are rejected (no-op).
func (l *Line) InsertText(offset int, s string, style Style) {
	if offset < 0 {
		return
	}
	l.ensureOffset(offset)
	runes := []rune(s)
	n := len(runes)
	l.chars = append(l.chars, make([]rune, n)...)
	copy(l.chars[offset+n:], l.chars[offset:])
	copy(l.chars[offset:], runes)
	l.styles = append(l.styles, make([]Style, n)...)
	copy(l.styles[offset+n:], l.styles[offset:])
	for i := 0; i < n; i++ {
		l.styles[offset+i] = style
	}
}

// WriteText overwrites at offset, extending the line with default-styled
// spaces if offset lies beyond the current length.
func (l *Line) WriteText(offset int, s string, style Style) {
	if offset < 0 {
		return
	}
	l.ensureOffset(offset)
	runes := []rune(s)
	end := offset + len(runes)
	if end > len(l.chars) {
		grow := end - len(l.chars)
		l.chars = append(l.chars, make([]rune, grow)...)
		l.styles = append(l.styles, make([]Style, grow)...)
	}
	for i, r := range runes {
		l.chars[offset+i] = r
		l.styles[offset+i] = style
	}
}

// KillText removes the range [a,b).
func (l *Line) KillText(a, b int) {
	if a >= b || a >= len(l.chars) {
		return
	}
	if b > len(l.chars) {
		b = len(l.chars)
	}
	l.chars = append(l.chars[:a], l.chars[b:]...)
	l.styles = append(l.styles[:a], l.styles[b:]...)
}

func tabRun(width int) string {
	if width <= 0 {
		return ""
	}
	b := make([]rune, width)
	b[0] = TabStart
	for i := 1; i < width; i++ {
		b[i] = TabContinue
	}
	return string(b)
}

// InsertTab inserts a tab run of the given width at offset, shifting
// existing content right.
func (l *Line) InsertTab(offset, width int, style Style) {
	l.InsertText(offset, tabRun(width), style)
}

// WriteTab overwrites a tab run of the given width at offset. If the cell
// immediately after the new run was a TabContinue, it is promoted to
// TabStart so the remnant of the old tab remains a well-formed, shorter tab.
func (l *Line) WriteTab(offset, width int, style Style) {
	l.WriteText(offset, tabRun(width), style)
	after := offset + width
	if after < len(l.chars) && l.chars[after] == TabContinue {
		l.chars[after] = TabStart
	}
}

// StyledSegment is a maximal run of equal-style characters.
type StyledSegment struct {
	Text  string
	Style Style
}

// StyledSegments returns the line's text as (text, style) runs, merging
// neighbours with equal style.
func (l *Line) StyledSegments() []StyledSegment {
	if len(l.chars) == 0 {
		return nil
	}
	var out []StyledSegment
	start := 0
	cur := l.styles[0]
	for i := 1; i < len(l.chars); i++ {
		if l.styles[i] != cur {
			out = append(out, StyledSegment{Text: string(l.chars[start:i]), Style: cur})
			start = i
			cur = l.styles[i]
		}
	}
	out = append(out, StyledSegment{Text: string(l.chars[start:]), Style: cur})
	return out
}

// RuneWidth returns the terminal column width of r, honoring wide CJK
// glyphs. Used by the screen model when advancing the cursor on write.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// SplitGraphemes breaks s into grapheme clusters, so that a base rune
// followed by combining marks is treated as one terminal cell rather than
// one cell per code point. screen.Screen.WriteText uses this to split each
// plain-text segment before handing clusters to Line.WriteText/InsertText.
func SplitGraphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
