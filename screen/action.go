// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/action.go
// Summary: TerminalAction tagged union emitted by the escape parser/interpreter.
// Usage: Produced by vtparse and control, consumed by Screen.Apply.
// Notes: Replaces a class-hierarchy-plus-visitor design with a single
// tagged struct dispatched through one Apply entry point (see spec Design
// Note "Deep class family").

package screen

import "github.com/007durgesh219/terminator/cell"

// ActionKind identifies which field(s) of Action are meaningful.
type ActionKind int

const (
	ActionPlainText ActionKind = iota
	ActionSpecialChar
	ActionSetStyle
	ActionCursorMove
	ActionEraseInDisplay
	ActionEraseInLine
	ActionInsertLines
	ActionDeleteLines
	ActionInsertChars
	ActionDeleteChars
	ActionEraseChars
	ActionSetScrollRegion
	ActionSaveCursor
	ActionRestoreCursor
	ActionSetMode
	ActionTabSet
	ActionTabClear
	ActionDesignateCharset
	ActionInvokeCharset
	ActionResize
	ActionBell
	ActionWindowTitle
	ActionClearScrollback
	ActionFullReset
	ActionSetDefaultColor
	ActionQueryDefaultColor
)

// DefaultColorSlot distinguishes OSC 10 (foreground) from OSC 11
// (background) for ActionSetDefaultColor.
type DefaultColorSlot int

const (
	DefaultColorForeground DefaultColorSlot = iota
	DefaultColorBackground
)

// SpecialChar identifies a bare control character handled outside SGR/CSI.
type SpecialChar int

const (
	SpecialLF SpecialChar = iota
	SpecialCR
	SpecialBS
	SpecialHT
	SpecialVT
)

// Mode identifies a settable terminal mode (ANSI or DEC private).
type Mode int

const (
	ModeInsert Mode = iota
	ModeAutoWrap
	ModeOriginMode
	ModeAppCursorKeys
	ModeCursorVisible
	ModeLeftRightMargin
	ModeBracketedPaste
	ModeLNM
	ModeAltScreen
)

// TabClearMode mirrors CSI 'g' parameter semantics.
type TabClearMode int

const (
	TabClearCurrent TabClearMode = iota
	TabClearAll
)

// CursorMoveKind distinguishes absolute positioning from relative motion.
type CursorMoveKind int

const (
	CursorAbs CursorMoveKind = iota
	CursorRel
)

// Action is the closed set of screen mutations the parser/interpreter can
// produce. Exactly one group of fields is meaningful per Kind.
type Action struct {
	Kind ActionKind

	Text    string // PlainText
	Special SpecialChar

	Style cell.Style // SetStyle

	MoveKind   CursorMoveKind // CursorMove
	Col, Row   int            // CursorMove / SetScrollRegion (Col=top,Row=bottom) / Resize (Col=cols,Row=rows)
	EraseMode  int            // EraseInDisplay / EraseInLine
	N          int            // InsertLines/DeleteLines/InsertChars/DeleteChars/EraseChars count

	Mode   Mode // SetMode
	On     bool // SetMode

	TabClear TabClearMode // TabClear

	CharsetSlot int  // DesignateCharset / InvokeCharset (G0..G3)
	CharsetName byte // DesignateCharset ('B','0','A', ...)

	WindowTitle string // WindowTitle

	DefaultSlot DefaultColorSlot // SetDefaultColor / QueryDefaultColor
	Color       cell.Color       // SetDefaultColor
}

func PlainText(s string) Action { return Action{Kind: ActionPlainText, Text: s} }
func Special(s SpecialChar) Action { return Action{Kind: ActionSpecialChar, Special: s} }
func SetStyle(s cell.Style) Action { return Action{Kind: ActionSetStyle, Style: s} }
func CursorMoveAbs(row, col int) Action {
	return Action{Kind: ActionCursorMove, MoveKind: CursorAbs, Row: row, Col: col}
}
func CursorMoveRel(drow, dcol int) Action {
	return Action{Kind: ActionCursorMove, MoveKind: CursorRel, Row: drow, Col: dcol}
}
func EraseInDisplay(mode int) Action { return Action{Kind: ActionEraseInDisplay, EraseMode: mode} }
func EraseInLine(mode int) Action    { return Action{Kind: ActionEraseInLine, EraseMode: mode} }
func InsertLines(n int) Action       { return Action{Kind: ActionInsertLines, N: n} }
func DeleteLines(n int) Action       { return Action{Kind: ActionDeleteLines, N: n} }
func InsertChars(n int) Action       { return Action{Kind: ActionInsertChars, N: n} }
func DeleteChars(n int) Action       { return Action{Kind: ActionDeleteChars, N: n} }
func EraseChars(n int) Action        { return Action{Kind: ActionEraseChars, N: n} }
func SetScrollRegion(top, bottom int) Action {
	return Action{Kind: ActionSetScrollRegion, Col: top, Row: bottom}
}
func SaveCursor() Action    { return Action{Kind: ActionSaveCursor} }
func RestoreCursor() Action { return Action{Kind: ActionRestoreCursor} }
func SetMode(m Mode, on bool) Action { return Action{Kind: ActionSetMode, Mode: m, On: on} }
func TabSet() Action                 { return Action{Kind: ActionTabSet} }
func TabClear(mode TabClearMode) Action { return Action{Kind: ActionTabClear, TabClear: mode} }
func DesignateCharset(slot int, name byte) Action {
	return Action{Kind: ActionDesignateCharset, CharsetSlot: slot, CharsetName: name}
}
func InvokeCharset(slot int) Action { return Action{Kind: ActionInvokeCharset, CharsetSlot: slot} }
func Resize(cols, rows int) Action  { return Action{Kind: ActionResize, Col: cols, Row: rows} }
func Bell() Action                  { return Action{Kind: ActionBell} }
func WindowTitle(s string) Action   { return Action{Kind: ActionWindowTitle, WindowTitle: s} }
func ClearScrollback() Action       { return Action{Kind: ActionClearScrollback} }
func FullReset() Action             { return Action{Kind: ActionFullReset} }
func SetDefaultColor(slot DefaultColorSlot, c cell.Color) Action {
	return Action{Kind: ActionSetDefaultColor, DefaultSlot: slot, Color: c}
}
func QueryDefaultColor(slot DefaultColorSlot) Action {
	return Action{Kind: ActionQueryDefaultColor, DefaultSlot: slot}
}
