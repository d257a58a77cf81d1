// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: screen/screen_test.go

package screen

import (
	"testing"

	"github.com/007durgesh219/terminator/cell"
)

func TestWriteTextAdvancesCursor(t *testing.T) {
	s := NewScreen(10, 3, 0)
	s.Apply(PlainText("hi"))
	row, col := s.Cursor()
	if row != 0 || col != 2 {
		t.Fatalf("cursor = (%d,%d), want (0,2)", row, col)
	}
	if got := s.Line(0).DisplayString(); got[:2] != "hi" {
		t.Fatalf("line = %q", got)
	}
}

func TestAutowrapDeferredUntilNextWrite(t *testing.T) {
	s := NewScreen(5, 3, 0)
	s.Apply(PlainText("abcde"))
	row, col := s.Cursor()
	if row != 0 || col != 4 {
		t.Fatalf("cursor after filling line = (%d,%d), want (0,4)", row, col)
	}
	s.Apply(PlainText("f"))
	row, col = s.Cursor()
	if row != 1 || col != 1 {
		t.Fatalf("cursor after wrap = (%d,%d), want (1,1)", row, col)
	}
}

func TestLineFeedScrollsAtBottomMargin(t *testing.T) {
	s := NewScreen(5, 2, 10)
	s.Apply(PlainText("one"))
	s.Apply(Special(SpecialLF))
	s.Apply(CarriageReturnAction())
	s.Apply(PlainText("two"))
	s.Apply(Special(SpecialLF)) // scrolls: "one" evicted to scrollback
	if len(s.Scrollback()) != 1 {
		t.Fatalf("scrollback len = %d, want 1", len(s.Scrollback()))
	}
	if got := s.Scrollback()[0].DisplayString(); got[:3] != "one" {
		t.Fatalf("scrollback[0] = %q", got)
	}
}

func TestEraseInDisplayMode2DoesNotTouchScrollback(t *testing.T) {
	s := NewScreen(5, 2, 10)
	s.Apply(PlainText("one"))
	s.Apply(Special(SpecialLF))
	s.Apply(CarriageReturnAction())
	s.Apply(PlainText("two"))
	s.Apply(Special(SpecialLF)) // one line in scrollback now
	before := len(s.Scrollback())
	s.Apply(EraseInDisplay(2))
	if len(s.Scrollback()) != before {
		t.Fatalf("ED2 touched scrollback: before=%d after=%d", before, len(s.Scrollback()))
	}
	if got := s.Line(0).Length(); got != 0 {
		t.Fatalf("line 0 length = %d, want 0 (blank)", got)
	}
}

func TestEraseInDisplayMode3ClearsScrollback(t *testing.T) {
	s := NewScreen(5, 2, 10)
	s.Apply(PlainText("one"))
	s.Apply(Special(SpecialLF))
	s.Apply(PlainText("two"))
	s.Apply(Special(SpecialLF))
	if len(s.Scrollback()) == 0 {
		t.Fatal("expected non-empty scrollback before ED3")
	}
	s.Apply(EraseInDisplay(3))
	if len(s.Scrollback()) != 0 {
		t.Fatalf("ED3 left scrollback len=%d, want 0", len(s.Scrollback()))
	}
}

func TestEraseInLineMode1BlanksInPlaceWithoutShifting(t *testing.T) {
	s := NewScreen(20, 1, 0)
	s.Apply(PlainText("Hello World"))
	s.Apply(CursorMoveAbs(0, 4))
	s.Apply(EraseInLine(1))
	if got := s.Line(0).DisplayString(); got[:11] != "      World" {
		t.Fatalf("line 0 = %q, want %q", got[:11], "      World")
	}
}

func TestEraseInDisplayMode1BlanksInPlaceWithoutShifting(t *testing.T) {
	s := NewScreen(20, 1, 0)
	s.Apply(PlainText("Hello World"))
	s.Apply(CursorMoveAbs(0, 4))
	s.Apply(EraseInDisplay(1))
	if got := s.Line(0).DisplayString(); got[:11] != "      World" {
		t.Fatalf("line 0 = %q, want %q", got[:11], "      World")
	}
}

func TestScrollRegionConfinesLineFeed(t *testing.T) {
	s := NewScreen(5, 5, 10)
	s.Apply(SetScrollRegion(2, 4)) // rows 1..3 zero-based
	for i := 0; i < 10; i++ {
		s.Apply(Special(SpecialLF))
	}
	if len(s.Scrollback()) != 0 {
		t.Fatalf("scroll region scroll leaked into scrollback: %d", len(s.Scrollback()))
	}
}

func TestSaveRestoreCursor(t *testing.T) {
	s := NewScreen(10, 5, 0)
	s.Apply(CursorMoveAbs(2, 3))
	s.Apply(SaveCursor())
	s.Apply(CursorMoveAbs(0, 0))
	s.Apply(RestoreCursor())
	row, col := s.Cursor()
	if row != 2 || col != 3 {
		t.Fatalf("cursor after restore = (%d,%d), want (2,3)", row, col)
	}
}

func TestInsertDeleteLinesWithinRegion(t *testing.T) {
	s := NewScreen(5, 4, 10)
	s.Apply(PlainText("A"))
	s.Apply(Special(SpecialLF))
	s.Apply(CarriageReturnAction())
	s.Apply(PlainText("B"))
	s.Apply(Special(SpecialLF))
	s.Apply(CarriageReturnAction())
	s.Apply(PlainText("C"))
	s.Apply(CursorMoveAbs(0, 0))
	s.Apply(InsertLines(1))
	if got := s.Line(0).DisplayString(); got != "" {
		t.Fatalf("line 0 after IL = %q, want blank (empty)", got)
	}
	if got := s.Line(1).DisplayString()[:1]; got != "A" {
		t.Fatalf("line 1 after IL = %q, want A..", got)
	}
	s.Apply(DeleteLines(1))
	if got := s.Line(0).DisplayString()[:1]; got != "A" {
		t.Fatalf("line 0 after DL = %q, want A..", got)
	}
}

func TestResizeNoReflowClampsCursor(t *testing.T) {
	s := NewScreen(10, 5, 0)
	s.Apply(CursorMoveAbs(4, 9))
	s.Apply(Resize(5, 3))
	row, col := s.Cursor()
	if row >= 3 || col >= 5 {
		t.Fatalf("cursor not clamped: (%d,%d)", row, col)
	}
}

func TestAltScreenSwitchClearsAndHasNoScrollback(t *testing.T) {
	s := NewScreen(5, 3, 10)
	s.Apply(PlainText("hi"))
	s.Apply(SetMode(ModeAltScreen, true))
	if s.Line(0).Length() != 0 {
		t.Fatalf("alt screen not blank on entry")
	}
	s.Apply(PlainText("alt"))
	s.Apply(SetMode(ModeAltScreen, false))
	if got := s.Line(0).DisplayString()[:2]; got != "hi" {
		t.Fatalf("primary content lost across alt-screen round trip: %q", got)
	}
}

// CarriageReturnAction is a small local helper so tests read naturally
// without importing the Special enum twice.
func CarriageReturnAction() Action { return Special(SpecialCR) }

func TestDefaultColorUnsetUntilOverridden(t *testing.T) {
	s := NewScreen(5, 3, 10)
	if _, ok := s.DefaultForeground(); ok {
		t.Fatal("DefaultForeground should be unset on a fresh screen")
	}
	c := cell.Color{Mode: cell.ColorModeRGB, R: 1, G: 2, B: 3}
	s.Apply(SetDefaultColor(DefaultColorForeground, c))
	got, ok := s.DefaultForeground()
	if !ok || got != c {
		t.Fatalf("DefaultForeground = %+v, %v, want %+v, true", got, ok, c)
	}
}

func TestFullResetClearsDefaultColorOverrides(t *testing.T) {
	s := NewScreen(5, 3, 10)
	s.Apply(SetDefaultColor(DefaultColorBackground, cell.Color{R: 9}))
	s.Apply(FullReset())
	if _, ok := s.DefaultBackground(); ok {
		t.Fatal("FullReset should clear the default background override")
	}
}
