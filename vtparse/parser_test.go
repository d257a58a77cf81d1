// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtparse/parser_test.go

package vtparse

import (
	"testing"

	"github.com/007durgesh219/terminator/screen"
)

func collect(input string) []screen.Action {
	var got []screen.Action
	p := NewParser(SinkFunc(func(a screen.Action) { got = append(got, a) }))
	for _, r := range input {
		p.Parse(r)
	}
	return got
}

func TestCursorBackCSI(t *testing.T) {
	got := collect("\x1b[2D")
	if len(got) != 1 || got[0].Kind != screen.ActionCursorMove {
		t.Fatalf("got %+v", got)
	}
	if got[0].MoveKind != screen.CursorRel || got[0].Col != -2 {
		t.Fatalf("got %+v, want rel col=-2", got[0])
	}
}

func TestSGRSetAndReset(t *testing.T) {
	got := collect("\x1b[31mX\x1b[0mY")
	if len(got) != 4 {
		t.Fatalf("got %d actions, want 4: %+v", len(got), got)
	}
	if got[0].Kind != screen.ActionSetStyle {
		t.Fatalf("action 0 = %+v, want SetStyle", got[0])
	}
	if got[1].Kind != screen.ActionPlainText || got[1].Text != "X" {
		t.Fatalf("action 1 = %+v", got[1])
	}
	if got[2].Kind != screen.ActionSetStyle {
		t.Fatalf("action 2 = %+v, want SetStyle", got[2])
	}
	if got[3].Kind != screen.ActionPlainText || got[3].Text != "Y" {
		t.Fatalf("action 3 = %+v", got[3])
	}
}

func TestScrollRegionCSI(t *testing.T) {
	got := collect("\x1b[1;2r")
	if len(got) != 1 || got[0].Kind != screen.ActionSetScrollRegion {
		t.Fatalf("got %+v", got)
	}
	if got[0].Col != 1 || got[0].Row != 2 {
		t.Fatalf("got %+v, want top=1 bottom=2", got[0])
	}
}

func TestSaveRestoreCSI(t *testing.T) {
	got := collect("\x1b[s\x1b[u")
	if len(got) != 2 || got[0].Kind != screen.ActionSaveCursor || got[1].Kind != screen.ActionRestoreCursor {
		t.Fatalf("got %+v", got)
	}
}

func TestCharsetDesignateAndInvoke(t *testing.T) {
	got := collect("\x1b(0lqk\x1b(B")
	if len(got) < 4 {
		t.Fatalf("got %d actions, want at least 4: %+v", len(got), got)
	}
	if got[0].Kind != screen.ActionDesignateCharset || got[0].CharsetName != '0' {
		t.Fatalf("action 0 = %+v, want DesignateCharset '0'", got[0])
	}
	// 'l', 'q', 'k' pass through as plain text once G0 designation completes.
	for i := 1; i <= 3; i++ {
		if got[i].Kind != screen.ActionPlainText {
			t.Fatalf("action %d = %+v, want PlainText", i, got[i])
		}
	}
	last := got[len(got)-1]
	if last.Kind != screen.ActionDesignateCharset || last.CharsetName != 'B' {
		t.Fatalf("last action = %+v, want DesignateCharset 'B'", last)
	}
}

func TestDECSCDECRC(t *testing.T) {
	got := collect("\x1b7\x1b8")
	if len(got) != 2 || got[0].Kind != screen.ActionSaveCursor || got[1].Kind != screen.ActionRestoreCursor {
		t.Fatalf("got %+v", got)
	}
}

func TestCRBypassesInProgressEscape(t *testing.T) {
	got := collect("\x1b[1\r")
	if len(got) != 1 || got[0].Kind != screen.ActionSpecialChar || got[0].Special != screen.SpecialCR {
		t.Fatalf("got %+v, want a bare CR bypassing the unfinished CSI", got)
	}
}

func TestOSCTitleTerminatedByBEL(t *testing.T) {
	got := collect("\x1b]0;my title\a")
	if len(got) != 1 || got[0].Kind != screen.ActionWindowTitle {
		t.Fatalf("got %+v", got)
	}
	if got[0].WindowTitle != "my title" {
		t.Fatalf("title = %q", got[0].WindowTitle)
	}
}

func TestDesignateAndInvokeG2G3(t *testing.T) {
	got := collect("\x1b*0\x1bn\x1b+B\x1bo")
	if len(got) != 4 {
		t.Fatalf("got %d actions, want 4: %+v", len(got), got)
	}
	if got[0].Kind != screen.ActionDesignateCharset || got[0].CharsetSlot != 2 || got[0].CharsetName != '0' {
		t.Fatalf("action 0 = %+v, want DesignateCharset(2, '0')", got[0])
	}
	if got[1].Kind != screen.ActionInvokeCharset || got[1].CharsetSlot != 2 {
		t.Fatalf("action 1 = %+v, want InvokeCharset(2)", got[1])
	}
	if got[2].Kind != screen.ActionDesignateCharset || got[2].CharsetSlot != 3 || got[2].CharsetName != 'B' {
		t.Fatalf("action 2 = %+v, want DesignateCharset(3, 'B')", got[2])
	}
	if got[3].Kind != screen.ActionInvokeCharset || got[3].CharsetSlot != 3 {
		t.Fatalf("action 3 = %+v, want InvokeCharset(3)", got[3])
	}
}

func TestShiftOutShiftInInvokesCharset(t *testing.T) {
	got := collect("\x0eA\x0fB")
	if len(got) != 4 {
		t.Fatalf("got %d actions, want 4: %+v", len(got), got)
	}
	if got[0].Kind != screen.ActionInvokeCharset || got[0].CharsetSlot != 1 {
		t.Fatalf("action 0 = %+v, want InvokeCharset(1)", got[0])
	}
	if got[2].Kind != screen.ActionInvokeCharset || got[2].CharsetSlot != 0 {
		t.Fatalf("action 2 = %+v, want InvokeCharset(0)", got[2])
	}
}

func TestOSCQueryDefaultForeground(t *testing.T) {
	got := collect("\x1b]10;?\a")
	if len(got) != 1 || got[0].Kind != screen.ActionQueryDefaultColor {
		t.Fatalf("got %+v", got)
	}
	if got[0].DefaultSlot != screen.DefaultColorForeground {
		t.Fatalf("got %+v, want DefaultColorForeground", got[0])
	}
}

func TestOSCSetDefaultBackground(t *testing.T) {
	got := collect("\x1b]11;rgb:aa/bb/cc\a")
	if len(got) != 1 || got[0].Kind != screen.ActionSetDefaultColor {
		t.Fatalf("got %+v", got)
	}
	a := got[0]
	if a.DefaultSlot != screen.DefaultColorBackground {
		t.Fatalf("slot = %v, want background", a.DefaultSlot)
	}
	if a.Color.R != 0xaa || a.Color.G != 0xbb || a.Color.B != 0xcc {
		t.Fatalf("color = %+v", a.Color)
	}
}

func TestOSCSetDefaultColorMalformedPayloadIsIgnored(t *testing.T) {
	got := collect("\x1b]10;not-a-color\a")
	if len(got) != 0 {
		t.Fatalf("got %+v, want no actions for a malformed OSC 10 payload", got)
	}
}

func TestPrivateModeAltScreen(t *testing.T) {
	got := collect("\x1b[?1049h")
	if len(got) != 1 || got[0].Kind != screen.ActionSetMode {
		t.Fatalf("got %+v", got)
	}
	if got[0].Mode != screen.ModeAltScreen || !got[0].On {
		t.Fatalf("got %+v, want ModeAltScreen on", got[0])
	}
}
