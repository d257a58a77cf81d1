// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: control/control_test.go

package control

import (
	"bytes"
	"testing"
	"time"

	"github.com/007durgesh219/terminator/cell"
	"github.com/007durgesh219/terminator/screen"
)

type recordingObserver struct {
	bells   int
	titles  []string
	visible []bool
	closed  bool
}

func (r *recordingObserver) Bell()                      { r.bells++ }
func (r *recordingObserver) TitleChanged(t string)       { r.titles = append(r.titles, t) }
func (r *recordingObserver) CursorVisibilityChanged(v bool) { r.visible = append(r.visible, v) }
func (r *recordingObserver) Closed()                     { r.closed = true }

func newTestSetup(t *testing.T) (*Interpreter, *screen.Screen, *recordingObserver) {
	t.Helper()
	scr := screen.NewScreen(20, 5, 100)
	uiCh := make(chan screen.Batch, 4)
	done := make(chan struct{})
	go func() {
		scr.Pump(uiCh)
		close(done)
	}()
	obs := &recordingObserver{}
	c := New(uiCh, obs, &bytes.Buffer{}, nil, cell.Color{}, cell.Color{})
	t.Cleanup(func() {
		close(uiCh)
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("screen Pump did not exit")
		}
	})
	return c, scr, obs
}

func TestPlainTextReachesScreen(t *testing.T) {
	c, scr, _ := newTestSetup(t)
	c.Feed([]byte("hello"))
	if got := scr.Line(0).DisplayString()[:5]; got != "hello" {
		t.Fatalf("line 0 = %q", got)
	}
}

func TestLineDrawingTranslation(t *testing.T) {
	c, scr, _ := newTestSetup(t)
	c.Feed([]byte("\x1b(0lqk\x1b(B"))
	got := scr.Line(0).DisplayString()
	want := "┌─┐"
	runes := []rune(got)
	wantRunes := []rune(want)
	for i, wr := range wantRunes {
		if runes[i] != wr {
			t.Fatalf("line 0 = %q, want prefix %q", got, want)
		}
	}
}

func TestBellCallsObserverImmediately(t *testing.T) {
	c, _, obs := newTestSetup(t)
	c.Feed([]byte("\x07"))
	if obs.bells != 1 {
		t.Fatalf("bells = %d, want 1", obs.bells)
	}
}

func TestTitleChangedAndAppliedToScreen(t *testing.T) {
	c, scr, obs := newTestSetup(t)
	c.Feed([]byte("\x1b]0;hello world\a"))
	if len(obs.titles) != 1 || obs.titles[0] != "hello world" {
		t.Fatalf("titles = %+v", obs.titles)
	}
	if scr.Title() != "hello world" {
		t.Fatalf("screen title = %q", scr.Title())
	}
}

func TestSaveRestoreCursorPreservesCharsetState(t *testing.T) {
	c, scr, _ := newTestSetup(t)
	// Designate G0 as line-drawing, save, switch back to ASCII, restore.
	c.Feed([]byte("\x1b(0\x1b7\x1b(B\x1b8q"))
	got := scr.Line(0).DisplayString()
	if []rune(got)[0] != '─' {
		t.Fatalf("expected restored line-drawing charset to translate 'q', got %q", got)
	}
}

func TestOSCQueryDefaultForegroundRepliesWithSeededColor(t *testing.T) {
	var buf bytes.Buffer
	obs := &recordingObserver{}
	scr := screen.NewScreen(10, 2, 10)
	uiCh := make(chan screen.Batch, 4)
	done := make(chan struct{})
	go func() { scr.Pump(uiCh); close(done) }()
	c := New(uiCh, obs, &buf, nil, cell.Color{R: 0xaa, G: 0xbb, B: 0xcc}, cell.Color{})
	c.Start()
	c.Feed([]byte("\x1b]10;?\a"))
	c.Stop()
	close(uiCh)
	<-done
	want := "\x1b]10;rgb:aaaa/bbbb/cccc\a"
	if got := buf.String(); got != want {
		t.Fatalf("OSC 10 query reply = %q, want %q", got, want)
	}
}

func TestOSCSetDefaultBackgroundUpdatesScreenAndFutureQueries(t *testing.T) {
	var buf bytes.Buffer
	obs := &recordingObserver{}
	scr := screen.NewScreen(10, 2, 10)
	uiCh := make(chan screen.Batch, 4)
	done := make(chan struct{})
	go func() { scr.Pump(uiCh); close(done) }()
	c := New(uiCh, obs, &buf, nil, cell.Color{}, cell.Color{})
	c.Start()
	c.Feed([]byte("\x1b]11;rgb:1111/2222/3333\a"))
	c.Feed([]byte("\x1b]11;?\a"))
	c.Stop()
	close(uiCh)
	<-done

	if got, ok := scr.DefaultBackground(); !ok || got.R != 0x11 || got.G != 0x22 || got.B != 0x33 {
		t.Fatalf("screen default background = %+v, ok=%v", got, ok)
	}
	want := "\x1b]11;rgb:1111/2222/3333\a"
	if got := buf.String(); got != want {
		t.Fatalf("OSC 11 query reply = %q, want %q", got, want)
	}
}

func TestWriterIsFIFO(t *testing.T) {
	var buf bytes.Buffer
	obs := &recordingObserver{}
	scr := screen.NewScreen(10, 2, 10)
	uiCh := make(chan screen.Batch, 4)
	done := make(chan struct{})
	go func() { scr.Pump(uiCh); close(done) }()
	c := New(uiCh, obs, &buf, nil, cell.Color{}, cell.Color{})
	c.Start()
	c.SendString("a")
	c.SendString("b")
	c.SendString("c")
	c.Stop()
	close(uiCh)
	<-done
	if got := buf.String(); got != "abc" {
		t.Fatalf("writer output = %q, want %q", got, "abc")
	}
}
