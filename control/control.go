// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: control/control.go
// Summary: Terminal interpreter: UTF-8 decode, charset shift state, the
// action batch boundary between vtparse and screen, and the
// single-threaded PTY writer.
// Usage: ptyhost feeds PTY output to Interpreter.Feed; front-ends send
// keystrokes/paste text through Interpreter.Send.
// Notes: Grounded on original_source's TerminalControl.java
// (processBuffer/processChar/flushTerminalActions/sendUtf8String), adapted
// from a single AWT-dispatch callback to a bounded screen.Batch channel and
// a dedicated writer goroutine.

package control

import (
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/007durgesh219/terminator/cell"
	"github.com/007durgesh219/terminator/screen"
	"github.com/007durgesh219/terminator/vtparse"
)

// Interpreter is the terminal-side half of the VT100/xterm protocol: it
// decodes UTF-8 off the PTY, tracks the four Gn charset designations and
// which one is currently invoked, and turns vtparse's actions into a
// batch applied to a Screen.
type Interpreter struct {
	mu sync.Mutex

	g            [4]byte
	invoked      int
	savedG       [4]byte
	savedInvoked int
	savedValid   bool

	parser  *vtparse.Parser
	pending []byte
	batch   []screen.Action

	uiCh chan<- screen.Batch
	obs  Observer
	log  io.Writer

	writeCh    chan []byte
	writerDone chan struct{}
	pty        io.Writer

	defaultFG, defaultBG cell.Color
}

// New returns an Interpreter that applies batches over uiCh (consumed by a
// goroutine running Screen.Pump) and reports side effects to obs. pty is
// the PTY master's write end; logw, if non-nil, receives every decoded
// rune re-encoded as UTF-8, mirroring the session's raw byte stream.
// defaultFG/defaultBG seed the colors OSC 10/11 queries answer with before
// any application has overridden them (normally the session's configured
// foreground/background).
func New(uiCh chan<- screen.Batch, obs Observer, pty io.Writer, logw io.Writer, defaultFG, defaultBG cell.Color) *Interpreter {
	if obs == nil {
		obs = NopObserver{}
	}
	c := &Interpreter{
		g:         [4]byte{'B', '0', 'B', 'B'},
		uiCh:      uiCh,
		obs:       obs,
		pty:       pty,
		log:       logw,
		writeCh:   make(chan []byte, 64),
		defaultFG: defaultFG,
		defaultBG: defaultBG,
	}
	c.parser = vtparse.NewParser(vtparse.SinkFunc(c.onAction))
	return c
}

// Start launches the dedicated writer goroutine. Call once; Stop ends it.
func (c *Interpreter) Start() {
	c.writerDone = make(chan struct{})
	go c.writerLoop()
}

// Stop closes the write queue and waits for the writer goroutine to drain.
func (c *Interpreter) Stop() {
	close(c.writeCh)
	if c.writerDone != nil {
		<-c.writerDone
	}
}

func (c *Interpreter) writerLoop() {
	defer close(c.writerDone)
	for data := range c.writeCh {
		if c.pty == nil {
			continue
		}
		if _, err := c.pty.Write(data); err != nil {
			return
		}
	}
}

// Send enqueues bytes for the single writer goroutine to deliver to the
// PTY, in FIFO order. Safe to call from any goroutine (e.g. a UI input
// handler); writes from concurrent callers are never interleaved because
// only the writer goroutine ever touches the PTY's write end.
func (c *Interpreter) Send(data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)
	c.writeCh <- buf
}

// SendString is a convenience wrapper around Send for UTF-8 text.
func (c *Interpreter) SendString(s string) {
	c.Send([]byte(s))
}

// Feed decodes data as UTF-8 (carrying any trailing partial rune over to
// the next call, so a multi-byte sequence split across two PTY reads
// decodes correctly) and processes each rune in turn, then flushes the
// accumulated action batch to the UI goroutine exactly once.
func (c *Interpreter) Feed(data []byte) {
	c.mu.Lock()
	c.pending = append(c.pending, data...)
	for len(c.pending) > 0 {
		if !utf8.FullRune(c.pending) {
			break
		}
		r, size := utf8.DecodeRune(c.pending)
		c.pending = c.pending[size:]
		c.logRune(r)
		c.parser.Parse(r)
	}
	batch := c.batch
	c.batch = nil
	c.mu.Unlock()

	if len(batch) > 0 && c.uiCh != nil {
		screen.Send(c.uiCh, batch)
	}
}

func (c *Interpreter) logRune(r rune) {
	if c.log == nil {
		return
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	c.log.Write(buf[:n])
}

// onAction is vtparse's sink callback, invoked synchronously from Parse.
// It intercepts charset state and bell/title/cursor-visibility side
// effects; everything else is queued for the next Feed-level flush.
func (c *Interpreter) onAction(a screen.Action) {
	switch a.Kind {
	case screen.ActionPlainText:
		// Consecutive printable runes merge into one PlainText segment.
		text := c.translateString(a.Text)
		if n := len(c.batch); n > 0 && c.batch[n-1].Kind == screen.ActionPlainText {
			c.batch[n-1].Text += text
		} else {
			c.batch = append(c.batch, screen.PlainText(text))
		}
	case screen.ActionDesignateCharset:
		if a.CharsetSlot >= 0 && a.CharsetSlot < len(c.g) {
			c.g[a.CharsetSlot] = a.CharsetName
		}
	case screen.ActionInvokeCharset:
		if a.CharsetSlot >= 0 && a.CharsetSlot < len(c.g) {
			c.invoked = a.CharsetSlot
		}
	case screen.ActionSaveCursor:
		c.savedG = c.g
		c.savedInvoked = c.invoked
		c.savedValid = true
		c.batch = append(c.batch, a)
	case screen.ActionRestoreCursor:
		if c.savedValid {
			c.g = c.savedG
			c.invoked = c.savedInvoked
		}
		c.batch = append(c.batch, a)
	case screen.ActionBell:
		c.obs.Bell()
	case screen.ActionWindowTitle:
		c.obs.TitleChanged(a.WindowTitle)
		c.batch = append(c.batch, a)
	case screen.ActionSetMode:
		if a.Mode == screen.ModeCursorVisible {
			c.obs.CursorVisibilityChanged(a.On)
		}
		c.batch = append(c.batch, a)
	case screen.ActionSetDefaultColor:
		if a.DefaultSlot == screen.DefaultColorForeground {
			c.defaultFG = a.Color
		} else {
			c.defaultBG = a.Color
		}
		c.batch = append(c.batch, a)
	case screen.ActionQueryDefaultColor:
		c.replyDefaultColor(a.DefaultSlot)
	default:
		c.batch = append(c.batch, a)
	}
}

// replyDefaultColor answers an OSC 10/11 query ("what's the current default
// foreground/background?") in xterm's own reply format: OSC 10/11 ; rgb:
// rrrr/gggg/bbbb, terminated by BEL. The reply goes straight back down the
// PTY write queue, the same path keystrokes take.
func (c *Interpreter) replyDefaultColor(slot screen.DefaultColorSlot) {
	col := c.defaultFG
	oscNum := 10
	if slot == screen.DefaultColorBackground {
		col = c.defaultBG
		oscNum = 11
	}
	widen := func(v uint8) uint16 { return uint16(v)<<8 | uint16(v) }
	reply := fmt.Sprintf("\x1b]%d;rgb:%04x/%04x/%04x\a", oscNum, widen(col.R), widen(col.G), widen(col.B))
	c.SendString(reply)
}

func (c *Interpreter) translateString(s string) string {
	if c.g[c.invoked] != '0' && c.g[c.invoked] != 'A' {
		return s
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, c.translate(r))
	}
	return string(out)
}

// AnnounceConnectionLost feeds a termination message through the normal
// decode/translate/apply path (so it appears on screen like any other
// output), hides the cursor, and reports Closed to the observer.
// cmd/terminator's session calls this once ptyhost has reaped the child,
// passing the text from ptyhost.Reap.Message (e.g.
// "[Process exited with status 1.]").
func (c *Interpreter) AnnounceConnectionLost(message string) {
	c.Feed([]byte(message))
	c.obs.CursorVisibilityChanged(false)
	c.obs.Closed()
}
