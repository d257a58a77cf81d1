// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtparse/parser.go
// Summary: VT100/xterm escape-sequence state machine.
// Usage: control feeds decoded runes one at a time via Parse; the parser
// calls back into whatever Sink was supplied with the screen.Action(s)
// each byte produces.
// Notes: Grounded directly on the teacher's apps/texelterm/parser/parser.go
// state machine (Ground/Escape/CSI/OSC/DCS/Charset), generalized to emit
// screen.Action values instead of calling *VTerm methods directly.

package vtparse

import (
	"strconv"
	"strings"

	"github.com/007durgesh219/terminator/cell"
	"github.com/007durgesh219/terminator/screen"
)

type state int

const (
	stateGround state = iota
	stateEscape
	stateCSI
	stateOSC
	stateOSCEscape
	stateCharset
	stateDCS
	stateDCSEscape
)

// Sink receives every action a Parser produces, including those from
// escape-only sequences (title, designate charset) that don't map onto a
// CSI final byte.
type Sink interface {
	Emit(screen.Action)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(screen.Action)

func (f SinkFunc) Emit(a screen.Action) { f(a) }

// Parser is the byte-at-a-time VT100/xterm state machine.
type Parser struct {
	state        state
	sink         Sink
	params       []int
	haveParam    bool
	private      bool
	intermediate rune
	oscBuffer    []rune
	dcsBuffer    []rune
	charsetSlot  int
	style        cell.Style
}

// NewParser returns a Parser that emits actions to sink.
func NewParser(sink Sink) *Parser {
	return &Parser{
		sink:      sink,
		params:    make([]int, 0, 16),
		oscBuffer: make([]rune, 0, 128),
		dcsBuffer: make([]rune, 0, 128),
	}
}

func (p *Parser) emit(a screen.Action) { p.sink.Emit(a) }

// Parse advances the state machine by one decoded rune. Each printable rune
// reaches the sink as its own PlainText action; control feeds every rune
// through Parse and merges consecutive PlainText actions into one segment
// itself.
func (p *Parser) Parse(r rune) {
	if p.state != stateGround {
		// CR, BS and VT bypass any in-progress escape/CSI/OSC/DCS sequence
		// and behave as their special-character actions, then the parser
		// resumes in the same state it was in (per vttest), so a host can
		// interleave a bare cursor-motion byte with a sequence still being
		// typed out over a slow link without corrupting the parse.
		switch r {
		case '\r':
			p.emit(screen.Special(screen.SpecialCR))
			return
		case '\b':
			p.emit(screen.Special(screen.SpecialBS))
			return
		case '\v':
			p.emit(screen.Special(screen.SpecialVT))
			return
		}
	}
	switch p.state {
	case stateGround:
		p.parseGround(r)
	case stateEscape:
		p.parseEscape(r)
	case stateCSI:
		p.parseCSI(r)
	case stateOSC:
		p.parseOSC(r)
	case stateOSCEscape:
		if r == '\\' {
			p.handleOSC(p.oscBuffer)
			p.state = stateGround
		} else {
			p.state = stateOSC
			p.oscBuffer = append(p.oscBuffer, '\x1b', r)
		}
	case stateCharset:
		p.emit(screen.DesignateCharset(p.charsetSlot, byte(r)))
		p.state = stateGround
	case stateDCS:
		if r == '\x1b' {
			p.state = stateDCSEscape
		} else {
			p.dcsBuffer = append(p.dcsBuffer, r)
		}
	case stateDCSEscape:
		if r == '\\' {
			p.state = stateGround
		} else {
			p.state = stateDCS
			p.dcsBuffer = append(p.dcsBuffer, '\x1b', r)
		}
	}
}

// ParseText feeds a run of printable, escape-free text directly to the
// sink as a single PlainText action, bypassing the per-rune switch. control
// does not use it; it feeds every rune through Parse.
func (p *Parser) ParseText(s string) {
	if s != "" {
		p.emit(screen.PlainText(s))
	}
}

func (p *Parser) parseGround(r rune) {
	switch r {
	case '\x1b':
		p.state = stateEscape
	case '\n':
		p.emit(screen.Special(screen.SpecialLF))
	case '\r':
		p.emit(screen.Special(screen.SpecialCR))
	case '\b':
		p.emit(screen.Special(screen.SpecialBS))
	case '\t':
		p.emit(screen.Special(screen.SpecialHT))
	case '\v':
		p.emit(screen.Special(screen.SpecialVT))
	case '\a':
		p.emit(screen.Bell())
	case '\x0e': // SO: shift to G1
		p.emit(screen.InvokeCharset(1))
	case '\x0f': // SI: shift to G0
		p.emit(screen.InvokeCharset(0))
	default:
		if r >= ' ' || r == 0 {
			p.emit(screen.PlainText(string(r)))
		}
	}
}

func (p *Parser) parseEscape(r rune) {
	switch r {
	case '[':
		p.state = stateCSI
		p.params = p.params[:0]
		p.haveParam = false
		p.private = false
		p.intermediate = 0
	case ']':
		p.state = stateOSC
		p.oscBuffer = p.oscBuffer[:0]
	case 'P':
		p.state = stateDCS
		p.dcsBuffer = p.dcsBuffer[:0]
	case '(', ')', '*', '+':
		p.state = stateCharset
		p.charsetSlot = charsetSlotFor(r)
	case '7':
		p.emit(screen.SaveCursor())
		p.state = stateGround
	case '8':
		p.emit(screen.RestoreCursor())
		p.state = stateGround
	case 'D':
		p.emit(screen.Special(screen.SpecialLF))
		p.state = stateGround
	case 'M':
		p.emit(screen.CursorMoveRel(-1, 0))
		p.state = stateGround
	case 'n': // LS2: invoke G2 into GL
		p.emit(screen.InvokeCharset(2))
		p.state = stateGround
	case 'o': // LS3: invoke G3 into GL
		p.emit(screen.InvokeCharset(3))
		p.state = stateGround
	case 'c':
		p.emit(screen.FullReset())
		p.state = stateGround
	case '=', '>':
		p.state = stateGround
	default:
		p.state = stateGround
	}
}

func charsetSlotFor(designator rune) int {
	switch designator {
	case ')':
		return 1
	case '*':
		return 2
	case '+':
		return 3
	default:
		return 0
	}
}

func (p *Parser) parseCSI(r rune) {
	switch {
	case r >= '0' && r <= '9':
		if !p.haveParam {
			p.params = append(p.params, 0)
			p.haveParam = true
		}
		last := len(p.params) - 1
		p.params[last] = p.params[last]*10 + int(r-'0')
	case r == ';':
		if !p.haveParam {
			p.params = append(p.params, 0)
		}
		p.haveParam = false
	case r >= '<' && r <= '?':
		p.private = true
	case r >= ' ' && r <= '/':
		p.intermediate = r
	case r >= '@' && r <= '~':
		if !p.haveParam && len(p.params) == 0 {
			// no params at all seen; leave params empty so handlers use defaults
		} else if !p.haveParam {
			p.params = append(p.params, 0)
		}
		p.dispatchCSI(r, p.params, p.private, p.intermediate)
		p.state = stateGround
	default:
		p.state = stateGround
	}
}

func paramOrDefault(params []int, i, def int) int {
	if i >= len(params) {
		return def
	}
	if params[i] == 0 {
		return def
	}
	return params[i]
}

func (p *Parser) dispatchCSI(final rune, params []int, private bool, intermediate rune) {
	if private {
		p.dispatchPrivateMode(final, params)
		return
	}
	switch final {
	case 'A':
		p.emit(screen.CursorMoveRel(-paramOrDefault(params, 0, 1), 0))
	case 'B':
		p.emit(screen.CursorMoveRel(paramOrDefault(params, 0, 1), 0))
	case 'C':
		p.emit(screen.CursorMoveRel(0, paramOrDefault(params, 0, 1)))
	case 'D':
		p.emit(screen.CursorMoveRel(0, -paramOrDefault(params, 0, 1)))
	case 'H', 'f':
		row := paramOrDefault(params, 0, 1) - 1
		col := paramOrDefault(params, 1, 1) - 1
		p.emit(screen.CursorMoveAbs(row, col))
	case 'J':
		p.emit(screen.EraseInDisplay(paramOrDefault(params, 0, 0)))
	case 'K':
		p.emit(screen.EraseInLine(paramOrDefault(params, 0, 0)))
	case 'L':
		p.emit(screen.InsertLines(paramOrDefault(params, 0, 1)))
	case 'M':
		p.emit(screen.DeleteLines(paramOrDefault(params, 0, 1)))
	case 'P':
		p.emit(screen.DeleteChars(paramOrDefault(params, 0, 1)))
	case '@':
		p.emit(screen.InsertChars(paramOrDefault(params, 0, 1)))
	case 'X':
		p.emit(screen.EraseChars(paramOrDefault(params, 0, 1)))
	case 'r':
		p.emit(screen.SetScrollRegion(paramOrDefault(params, 0, 0), paramOrDefault(params, 1, 0)))
	case 'm':
		p.style = sgrApply(p.style, params)
		p.emit(screen.SetStyle(p.style))
	case 'h':
		p.dispatchAnsiMode(params, true)
	case 'l':
		p.dispatchAnsiMode(params, false)
	case 's':
		p.emit(screen.SaveCursor())
	case 'u':
		p.emit(screen.RestoreCursor())
	case 'g':
		if paramOrDefault(params, 0, 0) == 3 {
			p.emit(screen.TabClear(screen.TabClearAll))
		} else {
			p.emit(screen.TabClear(screen.TabClearCurrent))
		}
	}
}

func (p *Parser) dispatchAnsiMode(params []int, on bool) {
	for _, m := range params {
		switch m {
		case 4:
			p.emit(screen.SetMode(screen.ModeInsert, on))
		case 20:
			p.emit(screen.SetMode(screen.ModeLNM, on))
		}
	}
}

func (p *Parser) dispatchPrivateMode(final rune, params []int) {
	if final != 'h' && final != 'l' {
		return
	}
	on := final == 'h'
	for _, m := range params {
		switch m {
		case 1:
			p.emit(screen.SetMode(screen.ModeAppCursorKeys, on))
		case 6:
			p.emit(screen.SetMode(screen.ModeOriginMode, on))
		case 7:
			p.emit(screen.SetMode(screen.ModeAutoWrap, on))
		case 25:
			p.emit(screen.SetMode(screen.ModeCursorVisible, on))
		case 69:
			p.emit(screen.SetMode(screen.ModeLeftRightMargin, on))
		case 1047, 1049:
			p.emit(screen.SetMode(screen.ModeAltScreen, on))
		case 2004:
			p.emit(screen.SetMode(screen.ModeBracketedPaste, on))
		}
	}
}

func (p *Parser) parseOSC(r rune) {
	if r == '\a' {
		p.handleOSC(p.oscBuffer)
		p.state = stateGround
		return
	}
	if r == '\x1b' {
		p.state = stateOSCEscape
		return
	}
	p.oscBuffer = append(p.oscBuffer, r)
}

func (p *Parser) handleOSC(seq []rune) {
	parts := strings.SplitN(string(seq), ";", 2)
	if len(parts) == 0 {
		return
	}
	cmd, err := strconv.Atoi(parts[0])
	if err != nil {
		return
	}
	payload := ""
	if len(parts) == 2 {
		payload = parts[1]
	}
	switch cmd {
	case 0, 1, 2:
		p.emit(screen.WindowTitle(payload))
	case 10, 11:
		slot := screen.DefaultColorForeground
		if cmd == 11 {
			slot = screen.DefaultColorBackground
		}
		if payload == "?" {
			p.emit(screen.QueryDefaultColor(slot))
			return
		}
		if c, ok := parseOSCColor(payload); ok {
			p.emit(screen.SetDefaultColor(slot, c))
		}
	}
}

// parseOSCColor decodes the "rgb:rrrr/gggg/bbbb" form OSC 10/11 use to set
// a color (each channel 1-4 hex digits, left-justified to 16 bits per
// xterm's convention, then reduced to its high 8 bits).
func parseOSCColor(payload string) (cell.Color, bool) {
	const prefix = "rgb:"
	if !strings.HasPrefix(payload, prefix) {
		return cell.Color{}, false
	}
	parts := strings.Split(payload[len(prefix):], "/")
	if len(parts) != 3 {
		return cell.Color{}, false
	}
	channel := func(s string) (uint8, bool) {
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return 0, false
		}
		bits := len(s) * 4
		if bits > 16 {
			bits = 16
		}
		v = v << (16 - bits) // left-align to 16 bits, per xterm's convention
		return uint8(v >> 8), true
	}
	r, ok1 := channel(parts[0])
	g, ok2 := channel(parts[1])
	b, ok3 := channel(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return cell.Color{}, false
	}
	return cell.Color{Mode: cell.ColorModeRGB, R: r, G: g, B: b}, true
}
