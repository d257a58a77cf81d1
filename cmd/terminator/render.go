// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/terminator/render.go
// Summary: Thin tcell-based reference renderer and keyboard input loop.
// Usage: runUI paints one session's Screen until the user quits (Ctrl-Q) or
// the child process exits.
// Notes: Grounded on the teacher's apps/texelterm/term.go (tcell.Screen
// SetContent-per-cell painting, HandleKey's special-key-to-escape-sequence
// switch) -- generalized from the teacher's fixed 258-entry tcell.Color
// palette to a palette built from config.Settings (the spec's color0..7/
// background/foreground/colorBD/cursorColor resources), and from *os.File
// pty writes to control.Interpreter.Send.

package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/007durgesh219/terminator/cell"
	"github.com/007durgesh219/terminator/config"
	"github.com/007durgesh219/terminator/screen"
)

// palette maps the 16 legacy ANSI color slots to tcell colors, built from
// config.Settings.Colors (0-7) plus a brightened variant for 8-15 (xterm's
// "bold" colors, which spec.md's resource set never separately exposes --
// see config.Settings.ColorBD for the one bold color the options file does
// expose).
type palette struct {
	colors     [16]tcell.Color
	background tcell.Color
	foreground tcell.Color
}

func buildPalette(settings *config.Settings) palette {
	var p palette
	for i, c := range settings.Colors {
		p.colors[i] = colorToTcell(c)
		p.colors[i+8] = colorToTcell(brighten(c))
	}
	p.background = colorToTcell(settings.Background)
	p.foreground = colorToTcell(settings.Foreground)
	return p
}

func colorToTcell(c config.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func brighten(c config.Color) config.Color {
	lighten := func(v uint8) uint8 {
		return v + (255-v)/2
	}
	return config.Color{R: lighten(c.R), G: lighten(c.G), B: lighten(c.B)}
}

// resolveColor maps a cell.Color (whichever of the four ColorMode kinds it
// carries) to a concrete tcell.Color against this palette.
func (p palette) resolveColor(def tcell.Color, c cell.Color) tcell.Color {
	switch c.Mode {
	case cell.ColorModeDefault:
		return def
	case cell.ColorModeStandard:
		if int(c.Value) < len(p.colors) {
			return p.colors[c.Value]
		}
		return def
	case cell.ColorMode256:
		if c.Value < 16 {
			return p.colors[c.Value]
		}
		r, g, b := ansi256(c.Value)
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	case cell.ColorModeRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return def
	}
}

// ansi256 decodes xterm's 256-color palette indices 16-255: a 6x6x6 color
// cube followed by a 24-step grayscale ramp.
func ansi256(v uint8) (r, g, b uint8) {
	if v >= 232 {
		level := 8 + (v-232)*10
		return level, level, level
	}
	v -= 16
	cube := func(n uint8) uint8 {
		if n == 0 {
			return 0
		}
		return 55 + n*40
	}
	return cube(v / 36), cube((v / 6) % 6), cube(v % 6)
}

// effectiveDefaults returns this palette's foreground/background, unless
// the running application has overridden one or both via OSC 10/11, in
// which case the override wins.
func (p palette) effectiveDefaults(term *screen.Screen) (fg, bg tcell.Color) {
	fg, bg = p.foreground, p.background
	if c, ok := term.DefaultForeground(); ok {
		fg = colorToTcell(config.Color{R: c.R, G: c.G, B: c.B})
	}
	if c, ok := term.DefaultBackground(); ok {
		bg = colorToTcell(config.Color{R: c.R, G: c.G, B: c.B})
	}
	return fg, bg
}

func (p palette) styleToTcell(def tcell.Color, defBG tcell.Color, st cell.Style) tcell.Style {
	fg := p.resolveColor(def, st.FG)
	bg := p.resolveColor(defBG, st.BG)
	if st.Reverse() {
		fg, bg = bg, fg
	}
	ts := tcell.StyleDefault.Foreground(fg).Background(bg)
	if st.Bold() {
		ts = ts.Bold(true)
	}
	if st.Underline() {
		ts = ts.Underline(true)
	}
	return ts
}

// paint redraws every visible cell of term onto ts.
func paint(ts tcell.Screen, term *screen.Screen, p palette) {
	ts.Clear()
	defFG, defBG := p.effectiveDefaults(term)
	for y := 0; y < term.Rows(); y++ {
		line := term.Line(y)
		if line == nil {
			continue
		}
		for x := 0; x < line.Length() && x < term.Cols(); x++ {
			r := line.RuneAt(x)
			if r == cell.TabStart || r == cell.TabContinue {
				r = ' '
			}
			ts.SetContent(x, y, r, nil, p.styleToTcell(defFG, defBG, line.StyleAt(x)))
		}
	}
	if term.CursorVisible() {
		row, col := term.Cursor()
		ts.ShowCursor(col, row)
	} else {
		ts.HideCursor()
	}
	ts.Show()
}

// keyBytes translates a tcell key event into the byte sequence to send to
// the PTY, per the teacher's HandleKey switch, with arrow keys routed
// through DECCKM's SS3/CSI choice (appCursorKeys).
func keyBytes(ev *tcell.EventKey, appCursorKeys bool) []byte {
	arrow := func(csi, ss3 byte) []byte {
		if appCursorKeys {
			return []byte{0x1b, 'O', ss3}
		}
		return []byte{0x1b, '[', csi}
	}
	switch ev.Key() {
	case tcell.KeyUp:
		return arrow('A', 'A')
	case tcell.KeyDown:
		return arrow('B', 'B')
	case tcell.KeyRight:
		return arrow('C', 'C')
	case tcell.KeyLeft:
		return arrow('D', 'D')
	case tcell.KeyHome:
		return []byte("\x1b[H")
	case tcell.KeyEnd:
		return []byte("\x1b[F")
	case tcell.KeyInsert:
		return []byte("\x1b[2~")
	case tcell.KeyDelete:
		return []byte("\x1b[3~")
	case tcell.KeyPgUp:
		return []byte("\x1b[5~")
	case tcell.KeyPgDn:
		return []byte("\x1b[6~")
	case tcell.KeyF1:
		return []byte("\x1bOP")
	case tcell.KeyF2:
		return []byte("\x1bOQ")
	case tcell.KeyF3:
		return []byte("\x1bOR")
	case tcell.KeyF4:
		return []byte("\x1bOS")
	case tcell.KeyEnter:
		return []byte("\r")
	case tcell.KeyBackspace2:
		return []byte{0x7f}
	case tcell.KeyBackspace:
		return []byte{0x08}
	case tcell.KeyTab:
		return []byte("\t")
	case tcell.KeyEsc:
		return []byte{0x1b}
	case tcell.KeyCtrlA, tcell.KeyCtrlB, tcell.KeyCtrlC, tcell.KeyCtrlD, tcell.KeyCtrlE,
		tcell.KeyCtrlF, tcell.KeyCtrlG, tcell.KeyCtrlK, tcell.KeyCtrlL, tcell.KeyCtrlN,
		tcell.KeyCtrlO, tcell.KeyCtrlP, tcell.KeyCtrlR, tcell.KeyCtrlT, tcell.KeyCtrlU,
		tcell.KeyCtrlV, tcell.KeyCtrlW, tcell.KeyCtrlX, tcell.KeyCtrlY, tcell.KeyCtrlZ:
		return []byte{byte(ev.Key())}
	default:
		if ev.Rune() != 0 {
			return []byte(string(ev.Rune()))
		}
		return nil
	}
}

// runUI drives the tcell event loop for one session until the child exits
// or the user presses Ctrl-Q.
func runUI(sess *session, settings *config.Settings) error {
	ts, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := ts.Init(); err != nil {
		return err
	}
	defer ts.Fini()

	p := buildPalette(settings)
	sc := sess.screen

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := ts.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	paint(ts, sc, p)
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				cols, rows := e.Size()
				sess.screen.Resize(cols, rows)
				sess.host.Resize(cols, rows)
				paint(ts, sc, p)
			case *tcell.EventKey:
				if e.Key() == tcell.KeyCtrlQ {
					return nil
				}
				if kb := keyBytes(e, sess.screen.AppCursorKeys()); kb != nil {
					sess.interp.Send(kb)
				}
			}
		case <-sess.Repaint:
			paint(ts, sc, p)
		case <-sess.Done():
			paint(ts, sc, p)
			return nil
		}
	}
}
