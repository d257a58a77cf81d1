// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: vtparse/sgr.go
// Summary: CSI m (Select Graphic Rendition) parameter interpretation.
// Usage: dispatchCSI calls sgrApply for the 'm' final byte.
// Notes: Grounded on the teacher's vterm_sgr.go parameter table, extended
// with 256-color (38/48;5;n) and true-color (38/48;2;r;g;b) forms per
// spec.md §6's styling requirements; SGR params are cumulative against the
// parser's running style rather than a fresh Style each time, since "ESC
// [1m...ESC [4m" must leave bold set when underline is added.

package vtparse

import "github.com/007durgesh219/terminator/cell"

func sgrApply(style cell.Style, params []int) cell.Style {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		n := params[i]
		switch {
		case n == 0:
			style = cell.DefaultStyle
		case n == 1:
			style.Attr |= cell.AttrBold
		case n == 4:
			style.Attr |= cell.AttrUnderline
		case n == 7:
			style.Attr |= cell.AttrReverse
		case n == 21 || n == 22:
			style.Attr &^= cell.AttrBold
		case n == 24:
			style.Attr &^= cell.AttrUnderline
		case n == 27:
			style.Attr &^= cell.AttrReverse
		case n >= 30 && n <= 37:
			style.FG = cell.Color{Mode: cell.ColorModeStandard, Value: uint8(n - 30)}
		case n == 38:
			var c cell.Color
			c, i = parseExtendedColor(params, i)
			style.FG = c
		case n == 39:
			style.FG = cell.DefaultFG
		case n >= 40 && n <= 47:
			style.BG = cell.Color{Mode: cell.ColorModeStandard, Value: uint8(n - 40)}
		case n == 48:
			var c cell.Color
			c, i = parseExtendedColor(params, i)
			style.BG = c
		case n == 49:
			style.BG = cell.DefaultBG
		case n >= 90 && n <= 97:
			style.FG = cell.Color{Mode: cell.ColorModeStandard, Value: uint8(n - 90 + 8)}
		case n >= 100 && n <= 107:
			style.BG = cell.Color{Mode: cell.ColorModeStandard, Value: uint8(n - 100 + 8)}
		}
	}
	return style
}

// parseExtendedColor consumes the 5;n or 2;r;g;b subsequence that follows a
// 38/48 SGR parameter, returning the resulting color and the index of the
// last parameter it consumed.
func parseExtendedColor(params []int, i int) (cell.Color, int) {
	if i+1 >= len(params) {
		return cell.Color{}, i
	}
	switch params[i+1] {
	case 5:
		if i+2 < len(params) {
			return cell.Color{Mode: cell.ColorMode256, Value: uint8(params[i+2])}, i + 2
		}
	case 2:
		if i+4 < len(params) {
			return cell.Color{
				Mode: cell.ColorModeRGB,
				R:    uint8(params[i+2]),
				G:    uint8(params[i+3]),
				B:    uint8(params[i+4]),
			}, i + 4
		}
	}
	return cell.Color{}, i
}
