// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/colors.go
// Summary: Resource color parsing: "#rrggbb" or an X11 rgb.txt name.
// Notes: Grounded on Options.colorFromString/getRgbColor/readRGBFile and
// Options.initDefaultColors/aliasColorBD. Uses github.com/lucasb-eyer/go-colorful
// for the "#rrggbb" parse (the pack's color-math library) instead of
// hand-rolled hex decoding; the X11 name table is a small built-in
// lowercase-keyed map standing in for rgb.txt, since shipping or locating
// the real file (Options tries a couple of hardcoded filesystem paths) isn't
// portable across the platforms this module targets.

package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple, serialized as "#rrggbb".
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor accepts "#rrggbb" or a lowercase X11 color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		cf, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("config: bad color %q: %w", s, err)
		}
		r, g, b := cf.RGB255()
		return Color{r, g, b}, nil
	}
	if c, ok := x11Colors[strings.ToLower(s)]; ok {
		return c, nil
	}
	return Color{}, fmt.Errorf("config: unknown color name %q", s)
}

func mustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// baseColors holds the default color0..color7 palette (Options.initDefaultColors).
var baseColors = [8]Color{
	mustColor("#000000"), // black
	mustColor("#cd0000"), // red3
	mustColor("#00cd00"), // green3
	mustColor("#cdcd00"), // yellow3
	mustColor("#0000cd"), // blue3
	mustColor("#cd00cd"), // magenta3
	mustColor("#00cdcd"), // cyan3
	mustColor("#e5e5e5"), // grey90
}

// boldVariants holds the bright counterpart of each baseColors entry, used
// only by the colorBD heuristic -- these have no resource name of their
// own, matching the original's comment that a real color8..15 resource was
// never exposed.
var boldVariants = [8]Color{
	mustColor("#4d4d4d"), // gray30
	mustColor("#ff0000"), // red
	mustColor("#00ff00"), // green
	mustColor("#ffff00"), // yellow
	mustColor("#0000ff"), // blue
	mustColor("#ff00ff"), // magenta
	mustColor("#00ffff"), // cyan
	mustColor("#ffffff"), // white
}

// resolveColorBD implements Options.aliasColorBD: if the user set their own
// colorBD, or never set foreground, leave it. Otherwise, if foreground
// matches one of the default colorN swatches exactly, use that swatch's
// bold counterpart.
func resolveColorBD(s *Settings) {
	if s.colorBDSet || !s.foregroundSet {
		return
	}
	for i, base := range baseColors {
		if s.Foreground == base {
			s.ColorBD = boldVariants[i]
			return
		}
	}
}

// x11Colors is a small subset of rgb.txt covering the names commonly used
// in terminal resource files.
var x11Colors = map[string]Color{
	"black":        {0, 0, 0},
	"white":        {255, 255, 255},
	"red":          {255, 0, 0},
	"green":        {0, 255, 0},
	"blue":         {0, 0, 255},
	"yellow":       {255, 255, 0},
	"cyan":         {0, 255, 255},
	"magenta":      {255, 0, 255},
	"gray":         {190, 190, 190},
	"grey":         {190, 190, 190},
	"gray30":       {77, 77, 77},
	"gray90":       {229, 229, 229},
	"grey90":       {229, 229, 229},
	"navy":         {0, 0, 128},
	"navyblue":     {0, 0, 128},
	"darkgreen":    {0, 100, 0},
	"darkred":      {139, 0, 0},
	"orange":       {255, 165, 0},
	"purple":       {160, 32, 240},
	"brown":        {165, 42, 42},
	"pink":         {255, 192, 203},
	"gold":         {255, 215, 0},
	"silver":       {192, 192, 192},
	"skyblue":      {135, 206, 235},
	"steelblue":    {70, 130, 180},
	"tomato":       {255, 99, 71},
	"royalblue":    {65, 105, 225},
	"forestgreen":  {34, 139, 34},
	"dodgerblue":   {30, 144, 255},
	"deeppink":     {255, 20, 147},
	"firebrick":    {178, 34, 34},
	"chocolate":    {210, 105, 30},
	"slategray":    {112, 128, 144},
	"slategrey":    {112, 128, 144},
	"lightgray":    {211, 211, 211},
	"lightgrey":    {211, 211, 211},
	"darkslategray": {47, 79, 79},
	"darkslategrey": {47, 79, 79},
}
