// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/colors_test.go

package config

import "testing"

func TestParseColorHex(t *testing.T) {
	c, err := ParseColor("#ff8000")
	if err != nil {
		t.Fatal(err)
	}
	if c != (Color{0xff, 0x80, 0x00}) {
		t.Fatalf("ParseColor(#ff8000) = %v", c)
	}
}

func TestParseColorX11Name(t *testing.T) {
	c, err := ParseColor("Navy")
	if err != nil {
		t.Fatal(err)
	}
	if c != (Color{0, 0, 128}) {
		t.Fatalf("ParseColor(Navy) = %v, want case-insensitive lookup of navy", c)
	}
}

func TestParseColorUnknownNameErrors(t *testing.T) {
	if _, err := ParseColor("not-a-real-color"); err == nil {
		t.Fatal("expected error for unknown color name")
	}
}

func TestColorStringRoundTrips(t *testing.T) {
	c := Color{0x1c, 0x2b, 0xff}
	if c.String() != "#1c2bff" {
		t.Fatalf("String() = %q", c.String())
	}
	parsed, err := ParseColor(c.String())
	if err != nil || parsed != c {
		t.Fatalf("round trip failed: %v %v", parsed, err)
	}
}

func TestResolveColorBDMatchesForegroundToBaseSwatch(t *testing.T) {
	s := Defaults()
	s.Foreground = baseColors[2]
	s.foregroundSet = true
	resolveColorBD(s)
	if s.ColorBD != boldVariants[2] {
		t.Fatalf("ColorBD = %v, want bold variant of color2", s.ColorBD)
	}
}

func TestResolveColorBDSkipsWhenExplicitlySet(t *testing.T) {
	s := Defaults()
	s.Foreground = baseColors[2]
	s.foregroundSet = true
	s.ColorBD = Color{1, 2, 3}
	s.colorBDSet = true
	resolveColorBD(s)
	if s.ColorBD != (Color{1, 2, 3}) {
		t.Fatal("explicit colorBD must not be overwritten by the heuristic")
	}
}

func TestResolveColorBDNoOpWithoutForeground(t *testing.T) {
	s := Defaults()
	want := s.ColorBD
	resolveColorBD(s)
	if s.ColorBD != want {
		t.Fatal("heuristic must not fire when foreground was never explicitly set")
	}
}
