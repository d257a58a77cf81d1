// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/resource.go
// Summary: xrm resource-line grammar: parsing and applying one line.
// Notes: Grounded on Options.resourcePattern/processResourceString/
// parseBoolean. The original matches a single compiled regexp
// `(?:Terminator(?:\*|\.))?(\S+):\s*(.+)`; this keeps the same three
// accepted forms (`Terminator*key:`, `Terminator.key:`, bare `key:`)
// without carrying a regexp dependency, since the grammar is simple enough
// to scan directly and the teacher repo itself favors small hand-rolled
// parsers over regexp for structured text (see its escape-sequence state
// machine).

package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseResourceLine splits a single resource line into its key and value,
// per spec.md §6: `Terminator*key: value`, `Terminator.key:`, or bare
// `key:`. Lines that are blank or start with "#" or "!" are comments and
// report ok=false without error.
func ParseResourceLine(line string) (key, value string, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
		return "", "", false, nil
	}

	rest := line
	switch {
	case strings.HasPrefix(rest, "Terminator*"):
		rest = rest[len("Terminator*"):]
	case strings.HasPrefix(rest, "Terminator."):
		rest = rest[len("Terminator."):]
	}

	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return "", "", false, fmt.Errorf("config: malformed resource line %q", line)
	}
	key = strings.TrimSpace(rest[:colon])
	value = strings.TrimSpace(rest[colon+1:])
	if key == "" {
		return "", "", false, fmt.Errorf("config: empty resource key in %q", line)
	}
	return key, value, true, nil
}

func parseResourceBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "yes", "on":
		return true
	}
	return false
}

// Apply sets the named option to value on s, per Options.processResourceString's
// type dispatch (each key has a fixed kind: bool, int, string, or color).
func (s *Settings) Apply(key, value string) error {
	switch key {
	case "antiAlias":
		s.AntiAlias = parseResourceBool(value)
	case "blockCursor":
		s.BlockCursor = parseResourceBool(value)
	case "cursorBlink":
		s.CursorBlink = parseResourceBool(value)
	case "fancyBell":
		s.FancyBell = parseResourceBool(value)
	case "visualBell":
		s.VisualBell = parseResourceBool(value)
	case "loginShell":
		s.LoginShell = parseResourceBool(value)
	case "scrollKey":
		s.ScrollKey = parseResourceBool(value)
	case "scrollTtyOutput":
		s.ScrollTtyOutput = parseResourceBool(value)
	case "useMenuBar":
		s.UseMenuBar = parseResourceBool(value)
	case "fontName":
		s.FontName = value
	case "fontSize":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: fontSize: %w", err)
		}
		s.FontSize = n
	case "initialColumnCount":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: initialColumnCount: %w", err)
		}
		s.InitialColumnCount = n
	case "initialRowCount":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: initialRowCount: %w", err)
		}
		s.InitialRowCount = n
	case "internalBorder":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config: internalBorder: %w", err)
		}
		s.InternalBorder = n
	case "background", "foreground", "colorBD", "cursorColor", "selectionColor",
		"color0", "color1", "color2", "color3", "color4", "color5", "color6", "color7":
		c, err := ParseColor(value)
		if err != nil {
			return err
		}
		s.setColor(key, c)
	default:
		return fmt.Errorf("config: unknown resource %q", key)
	}
	return nil
}

func (s *Settings) setColor(key string, c Color) {
	switch key {
	case "background":
		s.Background = c
	case "foreground":
		s.Foreground = c
		s.foregroundSet = true
	case "colorBD":
		s.ColorBD = c
		s.colorBDSet = true
	case "cursorColor":
		s.CursorColor = c
	case "selectionColor":
		s.SelectionColor = c
	default:
		if strings.HasPrefix(key, "color") {
			if n, err := strconv.Atoi(key[len("color"):]); err == nil && n >= 0 && n < len(s.Colors) {
				s.Colors[n] = c
			}
		}
	}
}

// ApplyLines parses and applies every resource line in text, in order,
// skipping comments and blank lines. The first malformed or unknown
// resource aborts with an error, matching Options.processResourceString's
// throw-on-first-bad-resource behavior.
func (s *Settings) ApplyLines(text string) error {
	for _, line := range strings.Split(text, "\n") {
		key, value, ok, err := ParseResourceLine(line)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := s.Apply(key, value); err != nil {
			return err
		}
	}
	return nil
}
