// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: Process-wide xrm settings store.
// Usage: config.Get() returns the shared Settings; config.ApplyXRM applies
// one "-xrm" command-line argument; config.Save persists the current
// settings back to ~/.terminator-settings.
// Notes: The singleton/sync.RWMutex/lazy-init shape is grounded on the
// teacher's config/config.go (package-level mu+once guarding a cached
// value), re-targeted from a JSON section map onto the typed Settings
// struct and the xrm grammar of resource.go, per spec.md §6.

package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Settings holds every recognized resource from spec.md §6.
type Settings struct {
	AntiAlias       bool
	BlockCursor     bool
	CursorBlink     bool
	FancyBell       bool
	VisualBell      bool
	FontName        string
	FontSize        int
	InitialColumnCount int
	InitialRowCount    int
	InternalBorder     int
	LoginShell         bool
	ScrollKey          bool
	ScrollTtyOutput    bool
	UseMenuBar         bool

	Colors         [8]Color
	Background     Color
	Foreground     Color
	ColorBD        Color
	CursorColor    Color
	SelectionColor Color

	colorBDSet    bool
	foregroundSet bool
}

// Defaults returns the built-in default settings (Options.initDefaults +
// initDefaultColors), before any settings file or -xrm override is applied.
func Defaults() *Settings {
	return &Settings{
		AntiAlias:          false,
		BlockCursor:        false,
		CursorBlink:        true,
		FancyBell:          true,
		VisualBell:         true,
		FontName:           "monospace",
		FontSize:           12,
		InitialColumnCount: 80,
		InitialRowCount:    24,
		InternalBorder:     2,
		LoginShell:         true,
		ScrollKey:          true,
		ScrollTtyOutput:    false,
		UseMenuBar:         true,

		Colors:         baseColors,
		Background:     mustColor("#000045"),
		ColorBD:        mustColor("#ffffff"),
		CursorColor:    mustColor("#00ff00"),
		Foreground:     mustColor("#e7e7e7"),
		SelectionColor: mustColor("#1c2bff"),
	}
}

// Clone returns a value copy of s.
func (s *Settings) Clone() *Settings {
	c := *s
	return &c
}

var (
	mu      sync.RWMutex
	once    sync.Once
	current *Settings
	loadErr error
)

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	current = Defaults()

	path, err := settingsPath()
	if err != nil {
		loadErr = err
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			loadErr = err
			log.Printf("config: failed to read %s: %v", path, err)
		}
		resolveColorBD(current)
		return
	}
	if err := current.ApplyLines(string(data)); err != nil {
		loadErr = err
		log.Printf("config: failed to parse %s: %v", path, err)
	}
	resolveColorBD(current)
}

// Get returns the shared, process-wide Settings, loading
// ~/.terminator-settings on first use.
func Get() *Settings {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Err returns the error, if any, from the most recent load.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// ApplyXRM applies one "-xrm resource-string" command-line argument to the
// shared settings, per spec.md §6 and Options.parseCommandLine.
func ApplyXRM(resourceString string) error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	key, value, ok, err := ParseResourceLine(resourceString)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("config: malformed -xrm argument %q", resourceString)
	}
	if err := current.Apply(key, value); err != nil {
		return err
	}
	resolveColorBD(current)
	return nil
}

// Reload re-reads ~/.terminator-settings from disk, discarding any -xrm
// overrides applied since startup.
func Reload() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	current = Defaults()
	path, err := settingsPath()
	if err != nil {
		loadErr = err
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			resolveColorBD(current)
			loadErr = nil
			return nil
		}
		loadErr = err
		return err
	}
	loadErr = current.ApplyLines(string(data))
	resolveColorBD(current)
	return loadErr
}

// Save persists the current settings to ~/.terminator-settings in the same
// "Terminator*key: value" form Options.showOptions writes, one line per
// field that differs from its default.
func Save() error {
	once.Do(initStore)
	mu.RLock()
	text := current.Render(false)
	mu.RUnlock()

	path, err := settingsPath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}

// Render serializes s as resource lines, per Options.showOptions. When
// showDefaults is false, only fields that differ from Defaults() are
// written.
func (s *Settings) Render(showDefaults bool) string {
	def := Defaults()
	var b strings.Builder

	writeBool := func(key string, v, d bool) {
		if showDefaults || v != d {
			fmt.Fprintf(&b, "Terminator*%s: %v\n", key, v)
		}
	}
	writeInt := func(key string, v, d int) {
		if showDefaults || v != d {
			fmt.Fprintf(&b, "Terminator*%s: %d\n", key, v)
		}
	}
	writeColor := func(key string, v, d Color) {
		if showDefaults || v != d {
			fmt.Fprintf(&b, "Terminator*%s: %s\n", key, v)
		}
	}

	writeBool("antiAlias", s.AntiAlias, def.AntiAlias)
	writeBool("blockCursor", s.BlockCursor, def.BlockCursor)
	writeBool("cursorBlink", s.CursorBlink, def.CursorBlink)
	writeBool("fancyBell", s.FancyBell, def.FancyBell)
	writeBool("visualBell", s.VisualBell, def.VisualBell)
	if showDefaults || s.FontName != def.FontName {
		fmt.Fprintf(&b, "Terminator*fontName: %s\n", s.FontName)
	}
	writeInt("fontSize", s.FontSize, def.FontSize)
	writeInt("initialColumnCount", s.InitialColumnCount, def.InitialColumnCount)
	writeInt("initialRowCount", s.InitialRowCount, def.InitialRowCount)
	writeInt("internalBorder", s.InternalBorder, def.InternalBorder)
	writeBool("loginShell", s.LoginShell, def.LoginShell)
	writeBool("scrollKey", s.ScrollKey, def.ScrollKey)
	writeBool("scrollTtyOutput", s.ScrollTtyOutput, def.ScrollTtyOutput)
	writeBool("useMenuBar", s.UseMenuBar, def.UseMenuBar)
	for i := range s.Colors {
		writeColor(fmt.Sprintf("color%d", i), s.Colors[i], def.Colors[i])
	}
	writeColor("background", s.Background, def.Background)
	writeColor("foreground", s.Foreground, def.Foreground)
	writeColor("colorBD", s.ColorBD, def.ColorBD)
	writeColor("cursorColor", s.CursorColor, def.CursorColor)
	writeColor("selectionColor", s.SelectionColor, def.SelectionColor)

	return b.String()
}
