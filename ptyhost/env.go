// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ptyhost/env.go
// Summary: Child environment construction.
// Usage: cmd/terminator calls BuildEnv before Host.Start.
// Notes: The teacher hardcodes TERM=xterm-256color and otherwise inherits
// os.Environ() unmodified. spec.md §4.5/§6 asks for a narrower, terminal-
// controlled environment: TERM identifies this emulator, and a handful of
// variables that only make sense inside a GUI-embedded terminal (window
// id, parent terminal-app markers) are stripped so a nested terminator
// doesn't inherit stale state from whatever launched it -- grounded on
// PtyProcess/Options' from-scratch environment construction in the
// original. The parent-pid-keyed launcher vars (APP_ICON_<ppid>,
// APP_NAME_<ppid>, JAVA_MAIN_CLASS_<ppid>) come straight from
// PtyGenerator.h's own drop list.

package ptyhost

import (
	"fmt"
	"os"
	"strings"
)

// TermName is the TERM value every terminator-hosted child sees.
const TermName = "terminator"

// dropVars are stripped from the inherited environment before TermName is
// added, so a terminal launched from inside another GUI terminal doesn't
// confuse programs that key behavior off them.
var dropVars = []string{
	"WINDOWID",
	"COLORTERM",
	"TERM_PROGRAM",
	"TERM_PROGRAM_VERSION",
}

// pidKeyedDropVars are the macOS launcher variables PtyGenerator.h strips,
// each with the parent process's pid embedded in the name.
func pidKeyedDropVars() []string {
	ppid := os.Getppid()
	return []string{
		fmt.Sprintf("APP_ICON_%d", ppid),
		fmt.Sprintf("APP_NAME_%d", ppid),
		fmt.Sprintf("JAVA_MAIN_CLASS_%d", ppid),
	}
}

// BuildEnv returns a sanitized copy of the current process environment
// suitable for the child: TERM is forced to TermName and dropVars are
// removed. extra, if non-nil, is appended last so caller-supplied
// overrides win ties with later entries.
func BuildEnv(extra []string) []string {
	base := os.Environ()
	drop := append(append([]string{}, dropVars...), pidKeyedDropVars()...)
	out := make([]string, 0, len(base)+len(extra)+1)
	for _, kv := range base {
		name := kv
		if i := strings.IndexByte(kv, '='); i >= 0 {
			name = kv[:i]
		}
		if name == "TERM" || contains(drop, name) {
			continue
		}
		out = append(out, kv)
	}
	out = append(out, "TERM="+TermName)
	out = append(out, extra...)
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
