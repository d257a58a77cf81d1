// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/terminator/args.go
// Summary: Command-line grammar from spec.md §6.
// Usage: parseArgs walks the raw argument vector once, producing the -xrm
// resource strings to apply and the per-tab session specs to launch.
// Notes: Grammar: `terminator [--help|--version] [-xrm <resource-string>]...
// [[-n <name>] [--working-directory <dir>] [<command>]]...` -- each
// positional <command> spawns one tab; -n/--working-directory apply to the
// next command only and then reset. pflag/cobra's flag model parses all
// flags up front and doesn't express "this flag governs only the next
// positional", so this one piece is a hand-rolled scan over os.Args rather
// than a cobra.Command.Args callback, per SPEC_FULL.md §6.

package main

import "fmt"

// sessionSpec describes one tab to spawn.
type sessionSpec struct {
	name       string
	workingDir string
	command    []string
}

// parsedArgs is the result of scanning argv.
type parsedArgs struct {
	help     bool
	version  bool
	xrm      []string
	sessions []sessionSpec
}

func isFlagToken(arg string) bool {
	switch arg {
	case "--help", "-h", "--version", "-xrm", "-n", "--working-directory":
		return true
	default:
		return false
	}
}

// parseArgs scans argv (os.Args[1:]) per the grammar above.
func parseArgs(argv []string) (parsedArgs, error) {
	var out parsedArgs

	pendingName := ""
	pendingDir := ""
	havePending := false

	i := 0
	for i < len(argv) {
		arg := argv[i]
		switch {
		case arg == "--help" || arg == "-h":
			out.help = true
			i++
		case arg == "--version":
			out.version = true
			i++
		case arg == "-xrm":
			if i+1 >= len(argv) {
				return out, fmt.Errorf("terminator: -xrm requires an argument")
			}
			out.xrm = append(out.xrm, argv[i+1])
			i += 2
		case arg == "-n":
			if i+1 >= len(argv) {
				return out, fmt.Errorf("terminator: -n requires an argument")
			}
			pendingName = argv[i+1]
			havePending = true
			i += 2
		case arg == "--working-directory":
			if i+1 >= len(argv) {
				return out, fmt.Errorf("terminator: --working-directory requires an argument")
			}
			pendingDir = argv[i+1]
			havePending = true
			i += 2
		default:
			// A command and its own arguments run unmolested to the next
			// recognized flag (-xrm/-n/--working-directory) or end of argv:
			// there's no shell parsing of the command string (the tokens go
			// straight to execvp-style process creation), so the only way to
			// tell where one tab's argv ends and the next group's flags
			// begin is to scan for the next flag token.
			j := i
			for j < len(argv) && !isFlagToken(argv[j]) {
				j++
			}
			out.sessions = append(out.sessions, sessionSpec{
				name:       pendingName,
				workingDir: pendingDir,
				command:    append([]string{}, argv[i:j]...),
			})
			pendingName, pendingDir, havePending = "", "", false
			i = j
		}
	}

	if havePending && len(out.sessions) == 0 {
		// -n/--working-directory with no following command still spawns one
		// tab running the default login/non-login shell, per spec.md §6
		// ("With no command a login/non-login shell is spawned").
		out.sessions = append(out.sessions, sessionSpec{name: pendingName, workingDir: pendingDir})
	}
	if len(out.sessions) == 0 && !out.help && !out.version {
		out.sessions = append(out.sessions, sessionSpec{})
	}
	return out, nil
}
