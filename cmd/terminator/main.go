// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/terminator/main.go
// Summary: CLI entry point: spf13/cobra for --help/--version plumbing, the
// hand-rolled scanner in args.go for the repeating -xrm/-n/--working-directory/
// <command> grammar, and the session/render wiring for each tab.
// Notes: Exit code 0 on normal shutdown, 1 on fatal init failure, per
// spec.md §6.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/007durgesh219/terminator/config"
	"github.com/007durgesh219/terminator/control"
	"github.com/007durgesh219/terminator/ipc"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:                   "terminator [--help|--version] [-xrm <resource-string>]... [[-n <name>] [--working-directory <dir>] [<command>]]...",
		Short:                 "VT100/xterm terminal emulator core",
		Version:               version,
		DisableFlagParsing:    true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, rawArgs []string) error {
			return run(cmd, rawArgs)
		},
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "terminator:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, rawArgs []string) error {
	parsed, err := parseArgs(rawArgs)
	if err != nil {
		return err
	}
	if parsed.help {
		return cmd.Help()
	}
	if parsed.version {
		fmt.Println("terminator", version)
		return nil
	}

	for _, resourceString := range parsed.xrm {
		if err := config.ApplyXRM(resourceString); err != nil {
			return err
		}
	}
	settings := config.Get()

	logDir, err := logDirectory()
	if err != nil {
		log.Printf("terminator: session logging disabled: %v", err)
		logDir = ""
	}

	socketDir := logDir
	if socketDir == "" {
		socketDir = os.TempDir()
	}
	socketAddr := ipc.SocketPath(socketDir, os.Getenv("DISPLAY"))

	// Per spec.md §6's per-display IPC endpoint: if an instance is already
	// serving this DISPLAY's socket, hand it our tabs instead of starting a
	// second process.
	if ipc.Ping(socketAddr) {
		for _, spec := range parsed.sessions {
			if err := ipc.OpenTab(socketAddr, spec.name, spec.workingDir, spec.command); err != nil {
				return fmt.Errorf("forwarding to running instance: %w", err)
			}
		}
		return nil
	}

	mgr := newSessionManager(settings, logDir)
	defer mgr.CloseAll()

	srv := ipc.NewServer(socketAddr, mgr)
	if err := srv.Start(); err != nil {
		log.Printf("terminator: IPC endpoint disabled: %v", err)
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			srv.Stop(ctx)
		}()
	}

	for _, spec := range parsed.sessions {
		if _, err := mgr.Open(spec); err != nil {
			return fmt.Errorf("spawning %v: %w", spec.command, err)
		}
	}

	first := mgr.First()
	if first == nil {
		return nil
	}
	if mgr.Count() > 1 {
		// Windowing/tabs are an external collaborator per spec.md §1; this
		// reference driver renders only the first tab and leaves the rest
		// running headless (still logged, if enabled).
		log.Printf("terminator: %d additional tab(s) started headless (no windowing front-end in this build)", mgr.Count()-1)
	}

	return runUI(first, settings)
}

// sessionManager owns every tab this process has spawned, whether from the
// command line or from an incoming IPC OPEN command, and implements
// ipc.Handler so the IPC server can add to it directly.
type sessionManager struct {
	mu       sync.Mutex
	settings *config.Settings
	logDir   string
	sessions []*session
}

func newSessionManager(settings *config.Settings, logDir string) *sessionManager {
	return &sessionManager{settings: settings, logDir: logDir}
}

// Open spawns one more tab and adds it to the manager.
func (m *sessionManager) Open(spec sessionSpec) (*session, error) {
	sess, err := newSession(spec, m.settings, control.NopObserver{}, m.logDir)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.sessions = append(m.sessions, sess)
	m.mu.Unlock()
	return sess, nil
}

// OpenTab implements ipc.Handler: a tab requested by another invocation of
// this program runs headless, the same as any tab past the first spawned
// locally (see the run-time windowing Non-goal).
func (m *sessionManager) OpenTab(name, workingDir string, command []string) error {
	_, err := m.Open(sessionSpec{name: name, workingDir: workingDir, command: command})
	return err
}

// First returns the earliest-spawned tab, or nil if none were started.
func (m *sessionManager) First() *session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sessions) == 0 {
		return nil
	}
	return m.sessions[0]
}

// Count reports how many tabs have been spawned so far.
func (m *sessionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// CloseAll tears down every spawned tab.
func (m *sessionManager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sess := range m.sessions {
		sess.Close()
	}
}

func logDirectory() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".terminator-logs")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}
