// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ipc/server_test.go

package ipc

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

type fakeHandler struct {
	err   error
	calls []call
}

type call struct {
	name, workingDir string
	command          []string
}

func (f *fakeHandler) OpenTab(name, workingDir string, command []string) error {
	f.calls = append(f.calls, call{name, workingDir, command})
	return f.err
}

func startTestServer(t *testing.T, h Handler) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	addr := SocketPath(dir, ":1")
	s := NewServer(addr, h)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		s.Stop(ctx)
	})
	return s, addr
}

func TestSocketPathIncludesDisplay(t *testing.T) {
	got := SocketPath("/tmp/logs", ":0")
	want := filepath.Join("/tmp/logs", ".terminator-ipc:0.sock")
	if got != want {
		t.Fatalf("SocketPath = %q, want %q", got, want)
	}
}

func TestPingRespondsPong(t *testing.T) {
	_, addr := startTestServer(t, &fakeHandler{})
	if !Ping(addr) {
		t.Fatal("Ping = false, want true against a running server")
	}
}

func TestPingFalseWhenNothingListening(t *testing.T) {
	if Ping(filepath.Join(t.TempDir(), ".terminator-ipc.sock")) {
		t.Fatal("Ping = true, want false with no server listening")
	}
}

func TestOpenTabDispatchesToHandler(t *testing.T) {
	h := &fakeHandler{}
	_, addr := startTestServer(t, h)

	if err := OpenTab(addr, "build", "/tmp/work", []string{"make", "all"}); err != nil {
		t.Fatalf("OpenTab: %v", err)
	}
	if len(h.calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(h.calls))
	}
	want := call{"build", "/tmp/work", []string{"make", "all"}}
	if !reflect.DeepEqual(h.calls[0], want) {
		t.Fatalf("call = %+v, want %+v", h.calls[0], want)
	}
}

func TestOpenTabWithNoCommandLeavesCommandNil(t *testing.T) {
	h := &fakeHandler{}
	_, addr := startTestServer(t, h)

	if err := OpenTab(addr, "scratch", "", nil); err != nil {
		t.Fatalf("OpenTab: %v", err)
	}
	if len(h.calls) != 1 || len(h.calls[0].command) != 0 {
		t.Fatalf("calls = %+v", h.calls)
	}
}

func TestOpenTabPropagatesHandlerError(t *testing.T) {
	h := &fakeHandler{err: errors.New("boom")}
	_, addr := startTestServer(t, h)

	err := OpenTab(addr, "x", "", nil)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestDispatchRejectsMalformedOpen(t *testing.T) {
	s := NewServer("unused", &fakeHandler{})
	if got := s.dispatch("OPEN\tonly-one-field"); got != "ERR malformed OPEN command" {
		t.Fatalf("dispatch = %q", got)
	}
}

func TestDispatchRejectsUnknownCommand(t *testing.T) {
	s := NewServer("unused", &fakeHandler{})
	got := s.dispatch("FROBNICATE")
	if got != `ERR unknown command "FROBNICATE"` {
		t.Fatalf("dispatch = %q", got)
	}
}

func TestServerStopIsIdempotentWithContext(t *testing.T) {
	s, _ := startTestServer(t, &fakeHandler{})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}
