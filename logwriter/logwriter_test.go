// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: logwriter/logwriter_test.go

package logwriter

import (
	"os"
	"strings"
	"testing"
)

func TestNewWritesAndFlushesOnNewline(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, []string{"/bin/sh", "-c", "echo hi"})
	if w.IsSuspended() {
		t.Fatal("writer should not start suspended when dir exists")
	}
	n, err := w.Write([]byte("hello\n"))
	if err != nil || n != 6 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("ReadDir = %v, %v", entries, err)
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "%2Fbin%2Fsh+-c+echo+hi-") || !strings.HasSuffix(name, ".txt") {
		t.Fatalf("unexpected log filename %q", name)
	}
	data, err := os.ReadFile(dir + "/" + name)
	if err != nil || string(data) != "hello\n" {
		t.Fatalf("file contents = %q, %v", data, err)
	}
}

func TestNewPermanentlySuspendsOnMissingDir(t *testing.T) {
	w := New("/nonexistent/logs/dir/for/sure", []string{"cmd"})
	if !w.IsSuspended() {
		t.Fatal("expected permanent suspension when dir does not exist")
	}
	w.SetSuspended(false)
	if !w.IsSuspended() {
		t.Fatal("SetSuspended(false) must not un-suspend a permanently failed writer")
	}
	n, err := w.Write([]byte("ignored\n"))
	if err != nil || n != 8 {
		t.Fatalf("Write on suspended writer should report full length written and no error, got %d, %v", n, err)
	}
}

func TestSetSuspendedPausesAndResumes(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, []string{"sh"})
	w.Write([]byte("before\n"))
	w.SetSuspended(true)
	w.Write([]byte("skipped\n"))
	w.SetSuspended(false)
	w.Write([]byte("after\n"))
	w.Close()

	entries, _ := os.ReadDir(dir)
	data, err := os.ReadFile(dir + "/" + entries[0].Name())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "skipped") {
		t.Fatalf("write while suspended should be dropped, got %q", data)
	}
	if !strings.Contains(string(data), "before") || !strings.Contains(string(data), "after") {
		t.Fatalf("expected before/after content, got %q", data)
	}
}

func TestCloseIsPermanent(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, []string{"sh"})
	w.Close()
	if !w.IsSuspended() {
		t.Fatal("Close should suspend")
	}
	w.SetSuspended(false)
	if !w.IsSuspended() {
		t.Fatal("Close should be permanent")
	}
}

func TestInfoIncludesSizeAfterWrites(t *testing.T) {
	dir := t.TempDir()
	w := New(dir, []string{"sh"})
	if strings.Contains(w.Info(), "(") {
		t.Fatalf("Info before any write should have no size suffix, got %q", w.Info())
	}
	w.Write([]byte("0123456789\n"))
	if !strings.Contains(w.Info(), "B)") && !strings.Contains(w.Info(), "b)") {
		t.Fatalf("Info after write should include a humanized size, got %q", w.Info())
	}
}
