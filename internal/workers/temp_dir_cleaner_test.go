// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shubham Kumar

package workers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shubhamkr/streamtube-backend/internal/logger"
)

func writeFileAged(t *testing.T, dir string, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	stamp := time.Now().Add(-age)
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTempDirCleaner_Sweep_RemovesOnlyStaleFiles(t *testing.T) {
	dir := t.TempDir()
	stale := writeFileAged(t, dir, "stale.png", 2*time.Hour)
	fresh := writeFileAged(t, dir, "fresh.png", time.Minute)

	c := NewTempDirCleaner(dir, time.Hour, time.Hour, logger.Nop())
	c.sweep()

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("expected stale file to be removed, stat err: %v", err)
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Errorf("expected fresh file to survive, stat err: %v", err)
	}
}

func TestTempDirCleaner_Sweep_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	stamp := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(sub, stamp, stamp); err != nil {
		t.Fatal(err)
	}

	c := NewTempDirCleaner(dir, time.Hour, time.Hour, logger.Nop())
	c.sweep()

	if _, err := os.Stat(sub); err != nil {
		t.Errorf("expected subdirectory to survive, stat err: %v", err)
	}
}

func TestTempDirCleaner_Sweep_MissingDir(t *testing.T) {
	c := NewTempDirCleaner(filepath.Join(t.TempDir(), "does-not-exist"), time.Hour, time.Hour, logger.Nop())

	// Should not panic or log an error for a directory that was never created
	c.sweep()
}
