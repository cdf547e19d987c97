// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shubham Kumar

package workers

import (
	"os"
	"path/filepath"
	"time"

	"github.com/shubhamkr/streamtube-backend/internal/logger"
)

// TempDirCleaner periodically removes stale files from the uploads spool
// directory. Uploaded multipart parts are normally deleted by the HTTP layer
// as soon as the image host accepts them; files survive only when the process
// crashed mid-request, so anything older than maxAge is safe to drop.
type TempDirCleaner struct {
	dir      string
	maxAge   time.Duration
	interval time.Duration
	logger   *logger.Logger
}

func NewTempDirCleaner(dir string, maxAge time.Duration, interval time.Duration, logger *logger.Logger) *TempDirCleaner {
	return &TempDirCleaner{
		dir:      dir,
		maxAge:   maxAge,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps the spool directory once per interval. It spawns its own
// goroutine and returns immediately.
func (c *TempDirCleaner) Run() {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for range ticker.C {
			c.sweep()
		}
	}()
}

func (c *TempDirCleaner) sweep() {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn().Err(err).Str("dir", c.dir).Msg("reading uploads spool dir failed")
		}
		return
	}

	cutoff := time.Now().Add(-c.maxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(c.dir, entry.Name())
		if err = os.Remove(path); err != nil {
			c.logger.Warn().Err(err).Str("path", path).Msg("removing stale upload failed")
			continue
		}
		removed++
	}

	if removed > 0 {
		c.logger.Info().Int("removed", removed).Str("dir", c.dir).Msg("stale uploads swept")
	}
}
