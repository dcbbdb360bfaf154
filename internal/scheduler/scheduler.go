// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic background jobs: content snapshots and
// GeoIP database reloads.
package scheduler

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rackline/rackline-go/internal/geoip"
	"github.com/rackline/rackline-go/internal/store"
)

// Scheduler handles scheduled tasks.
type Scheduler struct {
	store  *store.Store
	geo    *geoip.Lookup
	cron   *cron.Cron
	logger *slog.Logger

	backupSchedule string
}

// New creates a new scheduler instance. geo may be nil when GeoIP is not
// configured.
func New(st *store.Store, geo *geoip.Lookup, backupSchedule string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		store:          st,
		geo:            geo,
		cron:           cron.New(),
		logger:         logger,
		backupSchedule: backupSchedule,
	}
}

// Start registers the jobs and begins the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.backupSchedule, func() {
		if err := s.RunBackup("scheduler"); err != nil {
			s.logger.Error("scheduled backup failed", "error", err)
		}
	}); err != nil {
		return err
	}

	if s.geo != nil {
		// GeoLite2 publishes updates twice a week; hourly reload picks up
		// a replaced database file without a restart.
		if _, err := s.cron.AddFunc("0 * * * *", func() {
			if err := s.geo.Reload(); err != nil {
				s.logger.Warn("geoip reload failed", "error", err)
			}
		}); err != nil {
			return err
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// RunBackup snapshots the content collections into a named website backup.
// Exposed so the admin API can trigger an on-demand backup with the same code
// path the cron job uses.
func (s *Scheduler) RunBackup(createdBy string) error {
	data, err := s.store.ExportSnapshot()
	if err != nil {
		return err
	}

	backup := s.store.CreateWebsiteBackup(store.CreateWebsiteBackupParams{
		Name:      "snapshot-" + time.Now().UTC().Format("20060102-150405"),
		Data:      string(data),
		CreatedBy: createdBy,
	})

	s.logger.Info("backup created",
		"backup_id", backup.ID,
		"name", backup.Name,
		"size", backup.Size,
	)
	return nil
}
