// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/rackline/rackline-go/internal/model"

// CreateWebsiteBackupParams holds input for CreateWebsiteBackup.
type CreateWebsiteBackupParams struct {
	Name      string
	Data      string
	CreatedBy string
}

// CreateWebsiteBackup stores a site snapshot. Backups support create, list
// and delete only; there is no update path.
func (s *Store) CreateWebsiteBackup(params CreateWebsiteBackupParams) model.WebsiteBackup {
	backup, _ := s.backups.insert(nil, func(id int64) model.WebsiteBackup {
		return model.WebsiteBackup{
			ID:        id,
			Name:      params.Name,
			Data:      params.Data,
			Size:      int64(len(params.Data)),
			CreatedBy: params.CreatedBy,
			CreatedAt: s.now(),
		}
	})
	return backup
}

// ListWebsiteBackups returns all snapshots in creation order.
func (s *Store) ListWebsiteBackups() []model.WebsiteBackup {
	return s.backups.list()
}

// DeleteWebsiteBackup permanently removes a snapshot.
func (s *Store) DeleteWebsiteBackup(id int64) error {
	return s.backups.remove(func(b model.WebsiteBackup) bool { return b.ID == id })
}
