// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/rackline/rackline-go/internal/model"

// CreateActivityLogParams holds input for CreateActivityLog.
type CreateActivityLogParams struct {
	UserID     string
	Level      string
	Action     string
	EntityType string
	EntityID   int64
	Details    string
	IPAddress  string
	UserAgent  string
}

// CreateActivityLog appends an audit entry. The log is append-only: there is
// no update or delete path.
func (s *Store) CreateActivityLog(params CreateActivityLogParams) model.ActivityLog {
	level := params.Level
	if level == "" {
		level = model.ActivityLevelInfo
	}
	entry, _ := s.activityLogs.insert(nil, func(id int64) model.ActivityLog {
		return model.ActivityLog{
			ID:         id,
			UserID:     params.UserID,
			Level:      level,
			Action:     params.Action,
			EntityType: params.EntityType,
			EntityID:   params.EntityID,
			Details:    params.Details,
			IPAddress:  params.IPAddress,
			UserAgent:  params.UserAgent,
			CreatedAt:  s.now(),
		}
	})
	return entry
}

// ListActivityLogs returns the full audit trail in append order.
func (s *Store) ListActivityLogs() []model.ActivityLog {
	return s.activityLogs.list()
}

// ListActivityLogsByUser returns the audit trail for one user.
func (s *Store) ListActivityLogsByUser(userID string) []model.ActivityLog {
	return s.activityLogs.filter(func(e model.ActivityLog) bool { return e.UserID == userID })
}
