// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Activity log levels.
const (
	ActivityLevelInfo    = "info"
	ActivityLevelWarning = "warning"
	ActivityLevelError   = "error"
)

// ActivityLog represents an audit trail entry: admin actions, inbound leads,
// and WARN+ application log records forwarded by the logging handler.
type ActivityLog struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Level      string    `json:"level"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   int64     `json:"entity_id,omitempty"`
	Details    string    `json:"details"` // JSON string
	IPAddress  string    `json:"ip_address,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// WebsiteBackup represents a point-in-time JSON snapshot of the CMS
// collections, produced on demand or by the scheduler.
type WebsiteBackup struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Data      string    `json:"data"` // JSON payload
	Size      int64     `json:"size"` // Payload size in bytes
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
