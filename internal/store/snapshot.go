// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"encoding/json"
	"time"

	"github.com/rackline/rackline-go/internal/model"
)

// Snapshot is a point-in-time JSON export of the CMS collections, used as the
// payload of WebsiteBackup records. Contacts, leads, activity and backups
// themselves are excluded: a backup captures content, not traffic.
type Snapshot struct {
	TakenAt      time.Time                 `json:"taken_at"`
	Articles     []model.Article           `json:"articles"`
	Services     []model.Service           `json:"services"`
	Testimonials []model.Testimonial       `json:"testimonials"`
	PageContents []model.PageContent       `json:"page_contents"`
	Settings     []model.SiteSetting       `json:"settings"`
	Equipment    []model.ServerEquipment   `json:"equipment"`
	Categories   []model.EquipmentCategory `json:"categories"`
}

// ExportSnapshot serializes the current CMS content to JSON.
func (s *Store) ExportSnapshot() ([]byte, error) {
	snap := Snapshot{
		TakenAt:      s.now(),
		Articles:     s.ListArticles(),
		Services:     s.ListServices(),
		Testimonials: s.ListTestimonials(),
		PageContents: s.ListPageContents(),
		Settings:     s.ListSiteSettings(),
		Equipment:    s.ListServerEquipment(),
		Categories:   s.ListEquipmentCategories(),
	}
	return json.Marshal(snap)
}
