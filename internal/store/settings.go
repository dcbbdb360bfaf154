// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/rackline/rackline-go/internal/model"

// CreateSiteSettingParams holds input for CreateSiteSetting.
type CreateSiteSettingParams struct {
	Key      string
	Value    string
	Category string
}

// CreateSiteSetting creates a setting. Keys are unique; a duplicate returns
// ErrConflict.
func (s *Store) CreateSiteSetting(params CreateSiteSettingParams) (model.SiteSetting, error) {
	return s.settings.insert(
		func(st model.SiteSetting) bool { return st.Key == params.Key },
		func(id int64) model.SiteSetting {
			now := s.now()
			return model.SiteSetting{
				ID:        id,
				Key:       params.Key,
				Value:     params.Value,
				Category:  params.Category,
				CreatedAt: now,
				UpdatedAt: now,
			}
		},
	)
}

// ListSiteSettings returns every setting in creation order.
func (s *Store) ListSiteSettings() []model.SiteSetting {
	return s.settings.list()
}

// ListSiteSettingsByCategory returns the settings in a category.
func (s *Store) ListSiteSettingsByCategory(category string) []model.SiteSetting {
	return s.settings.filter(func(st model.SiteSetting) bool { return st.Category == category })
}

// GetSiteSettingByKey returns the setting with the given key.
func (s *Store) GetSiteSettingByKey(key string) (model.SiteSetting, error) {
	return s.settings.get(func(st model.SiteSetting) bool { return st.Key == key })
}

// UpdateSiteSettingValue sets the value of an existing setting, looked up by
// key. Despite the upsert-sounding history of this operation it does NOT
// create missing keys: callers must CreateSiteSetting first, and a miss
// returns ErrNotFound.
func (s *Store) UpdateSiteSettingValue(key, value string) (model.SiteSetting, error) {
	return s.settings.modify(
		func(st model.SiteSetting) bool { return st.Key == key },
		nil,
		func(st *model.SiteSetting) {
			st.Value = value
			st.UpdatedAt = s.now()
		},
	)
}

// DeleteSiteSetting permanently removes a setting.
func (s *Store) DeleteSiteSetting(id int64) error {
	return s.settings.remove(func(st model.SiteSetting) bool { return st.ID == id })
}
