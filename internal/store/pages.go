// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/rackline/rackline-go/internal/model"

// CreatePageContentParams holds input for CreatePageContent.
type CreatePageContentParams struct {
	PageName  string
	Section   string
	ElementID string
	Title     string
	Content   string
	IsActive  bool
	Order     int
}

// CreatePageContent creates a page content block.
func (s *Store) CreatePageContent(params CreatePageContentParams) model.PageContent {
	pc, _ := s.pageContents.insert(nil, func(id int64) model.PageContent {
		now := s.now()
		return model.PageContent{
			ID:        id,
			PageName:  params.PageName,
			Section:   params.Section,
			ElementID: params.ElementID,
			Title:     params.Title,
			Content:   params.Content,
			IsActive:  params.IsActive,
			Order:     params.Order,
			CreatedAt: now,
			UpdatedAt: now,
		}
	})
	return pc
}

// ListPageContents returns every content block, inactive included.
func (s *Store) ListPageContents() []model.PageContent {
	return s.pageContents.list()
}

// ListPageContentsByPage returns active content blocks for a page.
func (s *Store) ListPageContentsByPage(pageName string) []model.PageContent {
	return s.pageContents.filter(func(pc model.PageContent) bool {
		return pc.IsActive && pc.PageName == pageName
	})
}

// ListPageContentsBySection returns active content blocks for one section of
// a page.
func (s *Store) ListPageContentsBySection(pageName, section string) []model.PageContent {
	return s.pageContents.filter(func(pc model.PageContent) bool {
		return pc.IsActive && pc.PageName == pageName && pc.Section == section
	})
}

// GetPageContent returns the content block with the given ID.
func (s *Store) GetPageContent(id int64) (model.PageContent, error) {
	return s.pageContents.get(func(pc model.PageContent) bool { return pc.ID == id })
}

// UpdatePageContentParams holds the partial update for UpdatePageContent.
type UpdatePageContentParams struct {
	PageName  *string
	Section   *string
	ElementID *string
	Title     *string
	Content   *string
	IsActive  *bool
	Order     *int
}

// UpdatePageContent shallow-merges the partial over the stored block.
func (s *Store) UpdatePageContent(id int64, params UpdatePageContentParams) (model.PageContent, error) {
	return s.pageContents.modify(
		func(pc model.PageContent) bool { return pc.ID == id },
		nil,
		func(pc *model.PageContent) {
			if params.PageName != nil {
				pc.PageName = *params.PageName
			}
			if params.Section != nil {
				pc.Section = *params.Section
			}
			if params.ElementID != nil {
				pc.ElementID = *params.ElementID
			}
			if params.Title != nil {
				pc.Title = *params.Title
			}
			if params.Content != nil {
				pc.Content = *params.Content
			}
			if params.IsActive != nil {
				pc.IsActive = *params.IsActive
			}
			if params.Order != nil {
				pc.Order = *params.Order
			}
			pc.UpdatedAt = s.now()
		},
	)
}

// DeletePageContent permanently removes a content block.
func (s *Store) DeletePageContent(id int64) error {
	return s.pageContents.remove(func(pc model.PageContent) bool { return pc.ID == id })
}
