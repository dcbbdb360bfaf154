// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/rackline/rackline-go/internal/model"

// CreateEquipmentCategoryParams holds input for CreateEquipmentCategory.
type CreateEquipmentCategoryParams struct {
	Name        string
	Slug        string
	Description string
	ParentID    *int64
	IsActive    bool
	Order       int
}

// CreateEquipmentCategory creates a catalog category. Slugs are unique; a
// duplicate returns ErrConflict. ParentID is not validated against existing
// categories: the hierarchy is informational only.
func (s *Store) CreateEquipmentCategory(params CreateEquipmentCategoryParams) (model.EquipmentCategory, error) {
	return s.categories.insert(
		func(c model.EquipmentCategory) bool { return c.Slug == params.Slug },
		func(id int64) model.EquipmentCategory {
			now := s.now()
			return model.EquipmentCategory{
				ID:          id,
				Name:        params.Name,
				Slug:        params.Slug,
				Description: params.Description,
				ParentID:    params.ParentID,
				IsActive:    params.IsActive,
				Order:       params.Order,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
	)
}

// ListEquipmentCategories returns every category, inactive included.
func (s *Store) ListEquipmentCategories() []model.EquipmentCategory {
	return s.categories.list()
}

// ListActiveEquipmentCategories returns active categories only.
func (s *Store) ListActiveEquipmentCategories() []model.EquipmentCategory {
	return s.categories.filter(func(c model.EquipmentCategory) bool { return c.IsActive })
}

// GetEquipmentCategory returns the category with the given ID.
func (s *Store) GetEquipmentCategory(id int64) (model.EquipmentCategory, error) {
	return s.categories.get(func(c model.EquipmentCategory) bool { return c.ID == id })
}

// GetEquipmentCategoryBySlug returns the category with the given slug.
func (s *Store) GetEquipmentCategoryBySlug(slug string) (model.EquipmentCategory, error) {
	return s.categories.get(func(c model.EquipmentCategory) bool { return c.Slug == slug })
}

// UpdateEquipmentCategoryParams holds the partial update for
// UpdateEquipmentCategory. SetParent distinguishes "leave ParentID alone"
// from "set ParentID to nil" (detach from parent).
type UpdateEquipmentCategoryParams struct {
	Name        *string
	Slug        *string
	Description *string
	SetParent   bool
	ParentID    *int64
	IsActive    *bool
	Order       *int
}

// UpdateEquipmentCategory shallow-merges the partial over the stored
// category. Changing the slug to one held by another category returns
// ErrConflict.
func (s *Store) UpdateEquipmentCategory(id int64, params UpdateEquipmentCategoryParams) (model.EquipmentCategory, error) {
	var conflicts func(model.EquipmentCategory) bool
	if params.Slug != nil {
		conflicts = func(c model.EquipmentCategory) bool { return c.ID != id && c.Slug == *params.Slug }
	}

	return s.categories.modify(
		func(c model.EquipmentCategory) bool { return c.ID == id },
		conflicts,
		func(c *model.EquipmentCategory) {
			if params.Name != nil {
				c.Name = *params.Name
			}
			if params.Slug != nil {
				c.Slug = *params.Slug
			}
			if params.Description != nil {
				c.Description = *params.Description
			}
			if params.SetParent {
				c.ParentID = params.ParentID
			}
			if params.IsActive != nil {
				c.IsActive = *params.IsActive
			}
			if params.Order != nil {
				c.Order = *params.Order
			}
			c.UpdatedAt = s.now()
		},
	)
}

// DeleteEquipmentCategory permanently removes a category. Items referencing
// it keep their category string; the catalog does not cascade.
func (s *Store) DeleteEquipmentCategory(id int64) error {
	return s.categories.remove(func(c model.EquipmentCategory) bool { return c.ID == id })
}
