// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"maps"
	"slices"
	"strings"

	"github.com/rackline/rackline-go/internal/model"
)

// CreateServerEquipmentParams holds input for CreateServerEquipment.
type CreateServerEquipmentParams struct {
	Name           string
	PartNumber     string
	Category       string
	SubCategory    string
	Brand          string
	Model          string
	Description    string
	Specs          map[string]string
	Condition      string
	PriceCents     int64
	ListPriceCents int64
	BulkPriceCents int64
	StockCount     int
	IsActive       bool
	IsFeatured     bool
	Tags           []string
}

// CreateServerEquipment creates a catalog item. Part numbers repeat across
// conditions (new vs refurbished), so no uniqueness is enforced here.
func (s *Store) CreateServerEquipment(params CreateServerEquipmentParams) model.ServerEquipment {
	item, _ := s.equipment.insert(nil, func(id int64) model.ServerEquipment {
		now := s.now()
		return model.ServerEquipment{
			ID:             id,
			Name:           params.Name,
			PartNumber:     params.PartNumber,
			Category:       params.Category,
			SubCategory:    params.SubCategory,
			Brand:          params.Brand,
			Model:          params.Model,
			Description:    params.Description,
			Specs:          maps.Clone(params.Specs),
			Condition:      params.Condition,
			PriceCents:     params.PriceCents,
			ListPriceCents: params.ListPriceCents,
			BulkPriceCents: params.BulkPriceCents,
			StockCount:     params.StockCount,
			IsActive:       params.IsActive,
			IsFeatured:     params.IsFeatured,
			Tags:           slices.Clone(params.Tags),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
	})
	return item
}

// BulkCreateServerEquipment creates items one by one through the single-item
// path, preserving per-item ID assignment, and returns them in input order.
// Each item succeeds independently; there is no all-or-nothing semantics.
func (s *Store) BulkCreateServerEquipment(items []CreateServerEquipmentParams) []model.ServerEquipment {
	created := make([]model.ServerEquipment, 0, len(items))
	for _, params := range items {
		created = append(created, s.CreateServerEquipment(params))
	}
	return created
}

// ListServerEquipment returns the whole catalog, inactive items included.
func (s *Store) ListServerEquipment() []model.ServerEquipment {
	return s.equipment.list()
}

// ListActiveServerEquipment returns active catalog items only.
func (s *Store) ListActiveServerEquipment() []model.ServerEquipment {
	return s.equipment.filter(func(e model.ServerEquipment) bool { return e.IsActive })
}

// ListFeaturedServerEquipment returns items that are both active and
// featured.
func (s *Store) ListFeaturedServerEquipment() []model.ServerEquipment {
	return s.equipment.filter(func(e model.ServerEquipment) bool { return e.IsActive && e.IsFeatured })
}

// ListServerEquipmentByCategory returns active items in a category.
func (s *Store) ListServerEquipmentByCategory(category string) []model.ServerEquipment {
	return s.equipment.filter(func(e model.ServerEquipment) bool {
		return e.IsActive && e.Category == category
	})
}

// ListServerEquipmentBySubCategory returns active items in a sub-category.
func (s *Store) ListServerEquipmentBySubCategory(category, subCategory string) []model.ServerEquipment {
	return s.equipment.filter(func(e model.ServerEquipment) bool {
		return e.IsActive && e.Category == category && e.SubCategory == subCategory
	})
}

// SearchServerEquipment performs a case-insensitive substring match over
// name, model, part number and description, restricted to active items.
// Results keep collection order; there is no ranking.
func (s *Store) SearchServerEquipment(query string) []model.ServerEquipment {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.ServerEquipment{}
	}

	return s.equipment.filter(func(e model.ServerEquipment) bool {
		if !e.IsActive {
			return false
		}
		return strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Model), q) ||
			strings.Contains(strings.ToLower(e.PartNumber), q) ||
			strings.Contains(strings.ToLower(e.Description), q)
	})
}

// GetServerEquipment returns the catalog item with the given ID.
func (s *Store) GetServerEquipment(id int64) (model.ServerEquipment, error) {
	return s.equipment.get(func(e model.ServerEquipment) bool { return e.ID == id })
}

// UpdateServerEquipmentParams holds the partial update for
// UpdateServerEquipment.
type UpdateServerEquipmentParams struct {
	Name           *string
	PartNumber     *string
	Category       *string
	SubCategory    *string
	Brand          *string
	Model          *string
	Description    *string
	Specs          map[string]string
	Condition      *string
	PriceCents     *int64
	ListPriceCents *int64
	BulkPriceCents *int64
	StockCount     *int
	IsActive       *bool
	IsFeatured     *bool
	Tags           []string
}

// UpdateServerEquipment shallow-merges the partial over the stored item.
func (s *Store) UpdateServerEquipment(id int64, params UpdateServerEquipmentParams) (model.ServerEquipment, error) {
	return s.equipment.modify(
		func(e model.ServerEquipment) bool { return e.ID == id },
		nil,
		func(e *model.ServerEquipment) {
			if params.Name != nil {
				e.Name = *params.Name
			}
			if params.PartNumber != nil {
				e.PartNumber = *params.PartNumber
			}
			if params.Category != nil {
				e.Category = *params.Category
			}
			if params.SubCategory != nil {
				e.SubCategory = *params.SubCategory
			}
			if params.Brand != nil {
				e.Brand = *params.Brand
			}
			if params.Model != nil {
				e.Model = *params.Model
			}
			if params.Description != nil {
				e.Description = *params.Description
			}
			if params.Specs != nil {
				e.Specs = maps.Clone(params.Specs)
			}
			if params.Condition != nil {
				e.Condition = *params.Condition
			}
			if params.PriceCents != nil {
				e.PriceCents = *params.PriceCents
			}
			if params.ListPriceCents != nil {
				e.ListPriceCents = *params.ListPriceCents
			}
			if params.BulkPriceCents != nil {
				e.BulkPriceCents = *params.BulkPriceCents
			}
			if params.StockCount != nil {
				e.StockCount = *params.StockCount
			}
			if params.IsActive != nil {
				e.IsActive = *params.IsActive
			}
			if params.IsFeatured != nil {
				e.IsFeatured = *params.IsFeatured
			}
			if params.Tags != nil {
				e.Tags = slices.Clone(params.Tags)
			}
			e.UpdatedAt = s.now()
		},
	)
}

// DeleteServerEquipment permanently removes a catalog item.
func (s *Store) DeleteServerEquipment(id int64) error {
	return s.equipment.remove(func(e model.ServerEquipment) bool { return e.ID == id })
}
