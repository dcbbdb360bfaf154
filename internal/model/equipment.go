// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Equipment conditions.
const (
	ConditionNew         = "new"
	ConditionRefurbished = "refurbished"
	ConditionUsed        = "used"
)

// ServerEquipment represents a sellable catalog item: servers, storage,
// networking gear and parts. Prices are in cents to avoid float drift.
type ServerEquipment struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	PartNumber     string            `json:"part_number"`
	Category       string            `json:"category"`
	SubCategory    string            `json:"sub_category"`
	Brand          string            `json:"brand"`
	Model          string            `json:"model"`
	Description    string            `json:"description"`
	Specs          map[string]string `json:"specs"`
	Condition      string            `json:"condition"`
	PriceCents     int64             `json:"price_cents"`      // Sale price
	ListPriceCents int64             `json:"list_price_cents"` // Manufacturer list price
	BulkPriceCents int64             `json:"bulk_price_cents"` // Volume price (10+ units)
	StockCount     int               `json:"stock_count"`
	IsActive       bool              `json:"is_active"`
	IsFeatured     bool              `json:"is_featured"`
	Tags           []string          `json:"tags"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// InStock returns true if the item has stock available.
func (e *ServerEquipment) InStock() bool {
	return e.StockCount > 0
}

// EquipmentCategory represents a catalog category. ParentID allows one level
// of nesting (servers → rack servers); nil means top level.
type EquipmentCategory struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ParentID    *int64    `json:"parent_id,omitempty"`
	IsActive    bool      `json:"is_active"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
