// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Conventional order statuses. The store accepts any status string; these are
// the values the admin API validates against.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// KnownOrderStatus returns true if status is one of the conventional values.
func KnownOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// EquipmentOrderItem is a single line of an equipment order.
type EquipmentOrderItem struct {
	EquipmentID    int64  `json:"equipment_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// EquipmentOrder represents a hardware purchase order placed from the public
// site. OrderNumber is the customer-facing business key.
type EquipmentOrder struct {
	ID            int64                `json:"id"`
	OrderNumber   string               `json:"order_number"`
	CustomerName  string               `json:"customer_name"`
	CustomerEmail string               `json:"customer_email"`
	CustomerPhone string               `json:"customer_phone"`
	Company       string               `json:"company"`
	Notes         string               `json:"notes"`
	Items         []EquipmentOrderItem `json:"items"`
	TotalCents    int64                `json:"total_cents"`
	Status        string               `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}
