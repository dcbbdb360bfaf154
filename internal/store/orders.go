// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/rackline/rackline-go/internal/model"
)

// CreateEquipmentOrderParams holds input for CreateEquipmentOrder. When
// OrderNumber is blank the store generates one.
type CreateEquipmentOrderParams struct {
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Company       string
	Notes         string
	Items         []model.EquipmentOrderItem
	TotalCents    int64
}

// newOrderNumber builds a customer-facing order number like RL-20260829-1A2B3C.
func (s *Store) newOrderNumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("RL-%s-%s", s.now().Format("20060102"), suffix)
}

// CreateEquipmentOrder places an order with status pending. Order numbers are
// unique; supplying one that already exists returns ErrConflict.
func (s *Store) CreateEquipmentOrder(params CreateEquipmentOrderParams) (model.EquipmentOrder, error) {
	number := params.OrderNumber
	if number == "" {
		number = s.newOrderNumber()
	}

	return s.orders.insert(
		func(o model.EquipmentOrder) bool { return o.OrderNumber == number },
		func(id int64) model.EquipmentOrder {
			now := s.now()
			return model.EquipmentOrder{
				ID:            id,
				OrderNumber:   number,
				CustomerName:  params.CustomerName,
				CustomerEmail: params.CustomerEmail,
				CustomerPhone: params.CustomerPhone,
				Company:       params.Company,
				Notes:         params.Notes,
				Items:         slices.Clone(params.Items),
				TotalCents:    params.TotalCents,
				Status:        model.OrderStatusPending,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
		},
	)
}

// ListEquipmentOrders returns all orders, newest first.
func (s *Store) ListEquipmentOrders() []model.EquipmentOrder {
	orders := s.orders.list()
	slices.Reverse(orders)
	return orders
}

// GetEquipmentOrder returns the order with the given ID.
func (s *Store) GetEquipmentOrder(id int64) (model.EquipmentOrder, error) {
	return s.orders.get(func(o model.EquipmentOrder) bool { return o.ID == id })
}

// GetEquipmentOrderByNumber returns the order with the given order number.
func (s *Store) GetEquipmentOrderByNumber(number string) (model.EquipmentOrder, error) {
	return s.orders.get(func(o model.EquipmentOrder) bool { return o.OrderNumber == number })
}

// UpdateEquipmentOrderStatus sets the order status. The store accepts any
// status string and does not validate transitions; stricter checks belong to
// the caller.
func (s *Store) UpdateEquipmentOrderStatus(id int64, status string) (model.EquipmentOrder, error) {
	return s.orders.modify(
		func(o model.EquipmentOrder) bool { return o.ID == id },
		nil,
		func(o *model.EquipmentOrder) {
			o.Status = status
			o.UpdatedAt = s.now()
		},
	)
}
