// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rackline/rackline-go/internal/model"
	"github.com/rackline/rackline-go/internal/service"
	"github.com/rackline/rackline-go/internal/store"
)

// OrderRequest is the request body for placing an equipment order. Prices
// are never taken from the client; lines are repriced against the catalog
// through the quote calculator.
type OrderRequest struct {
	CustomerName  string                   `json:"customer_name"`
	CustomerEmail string                   `json:"customer_email"`
	CustomerPhone string                   `json:"customer_phone"`
	Company       string                   `json:"company"`
	Notes         string                   `json:"notes"`
	Lines         []service.QuoteLineInput `json:"lines"`
}

// CreateOrder handles POST /api/orders. The order lands in status pending
// for back-office follow-up.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.CustomerName) == "" || !validEmail(req.CustomerEmail) {
		WriteBadRequest(w, "customer_name and a valid customer_email are required", nil)
		return
	}

	quote, err := h.quotes.Calculate(service.QuoteParams{Lines: req.Lines})
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}

	items := make([]model.EquipmentOrderItem, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		items = append(items, model.EquipmentOrderItem{
			EquipmentID:    line.EquipmentID,
			Name:           line.Name,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
		})
	}

	order, err := h.store.CreateEquipmentOrder(store.CreateEquipmentOrderParams{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Company:       req.Company,
		Notes:         req.Notes,
		Items:         items,
		TotalCents:    quote.SubtotalCents,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	h.logger.Info("equipment order placed",
		"order_number", order.OrderNumber, "total_cents", order.TotalCents)
	WriteCreated(w, order)
}

// GetOrderByNumber handles GET /api/orders/{number}. Customers look up their
// own order by the number from the confirmation.
func (h *Handler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	order, err := h.store.GetEquipmentOrderByNumber(number)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, order, nil)
}

// ----- Admin surface -----

// AdminListOrders handles GET /api/admin/orders, newest first.
func (h *Handler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	pageItems, meta := paginate(r, h.store.ListEquipmentOrders())
	WriteSuccess(w, pageItems, meta)
}

// AdminGetOrder handles GET /api/admin/orders/{id}.
func (h *Handler) AdminGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	order, err := h.store.GetEquipmentOrder(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, order, nil)
}

// UpdateOrderStatusRequest is the request body for an order status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AdminUpdateOrderStatus handles PUT /api/admin/orders/{id}/status.
func (h *Handler) AdminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	var req UpdateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if !model.KnownOrderStatus(req.Status) {
		WriteBadRequest(w, "unknown order status", map[string]string{"status": req.Status})
		return
	}

	order, err := h.store.UpdateEquipmentOrderStatus(id, req.Status)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, order, nil)
}
