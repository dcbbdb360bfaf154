// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"testing"

	"github.com/rackline/rackline-go/internal/model"
	"github.com/rackline/rackline-go/internal/store"
)

func seedCatalog(app *testApp) (active, inactive model.ServerEquipment) {
	active = app.store.CreateServerEquipment(store.CreateServerEquipmentParams{
		Name: "Dell PowerEdge R740", PartNumber: "PER740", Category: "servers",
		PriceCents: 249900, StockCount: 4, IsActive: true,
	})
	inactive = app.store.CreateServerEquipment(store.CreateServerEquipmentParams{
		Name: "Retired SAN", PartNumber: "SAN-OLD", Category: "storage",
		PriceCents: 99900, IsActive: false,
	})
	return active, inactive
}

func TestPublicCatalogHidesInactive(t *testing.T) {
	app := newTestApp(t)
	active, inactive := seedCatalog(app)

	var body struct {
		Data []model.ServerEquipment `json:"data"`
		Meta *Meta                   `json:"meta"`
	}
	resp := app.request(http.MethodGet, "/api/catalog", nil, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if len(body.Data) != 1 || body.Data[0].ID != active.ID {
		t.Errorf("catalog = %+v", body.Data)
	}
	if body.Meta == nil || body.Meta.Total != 1 {
		t.Errorf("meta = %+v", body.Meta)
	}

	resp = app.request(http.MethodGet, "/api/catalog/"+itoa64(inactive.ID), nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("inactive item = %d, want 404", resp.StatusCode)
	}
}

func TestPublicCatalogSearch(t *testing.T) {
	app := newTestApp(t)
	seedCatalog(app)

	var body struct {
		Data []model.ServerEquipment `json:"data"`
	}
	app.request(http.MethodGet, "/api/catalog?q=poweredge", nil, &body)
	if len(body.Data) != 1 || body.Data[0].Name != "Dell PowerEdge R740" {
		t.Errorf("search = %+v", body.Data)
	}
}

func TestAdminCreateAndBulkEquipment(t *testing.T) {
	app := newTestApp(t)
	app.loginAs("catalog", model.RoleAdmin)

	var created struct {
		Data model.ServerEquipment `json:"data"`
	}
	resp := app.request(http.MethodPost, "/api/admin/equipment", EquipmentRequest{
		Name: "HPE DL380 Gen10", PartNumber: "DL380G10", PriceCents: 319900, IsActive: true,
	}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create = %d", resp.StatusCode)
	}
	if created.Data.ID == 0 || created.Data.Name != "HPE DL380 Gen10" {
		t.Errorf("created = %+v", created.Data)
	}

	resp = app.request(http.MethodPost, "/api/admin/equipment", EquipmentRequest{Name: ""}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("nameless create = %d, want 400", resp.StatusCode)
	}

	var bulk struct {
		Data []model.ServerEquipment `json:"data"`
	}
	resp = app.request(http.MethodPost, "/api/admin/equipment/bulk", BulkCreateEquipmentRequest{
		Items: []EquipmentRequest{
			{Name: "10G SFP+", PriceCents: 4900, IsActive: true},
			{Name: "25G SFP28", PriceCents: 9900, IsActive: true},
		},
	}, &bulk)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("bulk = %d", resp.StatusCode)
	}
	if len(bulk.Data) != 2 || bulk.Data[0].Name != "10G SFP+" {
		t.Errorf("bulk = %+v", bulk.Data)
	}
	if bulk.Data[1].ID != bulk.Data[0].ID+1 {
		t.Errorf("bulk IDs not sequential: %d, %d", bulk.Data[0].ID, bulk.Data[1].ID)
	}
}

func TestQuoteEndpoint(t *testing.T) {
	app := newTestApp(t)
	active, _ := seedCatalog(app)

	var body struct {
		Data struct {
			TotalCents     int64  `json:"totalCents"`
			FormattedTotal string `json:"formattedTotal"`
		} `json:"data"`
	}
	resp := app.request(http.MethodPost, "/api/quote", map[string]any{
		"lines": []map[string]any{{"equipmentId": active.ID, "quantity": 2}},
	}, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("quote = %d", resp.StatusCode)
	}
	if body.Data.TotalCents != 499800 || body.Data.FormattedTotal != "$4,998.00" {
		t.Errorf("quote = %+v", body.Data)
	}

	resp = app.request(http.MethodPost, "/api/quote", map[string]any{
		"lines": []map[string]any{{"equipmentId": int64(9999), "quantity": 1}},
	}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("quote for unknown item = %d, want 400", resp.StatusCode)
	}
}

func TestCategoryRoutes(t *testing.T) {
	app := newTestApp(t)
	app.loginAs("catalog", model.RoleAdmin)

	var created struct {
		Data model.EquipmentCategory `json:"data"`
	}
	resp := app.request(http.MethodPost, "/api/admin/categories", CategoryRequest{
		Name: "Rack Servers", Slug: "rack-servers", IsActive: true,
	}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create category = %d", resp.StatusCode)
	}

	resp = app.request(http.MethodPost, "/api/admin/categories", CategoryRequest{
		Name: "Duplicate", Slug: "rack-servers", IsActive: true,
	}, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate slug = %d, want 409", resp.StatusCode)
	}

	var fetched struct {
		Data model.EquipmentCategory `json:"data"`
	}
	resp = app.request(http.MethodGet, "/api/catalog/categories/rack-servers", nil, &fetched)
	if resp.StatusCode != http.StatusOK || fetched.Data.ID != created.Data.ID {
		t.Errorf("get by slug = %d, %+v", resp.StatusCode, fetched.Data)
	}
}
