// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"testing"

	"github.com/rackline/rackline-go/internal/model"
	"github.com/rackline/rackline-go/internal/store"
)

func TestContactSubmission(t *testing.T) {
	app := newTestApp(t)

	var created struct {
		Data model.Contact `json:"data"`
	}
	resp := app.request(http.MethodPost, "/api/contact", ContactRequest{
		Name: "Dana Reyes", Email: "dana@example.com", Message: "Need 4 rack servers",
	}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if created.Data.ID == 0 || created.Data.IsRead {
		t.Errorf("contact = %+v", created.Data)
	}

	resp = app.request(http.MethodPost, "/api/contact", ContactRequest{
		Name: "No Email", Email: "not-an-email",
	}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad email = %d, want 400", resp.StatusCode)
	}
}

func TestAdminContactTriage(t *testing.T) {
	app := newTestApp(t)
	contact := app.store.CreateContact(store.CreateContactParams{
		Name: "Lee", Email: "lee@example.com", Message: "Pricing question",
	})
	app.loginAs("sales", model.RoleAdmin)

	var read struct {
		Data model.Contact `json:"data"`
	}
	resp := app.request(http.MethodPost, "/api/admin/contacts/"+itoa64(contact.ID)+"/read", nil, &read)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("mark read = %d", resp.StatusCode)
	}
	if !read.Data.IsRead {
		t.Error("contact not marked read")
	}

	// Marking twice is idempotent.
	resp = app.request(http.MethodPost, "/api/admin/contacts/"+itoa64(contact.ID)+"/read", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("second mark read = %d", resp.StatusCode)
	}

	resp = app.request(http.MethodPost, "/api/admin/contacts/999/read", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown contact = %d, want 404", resp.StatusCode)
	}
}

func TestPopupLeadLifecycle(t *testing.T) {
	app := newTestApp(t)

	var created struct {
		Data model.EmailPopupLead `json:"data"`
	}
	resp := app.request(http.MethodPost, "/api/popup-lead", PopupLeadRequest{
		Email: "newsletter@example.com", Source: "homepage",
	}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	app.loginAs("marketing", model.RoleAdmin)

	var leads struct {
		Data []model.EmailPopupLead `json:"data"`
	}
	app.request(http.MethodGet, "/api/admin/popup-leads?unprocessed=true", nil, &leads)
	if len(leads.Data) != 1 {
		t.Fatalf("unprocessed leads = %d", len(leads.Data))
	}

	resp = app.request(http.MethodPost,
		"/api/admin/popup-leads/"+itoa64(created.Data.ID)+"/processed", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("mark processed = %d", resp.StatusCode)
	}

	app.request(http.MethodGet, "/api/admin/popup-leads?unprocessed=true", nil, &leads)
	if len(leads.Data) != 0 {
		t.Errorf("leads still unprocessed: %+v", leads.Data)
	}
}

func TestDomainContactSubmission(t *testing.T) {
	app := newTestApp(t)

	var created struct {
		Data model.DomainContact `json:"data"`
	}
	resp := app.request(http.MethodPost, "/api/domain-contact", DomainContactRequest{
		Name: "Pat Kim", Email: "pat@example.com", Domain: "example.io",
	}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if created.Data.Domain != "example.io" {
		t.Errorf("contact = %+v", created.Data)
	}
}
