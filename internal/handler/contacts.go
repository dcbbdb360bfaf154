// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/rackline/rackline-go/internal/middleware"
	"github.com/rackline/rackline-go/internal/store"
)

// validEmail reports whether addr parses as a single RFC 5322 address.
func validEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}

// ContactRequest is the request body of the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// CreateContact handles POST /api/contact. The lead is tagged with the
// client's GeoIP country when a database is configured.
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" || !validEmail(req.Email) {
		WriteBadRequest(w, "name and a valid email are required", nil)
		return
	}

	contact := h.store.CreateContact(store.CreateContactParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
		Country: middleware.CountryFromContext(r.Context()),
	})
	h.logger.Info("contact inquiry received", "id", contact.ID, "country", contact.Country)
	WriteCreated(w, contact)
}

// DomainContactRequest is the request body of the domain/hosting form.
type DomainContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Domain  string `json:"domain"`
	Message string `json:"message"`
}

// CreateDomainContact handles POST /api/domain-contact.
func (h *Handler) CreateDomainContact(w http.ResponseWriter, r *http.Request) {
	var req DomainContactRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Name) == "" || !validEmail(req.Email) {
		WriteBadRequest(w, "name and a valid email are required", nil)
		return
	}

	contact := h.store.CreateDomainContact(store.CreateDomainContactParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Domain:  req.Domain,
		Message: req.Message,
		Country: middleware.CountryFromContext(r.Context()),
	})
	h.logger.Info("domain inquiry received", "id", contact.ID, "domain", contact.Domain)
	WriteCreated(w, contact)
}

// PopupLeadRequest is the request body of the newsletter popup.
type PopupLeadRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

// CreatePopupLead handles POST /api/popup-lead.
func (h *Handler) CreatePopupLead(w http.ResponseWriter, r *http.Request) {
	var req PopupLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if !validEmail(req.Email) {
		WriteBadRequest(w, "a valid email is required", nil)
		return
	}

	lead := h.store.CreateEmailPopupLead(store.CreateEmailPopupLeadParams{
		Email:  req.Email,
		Source: req.Source,
	})
	WriteCreated(w, lead)
}

// ----- Admin surface -----

// AdminListContacts handles GET /api/admin/contacts.
func (h *Handler) AdminListContacts(w http.ResponseWriter, r *http.Request) {
	pageItems, meta := paginate(r, h.store.ListContacts())
	WriteSuccess(w, pageItems, meta)
}

// AdminGetContact handles GET /api/admin/contacts/{id}.
func (h *Handler) AdminGetContact(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	contact, err := h.store.GetContact(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, contact, nil)
}

// AdminMarkContactRead handles POST /api/admin/contacts/{id}/read.
func (h *Handler) AdminMarkContactRead(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	contact, err := h.store.MarkContactRead(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, contact, nil)
}

// AdminListDomainContacts handles GET /api/admin/domain-contacts.
func (h *Handler) AdminListDomainContacts(w http.ResponseWriter, r *http.Request) {
	pageItems, meta := paginate(r, h.store.ListDomainContacts())
	WriteSuccess(w, pageItems, meta)
}

// AdminGetDomainContact handles GET /api/admin/domain-contacts/{id}.
func (h *Handler) AdminGetDomainContact(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	contact, err := h.store.GetDomainContact(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, contact, nil)
}

// AdminMarkDomainContactRead handles POST /api/admin/domain-contacts/{id}/read.
func (h *Handler) AdminMarkDomainContactRead(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	contact, err := h.store.MarkDomainContactRead(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, contact, nil)
}

// AdminListPopupLeads handles GET /api/admin/popup-leads. The unprocessed=true
// query parameter narrows the list to leads awaiting export.
func (h *Handler) AdminListPopupLeads(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("unprocessed") == "true" {
		pageItems, meta := paginate(r, h.store.ListUnprocessedEmailPopupLeads())
		WriteSuccess(w, pageItems, meta)
		return
	}
	pageItems, meta := paginate(r, h.store.ListEmailPopupLeads())
	WriteSuccess(w, pageItems, meta)
}

// AdminMarkPopupLeadProcessed handles POST /api/admin/popup-leads/{id}/processed.
func (h *Handler) AdminMarkPopupLeadProcessed(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	lead, err := h.store.MarkEmailPopupLeadProcessed(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, lead, nil)
}
