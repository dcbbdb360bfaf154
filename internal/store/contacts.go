// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/rackline/rackline-go/internal/model"

// CreateContactParams holds input for CreateContact.
type CreateContactParams struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
	Country string
}

// CreateContact records a new contact-form inquiry. Contacts start unread and
// are never deleted; triage happens through MarkContactRead.
func (s *Store) CreateContact(params CreateContactParams) model.Contact {
	contact, _ := s.contacts.insert(nil, func(id int64) model.Contact {
		return model.Contact{
			ID:        id,
			Name:      params.Name,
			Email:     params.Email,
			Phone:     params.Phone,
			Company:   params.Company,
			Message:   params.Message,
			Country:   params.Country,
			IsRead:    false,
			CreatedAt: s.now(),
		}
	})
	return contact
}

// ListContacts returns all contacts in submission order.
func (s *Store) ListContacts() []model.Contact {
	return s.contacts.list()
}

// GetContact returns the contact with the given ID.
func (s *Store) GetContact(id int64) (model.Contact, error) {
	return s.contacts.get(func(c model.Contact) bool { return c.ID == id })
}

// MarkContactRead flips the read flag. Idempotent: marking an already-read
// contact succeeds and leaves it read. There is no way back to unread.
func (s *Store) MarkContactRead(id int64) (model.Contact, error) {
	return s.contacts.modify(
		func(c model.Contact) bool { return c.ID == id },
		nil,
		func(c *model.Contact) { c.IsRead = true },
	)
}

// CreateDomainContactParams holds input for CreateDomainContact.
type CreateDomainContactParams struct {
	Name    string
	Email   string
	Phone   string
	Domain  string
	Message string
	Country string
}

// CreateDomainContact records a new domain/hosting inquiry.
func (s *Store) CreateDomainContact(params CreateDomainContactParams) model.DomainContact {
	contact, _ := s.domainContacts.insert(nil, func(id int64) model.DomainContact {
		return model.DomainContact{
			ID:        id,
			Name:      params.Name,
			Email:     params.Email,
			Phone:     params.Phone,
			Domain:    params.Domain,
			Message:   params.Message,
			Country:   params.Country,
			IsRead:    false,
			CreatedAt: s.now(),
		}
	})
	return contact
}

// ListDomainContacts returns all domain inquiries in submission order.
func (s *Store) ListDomainContacts() []model.DomainContact {
	return s.domainContacts.list()
}

// GetDomainContact returns the domain inquiry with the given ID.
func (s *Store) GetDomainContact(id int64) (model.DomainContact, error) {
	return s.domainContacts.get(func(c model.DomainContact) bool { return c.ID == id })
}

// MarkDomainContactRead flips the read flag, idempotently.
func (s *Store) MarkDomainContactRead(id int64) (model.DomainContact, error) {
	return s.domainContacts.modify(
		func(c model.DomainContact) bool { return c.ID == id },
		nil,
		func(c *model.DomainContact) { c.IsRead = true },
	)
}
