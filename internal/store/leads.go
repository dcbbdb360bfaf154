// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "github.com/rackline/rackline-go/internal/model"

// CreateEmailPopupLeadParams holds input for CreateEmailPopupLead.
type CreateEmailPopupLeadParams struct {
	Email  string
	Source string
}

// CreateEmailPopupLead appends a newsletter popup signup. Leads are
// append-only; the only lifecycle transition is MarkEmailPopupLeadProcessed.
func (s *Store) CreateEmailPopupLead(params CreateEmailPopupLeadParams) model.EmailPopupLead {
	lead, _ := s.popupLeads.insert(nil, func(id int64) model.EmailPopupLead {
		return model.EmailPopupLead{
			ID:          id,
			Email:       params.Email,
			Source:      params.Source,
			IsProcessed: false,
			CreatedAt:   s.now(),
		}
	})
	return lead
}

// ListEmailPopupLeads returns all captured leads in signup order.
func (s *Store) ListEmailPopupLeads() []model.EmailPopupLead {
	return s.popupLeads.list()
}

// ListUnprocessedEmailPopupLeads returns leads not yet exported to the
// mailing list.
func (s *Store) ListUnprocessedEmailPopupLeads() []model.EmailPopupLead {
	return s.popupLeads.filter(func(l model.EmailPopupLead) bool { return !l.IsProcessed })
}

// MarkEmailPopupLeadProcessed flips the processed flag, idempotently.
func (s *Store) MarkEmailPopupLeadProcessed(id int64) (model.EmailPopupLead, error) {
	return s.popupLeads.modify(
		func(l model.EmailPopupLead) bool { return l.ID == id },
		nil,
		func(l *model.EmailPopupLead) { l.IsProcessed = true },
	)
}
