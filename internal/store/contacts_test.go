// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"errors"
	"testing"
)

func TestContactReadStateMonotone(t *testing.T) {
	s := newTestStore(t)
	c := s.CreateContact(CreateContactParams{Name: "Lee", Email: "lee@example.com", Message: "quote please"})

	if c.IsRead {
		t.Fatal("new contact should start unread")
	}

	got, err := s.MarkContactRead(c.ID)
	if err != nil {
		t.Fatalf("MarkContactRead: %v", err)
	}
	if !got.IsRead {
		t.Fatal("contact not marked read")
	}

	// Idempotent: a second mark is a no-op success, never a revert.
	got, err = s.MarkContactRead(c.ID)
	if err != nil {
		t.Fatalf("second MarkContactRead: %v", err)
	}
	if !got.IsRead {
		t.Fatal("read flag reverted")
	}
}

func TestMarkContactReadNotFound(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.MarkContactRead(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDomainContactLifecycle(t *testing.T) {
	s := newTestStore(t)
	c := s.CreateDomainContact(CreateDomainContactParams{Name: "Ana", Domain: "example.org"})

	got, err := s.GetDomainContact(c.ID)
	if err != nil {
		t.Fatalf("GetDomainContact: %v", err)
	}
	if got.Domain != "example.org" {
		t.Fatalf("Domain = %q", got.Domain)
	}

	if _, err := s.MarkDomainContactRead(c.ID); err != nil {
		t.Fatalf("MarkDomainContactRead: %v", err)
	}
	if list := s.ListDomainContacts(); !list[0].IsRead {
		t.Fatal("domain contact not marked read")
	}
}

func TestEmailPopupLeadProcessing(t *testing.T) {
	s := newTestStore(t)
	a := s.CreateEmailPopupLead(CreateEmailPopupLeadParams{Email: "a@example.com", Source: "exit-intent"})
	b := s.CreateEmailPopupLead(CreateEmailPopupLeadParams{Email: "b@example.com", Source: "footer"})

	if got := len(s.ListUnprocessedEmailPopupLeads()); got != 2 {
		t.Fatalf("unprocessed = %d, want 2", got)
	}

	if _, err := s.MarkEmailPopupLeadProcessed(a.ID); err != nil {
		t.Fatalf("MarkEmailPopupLeadProcessed: %v", err)
	}

	unprocessed := s.ListUnprocessedEmailPopupLeads()
	if len(unprocessed) != 1 || unprocessed[0].ID != b.ID {
		t.Fatalf("unexpected unprocessed set: %+v", unprocessed)
	}

	// Marking again stays processed.
	lead, err := s.MarkEmailPopupLeadProcessed(a.ID)
	if err != nil || !lead.IsProcessed {
		t.Fatalf("second mark: lead=%+v err=%v", lead, err)
	}
}
