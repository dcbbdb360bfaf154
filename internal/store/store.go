// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store implements the in-memory data store backing the CMS and the
// equipment catalog. All state lives in mutex-guarded, insertion-ordered
// collections owned by a single Store facade that is constructed once at
// process start and injected into its consumers. Nothing is persisted across
// restarts by design.
package store

import (
	"errors"
	"time"

	"github.com/rackline/rackline-go/internal/model"
)

// Sentinel errors returned by store operations. Callers check them with
// errors.Is; the store never panics for ordinary absence or duplication.
var (
	// ErrNotFound is returned when no record matches the given ID or key.
	ErrNotFound = errors.New("store: not found")

	// ErrConflict is returned when a create or update would duplicate a
	// unique business key (article slug, admin username, settings key,
	// category slug, order number).
	ErrConflict = errors.New("store: conflict")
)

// Store aggregates every entity collection behind one facade. All methods are
// safe for concurrent use; each collection carries its own lock and IDs come
// from per-collection monotonic counters that are never reused.
type Store struct {
	clock func() time.Time

	contacts       collection[model.Contact]
	domainContacts collection[model.DomainContact]
	popupLeads     collection[model.EmailPopupLead]
	articles       collection[model.Article]
	services       collection[model.Service]
	testimonials   collection[model.Testimonial]
	pageContents   collection[model.PageContent]
	settings       collection[model.SiteSetting]
	adminUsers     collection[model.AdminUser]
	activityLogs   collection[model.ActivityLog]
	backups        collection[model.WebsiteBackup]
	equipment      collection[model.ServerEquipment]
	categories     collection[model.EquipmentCategory]
	orders         collection[model.EquipmentOrder]
	users          collection[model.User]
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Used by tests to pin timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// now returns the current time from the configured clock.
func (s *Store) now() time.Time {
	return s.clock()
}
