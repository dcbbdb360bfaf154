// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"slices"

	"github.com/rackline/rackline-go/internal/model"
)

// CreateServiceParams holds input for CreateService.
type CreateServiceParams struct {
	Name        string
	Description string
	Category    string
	Features    []string
	Pricing     model.ServicePricing
	IsActive    bool
	Order       int
}

// CreateService creates a service offering.
func (s *Store) CreateService(params CreateServiceParams) model.Service {
	svc, _ := s.services.insert(nil, func(id int64) model.Service {
		now := s.now()
		return model.Service{
			ID:          id,
			Name:        params.Name,
			Description: params.Description,
			Category:    params.Category,
			Features:    slices.Clone(params.Features),
			Pricing:     params.Pricing,
			IsActive:    params.IsActive,
			Order:       params.Order,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})
	return svc
}

// ListServices returns every service in creation order. Display sorting by
// the Order field is the caller's concern.
func (s *Store) ListServices() []model.Service {
	return s.services.list()
}

// ListActiveServices returns active services only.
func (s *Store) ListActiveServices() []model.Service {
	return s.services.filter(func(svc model.Service) bool { return svc.IsActive })
}

// GetService returns the service with the given ID.
func (s *Store) GetService(id int64) (model.Service, error) {
	return s.services.get(func(svc model.Service) bool { return svc.ID == id })
}

// UpdateServiceParams holds the partial update for UpdateService.
type UpdateServiceParams struct {
	Name        *string
	Description *string
	Category    *string
	Features    []string
	Pricing     *model.ServicePricing
	IsActive    *bool
	Order       *int
}

// UpdateService shallow-merges the partial over the stored service.
func (s *Store) UpdateService(id int64, params UpdateServiceParams) (model.Service, error) {
	return s.services.modify(
		func(svc model.Service) bool { return svc.ID == id },
		nil,
		func(svc *model.Service) {
			if params.Name != nil {
				svc.Name = *params.Name
			}
			if params.Description != nil {
				svc.Description = *params.Description
			}
			if params.Category != nil {
				svc.Category = *params.Category
			}
			if params.Features != nil {
				svc.Features = slices.Clone(params.Features)
			}
			if params.Pricing != nil {
				svc.Pricing = *params.Pricing
			}
			if params.IsActive != nil {
				svc.IsActive = *params.IsActive
			}
			if params.Order != nil {
				svc.Order = *params.Order
			}
			svc.UpdatedAt = s.now()
		},
	)
}

// DeleteService permanently removes a service.
func (s *Store) DeleteService(id int64) error {
	return s.services.remove(func(svc model.Service) bool { return svc.ID == id })
}

// CreateTestimonialParams holds input for CreateTestimonial.
type CreateTestimonialParams struct {
	ClientName  string
	ClientTitle string
	Company     string
	Rating      int
	Content     string
	IsActive    bool
	Order       int
}

// CreateTestimonial creates a testimonial.
func (s *Store) CreateTestimonial(params CreateTestimonialParams) model.Testimonial {
	t, _ := s.testimonials.insert(nil, func(id int64) model.Testimonial {
		now := s.now()
		return model.Testimonial{
			ID:          id,
			ClientName:  params.ClientName,
			ClientTitle: params.ClientTitle,
			Company:     params.Company,
			Rating:      params.Rating,
			Content:     params.Content,
			IsActive:    params.IsActive,
			Order:       params.Order,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	})
	return t
}

// ListTestimonials returns every testimonial in creation order.
func (s *Store) ListTestimonials() []model.Testimonial {
	return s.testimonials.list()
}

// ListActiveTestimonials returns active testimonials only.
func (s *Store) ListActiveTestimonials() []model.Testimonial {
	return s.testimonials.filter(func(t model.Testimonial) bool { return t.IsActive })
}

// GetTestimonial returns the testimonial with the given ID.
func (s *Store) GetTestimonial(id int64) (model.Testimonial, error) {
	return s.testimonials.get(func(t model.Testimonial) bool { return t.ID == id })
}

// UpdateTestimonialParams holds the partial update for UpdateTestimonial.
type UpdateTestimonialParams struct {
	ClientName  *string
	ClientTitle *string
	Company     *string
	Rating      *int
	Content     *string
	IsActive    *bool
	Order       *int
}

// UpdateTestimonial shallow-merges the partial over the stored testimonial.
func (s *Store) UpdateTestimonial(id int64, params UpdateTestimonialParams) (model.Testimonial, error) {
	return s.testimonials.modify(
		func(t model.Testimonial) bool { return t.ID == id },
		nil,
		func(t *model.Testimonial) {
			if params.ClientName != nil {
				t.ClientName = *params.ClientName
			}
			if params.ClientTitle != nil {
				t.ClientTitle = *params.ClientTitle
			}
			if params.Company != nil {
				t.Company = *params.Company
			}
			if params.Rating != nil {
				t.Rating = *params.Rating
			}
			if params.Content != nil {
				t.Content = *params.Content
			}
			if params.IsActive != nil {
				t.IsActive = *params.IsActive
			}
			if params.Order != nil {
				t.Order = *params.Order
			}
			t.UpdatedAt = s.now()
		},
	)
}

// DeleteTestimonial permanently removes a testimonial.
func (s *Store) DeleteTestimonial(id int64) error {
	return s.testimonials.remove(func(t model.Testimonial) bool { return t.ID == id })
}
