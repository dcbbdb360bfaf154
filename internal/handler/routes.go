// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"github.com/go-chi/chi/v5"

	"github.com/rackline/rackline-go/internal/middleware"
)

// Routes builds the API router. Session loading, security headers, rate
// limiting and CSRF are applied by the caller around this router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", h.Version)

		// Public catalog.
		r.Get("/catalog", h.ListCatalog)
		r.Get("/catalog/categories", h.ListCategories)
		r.Get("/catalog/categories/{slug}", h.GetCategoryBySlug)
		r.Get("/catalog/{id}", h.GetCatalogItem)
		r.Post("/quote", h.CalculateQuote)

		// Public content.
		r.Get("/articles", h.ListArticles)
		r.Get("/articles/{slug}", h.GetArticleBySlug)
		r.Get("/services", h.ListServices)
		r.Get("/testimonials", h.ListTestimonials)
		r.Get("/pages/{page}", h.GetPageContents)
		r.Get("/settings/{category}", h.GetPublicSettings)

		// Public forms and orders.
		r.Post("/contact", h.CreateContact)
		r.Post("/domain-contact", h.CreateDomainContact)
		r.Post("/popup-lead", h.CreatePopupLead)
		r.Post("/orders", h.CreateOrder)
		r.Get("/orders/{number}", h.GetOrderByNumber)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(h.sessions))
				r.Use(middleware.LoadAdmin(h.sessions, h.store))

				r.Post("/logout", h.Logout)
				r.Get("/me", h.Me)

				// Catalog management.
				r.Get("/equipment", h.AdminListEquipment)
				r.Post("/equipment", h.AdminCreateEquipment)
				r.Post("/equipment/bulk", h.AdminBulkCreateEquipment)
				r.Get("/equipment/{id}", h.AdminGetEquipment)
				r.Put("/equipment/{id}", h.AdminUpdateEquipment)
				r.Delete("/equipment/{id}", h.AdminDeleteEquipment)
				r.Get("/categories", h.AdminListCategories)
				r.Post("/categories", h.AdminCreateCategory)
				r.Put("/categories/{id}", h.AdminUpdateCategory)
				r.Delete("/categories/{id}", h.AdminDeleteCategory)

				// Content management.
				r.Get("/articles", h.AdminListArticles)
				r.Post("/articles", h.AdminCreateArticle)
				r.Post("/articles/draft", h.AdminDraftArticle)
				r.Get("/articles/{id}", h.AdminGetArticle)
				r.Put("/articles/{id}", h.AdminUpdateArticle)
				r.Delete("/articles/{id}", h.AdminDeleteArticle)
				r.Get("/services", h.AdminListServices)
				r.Post("/services", h.AdminCreateService)
				r.Put("/services/{id}", h.AdminUpdateService)
				r.Delete("/services/{id}", h.AdminDeleteService)
				r.Get("/testimonials", h.AdminListTestimonials)
				r.Post("/testimonials", h.AdminCreateTestimonial)
				r.Put("/testimonials/{id}", h.AdminUpdateTestimonial)
				r.Delete("/testimonials/{id}", h.AdminDeleteTestimonial)
				r.Get("/page-contents", h.AdminListPageContents)
				r.Post("/page-contents", h.AdminCreatePageContent)
				r.Put("/page-contents/{id}", h.AdminUpdatePageContent)
				r.Delete("/page-contents/{id}", h.AdminDeletePageContent)

				// Leads and orders.
				r.Get("/contacts", h.AdminListContacts)
				r.Get("/contacts/{id}", h.AdminGetContact)
				r.Post("/contacts/{id}/read", h.AdminMarkContactRead)
				r.Get("/domain-contacts", h.AdminListDomainContacts)
				r.Get("/domain-contacts/{id}", h.AdminGetDomainContact)
				r.Post("/domain-contacts/{id}/read", h.AdminMarkDomainContactRead)
				r.Get("/popup-leads", h.AdminListPopupLeads)
				r.Post("/popup-leads/{id}/processed", h.AdminMarkPopupLeadProcessed)
				r.Get("/orders", h.AdminListOrders)
				r.Get("/orders/{id}", h.AdminGetOrder)
				r.Put("/orders/{id}/status", h.AdminUpdateOrderStatus)

				// Settings and audit.
				r.Get("/settings", h.AdminListSettings)
				r.Post("/settings", h.AdminCreateSetting)
				r.Put("/settings/{key}", h.AdminUpdateSetting)
				r.Delete("/settings/{key}", h.AdminDeleteSetting)
				r.Get("/activity", h.AdminListActivity)

				// Admin-role only: account, user and backup management.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdminRole())

					r.Get("/users", h.ListAdminUsers)
					r.Post("/users", h.CreateAdminUser)
					r.Put("/users/{id}", h.UpdateAdminUser)
					r.Delete("/users/{id}", h.DeleteAdminUser)

					r.Post("/site-users", h.UpsertUser)
					r.Get("/site-users", h.ListUsers)
					r.Get("/site-users/{id}", h.GetUser)
					r.Put("/site-users/{id}/role", h.UpdateUserRole)

					r.Get("/backups", h.AdminListBackups)
					r.Post("/backups", h.AdminCreateBackup)
					r.Delete("/backups/{id}", h.AdminDeleteBackup)
				})
			})
		})
	})

	return r
}
