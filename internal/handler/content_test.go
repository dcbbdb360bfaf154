// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/rackline/rackline-go/internal/model"
	"github.com/rackline/rackline-go/internal/store"
)

func TestPublicArticleRendering(t *testing.T) {
	app := newTestApp(t)

	_, err := app.store.CreateArticle(store.CreateArticleParams{
		Title: "Choosing a Rack Server", Slug: "choosing-a-rack-server",
		Content: "## Sizing\n\nStart with **memory**.", IsPublished: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = app.store.CreateArticle(store.CreateArticleParams{
		Title: "Draft Post", Slug: "draft-post", Content: "wip",
	})
	if err != nil {
		t.Fatal(err)
	}

	var body struct {
		Data ArticleResponse `json:"data"`
	}
	resp := app.request(http.MethodGet, "/api/articles/choosing-a-rack-server", nil, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(body.Data.HTML, "<h2") || !strings.Contains(body.Data.HTML, "<strong>memory</strong>") {
		t.Errorf("html = %q", body.Data.HTML)
	}

	resp = app.request(http.MethodGet, "/api/articles/draft-post", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unpublished article = %d, want 404", resp.StatusCode)
	}

	var list struct {
		Data []model.Article `json:"data"`
	}
	app.request(http.MethodGet, "/api/articles", nil, &list)
	if len(list.Data) != 1 {
		t.Errorf("public list = %d articles, want 1", len(list.Data))
	}
}

func TestAdminArticleCreateDerivesSlug(t *testing.T) {
	app := newTestApp(t)
	app.loginAs("editor", model.RoleEditor)

	var created struct {
		Data model.Article `json:"data"`
	}
	resp := app.request(http.MethodPost, "/api/admin/articles", CreateArticleRequest{
		Title: "DDR5 Memory Explained", Content: "body",
	}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if created.Data.Slug != "ddr5-memory-explained" {
		t.Errorf("slug = %q", created.Data.Slug)
	}

	// Same derived slug again: conflict.
	resp = app.request(http.MethodPost, "/api/admin/articles", CreateArticleRequest{
		Title: "DDR5 Memory Explained", Content: "other body",
	}, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate slug = %d, want 409", resp.StatusCode)
	}
}

func TestSettingsUpdateByKey(t *testing.T) {
	app := newTestApp(t)
	app.loginAs("config", model.RoleAdmin)

	resp := app.request(http.MethodPost, "/api/admin/settings", SiteSettingRequest{
		Key: "sales_phone", Value: "+1 555 0100", Category: "contact",
	}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create = %d", resp.StatusCode)
	}

	var updated struct {
		Data model.SiteSetting `json:"data"`
	}
	resp = app.request(http.MethodPut, "/api/admin/settings/sales_phone",
		UpdateSettingRequest{Value: "+1 555 0199"}, &updated)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update = %d", resp.StatusCode)
	}
	if updated.Data.Value != "+1 555 0199" {
		t.Errorf("value = %q", updated.Data.Value)
	}

	// Update is not an upsert.
	resp = app.request(http.MethodPut, "/api/admin/settings/nope",
		UpdateSettingRequest{Value: "x"}, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown key update = %d, want 404", resp.StatusCode)
	}

	var public struct {
		Data map[string]string `json:"data"`
	}
	app.request(http.MethodGet, "/api/settings/contact", nil, &public)
	if public.Data["sales_phone"] != "+1 555 0199" {
		t.Errorf("public settings = %v", public.Data)
	}
}

func TestPageContentsBySection(t *testing.T) {
	app := newTestApp(t)

	app.store.CreatePageContent(store.CreatePageContentParams{
		PageName: "home", Section: "hero", Title: "Enterprise hardware", IsActive: true,
	})
	app.store.CreatePageContent(store.CreatePageContentParams{
		PageName: "home", Section: "hero", Title: "Hidden block", IsActive: false,
	})
	app.store.CreatePageContent(store.CreatePageContentParams{
		PageName: "home", Section: "faq", Title: "FAQ", IsActive: true,
	})

	var body struct {
		Data []model.PageContent `json:"data"`
	}
	app.request(http.MethodGet, "/api/pages/home?section=hero", nil, &body)
	if len(body.Data) != 1 || body.Data[0].Title != "Enterprise hardware" {
		t.Errorf("hero blocks = %+v", body.Data)
	}

	app.request(http.MethodGet, "/api/pages/home", nil, &body)
	if len(body.Data) != 3 {
		t.Errorf("page blocks = %d, want 3", len(body.Data))
	}
}

func TestPublicServicesAndTestimonials(t *testing.T) {
	app := newTestApp(t)

	app.store.CreateService(store.CreateServiceParams{Name: "Colocation", IsActive: true})
	app.store.CreateService(store.CreateServiceParams{Name: "Retired Service", IsActive: false})
	app.store.CreateTestimonial(store.CreateTestimonialParams{
		ClientName: "Sam", Rating: 5, IsActive: true,
	})

	var services struct {
		Data []model.Service `json:"data"`
	}
	app.request(http.MethodGet, "/api/services", nil, &services)
	if len(services.Data) != 1 || services.Data[0].Name != "Colocation" {
		t.Errorf("services = %+v", services.Data)
	}

	var testimonials struct {
		Data []model.Testimonial `json:"data"`
	}
	app.request(http.MethodGet, "/api/testimonials", nil, &testimonials)
	if len(testimonials.Data) != 1 {
		t.Errorf("testimonials = %+v", testimonials.Data)
	}
}
