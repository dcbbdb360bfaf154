// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rackline/rackline-go/internal/ai"
	"github.com/rackline/rackline-go/internal/model"
	"github.com/rackline/rackline-go/internal/store"
	"github.com/rackline/rackline-go/internal/util"
)

// ArticleResponse is a published article in public API responses. The
// markdown body is rendered and sanitized into HTML at this boundary.
type ArticleResponse struct {
	model.Article
	HTML string `json:"html,omitempty"`
}

// ListArticles handles GET /api/articles. Supports category and featured
// query parameters; only published articles are visible here.
func (h *Handler) ListArticles(w http.ResponseWriter, r *http.Request) {
	var articles []model.Article
	switch {
	case r.URL.Query().Get("featured") == "true":
		articles = h.store.ListFeaturedArticles()
	case r.URL.Query().Get("category") != "":
		articles = h.store.ListArticlesByCategory(r.URL.Query().Get("category"))
	default:
		articles = h.store.ListPublishedArticles()
	}

	pageItems, meta := paginate(r, articles)
	WriteSuccess(w, pageItems, meta)
}

// GetArticleBySlug handles GET /api/articles/{slug}. Unpublished articles
// are not visible on the public surface.
func (h *Handler) GetArticleBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	article, err := h.store.GetArticleBySlug(slug)
	if err != nil || !article.IsPublished {
		WriteNotFound(w, "article not found")
		return
	}

	html, err := h.markdown.Render(article.Content)
	if err != nil {
		h.logger.Error("rendering article", "slug", slug, "error", err)
		WriteInternalError(w, "rendering article")
		return
	}
	WriteSuccess(w, ArticleResponse{Article: article, HTML: html}, nil)
}

// ----- Admin surface -----

// AdminListArticles handles GET /api/admin/articles, drafts included.
func (h *Handler) AdminListArticles(w http.ResponseWriter, r *http.Request) {
	pageItems, meta := paginate(r, h.store.ListArticles())
	WriteSuccess(w, pageItems, meta)
}

// AdminGetArticle handles GET /api/admin/articles/{id}.
func (h *Handler) AdminGetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	article, err := h.store.GetArticle(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, article, nil)
}

// CreateArticleRequest is the request body for creating an article. A blank
// slug is derived from the title.
type CreateArticleRequest struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	IsPublished bool     `json:"is_published"`
	IsFeatured  bool     `json:"is_featured"`
}

// AdminCreateArticle handles POST /api/admin/articles.
func (h *Handler) AdminCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req CreateArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		WriteBadRequest(w, "title is required", nil)
		return
	}
	slug := req.Slug
	if slug == "" {
		slug = util.Slugify(req.Title)
	}
	if !util.IsValidSlug(slug) {
		WriteBadRequest(w, "invalid slug", map[string]string{"slug": slug})
		return
	}

	article, err := h.store.CreateArticle(store.CreateArticleParams{
		Title:       req.Title,
		Slug:        slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteCreated(w, article)
}

// UpdateArticleRequest is the request body for a partial article update.
type UpdateArticleRequest struct {
	Title       *string  `json:"title,omitempty"`
	Slug        *string  `json:"slug,omitempty"`
	Excerpt     *string  `json:"excerpt,omitempty"`
	Content     *string  `json:"content,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPublished *bool    `json:"is_published,omitempty"`
	IsFeatured  *bool    `json:"is_featured,omitempty"`
}

// AdminUpdateArticle handles PUT /api/admin/articles/{id}.
func (h *Handler) AdminUpdateArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	var req UpdateArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if req.Slug != nil && !util.IsValidSlug(*req.Slug) {
		WriteBadRequest(w, "invalid slug", map[string]string{"slug": *req.Slug})
		return
	}

	article, err := h.store.UpdateArticle(id, store.UpdateArticleParams{
		Title:       req.Title,
		Slug:        req.Slug,
		Excerpt:     req.Excerpt,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        req.Tags,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, article, nil)
}

// AdminDeleteArticle handles DELETE /api/admin/articles/{id}.
func (h *Handler) AdminDeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}
	if err := h.store.DeleteArticle(id); err != nil {
		writeStoreError(w, err)
		return
	}
	WriteSuccess(w, map[string]bool{"deleted": true}, nil)
}

// AdminDraftArticle handles POST /api/admin/articles/draft. The draft is
// saved unpublished for editorial review.
func (h *Handler) AdminDraftArticle(w http.ResponseWriter, r *http.Request) {
	if h.drafter == nil {
		WriteError(w, http.StatusServiceUnavailable, "ai_disabled", "AI drafting is not configured", nil)
		return
	}

	var input ai.DraftInput
	if err := decodeJSON(r, &input); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}

	draft, err := h.drafter.GenerateDraft(r.Context(), input)
	if err != nil {
		h.logger.Error("generating article draft", "topic", input.Topic, "error", err)
		WriteError(w, http.StatusBadGateway, "ai_error", err.Error(), nil)
		return
	}

	slug := draft.Slug
	// Slug collisions with existing articles get a suffix rather than a 409:
	// the editor asked for a draft, not a slug negotiation.
	for i := 2; ; i++ {
		if _, err := h.store.GetArticleBySlug(slug); err != nil {
			break
		}
		slug = util.Slugify(draft.Title) + "-" + strconv.Itoa(i)
	}

	article, err := h.store.CreateArticle(store.CreateArticleParams{
		Title:       draft.Title,
		Slug:        slug,
		Excerpt:     draft.Excerpt,
		Content:     draft.Body,
		Category:    input.Category,
		Tags:        draft.Tags,
		IsPublished: false,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	WriteCreated(w, article)
}
