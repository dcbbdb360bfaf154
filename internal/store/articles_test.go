// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"errors"
	"testing"
)

func TestCreateArticleSlugConflict(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateArticle(CreateArticleParams{Title: "First", Slug: "dedup"}); err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}
	if _, err := s.CreateArticle(CreateArticleParams{Title: "Second", Slug: "dedup"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestArticleFilters(t *testing.T) {
	s := newTestStore(t)

	mustCreateArticle := func(params CreateArticleParams) {
		t.Helper()
		if _, err := s.CreateArticle(params); err != nil {
			t.Fatalf("CreateArticle(%q): %v", params.Slug, err)
		}
	}

	mustCreateArticle(CreateArticleParams{Title: "Draft", Slug: "draft", Category: "news"})
	mustCreateArticle(CreateArticleParams{Title: "Live", Slug: "live", Category: "news", IsPublished: true})
	mustCreateArticle(CreateArticleParams{Title: "Star", Slug: "star", Category: "guides", IsPublished: true, IsFeatured: true})
	mustCreateArticle(CreateArticleParams{Title: "Hidden star", Slug: "hidden", Category: "guides", IsFeatured: true})

	if got := len(s.ListArticles()); got != 4 {
		t.Fatalf("ListArticles = %d, want 4", got)
	}
	if got := len(s.ListPublishedArticles()); got != 2 {
		t.Fatalf("ListPublishedArticles = %d, want 2", got)
	}

	// Featured must AND with published: the unpublished featured article
	// never leaks.
	featured := s.ListFeaturedArticles()
	if len(featured) != 1 || featured[0].Slug != "star" {
		t.Fatalf("ListFeaturedArticles = %+v", featured)
	}

	news := s.ListArticlesByCategory("news")
	if len(news) != 1 || news[0].Slug != "live" {
		t.Fatalf("ListArticlesByCategory = %+v", news)
	}
}

func TestUpdateArticlePartial(t *testing.T) {
	s := newTestStore(t)

	a, err := s.CreateArticle(CreateArticleParams{Title: "Orig", Slug: "orig", Category: "news"})
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}

	// Empty partial refreshes UpdatedAt and nothing else.
	updated, err := s.UpdateArticle(a.ID, UpdateArticleParams{})
	if err != nil {
		t.Fatalf("UpdateArticle: %v", err)
	}
	if updated.Title != "Orig" || updated.Slug != "orig" || updated.Category != "news" {
		t.Fatalf("empty partial changed fields: %+v", updated)
	}
	if !updated.UpdatedAt.After(a.UpdatedAt) {
		t.Fatal("UpdatedAt not refreshed")
	}

	title := "New title"
	published := true
	updated, err = s.UpdateArticle(a.ID, UpdateArticleParams{Title: &title, IsPublished: &published})
	if err != nil {
		t.Fatalf("UpdateArticle: %v", err)
	}
	if updated.Title != "New title" || !updated.IsPublished || updated.Slug != "orig" {
		t.Fatalf("partial merge wrong: %+v", updated)
	}
}

func TestUpdateArticleSlugConflict(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.CreateArticle(CreateArticleParams{Title: "A", Slug: "a"})
	if _, err := s.CreateArticle(CreateArticleParams{Title: "B", Slug: "b"}); err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}

	taken := "b"
	if _, err := s.UpdateArticle(a.ID, UpdateArticleParams{Slug: &taken}); !errors.Is(err, ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}

	// Re-asserting its own slug is not a conflict.
	own := "a"
	if _, err := s.UpdateArticle(a.ID, UpdateArticleParams{Slug: &own}); err != nil {
		t.Fatalf("self-slug update: %v", err)
	}
}

func TestDeleteArticle(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.CreateArticle(CreateArticleParams{Title: "A", Slug: "a"})
	b, _ := s.CreateArticle(CreateArticleParams{Title: "B", Slug: "b"})

	if err := s.DeleteArticle(a.ID); err != nil {
		t.Fatalf("DeleteArticle: %v", err)
	}
	if err := s.DeleteArticle(a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: want ErrNotFound, got %v", err)
	}

	// The other record is untouched.
	if _, err := s.GetArticle(b.ID); err != nil {
		t.Fatalf("GetArticle(b): %v", err)
	}
	if _, err := s.GetArticleBySlug("b"); err != nil {
		t.Fatalf("GetArticleBySlug(b): %v", err)
	}
}
