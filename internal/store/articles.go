// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"slices"

	"github.com/rackline/rackline-go/internal/model"
)

// CreateArticleParams holds input for CreateArticle.
type CreateArticleParams struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	Category    string
	Tags        []string
	IsPublished bool
	IsFeatured  bool
}

// CreateArticle creates an article. The slug is a unique business key;
// a duplicate returns ErrConflict.
func (s *Store) CreateArticle(params CreateArticleParams) (model.Article, error) {
	return s.articles.insert(
		func(a model.Article) bool { return a.Slug == params.Slug },
		func(id int64) model.Article {
			now := s.now()
			return model.Article{
				ID:          id,
				Title:       params.Title,
				Slug:        params.Slug,
				Excerpt:     params.Excerpt,
				Content:     params.Content,
				Category:    params.Category,
				Tags:        slices.Clone(params.Tags),
				IsPublished: params.IsPublished,
				IsFeatured:  params.IsFeatured,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
	)
}

// ListArticles returns every article, drafts included, in creation order.
func (s *Store) ListArticles() []model.Article {
	return s.articles.list()
}

// ListPublishedArticles returns published articles only.
func (s *Store) ListPublishedArticles() []model.Article {
	return s.articles.filter(func(a model.Article) bool { return a.IsPublished })
}

// ListFeaturedArticles returns articles that are both published and featured.
// Unpublished articles never leak through this accessor.
func (s *Store) ListFeaturedArticles() []model.Article {
	return s.articles.filter(func(a model.Article) bool { return a.IsPublished && a.IsFeatured })
}

// ListArticlesByCategory returns published articles in the given category.
func (s *Store) ListArticlesByCategory(category string) []model.Article {
	return s.articles.filter(func(a model.Article) bool {
		return a.IsPublished && a.Category == category
	})
}

// GetArticle returns the article with the given ID.
func (s *Store) GetArticle(id int64) (model.Article, error) {
	return s.articles.get(func(a model.Article) bool { return a.ID == id })
}

// GetArticleBySlug returns the article with the given slug.
func (s *Store) GetArticleBySlug(slug string) (model.Article, error) {
	return s.articles.get(func(a model.Article) bool { return a.Slug == slug })
}

// UpdateArticleParams holds the partial update for UpdateArticle. Nil fields
// leave the stored value untouched.
type UpdateArticleParams struct {
	Title       *string
	Slug        *string
	Excerpt     *string
	Content     *string
	Category    *string
	Tags        []string // nil leaves tags untouched
	IsPublished *bool
	IsFeatured  *bool
}

// UpdateArticle shallow-merges the partial over the stored article and
// refreshes UpdatedAt. Changing the slug to one held by another article
// returns ErrConflict.
func (s *Store) UpdateArticle(id int64, params UpdateArticleParams) (model.Article, error) {
	var conflicts func(model.Article) bool
	if params.Slug != nil {
		conflicts = func(a model.Article) bool { return a.ID != id && a.Slug == *params.Slug }
	}

	return s.articles.modify(
		func(a model.Article) bool { return a.ID == id },
		conflicts,
		func(a *model.Article) {
			if params.Title != nil {
				a.Title = *params.Title
			}
			if params.Slug != nil {
				a.Slug = *params.Slug
			}
			if params.Excerpt != nil {
				a.Excerpt = *params.Excerpt
			}
			if params.Content != nil {
				a.Content = *params.Content
			}
			if params.Category != nil {
				a.Category = *params.Category
			}
			if params.Tags != nil {
				a.Tags = slices.Clone(params.Tags)
			}
			if params.IsPublished != nil {
				a.IsPublished = *params.IsPublished
			}
			if params.IsFeatured != nil {
				a.IsFeatured = *params.IsFeatured
			}
			a.UpdatedAt = s.now()
		},
	)
}

// DeleteArticle permanently removes an article.
func (s *Store) DeleteArticle(id int64) error {
	return s.articles.remove(func(a model.Article) bool { return a.ID == id })
}
