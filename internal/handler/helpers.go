// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100

	timeFormat = time.RFC3339
)

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// decodeJSON decodes the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}

// parseIntParam parses an integer query parameter, clamping to [minVal, maxVal].
// Missing, invalid or out-of-range values return defaultVal.
func parseIntParam(r *http.Request, param string, defaultVal, minVal, maxVal int) int {
	str := r.URL.Query().Get(param)
	if str == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return defaultVal
	}
	if val < minVal || (maxVal > 0 && val > maxVal) {
		return defaultVal
	}
	return val
}

// parsePageParam parses the "page" query parameter (1-based).
func parsePageParam(r *http.Request) int {
	return parseIntParam(r, "page", 1, 1, 0)
}

// parsePerPageParam parses the "per_page" query parameter.
func parsePerPageParam(r *http.Request) int {
	return parseIntParam(r, "per_page", defaultPerPage, 1, maxPerPage)
}

// paginate slices items down to the requested page and builds the Meta block.
func paginate[T any](r *http.Request, items []T) ([]T, *Meta) {
	page := parsePageParam(r)
	perPage := parsePerPageParam(r)

	total := len(items)
	pages := (total + perPage - 1) / perPage
	if pages == 0 {
		pages = 1
	}

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	meta := &Meta{Total: total, Page: page, PerPage: perPage, Pages: pages}
	return items[start:end], meta
}
