// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "sync"

// collection is a mutex-guarded, insertion-ordered slice of records with a
// monotonic ID counter. The counter only ever increases, so deleted IDs are
// never reused and a create after a delete cannot collide with an ID a caller
// cached earlier.
type collection[T any] struct {
	mu     sync.RWMutex
	items  []T
	lastID int64
}

// insert appends a new record built by build with the next ID. If conflicts
// is non-nil and matches an existing record, nothing is inserted and
// ErrConflict is returned.
func (c *collection[T]) insert(conflicts func(T) bool, build func(id int64) T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if conflicts != nil {
		for _, item := range c.items {
			if conflicts(item) {
				var zero T
				return zero, ErrConflict
			}
		}
	}

	c.lastID++
	item := build(c.lastID)
	c.items = append(c.items, item)
	return item, nil
}

// list returns a snapshot copy of the collection in insertion order.
func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// filter returns a snapshot of all records matching pred, in insertion order.
func (c *collection[T]) filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0)
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// get returns the first record matching pred, or ErrNotFound.
func (c *collection[T]) get(pred func(T) bool) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if pred(item) {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// modify applies apply to the first record matching pred and returns the
// updated record. If conflicts is non-nil it is checked against every record
// before the mutation; predicates are expected to exclude the record being
// modified themselves (usually by ID). Returns ErrNotFound when no record
// matches and ErrConflict when the conflict predicate fires.
func (c *collection[T]) modify(pred func(T) bool, conflicts func(T) bool, apply func(*T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, item := range c.items {
		if pred(item) {
			idx = i
			break
		}
	}
	if idx == -1 {
		var zero T
		return zero, ErrNotFound
	}

	if conflicts != nil {
		for _, item := range c.items {
			if conflicts(item) {
				var zero T
				return zero, ErrConflict
			}
		}
	}

	apply(&c.items[idx])
	return c.items[idx], nil
}

// remove deletes the first record matching pred. Returns ErrNotFound when no
// record matches. Removal is permanent; the ID is not reused.
func (c *collection[T]) remove(pred func(T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if pred(item) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// count returns the number of records.
func (c *collection[T]) count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
