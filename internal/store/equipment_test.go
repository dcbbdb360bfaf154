// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"testing"

	"github.com/rackline/rackline-go/internal/model"
)

func seedCatalog(t *testing.T, s *Store) {
	t.Helper()
	s.BulkCreateServerEquipment([]CreateServerEquipmentParams{
		{
			Name: "Dell PowerEdge R740", PartNumber: "PER740-8SFF", Model: "R740",
			Category: "rack-servers", SubCategory: "2u", Brand: "Dell",
			Description: "Dual-socket 2U server", Condition: model.ConditionRefurbished,
			PriceCents: 249900, StockCount: 12, IsActive: true, IsFeatured: true,
		},
		{
			Name: "Dell PowerEdge R640", PartNumber: "PER640-10SFF", Model: "R640",
			Category: "rack-servers", SubCategory: "1u", Brand: "Dell",
			Description: "Compact 1U server", Condition: model.ConditionRefurbished,
			PriceCents: 199900, StockCount: 4, IsActive: true,
		},
		{
			Name: "Retired R740 chassis", PartNumber: "PER740-OLD", Model: "R740",
			Category: "rack-servers", SubCategory: "2u", Brand: "Dell",
			Description: "Decommissioned listing", Condition: model.ConditionUsed,
			PriceCents: 99900, IsActive: false, IsFeatured: true,
		},
		{
			Name: "Cisco Catalyst 9300", PartNumber: "C9300-48T-A", Model: "Catalyst 9300",
			Category: "networking", SubCategory: "switches", Brand: "Cisco",
			Description: "48-port access switch", Condition: model.ConditionNew,
			PriceCents: 389900, StockCount: 5, IsActive: true,
		},
	})
}

func TestSearchServerEquipment(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	tests := []struct {
		name  string
		query string
		want  []string // expected names, in collection order
	}{
		{"case-insensitive model match", "r740", []string{"Dell PowerEdge R740"}},
		{"part number match", "per640", []string{"Dell PowerEdge R640"}},
		{"description match", "ACCESS SWITCH", []string{"Cisco Catalyst 9300"}},
		{"multiple hits keep order", "poweredge", []string{"Dell PowerEdge R740", "Dell PowerEdge R640"}},
		{"no match", "mainframe", []string{}},
		{"blank query", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.SearchServerEquipment(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, e := range got {
				if e.Name != tt.want[i] {
					t.Errorf("result[%d] = %q, want %q", i, e.Name, tt.want[i])
				}
				if !e.IsActive {
					t.Errorf("inactive item %q leaked into search", e.Name)
				}
			}
		})
	}
}

func TestSearchExcludesInactiveEvenOnMatch(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	// "Retired R740 chassis" matches "chassis" but is inactive.
	if got := s.SearchServerEquipment("chassis"); len(got) != 0 {
		t.Fatalf("inactive match returned: %+v", got)
	}
}

func TestEquipmentCategoryFiltersANDActive(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	rack := s.ListServerEquipmentByCategory("rack-servers")
	if len(rack) != 2 {
		t.Fatalf("rack-servers = %d items, want 2 (inactive excluded)", len(rack))
	}

	twoU := s.ListServerEquipmentBySubCategory("rack-servers", "2u")
	if len(twoU) != 1 || twoU[0].Model != "R740" {
		t.Fatalf("2u = %+v", twoU)
	}

	featured := s.ListFeaturedServerEquipment()
	if len(featured) != 1 || featured[0].Name != "Dell PowerEdge R740" {
		t.Fatalf("featured = %+v (inactive featured item must be excluded)", featured)
	}

	active := s.ListActiveServerEquipment()
	all := s.ListServerEquipment()
	if len(active) != 3 || len(all) != 4 {
		t.Fatalf("active=%d all=%d, want 3/4", len(active), len(all))
	}
}

func TestBulkCreateServerEquipment(t *testing.T) {
	s := newTestStore(t)
	s.CreateServerEquipment(CreateServerEquipmentParams{Name: "existing", IsActive: true})
	before := len(s.ListServerEquipment())

	created := s.BulkCreateServerEquipment([]CreateServerEquipmentParams{
		{Name: "a"}, {Name: "b"}, {Name: "c"},
	})

	if len(created) != 3 {
		t.Fatalf("created %d, want 3", len(created))
	}
	if created[0].Name != "a" || created[1].Name != "b" || created[2].Name != "c" {
		t.Fatalf("input order not preserved: %+v", created)
	}

	seen := map[int64]bool{}
	for _, e := range created {
		if seen[e.ID] {
			t.Fatalf("duplicate ID %d", e.ID)
		}
		seen[e.ID] = true
	}
	if got := len(s.ListServerEquipment()); got != before+3 {
		t.Fatalf("collection size %d, want %d", got, before+3)
	}
}

func TestUpdateServerEquipmentSpecsCopied(t *testing.T) {
	s := newTestStore(t)
	specs := map[string]string{"ram": "64GB"}
	e := s.CreateServerEquipment(CreateServerEquipmentParams{Name: "x", Specs: specs, IsActive: true})

	// Mutating the caller's map must not reach the stored record.
	specs["ram"] = "mutated"
	got, err := s.GetServerEquipment(e.ID)
	if err != nil {
		t.Fatalf("GetServerEquipment: %v", err)
	}
	if got.Specs["ram"] != "64GB" {
		t.Fatalf("specs aliased: %v", got.Specs)
	}

	stock := 0
	active := false
	updated, err := s.UpdateServerEquipment(e.ID, UpdateServerEquipmentParams{StockCount: &stock, IsActive: &active})
	if err != nil {
		t.Fatalf("UpdateServerEquipment: %v", err)
	}
	if updated.StockCount != 0 || updated.IsActive {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Name != "x" {
		t.Fatalf("unrelated field changed: %+v", updated)
	}
}
