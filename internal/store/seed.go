// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"log/slog"

	"github.com/rackline/rackline-go/internal/model"
)

// SeedDemo populates the store with demo content for development
// environments. It is a no-op when the store already holds equipment, so a
// restarted dev process does not duplicate data within one run.
func (s *Store) SeedDemo(logger *slog.Logger) {
	if s.equipment.count() > 0 {
		return
	}

	for _, cat := range []CreateEquipmentCategoryParams{
		{Name: "Rack Servers", Slug: "rack-servers", Description: "1U-4U rackmount servers", IsActive: true, Order: 1},
		{Name: "Storage", Slug: "storage", Description: "SAN, NAS and disk shelves", IsActive: true, Order: 2},
		{Name: "Networking", Slug: "networking", Description: "Switches, routers and NICs", IsActive: true, Order: 3},
		{Name: "Parts", Slug: "parts", Description: "Memory, drives and controllers", IsActive: true, Order: 4},
	} {
		if _, err := s.CreateEquipmentCategory(cat); err != nil {
			logger.Warn("seed: category skipped", "slug", cat.Slug, "error", err)
		}
	}

	s.BulkCreateServerEquipment([]CreateServerEquipmentParams{
		{
			Name: "Dell PowerEdge R740", PartNumber: "PER740-8SFF", Category: "rack-servers",
			SubCategory: "2u", Brand: "Dell", Model: "R740",
			Description: "Dual-socket 2U workhorse for virtualization",
			Specs:       map[string]string{"cpu": "2x Xeon Gold 6148", "ram": "256GB DDR4", "storage": "8x 2.5\" SFF"},
			Condition:   model.ConditionRefurbished,
			PriceCents:  249900, ListPriceCents: 899900, BulkPriceCents: 229900,
			StockCount: 12, IsActive: true, IsFeatured: true,
			Tags: []string{"dell", "virtualization"},
		},
		{
			Name: "HPE ProLiant DL380 Gen10", PartNumber: "DL380-G10-12LFF", Category: "rack-servers",
			SubCategory: "2u", Brand: "HPE", Model: "DL380 Gen10",
			Description: "High-capacity 2U server with 12 LFF bays",
			Specs:       map[string]string{"cpu": "2x Xeon Silver 4214", "ram": "128GB DDR4", "storage": "12x 3.5\" LFF"},
			Condition:   model.ConditionRefurbished,
			PriceCents:  219900, ListPriceCents: 789900, BulkPriceCents: 199900,
			StockCount: 8, IsActive: true, IsFeatured: true,
			Tags: []string{"hpe", "storage-dense"},
		},
		{
			Name: "Cisco Catalyst 9300 48-port", PartNumber: "C9300-48T-A", Category: "networking",
			SubCategory: "switches", Brand: "Cisco", Model: "Catalyst 9300",
			Description: "48-port gigabit access switch",
			Specs:       map[string]string{"ports": "48x 1GbE", "uplinks": "4x 10GbE"},
			Condition:   model.ConditionNew,
			PriceCents:  389900, ListPriceCents: 599900, BulkPriceCents: 369900,
			StockCount: 5, IsActive: true,
			Tags: []string{"cisco", "access-layer"},
		},
	})

	s.CreateService(CreateServiceParams{
		Name: "Managed Colocation", Description: "Rack space, power and remote hands",
		Category: "datacenter",
		Features: []string{"24/7 monitoring", "Redundant power", "Remote hands included"},
		Pricing:  model.ServicePricing{Basic: "$299/mo", Pro: "$799/mo", Enterprise: "Contact us"},
		IsActive: true, Order: 1,
	})

	s.CreateTestimonial(CreateTestimonialParams{
		ClientName: "Maria Chen", ClientTitle: "CTO", Company: "Northwind Logistics",
		Rating: 5, Content: "Cut our hardware refresh budget in half.", IsActive: true, Order: 1,
	})

	for _, setting := range []CreateSiteSettingParams{
		{Key: "site_phone", Value: "+1 (800) 555-0145", Category: "contact"},
		{Key: "site_email", Value: "sales@rackline.example", Category: "contact"},
		{Key: "quote_bulk_threshold", Value: "10", Category: "catalog"},
	} {
		if _, err := s.CreateSiteSetting(setting); err != nil {
			logger.Warn("seed: setting skipped", "key", setting.Key, "error", err)
		}
	}

	s.CreatePageContent(CreatePageContentParams{
		PageName: "home", Section: "hero", ElementID: "headline",
		Title:   "Enterprise hardware without enterprise prices",
		Content: "Certified refurbished servers, storage and networking with next-day delivery.",
		IsActive: true, Order: 1,
	})

	logger.Info("seed: demo data loaded",
		"equipment", s.equipment.count(),
		"categories", s.categories.count(),
		"settings", s.settings.count(),
	)
}
