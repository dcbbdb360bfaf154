// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"fmt"
	"strconv"

	"github.com/rackline/rackline-go/internal/store"
	"github.com/rackline/rackline-go/internal/util"
)

// Support plan identifiers accepted by the quote calculator.
const (
	SupportPlanNone     = "none"
	SupportPlanStandard = "standard"
	SupportPlanPremium  = "premium"
)

// Uplift in percent of the hardware subtotal per support plan.
var supportUplift = map[string]int64{
	SupportPlanNone:     0,
	SupportPlanStandard: 10,
	SupportPlanPremium:  18,
}

// DefaultBulkThreshold is the quantity at which bulk pricing kicks in when
// the quote_bulk_threshold site setting is absent.
const DefaultBulkThreshold = 10

// QuoteService prices multi-line hardware quotes against the catalog.
type QuoteService struct {
	store *store.Store
}

// NewQuoteService creates a quote service over the given store.
func NewQuoteService(st *store.Store) *QuoteService {
	return &QuoteService{store: st}
}

// QuoteLineInput is one requested catalog item.
type QuoteLineInput struct {
	EquipmentID int64 `json:"equipmentId"`
	Quantity    int   `json:"quantity"`
}

// QuoteParams holds the input for a quote calculation.
type QuoteParams struct {
	Lines       []QuoteLineInput `json:"lines"`
	SupportPlan string           `json:"supportPlan"`
}

// QuoteLine is one priced line of a quote.
type QuoteLine struct {
	EquipmentID    int64  `json:"equipmentId"`
	Name           string `json:"name"`
	PartNumber     string `json:"partNumber"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	LineTotalCents int64  `json:"lineTotalCents"`
	BulkApplied    bool   `json:"bulkApplied"`
}

// Quote is a fully priced quote.
type Quote struct {
	Lines          []QuoteLine `json:"lines"`
	SubtotalCents  int64       `json:"subtotalCents"`
	SupportPlan    string      `json:"supportPlan"`
	SupportCents   int64       `json:"supportCents"`
	TotalCents     int64       `json:"totalCents"`
	FormattedTotal string      `json:"formattedTotal"`
}

// Calculate prices a quote. Lines referencing unknown or inactive equipment
// fail the whole quote; a partial quote would understate the customer's cost.
func (q *QuoteService) Calculate(params QuoteParams) (Quote, error) {
	if len(params.Lines) == 0 {
		return Quote{}, fmt.Errorf("quote needs at least one line")
	}

	plan := params.SupportPlan
	if plan == "" {
		plan = SupportPlanNone
	}
	uplift, ok := supportUplift[plan]
	if !ok {
		return Quote{}, fmt.Errorf("unknown support plan %q", plan)
	}

	threshold := q.bulkThreshold()

	quote := Quote{SupportPlan: plan}
	for _, in := range params.Lines {
		if in.Quantity <= 0 {
			return Quote{}, fmt.Errorf("equipment %d: quantity must be positive", in.EquipmentID)
		}

		item, err := q.store.GetServerEquipment(in.EquipmentID)
		if err != nil {
			return Quote{}, fmt.Errorf("equipment %d: %w", in.EquipmentID, err)
		}
		if !item.IsActive {
			return Quote{}, fmt.Errorf("equipment %d is no longer available", in.EquipmentID)
		}

		unit := item.PriceCents
		bulk := false
		if in.Quantity >= threshold && item.BulkPriceCents > 0 && item.BulkPriceCents < unit {
			unit = item.BulkPriceCents
			bulk = true
		}

		line := QuoteLine{
			EquipmentID:    item.ID,
			Name:           item.Name,
			PartNumber:     item.PartNumber,
			Quantity:       in.Quantity,
			UnitPriceCents: unit,
			LineTotalCents: unit * int64(in.Quantity),
			BulkApplied:    bulk,
		}
		quote.Lines = append(quote.Lines, line)
		quote.SubtotalCents += line.LineTotalCents
	}

	quote.SupportCents = quote.SubtotalCents * uplift / 100
	quote.TotalCents = quote.SubtotalCents + quote.SupportCents
	quote.FormattedTotal = util.FormatCents(quote.TotalCents)

	return quote, nil
}

// bulkThreshold reads the configurable threshold from site settings, falling
// back to the default on a missing or unparsable value.
func (q *QuoteService) bulkThreshold() int {
	setting, err := q.store.GetSiteSettingByKey("quote_bulk_threshold")
	if err != nil {
		return DefaultBulkThreshold
	}
	n, err := strconv.Atoi(setting.Value)
	if err != nil || n <= 0 {
		return DefaultBulkThreshold
	}
	return n
}
