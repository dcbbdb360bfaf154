// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCents renders an integer amount of US cents as a display price,
// e.g. 249900 becomes "$2,499.00". Prices are stored as cents throughout
// to avoid float arithmetic on money.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return usdPrinter.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// CentsFromDollars converts a whole-dollar amount to cents.
func CentsFromDollars(dollars int64) int64 {
	return dollars * 100
}
