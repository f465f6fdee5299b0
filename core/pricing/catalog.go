// Package pricing - Catalog query boundary and price dimension selection
package pricing

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Filter is one exact-match constraint on a catalog query
type Filter struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// PriceRecord is one on-demand price dimension returned by the catalog
type PriceRecord struct {
	// Unit is the billing unit as the catalog reports it
	// ("Hrs", "GB-Mo", "Requests", ...)
	Unit string `json:"unit"`

	// USD is the price per unit
	USD decimal.Decimal `json:"usd"`

	// Description is the catalog's free-text label for the dimension.
	// Responses routinely bundle several dimensions (storage and IOPS,
	// requests and duration) distinguishable only by this text.
	Description string `json:"description"`
}

// Catalog answers filtered pricing queries for a service code.
//
// Implementations absorb transport, auth and rate-limit failures and
// return an empty slice; resolvers must treat emptiness identically
// regardless of cause. For a fixed catalog snapshot, identical filters
// always yield the same records.
type Catalog interface {
	Query(ctx context.Context, serviceCode string, filters []Filter) []PriceRecord
}

// CacheKey builds the canonical memo key for a query: service code plus
// the filter list sorted by field then value
func CacheKey(serviceCode string, filters []Filter) string {
	parts := make([]string, len(filters))
	for i, f := range filters {
		parts[i] = f.Field + "=" + f.Value
	}
	sort.Strings(parts)
	return serviceCode + "|" + strings.Join(parts, ",")
}

// PickDimension returns the first record whose description contains all
// of the given substrings (case-insensitive). This heuristic matching is
// inherent to the catalog's shape: multiple dimensions per response are
// distinguished only by description text. Returns ok=false when nothing
// matches; the caller flags missing data rather than erroring.
func PickDimension(records []PriceRecord, substrings ...string) (PriceRecord, bool) {
	for _, r := range records {
		desc := strings.ToLower(r.Description)
		matched := true
		for _, s := range substrings {
			if !strings.Contains(desc, strings.ToLower(s)) {
				matched = false
				break
			}
		}
		if matched {
			return r, true
		}
	}
	return PriceRecord{}, false
}

// HourlyRate returns the first nonzero record billed per hour
func HourlyRate(records []PriceRecord) (decimal.Decimal, bool) {
	for _, r := range records {
		unit := strings.ToLower(r.Unit)
		if strings.Contains(unit, "hr") || strings.Contains(unit, "hour") {
			if r.USD.IsPositive() {
				return r.USD, true
			}
		}
	}
	return decimal.Zero, false
}

// GBMonthRate returns the first nonzero record billed per GB-month
func GBMonthRate(records []PriceRecord) (decimal.Decimal, bool) {
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Unit), "gb") && r.USD.IsPositive() {
			return r.USD, true
		}
	}
	return decimal.Zero, false
}

// FirstRate returns the first nonzero price in the response, used when a
// query is narrow enough that any dimension is acceptable
func FirstRate(records []PriceRecord) (decimal.Decimal, bool) {
	for _, r := range records {
		if r.USD.IsPositive() {
			return r.USD, true
		}
	}
	return decimal.Zero, false
}
