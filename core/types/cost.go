// Package types - Cost report types
package types

import "github.com/shopspring/decimal"

// HoursPerMonth is the fixed average-hours-per-month constant used for all
// hourly/monthly conversions. Not calendar-accurate; must match everywhere
// so reports are reproducible.
var HoursPerMonth = decimal.NewFromInt(730)

// MonthsPerYear converts monthly totals to yearly
var MonthsPerYear = decimal.NewFromInt(12)

// HourlyPrecision is the decimal precision for per-node hourly costs
const HourlyPrecision = 6

// Breakdown is one resolver's output for one node
type Breakdown struct {
	// NodeID links back to the source node
	NodeID string `json:"node_id"`

	// ServiceType is the node's service type tag
	ServiceType string `json:"service_type"`

	// Label is the node's display label
	Label string `json:"label"`

	// HourlyCost is the resolved hourly cost in USD, always >= 0
	HourlyCost decimal.Decimal `json:"hourly_cost_usd"`

	// Details records the attributes and rates that produced the cost,
	// for audit and display
	Details map[string]string `json:"details,omitempty"`

	// Notes carries missing-price markers; the engine surfaces them as
	// warnings so a zero cost is distinguishable from "legitimately free"
	Notes []string `json:"-"`
}

// AddNote appends a missing-data marker
func (b *Breakdown) AddNote(reason string) {
	b.Notes = append(b.Notes, reason)
}

// Detail records an audit field
func (b *Breakdown) Detail(key, value string) {
	if b.Details == nil {
		b.Details = make(map[string]string)
	}
	b.Details[key] = value
}

// Warning flags a node that was skipped or degraded during estimation
type Warning struct {
	NodeID string `json:"node_id"`
	Reason string `json:"reason"`
}

// Report is the aggregation output for one architecture
type Report struct {
	// TotalHourly is the exact sum of breakdown entry hourly costs
	TotalHourly decimal.Decimal `json:"total_hourly_cost_usd"`

	// TotalMonthly is TotalHourly x 730
	TotalMonthly decimal.Decimal `json:"estimated_monthly_cost_usd"`

	// TotalYearly is TotalMonthly x 12
	TotalYearly decimal.Decimal `json:"estimated_yearly_cost_usd"`

	// Breakdown holds one entry per priced node, preserving input order.
	// Nodes of unrecognized type are omitted, not zero-filled.
	Breakdown []Breakdown `json:"service_breakdown"`

	// Warnings enumerates every degraded node with a readable reason
	Warnings []Warning `json:"warnings"`
}

// Summarize recomputes the totals from the breakdown entries
func (r *Report) Summarize() {
	total := decimal.Zero
	for _, b := range r.Breakdown {
		total = total.Add(b.HourlyCost)
	}
	r.TotalHourly = total
	r.TotalMonthly = total.Mul(HoursPerMonth)
	r.TotalYearly = r.TotalMonthly.Mul(MonthsPerYear)
}

// Warn records a warning for a node
func (r *Report) Warn(nodeID, reason string) {
	r.Warnings = append(r.Warnings, Warning{NodeID: nodeID, Reason: reason})
}
