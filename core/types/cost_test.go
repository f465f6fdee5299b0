package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSummarize(t *testing.T) {
	r := &Report{
		Breakdown: []Breakdown{
			{NodeID: "a", HourlyCost: decimal.RequireFromString("0.0116")},
			{NodeID: "b", HourlyCost: decimal.RequireFromString("0.115342")},
		},
	}
	r.Summarize()

	wantHourly := decimal.RequireFromString("0.126942")
	if !r.TotalHourly.Equal(wantHourly) {
		t.Errorf("TotalHourly = %s, want %s", r.TotalHourly, wantHourly)
	}
	// Conversions are exact decimal multiplications
	if !r.TotalMonthly.Equal(wantHourly.Mul(HoursPerMonth)) {
		t.Errorf("TotalMonthly = %s", r.TotalMonthly)
	}
	if !r.TotalYearly.Equal(r.TotalMonthly.Mul(MonthsPerYear)) {
		t.Errorf("TotalYearly = %s", r.TotalYearly)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	r := &Report{}
	r.Summarize()
	if !r.TotalHourly.IsZero() || !r.TotalMonthly.IsZero() || !r.TotalYearly.IsZero() {
		t.Errorf("empty report totals should be zero: %s %s %s",
			r.TotalHourly, r.TotalMonthly, r.TotalYearly)
	}
}

func TestBreakdownNotes(t *testing.T) {
	b := Breakdown{NodeID: "n1"}
	b.AddNote("no price found")
	b.Detail("instance_type", "t3.medium")

	if len(b.Notes) != 1 || b.Notes[0] != "no price found" {
		t.Errorf("notes = %v", b.Notes)
	}
	if b.Details["instance_type"] != "t3.medium" {
		t.Errorf("details = %v", b.Details)
	}
}
