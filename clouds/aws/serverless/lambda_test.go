package serverless

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

type fakeCatalog struct {
	records []pricing.PriceRecord
}

func (f *fakeCatalog) Query(ctx context.Context, serviceCode string, filters []pricing.Filter) []pricing.PriceRecord {
	return f.records
}

func usd(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var lambdaRecords = []pricing.PriceRecord{
	{Unit: "Requests", USD: usd("0.0000002"), Description: "AWS Lambda - Total Requests"},
	{Unit: "Lambda-GB-Second", USD: usd("0.0000166667"), Description: "AWS Lambda - Total Compute Duration"},
}

func TestLambdaDefaults(t *testing.T) {
	res := NewLambdaResolver()
	b := res.Resolve(context.Background(), resolver.Request{
		Node:     types.Node{ID: "fn-1", Type: "Lambda"},
		Region:   "ap-south-1",
		Location: "Asia Pacific (Mumbai)",
	}, &fakeCatalog{records: lambdaRecords})

	// Defaults: 128 MB, 1M invocations, 500 ms
	// requests: 1e6 x 0.0000002 = 0.20
	// compute: 1e6 x 0.5s x 0.125 GB = 62500 GB-s x 0.0000166667 = 1.04166875
	want := usd("0.2").
		Add(usd("1.04166875")).
		Div(types.HoursPerMonth).
		Round(types.HourlyPrecision)
	if !b.HourlyCost.Equal(want) {
		t.Errorf("hourly = %s, want %s", b.HourlyCost, want)
	}
}

func TestLambdaCustomShape(t *testing.T) {
	res := NewLambdaResolver()
	b := res.Resolve(context.Background(), resolver.Request{
		Node: types.Node{ID: "fn-2", Type: "Lambda", Attributes: map[string]interface{}{
			"memory":              "1GB",
			"monthly_invocations": "5 million",
			"avg_duration_ms":     200,
		}},
		Region:   "ap-south-1",
		Location: "Asia Pacific (Mumbai)",
	}, &fakeCatalog{records: lambdaRecords})

	// requests: 5e6 x 0.0000002 = 1.00
	// compute: 5e6 x 0.2s x 1 GB = 1e6 GB-s x 0.0000166667 = 16.6667
	want := usd("1").
		Add(usd("16.6667")).
		Div(types.HoursPerMonth).
		Round(types.HourlyPrecision)
	if !b.HourlyCost.Equal(want) {
		t.Errorf("hourly = %s, want %s", b.HourlyCost, want)
	}
	if b.Details["memory_mb"] != "1024" {
		t.Errorf("memory_mb = %q", b.Details["memory_mb"])
	}
}
