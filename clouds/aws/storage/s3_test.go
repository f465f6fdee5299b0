package storage

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

func s3Request(attrs map[string]interface{}) resolver.Request {
	return resolver.Request{
		Node:     types.Node{ID: "bucket-1", Type: "S3", Attributes: attrs},
		Region:   "ap-south-1",
		Location: "Asia Pacific (Mumbai)",
	}
}

var s3TierRecords = []pricing.PriceRecord{
	{Unit: "GB-Mo", USD: usd("0.023"), Description: "$0.023 per GB - first 50 TB / month of storage used"},
	{Unit: "GB-Mo", USD: usd("0.022"), Description: "$0.022 per GB - next 450 TB / month of storage used"},
	{Unit: "GB-Mo", USD: usd("0.021"), Description: "$0.021 per GB - storage used over 500 TB / month"},
}

func TestS3WithinFirstTier(t *testing.T) {
	res := NewS3Resolver()
	b := res.Resolve(context.Background(), s3Request(map[string]interface{}{
		"storage": "100GB",
	}), &fakeCatalog{records: s3TierRecords})

	// 100 GB x 0.023 = 2.30 monthly
	want := usd("2.3").Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	if !b.HourlyCost.Equal(want) {
		t.Errorf("hourly = %s, want %s", b.HourlyCost, want)
	}
	if len(b.Notes) != 0 {
		t.Errorf("unexpected notes: %v", b.Notes)
	}
}

func TestS3TierWalk(t *testing.T) {
	res := NewS3Resolver()
	b := res.Resolve(context.Background(), s3Request(map[string]interface{}{
		"storage": "600TB",
	}), &fakeCatalog{records: s3TierRecords})

	// 51200 GB @ 0.023 + 460800 GB @ 0.022 + 102400 GB @ 0.021 = 13465.60
	want := usd("13465.6").Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	if !b.HourlyCost.Equal(want) {
		t.Errorf("hourly = %s, want %s", b.HourlyCost, want)
	}
}

func TestS3FlatFallback(t *testing.T) {
	res := NewS3Resolver()
	records := []pricing.PriceRecord{
		{Unit: "GB-Mo", USD: usd("0.0125"), Description: "$0.0125 per GB-Month of storage used in Standard-Infrequent Access"},
	}
	b := res.Resolve(context.Background(), s3Request(map[string]interface{}{
		"storage":       "200GB",
		"storage_class": "Infrequent Access",
	}), &fakeCatalog{records: records})

	want := usd("2.5").Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	if !b.HourlyCost.Equal(want) {
		t.Errorf("hourly = %s, want %s", b.HourlyCost, want)
	}
}

func TestS3NoPricingData(t *testing.T) {
	res := NewS3Resolver()
	b := res.Resolve(context.Background(), s3Request(nil), &fakeCatalog{})

	if !b.HourlyCost.IsZero() {
		t.Errorf("hourly = %s, want zero", b.HourlyCost)
	}
	if len(b.Notes) == 0 {
		t.Error("expected a missing-data note")
	}
}
