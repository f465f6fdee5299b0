package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"archcost/clouds/aws"
	"archcost/core/pricing"
	"archcost/core/types"
)

// fakeCatalog answers queries from canned per-service responses
type fakeCatalog struct {
	responses map[string][]pricing.PriceRecord
}

func (f *fakeCatalog) Query(ctx context.Context, serviceCode string, filters []pricing.Filter) []pricing.PriceRecord {
	return f.responses[serviceCode]
}

func usd(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newTestEngine(responses map[string][]pricing.PriceRecord) *Engine {
	return New(aws.NewRegistry(), &fakeCatalog{responses: responses}, "ap-south-1")
}

func TestEstimateEC2(t *testing.T) {
	eng := newTestEngine(map[string][]pricing.PriceRecord{
		"AmazonEC2": {
			{Unit: "Hrs", USD: usd("0.0116"), Description: "$0.0116 per On Demand Linux t3.micro Instance Hour"},
		},
	})

	arch := &types.Architecture{Nodes: []types.Node{
		{ID: "web-1", Type: "EC2", Attributes: map[string]interface{}{
			"instance_type": "t3.micro",
		}},
	}}

	report, err := eng.Estimate(context.Background(), arch)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if len(report.Breakdown) != 1 {
		t.Fatalf("expected 1 breakdown entry, got %d", len(report.Breakdown))
	}
	if len(report.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", report.Warnings)
	}

	entry := report.Breakdown[0]
	if !entry.HourlyCost.Equal(usd("0.0116")) {
		t.Errorf("hourly = %s, want 0.0116", entry.HourlyCost)
	}
	if !report.TotalMonthly.Equal(report.TotalHourly.Mul(types.HoursPerMonth)) {
		t.Errorf("monthly %s is not hourly x 730", report.TotalMonthly)
	}
	if !report.TotalYearly.Equal(report.TotalMonthly.Mul(types.MonthsPerYear)) {
		t.Errorf("yearly %s is not monthly x 12", report.TotalYearly)
	}
}

func TestEstimateRDSMultiAZ(t *testing.T) {
	eng := newTestEngine(map[string][]pricing.PriceRecord{
		"AmazonRDS": {
			{Unit: "Hrs", USD: usd("0.049"), Description: "USD 0.049 per db.t3.medium Single-AZ instance hour"},
			{Unit: "GB-Mo", USD: usd("0.115"), Description: "$0.115 per GB-month of provisioned gp2 storage"},
		},
	})

	arch := &types.Architecture{Nodes: []types.Node{
		{ID: "db-1", Type: "RDS", Attributes: map[string]interface{}{
			"instance_class":   "db.t3.medium",
			"multi_az":         true,
			"storage":          "20GB",
			"backup_retention": 7,
		}},
	}}

	report, err := eng.Estimate(context.Background(), arch)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if len(report.Breakdown) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(report.Breakdown))
	}

	// instance: 0.049 x 2 (Multi-AZ)
	// storage: 20 x 0.115 = 2.30 monthly, + 10% backup at 7-day retention
	//          = 2.53 monthly = 0.003466/hr
	want := usd("0.101466")
	if !report.Breakdown[0].HourlyCost.Equal(want) {
		t.Errorf("hourly = %s, want %s", report.Breakdown[0].HourlyCost, want)
	}
}

func TestEstimateUnknownRegion(t *testing.T) {
	eng := newTestEngine(nil)

	arch := &types.Architecture{Nodes: []types.Node{
		{ID: "web-1", Type: "EC2", Region: "mars-west-1"},
	}}

	report, err := eng.Estimate(context.Background(), arch)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if len(report.Breakdown) != 0 {
		t.Errorf("expected no entries, got %d", len(report.Breakdown))
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", report.Warnings)
	}
	if report.Warnings[0].NodeID != "web-1" {
		t.Errorf("warning node = %s", report.Warnings[0].NodeID)
	}
	if !report.TotalHourly.IsZero() {
		t.Errorf("total should be zero, got %s", report.TotalHourly)
	}
}

func TestEstimateMixedArchitecture(t *testing.T) {
	eng := newTestEngine(map[string][]pricing.PriceRecord{
		"AmazonEC2": {
			{Unit: "Hrs", USD: usd("0.0416"), Description: "On Demand Linux t3.medium Instance Hour"},
		},
		"AmazonS3": {
			{Unit: "GB-Mo", USD: usd("0.025"), Description: "$0.025 per GB - first 50 TB / month of storage used"},
		},
	})

	arch := &types.Architecture{Nodes: []types.Node{
		{ID: "web-1", Type: "EC2"},
		{ID: "exotic-1", Type: "QuantumCompute"},
		{ID: "assets", Type: "S3", Attributes: map[string]interface{}{"storage": "100"}},
	}}

	report, err := eng.Estimate(context.Background(), arch)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}

	// Priced nodes keep input order; the unrecognized one becomes a warning
	if len(report.Breakdown) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(report.Breakdown))
	}
	if report.Breakdown[0].NodeID != "web-1" || report.Breakdown[1].NodeID != "assets" {
		t.Errorf("order = %s, %s", report.Breakdown[0].NodeID, report.Breakdown[1].NodeID)
	}
	if len(report.Warnings) != 1 || report.Warnings[0].NodeID != "exotic-1" {
		t.Errorf("warnings = %v", report.Warnings)
	}

	sum := report.Breakdown[0].HourlyCost.Add(report.Breakdown[1].HourlyCost)
	if !report.TotalHourly.Equal(sum) {
		t.Errorf("total %s != sum of entries %s", report.TotalHourly, sum)
	}
}

func TestEstimateIdempotent(t *testing.T) {
	responses := map[string][]pricing.PriceRecord{
		"AmazonEC2": {
			{Unit: "Hrs", USD: usd("0.0416"), Description: "On Demand Linux t3.medium Instance Hour"},
		},
	}

	doc := []byte(`{"nodes": [{"id": "web-1", "type": "EC2", "storage": "30GB"}]}`)

	render := func() []byte {
		eng := newTestEngine(responses)
		report, err := eng.EstimateJSON(context.Background(), doc)
		if err != nil {
			t.Fatalf("EstimateJSON: %v", err)
		}
		out, err := json.Marshal(report)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return out
	}

	first := render()
	second := render()
	if string(first) != string(second) {
		t.Errorf("reports differ between runs:\n%s\n%s", first, second)
	}
}

func TestEstimateNodeWithoutType(t *testing.T) {
	eng := newTestEngine(nil)

	arch := &types.Architecture{Nodes: []types.Node{{ID: "mystery"}}}
	report, err := eng.Estimate(context.Background(), arch)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if len(report.Warnings) != 1 {
		t.Errorf("expected warning for untyped node, got %v", report.Warnings)
	}
}
