package storage

import (
	"context"
	"testing"

	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

var gp3Records = []pricing.PriceRecord{
	{Unit: "GB-Mo", USD: usd("0.08"), Description: "$0.08 per GB-month of General Purpose (gp3) provisioned storage"},
	{Unit: "IOPS-Mo", USD: usd("0.005"), Description: "$0.005 per provisioned IOPS-month of gp3"},
	{Unit: "GiBps-mo", USD: usd("0.04"), Description: "$0.04 per provisioned MB/s-month of gp3 throughput"},
}

func ebsRequest(attrs map[string]interface{}) resolver.Request {
	return resolver.Request{
		Node:     types.Node{ID: "vol-1", Type: "EBS", Attributes: attrs},
		Region:   "ap-south-1",
		Location: "Asia Pacific (Mumbai)",
	}
}

func TestEBSBaseline(t *testing.T) {
	res := NewEBSResolver()
	b := res.Resolve(context.Background(), ebsRequest(map[string]interface{}{
		"volume_type": "gp3",
		"storage":     "100GB",
	}), &fakeCatalog{records: gp3Records})

	// 100 GB x 0.08, no IOPS or throughput above baseline
	want := usd("8").Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	if !b.HourlyCost.Equal(want) {
		t.Errorf("hourly = %s, want %s", b.HourlyCost, want)
	}
}

func TestEBSProvisionedIOPSAboveBaseline(t *testing.T) {
	res := NewEBSResolver()
	b := res.Resolve(context.Background(), ebsRequest(map[string]interface{}{
		"volume_type": "gp3",
		"storage":     "100GB",
		"iops":        4000,
		"count":       2,
	}), &fakeCatalog{records: gp3Records})

	// (100 x 0.08 + 1000 billable IOPS x 0.005) x 2 volumes = 26.00 monthly
	want := usd("26").Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	if !b.HourlyCost.Equal(want) {
		t.Errorf("hourly = %s, want %s", b.HourlyCost, want)
	}
}

func TestEBSIO2BillsAllIOPS(t *testing.T) {
	records := []pricing.PriceRecord{
		{Unit: "GB-Mo", USD: usd("0.125"), Description: "$0.125 per GB-month of io2 provisioned storage"},
		{Unit: "IOPS-Mo", USD: usd("0.065"), Description: "$0.065 per provisioned IOPS-month of io2"},
	}
	res := NewEBSResolver()
	b := res.Resolve(context.Background(), ebsRequest(map[string]interface{}{
		"volume_type": "io2",
		"storage":     "100GB",
		"iops":        1000,
	}), &fakeCatalog{records: records})

	// io2 has no free baseline: 100 x 0.125 + 1000 x 0.065 = 77.50 monthly
	want := usd("77.5").Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	if !b.HourlyCost.Equal(want) {
		t.Errorf("hourly = %s, want %s", b.HourlyCost, want)
	}
}
