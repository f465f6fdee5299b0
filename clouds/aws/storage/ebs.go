package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// gp3BaselineThroughputMBs is included free with every gp3 volume
const gp3BaselineThroughputMBs = 125

// gp3BaselineIOPS is included free with every gp3 volume
const gp3BaselineIOPS = 3000

// EBSResolver resolves standalone EBS volume nodes: capacity, and
// provisioned IOPS/throughput beyond the bundled baseline.
type EBSResolver struct{}

// NewEBSResolver creates an EBS resolver
func NewEBSResolver() *EBSResolver {
	return &EBSResolver{}
}

// ServiceType returns the canonical service name
func (r *EBSResolver) ServiceType() string {
	return "EBS"
}

// Aliases returns the node type strings this resolver handles
func (r *EBSResolver) Aliases() []string {
	return []string{"ebs", "amazonebs", "ebs volume", "block storage"}
}

// Resolve prices one EBS node
func (r *EBSResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	volumeType := strings.ToLower(node.AttrString("volume_type", "gp3"))
	sizeGB := normalize.ParseSizeGB(node.AttrRaw("storage"), 20)
	count := normalize.ToInt(node.AttrRaw("count"), 1)
	if count < 1 {
		count = 1
	}
	iops := normalize.ToFloat(node.AttrRaw("iops"), 0)
	throughputMBs := normalize.ToFloat(node.AttrRaw("throughput"), 0)

	b.Detail("volume_type", volumeType)
	b.Detail("size_gb", fmt.Sprintf("%.0f", sizeGB))
	b.Detail("count", fmt.Sprintf("%d", count))

	records := catalog.Query(ctx, "AmazonEC2", []pricing.Filter{
		{Field: "volumeApiName", Value: volumeType},
		{Field: "location", Value: req.Location},
		{Field: "termType", Value: "OnDemand"},
	})
	if len(records) == 0 {
		b.AddNote("no EBS pricing data for volume type " + volumeType)
		b.HourlyCost = decimal.Zero
		return b
	}

	monthly := decimal.Zero

	if rate, ok := pricing.GBMonthRate(records); ok {
		monthly = monthly.Add(rate.Mul(decimal.NewFromFloat(sizeGB)))
		b.Detail("gb_month_rate", rate.String())
	} else {
		b.AddNote("no capacity price dimension found for " + volumeType)
	}

	// io1/io2 bill every provisioned IOPS; gp3 bills only above baseline
	billableIOPS := iops
	if volumeType == "gp3" {
		billableIOPS = iops - gp3BaselineIOPS
	}
	if billableIOPS > 0 {
		if rec, ok := pricing.PickDimension(records, "iops"); ok {
			monthly = monthly.Add(rec.USD.Mul(decimal.NewFromFloat(billableIOPS)))
			b.Detail("provisioned_iops", fmt.Sprintf("%.0f", billableIOPS))
		} else {
			b.AddNote("no IOPS price dimension found for " + volumeType)
		}
	}

	if volumeType == "gp3" && throughputMBs > gp3BaselineThroughputMBs {
		if rec, ok := pricing.PickDimension(records, "throughput"); ok {
			extra := decimal.NewFromFloat(throughputMBs - gp3BaselineThroughputMBs)
			monthly = monthly.Add(rec.USD.Mul(extra))
			b.Detail("provisioned_throughput_mbps", fmt.Sprintf("%.0f", throughputMBs))
		} else {
			b.AddNote("no throughput price dimension found for gp3")
		}
	}

	monthly = monthly.Mul(decimal.NewFromInt(int64(count)))
	b.HourlyCost = monthly.Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	return b
}
