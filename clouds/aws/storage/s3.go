package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// S3 Standard tier boundaries in GB
var (
	s3FirstTierGB  = decimal.NewFromInt(50 * 1024)
	s3SecondTierGB = decimal.NewFromInt(450 * 1024)
)

// S3Resolver resolves S3 bucket nodes across the tiered Standard
// storage rates.
type S3Resolver struct{}

// NewS3Resolver creates an S3 resolver
func NewS3Resolver() *S3Resolver {
	return &S3Resolver{}
}

// ServiceType returns the canonical service name
func (r *S3Resolver) ServiceType() string {
	return "S3"
}

// Aliases returns the node type strings this resolver handles
func (r *S3Resolver) Aliases() []string {
	return []string{"s3", "amazons3", "s3 bucket", "object storage"}
}

// Resolve prices one S3 node
func (r *S3Resolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	sizeGB := decimal.NewFromFloat(normalize.ParseSizeGB(node.AttrRaw("storage"), 100))
	storageClass := node.AttrString("storage_class", "General Purpose")

	b.Detail("storage_gb", sizeGB.String())
	b.Detail("storage_class", storageClass)

	records := catalog.Query(ctx, "AmazonS3", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "storageClass", Value: storageClass},
		{Field: "productFamily", Value: "Storage"},
		{Field: "termType", Value: "OnDemand"},
	})
	if len(records) == 0 {
		b.AddNote("no S3 storage pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	monthly, tiered := tieredStorageCost(records, sizeGB)
	if !tiered {
		// Single-rate storage classes have no tier dimensions
		if rate, ok := pricing.GBMonthRate(records); ok {
			monthly = rate.Mul(sizeGB)
		} else {
			b.AddNote("no usable S3 storage price dimension found")
		}
	} else {
		b.Detail("tiered", "true")
	}

	b.HourlyCost = monthly.Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	return b
}

// tieredStorageCost walks the Standard tiers: first 50TB, next 450TB,
// everything over 500TB. The tiers are identified by description text
// since the catalog exposes them as sibling dimensions.
func tieredStorageCost(records []pricing.PriceRecord, sizeGB decimal.Decimal) (decimal.Decimal, bool) {
	first, ok1 := pricing.PickDimension(records, "first 50")
	next, ok2 := pricing.PickDimension(records, "next 450")
	over, ok3 := pricing.PickDimension(records, "over 500")
	if !ok1 {
		return decimal.Zero, false
	}

	remaining := sizeGB
	monthly := decimal.Zero

	tier1 := decimal.Min(remaining, s3FirstTierGB)
	monthly = monthly.Add(first.USD.Mul(tier1))
	remaining = remaining.Sub(tier1)

	if remaining.IsPositive() && ok2 {
		tier2 := decimal.Min(remaining, s3SecondTierGB)
		monthly = monthly.Add(next.USD.Mul(tier2))
		remaining = remaining.Sub(tier2)
	}
	if remaining.IsPositive() && ok3 {
		monthly = monthly.Add(over.USD.Mul(remaining))
	} else if remaining.IsPositive() && ok2 {
		// No "over 500TB" dimension in the response; bill the remainder
		// at the second tier rate rather than dropping it
		monthly = monthly.Add(next.USD.Mul(remaining))
	} else if remaining.IsPositive() {
		monthly = monthly.Add(first.USD.Mul(remaining))
	}

	return monthly, true
}
