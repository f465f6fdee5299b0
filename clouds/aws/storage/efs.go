package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// EFSResolver resolves EFS file system nodes on Standard storage
type EFSResolver struct{}

// NewEFSResolver creates an EFS resolver
func NewEFSResolver() *EFSResolver {
	return &EFSResolver{}
}

// ServiceType returns the canonical service name
func (r *EFSResolver) ServiceType() string {
	return "EFS"
}

// Aliases returns the node type strings this resolver handles
func (r *EFSResolver) Aliases() []string {
	return []string{"efs", "awsefs", "elastic file system", "file system"}
}

// Resolve prices one EFS node
func (r *EFSResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	sizeGB := decimal.NewFromFloat(normalize.ParseSizeGB(node.AttrRaw("storage"), 20))
	storageClass := node.AttrString("storage_class", "General Purpose")

	b.Detail("storage_gb", sizeGB.String())
	b.Detail("storage_class", storageClass)

	records := catalog.Query(ctx, "AmazonEFS", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "storageClass", Value: storageClass},
		{Field: "termType", Value: "OnDemand"},
	})

	rate, ok := pricing.GBMonthRate(records)
	if !ok {
		b.AddNote("no EFS storage pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	b.Detail("gb_month_rate", rate.String())
	b.HourlyCost = rate.Mul(sizeGB).Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	return b
}
