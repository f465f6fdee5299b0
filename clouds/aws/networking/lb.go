// Package networking - AWS load balancer resolver
package networking

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// productFamilyForLB maps a declared balancer kind to the catalog's
// product family names
func productFamilyForLB(kind string) string {
	switch strings.ToLower(kind) {
	case "network", "nlb":
		return "Load Balancer-Network"
	case "gateway", "gwlb":
		return "Load Balancer-Gateway"
	case "classic":
		return "Load Balancer"
	default:
		return "Load Balancer-Application"
	}
}

// ELBResolver resolves load balancer nodes: the flat hourly charge plus
// consumed capacity units when the node declares them.
type ELBResolver struct{}

// NewELBResolver creates a load balancer resolver
func NewELBResolver() *ELBResolver {
	return &ELBResolver{}
}

// ServiceType returns the canonical service name
func (r *ELBResolver) ServiceType() string {
	return "ELB"
}

// Aliases returns the node type strings this resolver handles
func (r *ELBResolver) Aliases() []string {
	return []string{"elb", "awselb", "load balancer", "alb", "nlb"}
}

// Resolve prices one load balancer node
func (r *ELBResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	kind := node.AttrString("lb_type", "application")
	lcus := normalize.ToFloat(node.AttrRaw("capacity_units"), 0)

	b.Detail("lb_type", kind)

	records := catalog.Query(ctx, "AWSELB", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "productFamily", Value: productFamilyForLB(kind)},
		{Field: "termType", Value: "OnDemand"},
	})
	if len(records) == 0 {
		b.AddNote("no load balancer pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	hourly := decimal.Zero

	if rec, ok := pricing.PickDimension(records, "per hour", "load balancer"); ok {
		hourly = hourly.Add(rec.USD)
		b.Detail("lb_hourly_rate", rec.USD.String())
	} else if rate, ok := pricing.HourlyRate(records); ok {
		hourly = hourly.Add(rate)
		b.Detail("lb_hourly_rate", rate.String())
	} else {
		b.AddNote("no hourly price dimension found for load balancer")
	}

	if lcus > 0 {
		if rec, ok := pricing.PickDimension(records, "lcu"); ok {
			hourly = hourly.Add(rec.USD.Mul(decimal.NewFromFloat(lcus)))
			b.Detail("lcu_rate", rec.USD.String())
		} else {
			b.AddNote("no capacity unit price dimension found")
		}
	}

	b.HourlyCost = hourly.Round(types.HourlyPrecision)
	return b
}
