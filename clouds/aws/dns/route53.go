// Package dns - Amazon Route 53 resolver
// Route 53 is a global service; its price dimensions carry no regional
// location, so queries filter on term type only.
package dns

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

// Route53Resolver resolves Route 53 nodes: hosted zones plus DNS queries
type Route53Resolver struct{}

// NewRoute53Resolver creates a Route 53 resolver
func NewRoute53Resolver() *Route53Resolver {
	return &Route53Resolver{}
}

// ServiceType returns the canonical service name
func (r *Route53Resolver) ServiceType() string {
	return "Route53"
}

// Aliases returns the node type strings this resolver handles
func (r *Route53Resolver) Aliases() []string {
	return []string{"route53", "route 53", "amazonroute53", "dns", "hosted zone"}
}

// Resolve prices one Route 53 node
func (r *Route53Resolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	zones := normalize.ToInt(node.AttrRaw("hosted_zones"), 1)
	if zones < 1 {
		zones = 1
	}
	queries := normalize.ToFloat(node.AttrRaw("monthly_queries"), 1_000_000)

	b.Detail("hosted_zones", fmt.Sprintf("%d", zones))
	b.Detail("monthly_queries", fmt.Sprintf("%.0f", queries))

	records := catalog.Query(ctx, "AmazonRoute53", []pricing.Filter{
		{Field: "termType", Value: "OnDemand"},
	})
	if len(records) == 0 {
		b.AddNote("no Route 53 pricing data available")
		b.HourlyCost = decimal.Zero
		return b
	}

	monthly := decimal.Zero

	if rec, ok := pricing.PickDimension(records, "hosted zone"); ok {
		monthly = monthly.Add(rec.USD.Mul(decimal.NewFromInt(int64(zones))))
		b.Detail("zone_month_rate", rec.USD.String())
	} else {
		b.AddNote("no hosted zone price dimension found")
	}

	if rec, ok := pricing.PickDimension(records, "queries"); ok {
		rate := rec.USD.Mul(decimal.NewFromFloat(queries))
		if strings.Contains(strings.ToLower(rec.Unit), "million") {
			rate = rate.Div(decimal.NewFromInt(1_000_000))
		}
		monthly = monthly.Add(rate)
		b.Detail("query_rate", rec.USD.String())
	}

	b.HourlyCost = monthly.Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	return b
}
