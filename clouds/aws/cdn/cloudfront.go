// Package cdn - Amazon CloudFront resolver
package cdn

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

// CloudFrontResolver resolves CloudFront distribution nodes on data
// transfer out plus HTTPS request volume. Edge pricing varies by
// geography; the first matching dimension is used as a representative
// rate.
type CloudFrontResolver struct{}

// NewCloudFrontResolver creates a CloudFront resolver
func NewCloudFrontResolver() *CloudFrontResolver {
	return &CloudFrontResolver{}
}

// ServiceType returns the canonical service name
func (r *CloudFrontResolver) ServiceType() string {
	return "CloudFront"
}

// Aliases returns the node type strings this resolver handles
func (r *CloudFrontResolver) Aliases() []string {
	return []string{"cloudfront", "amazoncloudfront", "cdn", "distribution"}
}

// Resolve prices one CloudFront node
func (r *CloudFrontResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	transferGB := normalize.ParseSizeGB(node.AttrRaw("monthly_data_transfer"), 100)
	requests := normalize.ToFloat(node.AttrRaw("monthly_requests"), 1_000_000)

	b.Detail("monthly_data_transfer_gb", fmt.Sprintf("%.0f", transferGB))
	b.Detail("monthly_requests", fmt.Sprintf("%.0f", requests))

	monthly := decimal.Zero

	transferRecords := catalog.Query(ctx, "AmazonCloudFront", []pricing.Filter{
		{Field: "productFamily", Value: "Data Transfer"},
		{Field: "termType", Value: "OnDemand"},
	})
	if rate, ok := pricing.GBMonthRate(transferRecords); ok {
		monthly = monthly.Add(rate.Mul(decimal.NewFromFloat(transferGB)))
		b.Detail("transfer_gb_rate", rate.String())
	} else {
		b.AddNote("no CloudFront data transfer price dimension found")
	}

	requestRecords := catalog.Query(ctx, "AmazonCloudFront", []pricing.Filter{
		{Field: "productFamily", Value: "Request"},
		{Field: "termType", Value: "OnDemand"},
	})
	if rec, ok := pricing.PickDimension(requestRecords, "https"); ok {
		rate := rec.USD.Mul(decimal.NewFromFloat(requests))
		if strings.Contains(strings.ToLower(rec.Unit), "10,000") ||
			strings.Contains(strings.ToLower(rec.Description), "per 10,000") {
			rate = rate.Div(decimal.NewFromInt(10_000))
		}
		monthly = monthly.Add(rate)
		b.Detail("request_rate", rec.USD.String())
	}

	b.HourlyCost = monthly.Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	return b
}
