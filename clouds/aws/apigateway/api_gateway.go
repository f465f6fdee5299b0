// Package apigateway - Amazon API Gateway resolver
package apigateway

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

// APIGatewayResolver resolves API Gateway nodes on per-request pricing
type APIGatewayResolver struct{}

// NewAPIGatewayResolver creates an API Gateway resolver
func NewAPIGatewayResolver() *APIGatewayResolver {
	return &APIGatewayResolver{}
}

// ServiceType returns the canonical service name
func (r *APIGatewayResolver) ServiceType() string {
	return "APIGateway"
}

// Aliases returns the node type strings this resolver handles
func (r *APIGatewayResolver) Aliases() []string {
	return []string{"api gateway", "apigateway", "amazonapigateway", "rest api", "http api"}
}

// Resolve prices one API Gateway node
func (r *APIGatewayResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	requests := normalize.ToFloat(node.AttrRaw("monthly_requests"), 1_000_000)
	apiType := node.AttrString("api_type", "REST")

	b.Detail("monthly_requests", fmt.Sprintf("%.0f", requests))
	b.Detail("api_type", apiType)

	records := catalog.Query(ctx, "AmazonApiGateway", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "termType", Value: "OnDemand"},
	})

	rec, ok := pricing.PickDimension(records, "request")
	if !ok {
		b.AddNote("no API Gateway request pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	// The catalog reports per-million tiers for REST APIs; the unit
	// string distinguishes them from per-request dimensions
	rate := rec.USD
	monthly := rate.Mul(decimal.NewFromFloat(requests))
	if strings.Contains(strings.ToLower(rec.Unit), "million") ||
		strings.Contains(strings.ToLower(rec.Description), "per million") {
		monthly = monthly.Div(decimal.NewFromInt(1_000_000))
	}

	b.Detail("request_rate", rate.String())
	b.HourlyCost = monthly.Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	return b
}
