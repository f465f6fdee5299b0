// Package serverless - AWS Lambda resolver
package serverless

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// LambdaResolver resolves Lambda function nodes: request charges plus
// GB-second compute time.
type LambdaResolver struct{}

// NewLambdaResolver creates a Lambda resolver
func NewLambdaResolver() *LambdaResolver {
	return &LambdaResolver{}
}

// ServiceType returns the canonical service name
func (r *LambdaResolver) ServiceType() string {
	return "Lambda"
}

// Aliases returns the node type strings this resolver handles
func (r *LambdaResolver) Aliases() []string {
	return []string{"lambda", "awslambda", "lambda function", "function"}
}

// Resolve prices one Lambda node
func (r *LambdaResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	memoryMB := normalize.ParseMemoryMB(node.AttrRaw("memory"), 128)
	invocations := normalize.ToFloat(node.AttrRaw("monthly_invocations"), 1_000_000)
	durationMs := normalize.ToFloat(node.AttrRaw("avg_duration_ms"), 500)

	b.Detail("memory_mb", fmt.Sprintf("%.0f", memoryMB))
	b.Detail("monthly_invocations", fmt.Sprintf("%.0f", invocations))
	b.Detail("avg_duration_ms", fmt.Sprintf("%.0f", durationMs))

	records := catalog.Query(ctx, "AWSLambda", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "termType", Value: "OnDemand"},
	})
	if len(records) == 0 {
		b.AddNote("no Lambda pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	monthly := decimal.Zero

	if rec, ok := pricing.PickDimension(records, "request"); ok {
		monthly = monthly.Add(rec.USD.Mul(decimal.NewFromFloat(invocations)))
		b.Detail("request_rate", rec.USD.String())
	} else {
		b.AddNote("no request price dimension found")
	}

	if rec, ok := pricing.PickDimension(records, "duration"); ok {
		gbSeconds := decimal.NewFromFloat(invocations).
			Mul(decimal.NewFromFloat(durationMs)).
			Div(decimal.NewFromInt(1000)).
			Mul(decimal.NewFromFloat(memoryMB)).
			Div(decimal.NewFromInt(1024))
		monthly = monthly.Add(rec.USD.Mul(gbSeconds))
		b.Detail("gb_second_rate", rec.USD.String())
	} else {
		b.AddNote("no duration price dimension found")
	}

	b.HourlyCost = monthly.Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	return b
}
