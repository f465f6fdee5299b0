// Package messaging - AWS messaging resolvers (SNS, SQS)
// Both services bill per request; the catalog reports the per-request
// rate directly rather than per million.
package messaging

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// SNSResolver resolves SNS topic nodes
type SNSResolver struct{}

// NewSNSResolver creates an SNS resolver
func NewSNSResolver() *SNSResolver {
	return &SNSResolver{}
}

// ServiceType returns the canonical service name
func (r *SNSResolver) ServiceType() string {
	return "SNS"
}

// Aliases returns the node type strings this resolver handles
func (r *SNSResolver) Aliases() []string {
	return []string{"sns", "amazonsns", "sns topic", "notification service"}
}

// Resolve prices one SNS node
func (r *SNSResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	publishes := normalize.ToFloat(node.AttrRaw("monthly_publishes"), 1_000_000)
	b.Detail("monthly_publishes", fmt.Sprintf("%.0f", publishes))

	records := catalog.Query(ctx, "AmazonSNS", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "termType", Value: "OnDemand"},
	})

	rec, ok := pricing.PickDimension(records, "request")
	if !ok {
		b.AddNote("no SNS request pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	b.Detail("request_rate", rec.USD.String())
	monthly := rec.USD.Mul(decimal.NewFromFloat(publishes))
	b.HourlyCost = monthly.Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	return b
}

// SQSResolver resolves SQS queue nodes
type SQSResolver struct{}

// NewSQSResolver creates an SQS resolver
func NewSQSResolver() *SQSResolver {
	return &SQSResolver{}
}

// ServiceType returns the canonical service name
func (r *SQSResolver) ServiceType() string {
	return "SQS"
}

// Aliases returns the node type strings this resolver handles
func (r *SQSResolver) Aliases() []string {
	return []string{"sqs", "amazonsqs", "sqs queue", "message queue"}
}

// Resolve prices one SQS node
func (r *SQSResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	requests := normalize.ToFloat(node.AttrRaw("monthly_requests"), 1_000_000)
	queueType := node.AttrString("queue_type", "Standard")

	b.Detail("monthly_requests", fmt.Sprintf("%.0f", requests))
	b.Detail("queue_type", queueType)

	records := catalog.Query(ctx, "AmazonSQS", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "queueType", Value: queueType},
		{Field: "termType", Value: "OnDemand"},
	})

	rate, ok := pricing.FirstRate(records)
	if !ok {
		b.AddNote("no SQS request pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	b.Detail("request_rate", rate.String())
	monthly := rate.Mul(decimal.NewFromFloat(requests))
	b.HourlyCost = monthly.Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	return b
}
