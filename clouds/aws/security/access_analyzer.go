// Package security - AWS security service resolvers
package security

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// AccessAnalyzerResolver resolves IAM Access Analyzer nodes. The service
// bills a flat monthly rate per analyzer.
type AccessAnalyzerResolver struct{}

// NewAccessAnalyzerResolver creates an Access Analyzer resolver
func NewAccessAnalyzerResolver() *AccessAnalyzerResolver {
	return &AccessAnalyzerResolver{}
}

// ServiceType returns the canonical service name
func (r *AccessAnalyzerResolver) ServiceType() string {
	return "IAMAccessAnalyzer"
}

// Aliases returns the node type strings this resolver handles
func (r *AccessAnalyzerResolver) Aliases() []string {
	return []string{"iam access analyzer", "awsiamaccessanalyzer", "access analyzer"}
}

// Resolve prices one Access Analyzer node
func (r *AccessAnalyzerResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	count := normalize.ToInt(node.AttrRaw("analyzer_count"), 1)
	if count < 1 {
		count = 1
	}
	b.Detail("analyzer_count", fmt.Sprintf("%d", count))

	records := catalog.Query(ctx, "AWSIAMAccessAnalyzer", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "termType", Value: "OnDemand"},
	})

	rate, ok := pricing.FirstRate(records)
	if !ok {
		b.AddNote("no Access Analyzer pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	b.Detail("monthly_rate", rate.String())
	monthly := rate.Mul(decimal.NewFromInt(int64(count)))
	b.HourlyCost = monthly.Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	return b
}
