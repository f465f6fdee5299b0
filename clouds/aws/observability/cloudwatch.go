// Package observability - Amazon CloudWatch resolver
package observability

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// CloudWatchResolver resolves CloudWatch nodes: custom metrics plus
// ingested log volume
type CloudWatchResolver struct{}

// NewCloudWatchResolver creates a CloudWatch resolver
func NewCloudWatchResolver() *CloudWatchResolver {
	return &CloudWatchResolver{}
}

// ServiceType returns the canonical service name
func (r *CloudWatchResolver) ServiceType() string {
	return "CloudWatch"
}

// Aliases returns the node type strings this resolver handles
func (r *CloudWatchResolver) Aliases() []string {
	return []string{"cloudwatch", "amazoncloudwatch", "monitoring"}
}

// Resolve prices one CloudWatch node
func (r *CloudWatchResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	metrics := normalize.ToInt(node.AttrRaw("custom_metrics"), 10)
	logGB := normalize.ParseSizeGB(node.AttrRaw("monthly_log_ingestion"), 5)

	b.Detail("custom_metrics", fmt.Sprintf("%d", metrics))
	b.Detail("monthly_log_ingestion_gb", fmt.Sprintf("%.0f", logGB))

	records := catalog.Query(ctx, "AmazonCloudWatch", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "termType", Value: "OnDemand"},
	})
	if len(records) == 0 {
		b.AddNote("no CloudWatch pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	monthly := decimal.Zero

	if rec, ok := pricing.PickDimension(records, "metric"); ok {
		monthly = monthly.Add(rec.USD.Mul(decimal.NewFromInt(int64(metrics))))
		b.Detail("metric_month_rate", rec.USD.String())
	} else {
		b.AddNote("no metric price dimension found")
	}

	if rec, ok := pricing.PickDimension(records, "ingested"); ok {
		monthly = monthly.Add(rec.USD.Mul(decimal.NewFromFloat(logGB)))
		b.Detail("log_ingestion_gb_rate", rec.USD.String())
	}

	b.HourlyCost = monthly.Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	return b
}
