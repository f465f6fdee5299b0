// Package streaming - Amazon Kinesis resolver
package streaming

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// KinesisResolver resolves Kinesis Data Streams nodes on provisioned
// shard hours
type KinesisResolver struct{}

// NewKinesisResolver creates a Kinesis resolver
func NewKinesisResolver() *KinesisResolver {
	return &KinesisResolver{}
}

// ServiceType returns the canonical service name
func (r *KinesisResolver) ServiceType() string {
	return "Kinesis"
}

// Aliases returns the node type strings this resolver handles
func (r *KinesisResolver) Aliases() []string {
	return []string{"kinesis", "amazonkinesis", "kinesis stream", "data stream"}
}

// Resolve prices one Kinesis node
func (r *KinesisResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	shards := normalize.ToInt(node.AttrRaw("shard_count"), 1)
	if shards < 1 {
		shards = 1
	}
	b.Detail("shard_count", fmt.Sprintf("%d", shards))

	records := catalog.Query(ctx, "AmazonKinesis", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "termType", Value: "OnDemand"},
	})

	rec, ok := pricing.PickDimension(records, "shard hour")
	if !ok {
		b.AddNote("no Kinesis shard pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	b.Detail("shard_hour_rate", rec.USD.String())
	b.HourlyCost = rec.USD.Mul(decimal.NewFromInt(int64(shards))).Round(types.HourlyPrecision)
	return b
}
