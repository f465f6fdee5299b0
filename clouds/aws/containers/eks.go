// Package containers - AWS container service resolvers
package containers

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// EKSResolver resolves EKS cluster nodes. Only the control plane charge
// is priced here; worker nodes should be declared as separate EC2 nodes.
type EKSResolver struct{}

// NewEKSResolver creates an EKS resolver
func NewEKSResolver() *EKSResolver {
	return &EKSResolver{}
}

// ServiceType returns the canonical service name
func (r *EKSResolver) ServiceType() string {
	return "EKS"
}

// Aliases returns the node type strings this resolver handles
func (r *EKSResolver) Aliases() []string {
	return []string{"eks", "amazoneks", "eks cluster", "kubernetes"}
}

// Resolve prices one EKS node
func (r *EKSResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	clusters := normalize.ToInt(node.AttrRaw("cluster_count"), 1)
	if clusters < 1 {
		clusters = 1
	}
	b.Detail("cluster_count", fmt.Sprintf("%d", clusters))

	records := catalog.Query(ctx, "AmazonEKS", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "termType", Value: "OnDemand"},
	})

	rate, ok := pricing.HourlyRate(records)
	if !ok {
		b.AddNote("no EKS control plane pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	b.Detail("cluster_hourly_rate", rate.String())
	b.HourlyCost = rate.Mul(decimal.NewFromInt(int64(clusters))).Round(types.HourlyPrecision)
	return b
}
