// Package secrets - AWS Secrets Manager resolver
package secrets

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// SecretsManagerResolver resolves Secrets Manager nodes on the flat
// per-secret monthly rate
type SecretsManagerResolver struct{}

// NewSecretsManagerResolver creates a Secrets Manager resolver
func NewSecretsManagerResolver() *SecretsManagerResolver {
	return &SecretsManagerResolver{}
}

// ServiceType returns the canonical service name
func (r *SecretsManagerResolver) ServiceType() string {
	return "SecretsManager"
}

// Aliases returns the node type strings this resolver handles
func (r *SecretsManagerResolver) Aliases() []string {
	return []string{"secrets manager", "awssecretsmanager", "secretsmanager"}
}

// Resolve prices one Secrets Manager node
func (r *SecretsManagerResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	secrets := normalize.ToInt(node.AttrRaw("secret_count"), 1)
	if secrets < 1 {
		secrets = 1
	}
	b.Detail("secret_count", fmt.Sprintf("%d", secrets))

	records := catalog.Query(ctx, "AWSSecretsManager", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "termType", Value: "OnDemand"},
	})

	rec, ok := pricing.PickDimension(records, "secret")
	if !ok {
		b.AddNote("no Secrets Manager pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	b.Detail("secret_month_rate", rec.USD.String())
	monthly := rec.USD.Mul(decimal.NewFromInt(int64(secrets)))
	b.HourlyCost = monthly.Div(types.HoursPerMonth).Round(types.HourlyPrecision)
	return b
}
