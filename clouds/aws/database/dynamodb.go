package database

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// DynamoDBResolver resolves DynamoDB table nodes under provisioned
// capacity: write units, read units, and table storage.
type DynamoDBResolver struct{}

// NewDynamoDBResolver creates a DynamoDB resolver
func NewDynamoDBResolver() *DynamoDBResolver {
	return &DynamoDBResolver{}
}

// ServiceType returns the canonical service name
func (r *DynamoDBResolver) ServiceType() string {
	return "DynamoDB"
}

// Aliases returns the node type strings this resolver handles
func (r *DynamoDBResolver) Aliases() []string {
	return []string{"dynamodb", "amazondynamodb", "dynamodb table"}
}

// Resolve prices one DynamoDB node
func (r *DynamoDBResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	wcu := normalize.ToFloat(node.AttrRaw("write_capacity"), 5)
	rcu := normalize.ToFloat(node.AttrRaw("read_capacity"), 5)
	storageGB := normalize.ParseSizeGB(node.AttrRaw("storage"), 20)

	b.Detail("write_capacity_units", fmt.Sprintf("%.0f", wcu))
	b.Detail("read_capacity_units", fmt.Sprintf("%.0f", rcu))
	b.Detail("storage_gb", fmt.Sprintf("%.0f", storageGB))

	records := catalog.Query(ctx, "AmazonDynamoDB", []pricing.Filter{
		{Field: "location", Value: req.Location},
		{Field: "termType", Value: "OnDemand"},
	})
	if len(records) == 0 {
		b.AddNote("no DynamoDB pricing data for " + req.Location)
		b.HourlyCost = decimal.Zero
		return b
	}

	hourly := decimal.Zero

	wcuRec, wcuOK := pricing.PickDimension(records, "write capacity")
	if wcuOK {
		hourly = hourly.Add(wcuRec.USD.Mul(decimal.NewFromFloat(wcu)))
		b.Detail("wcu_hourly_rate", wcuRec.USD.String())
	} else {
		b.AddNote("no write capacity price dimension found")
	}

	if rcuRec, ok := pricing.PickDimension(records, "read capacity"); ok {
		hourly = hourly.Add(rcuRec.USD.Mul(decimal.NewFromFloat(rcu)))
		b.Detail("rcu_hourly_rate", rcuRec.USD.String())
	} else if wcuOK {
		// Read units bill at roughly half the write unit rate; fall back
		// to that ratio when the read dimension is missing
		half := wcuRec.USD.Div(decimal.NewFromInt(2))
		hourly = hourly.Add(half.Mul(decimal.NewFromFloat(rcu)))
		b.Detail("rcu_hourly_rate", half.String()+" (derived)")
	} else {
		b.AddNote("no read capacity price dimension found")
	}

	if storRec, ok := pricing.PickDimension(records, "storage"); ok {
		hourly = hourly.Add(storRec.USD.
			Mul(decimal.NewFromFloat(storageGB)).
			Div(types.HoursPerMonth))
		b.Detail("storage_gb_month_rate", storRec.USD.String())
	} else {
		b.AddNote("no table storage price dimension found")
	}

	b.HourlyCost = hourly.Round(types.HourlyPrecision)
	return b
}
