// Package compute - AWS EC2 resolver
// Prices instance hours by type, OS, tenancy and region, plus the root
// EBS volume when the node declares one.
package compute

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"archcost/clouds/aws/storage"
	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
)

// EC2Resolver resolves EC2 instance nodes
type EC2Resolver struct{}

// NewEC2Resolver creates an EC2 resolver
func NewEC2Resolver() *EC2Resolver {
	return &EC2Resolver{}
}

// ServiceType returns the canonical service name
func (r *EC2Resolver) ServiceType() string {
	return "EC2"
}

// Aliases returns the node type strings this resolver handles
func (r *EC2Resolver) Aliases() []string {
	return []string{"ec2", "amazonec2", "ec2 instance", "virtual machine"}
}

// Resolve prices one EC2 node
func (r *EC2Resolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	instanceType := node.AttrString("instance_type", "t3.medium")
	os := node.AttrString("operating_system", "Linux")
	tenancy := node.AttrString("tenancy", "Shared")
	count := normalize.ToInt(node.AttrRaw("count"), 1)
	if count < 1 {
		count = 1
	}

	records := catalog.Query(ctx, "AmazonEC2", []pricing.Filter{
		{Field: "instanceType", Value: instanceType},
		{Field: "location", Value: req.Location},
		{Field: "operatingSystem", Value: os},
		{Field: "tenancy", Value: tenancy},
		{Field: "preInstalledSw", Value: "NA"},
		{Field: "capacitystatus", Value: "Used"},
		{Field: "termType", Value: "OnDemand"},
	})

	b.Detail("instance_type", instanceType)
	b.Detail("operating_system", os)
	b.Detail("count", fmt.Sprintf("%d", count))

	hourly := decimal.Zero
	if rate, ok := pricing.HourlyRate(records); ok {
		hourly = rate.Mul(decimal.NewFromInt(int64(count)))
		b.Detail("instance_hourly_rate", rate.String())
	} else {
		b.AddNote("no on-demand price found for instance type " + instanceType)
	}

	// Root volume storage, priced at the EBS GB-month rate
	if sizeGB := normalize.ParseSizeGB(node.AttrRaw("storage"), 0); sizeGB > 0 {
		volumeType := node.AttrString("volume_type", "gp3")
		if rate, ok := storage.VolumeRate(ctx, catalog, req.Location, volumeType); ok {
			storageHourly := rate.
				Mul(decimal.NewFromFloat(sizeGB)).
				Mul(decimal.NewFromInt(int64(count))).
				Div(types.HoursPerMonth)
			hourly = hourly.Add(storageHourly)
			b.Detail("root_volume", fmt.Sprintf("%s %.0fGB", volumeType, sizeGB))
		} else {
			b.AddNote("no storage price found for volume type " + volumeType)
		}
	}

	b.HourlyCost = hourly.Round(types.HourlyPrecision)
	return b
}
