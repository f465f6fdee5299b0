// Package database - AWS database resolvers (RDS, DynamoDB)
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

// RDSResolver resolves RDS instance nodes: instance hours, allocated
// storage, and backup retention beyond the included window.
type RDSResolver struct{}

// NewRDSResolver creates an RDS resolver
func NewRDSResolver() *RDSResolver {
	return &RDSResolver{}
}

// ServiceType returns the canonical service name
func (r *RDSResolver) ServiceType() string {
	return "RDS"
}

// Aliases returns the node type strings this resolver handles
func (r *RDSResolver) Aliases() []string {
	return []string{"rds", "amazonrds", "rds instance", "aurora"}
}

// backupRateFraction approximates backup storage as a fraction of primary
// storage cost, scaled by the retention window relative to the 7-day
// included baseline.
var backupRateFraction = decimal.NewFromFloat(0.1)

// Resolve prices one RDS node
func (r *RDSResolver) Resolve(ctx context.Context, req resolver.Request, catalog pricing.Catalog) types.Breakdown {
	node := req.Node
	b := types.Breakdown{
		NodeID:      node.ID,
		ServiceType: r.ServiceType(),
		Label:       node.DisplayLabel(),
	}

	instanceClass := node.AttrString("instance_class", "db.t3.medium")
	engine := node.AttrString("engine", "MySQL")
	multiAZ := node.AttrBool("multi_az", false)
	storageGB := normalize.ParseSizeGB(node.AttrRaw("storage"), 20)
	retentionDays := normalize.ToInt(node.AttrRaw("backup_retention"), 7)

	b.Detail("instance_class", instanceClass)
	b.Detail("engine", engine)
	b.Detail("multi_az", fmt.Sprintf("%t", multiAZ))
	b.Detail("storage_gb", fmt.Sprintf("%.0f", storageGB))

	hourly := decimal.Zero

	// Instance hours. Multi-AZ is priced as exactly double the Single-AZ
	// rate rather than a separate deployment query; the catalog's
	// Multi-AZ dimensions are spotty across engines.
	instRecords := catalog.Query(ctx, "AmazonRDS", []pricing.Filter{
		{Field: "instanceType", Value: instanceClass},
		{Field: "databaseEngine", Value: engine},
		{Field: "deploymentOption", Value: "Single-AZ"},
		{Field: "location", Value: req.Location},
		{Field: "termType", Value: "OnDemand"},
	})
	if rate, ok := pricing.HourlyRate(instRecords); ok {
		if multiAZ {
			rate = rate.Mul(decimal.NewFromInt(2))
		}
		hourly = hourly.Add(rate)
		b.Detail("instance_hourly_rate", rate.String())
	} else {
		b.AddNote("no on-demand price found for instance class " + instanceClass)
	}

	// Allocated storage
	storRecords := catalog.Query(ctx, "AmazonRDS", []pricing.Filter{
		{Field: "productFamily", Value: "Database Storage"},
		{Field: "deploymentOption", Value: "Single-AZ"},
		{Field: "volumeType", Value: "General Purpose"},
		{Field: "location", Value: req.Location},
		{Field: "termType", Value: "OnDemand"},
	})
	if rate, ok := pricing.GBMonthRate(storRecords); ok {
		storageMonthly := rate.Mul(decimal.NewFromFloat(storageGB))

		// Backup storage beyond the included window, approximated as a
		// fraction of primary storage cost scaled by retention/7
		if retentionDays > 0 {
			backupMonthly := storageMonthly.
				Mul(backupRateFraction).
				Mul(decimal.NewFromInt(int64(retentionDays))).
				Div(decimal.NewFromInt(7))
			storageMonthly = storageMonthly.Add(backupMonthly)
			b.Detail("backup_retention_days", fmt.Sprintf("%d", retentionDays))
		}

		hourly = hourly.Add(storageMonthly.Div(types.HoursPerMonth))
		b.Detail("storage_gb_month_rate", rate.String())
	} else {
		b.AddNote("no storage price found for RDS in " + req.Location)
	}

	b.HourlyCost = hourly.Round(types.HourlyPrecision)
	return b
}
