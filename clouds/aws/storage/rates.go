// Package storage - AWS storage service resolvers (S3, EBS, EFS)
package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"archcost/core/pricing"
)

// VolumeRate returns the GB-month rate for an EBS volume type in a
// location. Shared with the EC2 resolver, which prices root volumes the
// same way.
func VolumeRate(ctx context.Context, catalog pricing.Catalog, location, volumeAPIName string) (decimal.Decimal, bool) {
	records := catalog.Query(ctx, "AmazonEC2", []pricing.Filter{
		{Field: "volumeApiName", Value: volumeAPIName},
		{Field: "location", Value: location},
		{Field: "productFamily", Value: "Storage"},
	})
	if rate, ok := pricing.GBMonthRate(records); ok {
		return rate, true
	}
	return pricing.FirstRate(records)
}
