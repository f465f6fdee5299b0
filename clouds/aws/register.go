// Package aws - AWS provider wiring
// Registers every AWS service resolver and builds the provider's
// pricing catalog.
package aws

import (
	"context"

	"archcost/clouds/aws/apigateway"
	"archcost/clouds/aws/cdn"
	"archcost/clouds/aws/compute"
	"archcost/clouds/aws/containers"
	"archcost/clouds/aws/database"
	"archcost/clouds/aws/dns"
	"archcost/clouds/aws/messaging"
	"archcost/clouds/aws/networking"
	"archcost/clouds/aws/observability"
	awspricing "archcost/clouds/aws/pricing"
	"archcost/clouds/aws/secrets"
	"archcost/clouds/aws/security"
	"archcost/clouds/aws/serverless"
	"archcost/clouds/aws/storage"
	"archcost/clouds/aws/streaming"
	corePricing "archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/internal/config"
)

// RegisterAll registers every AWS resolver into a registry
func RegisterAll(reg *resolver.Registry) {
	reg.Register(compute.NewEC2Resolver())
	reg.Register(database.NewRDSResolver())
	reg.Register(database.NewDynamoDBResolver())
	reg.Register(storage.NewS3Resolver())
	reg.Register(storage.NewEBSResolver())
	reg.Register(storage.NewEFSResolver())
	reg.Register(serverless.NewLambdaResolver())
	reg.Register(messaging.NewSNSResolver())
	reg.Register(messaging.NewSQSResolver())
	reg.Register(networking.NewELBResolver())
	reg.Register(apigateway.NewAPIGatewayResolver())
	reg.Register(security.NewAccessAnalyzerResolver())
	reg.Register(containers.NewEKSResolver())
	reg.Register(dns.NewRoute53Resolver())
	reg.Register(cdn.NewCloudFrontResolver())
	reg.Register(secrets.NewSecretsManagerResolver())
	reg.Register(streaming.NewKinesisResolver())
	reg.Register(observability.NewCloudWatchResolver())
}

// NewRegistry builds a registry with all AWS resolvers registered
func NewRegistry() *resolver.Registry {
	reg := resolver.NewRegistry()
	RegisterAll(reg)
	return reg
}

// NewCatalog builds the live Pricing API catalog wrapped in the
// run-scoped cache, configured from the application config.
func NewCatalog(ctx context.Context, cfg *config.Config) (corePricing.Catalog, error) {
	source, err := awspricing.NewSource(ctx,
		cfg.AWS.Profile,
		cfg.Pricing.QueryTimeout(),
		cfg.Pricing.MaxResultPages)
	if err != nil {
		return nil, err
	}
	if !cfg.Pricing.CacheEnabled {
		return source, nil
	}
	return corePricing.NewCache(source), nil
}

// SupportedServiceTypes returns the canonical service types this
// provider can price
func SupportedServiceTypes() []string {
	return NewRegistry().Types()
}
