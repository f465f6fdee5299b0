// Package pricing provides the AWS Pricing API catalog source.
package pricing

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	pricingtypes "github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	corePricing "archcost/core/pricing"
	"archcost/internal/errors"
	"archcost/internal/logging"
)

// The Pricing API is only served from us-east-1, regardless of which
// region's prices are being queried.
const endpointRegion = "us-east-1"

// Source queries the AWS Pricing API GetProducts endpoint and flattens
// on-demand price dimensions into catalog records. Transport and auth
// failures are absorbed here: resolvers only ever see an empty result.
type Source struct {
	client   *pricing.Client
	timeout  time.Duration
	maxPages int
}

// NewSource builds a catalog source using the default AWS credential chain
func NewSource(ctx context.Context, profile string, timeout time.Duration, maxPages int) (*Source, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(endpointRegion),
	}
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "loading AWS configuration", err)
	}

	if maxPages <= 0 {
		maxPages = 10
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &Source{
		client:   pricing.NewFromConfig(cfg),
		timeout:  timeout,
		maxPages: maxPages,
	}, nil
}

// Query implements corePricing.Catalog
func (s *Source) Query(ctx context.Context, serviceCode string, filters []corePricing.Filter) []corePricing.PriceRecord {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	apiFilters := make([]pricingtypes.Filter, 0, len(filters))
	for _, f := range filters {
		apiFilters = append(apiFilters, pricingtypes.Filter{
			Type:  pricingtypes.FilterTypeTermMatch,
			Field: aws.String(f.Field),
			Value: aws.String(f.Value),
		})
	}

	input := &pricing.GetProductsInput{
		ServiceCode: aws.String(serviceCode),
		Filters:     apiFilters,
		MaxResults:  aws.Int32(100),
	}

	var records []corePricing.PriceRecord
	paginator := pricing.NewGetProductsPaginator(s.client, input)
	for page := 0; paginator.HasMorePages() && page < s.maxPages; page++ {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			// Timeouts, auth failures and rate limits all degrade to
			// "no data"; the resolver records a warning either way
			logging.Warn("pricing catalog query failed",
				zap.String("service_code", serviceCode),
				zap.Error(err))
			return nil
		}
		for _, item := range out.PriceList {
			records = append(records, parsePriceList(item)...)
		}
	}

	if len(records) == 0 {
		logging.Debug("pricing catalog query returned no records",
			zap.String("service_code", serviceCode),
			zap.Int("filters", len(filters)))
	}
	return records
}

// priceListItem mirrors the subset of the GetProducts price list JSON the
// estimator needs: the on-demand terms and their price dimensions.
type priceListItem struct {
	Terms struct {
		OnDemand map[string]struct {
			PriceDimensions map[string]struct {
				Unit         string            `json:"unit"`
				Description  string            `json:"description"`
				PricePerUnit map[string]string `json:"pricePerUnit"`
			} `json:"priceDimensions"`
		} `json:"OnDemand"`
	} `json:"terms"`
}

func parsePriceList(raw string) []corePricing.PriceRecord {
	var item priceListItem
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		logging.Debug("skipping malformed price list entry", zap.Error(err))
		return nil
	}

	var records []corePricing.PriceRecord
	for _, term := range item.Terms.OnDemand {
		for _, dim := range term.PriceDimensions {
			usd, ok := dim.PricePerUnit["USD"]
			if !ok {
				continue
			}
			price, err := decimal.NewFromString(usd)
			if err != nil || price.IsNegative() {
				continue
			}
			records = append(records, corePricing.PriceRecord{
				Unit:        dim.Unit,
				USD:         price,
				Description: dim.Description,
			})
		}
	}
	return records
}
