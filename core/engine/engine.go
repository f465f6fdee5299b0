// Package engine - Cost estimation engine
// Walks an architecture's nodes in document order, dispatches each to
// its service resolver, and aggregates the hierarchical cost report.
// Per-node problems degrade to warnings; the only fatal condition is a
// structurally invalid architecture.
package engine

import (
	"context"

	"go.uber.org/zap"

	"archcost/core/normalize"
	"archcost/core/pricing"
	"archcost/core/resolver"
	"archcost/core/types"
	"archcost/internal/logging"
)

// Engine estimates architecture costs against a pricing catalog
type Engine struct {
	registry      *resolver.Registry
	catalog       pricing.Catalog
	defaultRegion string
}

// New creates an engine. defaultRegion applies to nodes that do not
// declare their own region.
func New(registry *resolver.Registry, catalog pricing.Catalog, defaultRegion string) *Engine {
	return &Engine{
		registry:      registry,
		catalog:       catalog,
		defaultRegion: defaultRegion,
	}
}

// Estimate prices every node and returns the aggregated report.
// Breakdown entries preserve node order; skipped nodes appear only in
// the warnings list.
func (e *Engine) Estimate(ctx context.Context, arch *types.Architecture) (*types.Report, error) {
	report := &types.Report{
		Breakdown: []types.Breakdown{},
		Warnings:  []types.Warning{},
	}

	for _, node := range arch.Nodes {
		if node.Type == "" {
			report.Warn(node.ID, "node has no service type")
			continue
		}

		res, ok := e.registry.Get(node.Type)
		if !ok {
			report.Warn(node.ID, "unrecognized service type: "+node.Type)
			logging.Debug("skipping unrecognized node type",
				zap.String("node_id", node.ID),
				zap.String("type", node.Type))
			continue
		}

		region := node.Region
		if region == "" {
			region = e.defaultRegion
		}
		location, ok := normalize.LocationForRegion(region)
		if !ok {
			report.Warn(node.ID, "no pricing location known for region: "+region)
			continue
		}

		breakdown := res.Resolve(ctx, resolver.Request{
			Node:     node,
			Region:   region,
			Location: location,
		}, e.catalog)

		for _, note := range breakdown.Notes {
			report.Warn(node.ID, note)
		}

		logging.Debug("resolved node",
			zap.String("node_id", node.ID),
			zap.String("service_type", breakdown.ServiceType),
			zap.String("hourly_cost", breakdown.HourlyCost.String()))

		report.Breakdown = append(report.Breakdown, breakdown)
	}

	report.Summarize()
	return report, nil
}

// EstimateJSON parses an architecture document and estimates it
func (e *Engine) EstimateJSON(ctx context.Context, data []byte) (*types.Report, error) {
	arch, err := types.ParseArchitecture(data)
	if err != nil {
		return nil, err
	}
	return e.Estimate(ctx, arch)
}
