// Package resolver - Service resolver registry
// Each resolver turns one architecture node into a cost breakdown entry
// by querying the pricing catalog. Registration panics on duplicates so
// wiring mistakes fail fast at startup.
package resolver

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"archcost/core/pricing"
	"archcost/core/types"
)

// Request carries one node through resolution along with the region it
// should be priced in. Location is the Pricing API display name for the
// region ("US East (N. Virginia)"), already resolved by the engine.
type Request struct {
	Node     types.Node
	Region   string
	Location string
}

// Resolver prices a single service type. Resolve never returns an error:
// missing or partial pricing data is reported as notes on the breakdown,
// and the engine turns those into report warnings.
type Resolver interface {
	// ServiceType returns the canonical display name, e.g. "EC2"
	ServiceType() string

	// Aliases returns the lowercased type strings this resolver handles
	Aliases() []string

	Resolve(ctx context.Context, req Request, catalog pricing.Catalog) types.Breakdown
}

// Registry holds all registered resolvers keyed by normalized alias
type Registry struct {
	mu        sync.RWMutex
	resolvers map[string]Resolver
}

// NewRegistry creates an empty resolver registry
func NewRegistry() *Registry {
	return &Registry{
		resolvers: make(map[string]Resolver),
	}
}

// Register adds a resolver under all of its aliases
// Panics on duplicate alias (fail fast)
func (r *Registry) Register(res Resolver) {
	aliases := res.Aliases()
	if len(aliases) == 0 {
		panic(fmt.Sprintf("resolver has no aliases: %s", res.ServiceType()))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, alias := range aliases {
		key := NormalizeType(alias)
		if key == "" {
			panic(fmt.Sprintf("resolver has empty alias: %s", res.ServiceType()))
		}
		if _, exists := r.resolvers[key]; exists {
			panic(fmt.Sprintf("resolver already registered for type: %s", key))
		}
		r.resolvers[key] = res
	}
}

// Get returns the resolver for a node type string. Exact alias matches win;
// otherwise the longest alias contained in the type string is used, so
// "aws lambda function" still reaches the Lambda resolver.
func (r *Registry) Get(nodeType string) (Resolver, bool) {
	key := NormalizeType(nodeType)
	if key == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if res, ok := r.resolvers[key]; ok {
		return res, true
	}

	var best Resolver
	bestLen := 0
	for alias, res := range r.resolvers {
		if strings.Contains(key, alias) && len(alias) > bestLen {
			best = res
			bestLen = len(alias)
		}
	}
	return best, best != nil
}

// Types returns the canonical service types with at least one alias registered
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var result []string
	for _, res := range r.resolvers {
		name := res.ServiceType()
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}
	return result
}

// NormalizeType lowercases a node type and collapses separators so that
// "Application_Load-Balancer" and "application load balancer" match.
func NormalizeType(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, sep := range []string{"_", "-", "."} {
		s = strings.ReplaceAll(s, sep, " ")
	}
	return strings.Join(strings.Fields(s), " ")
}

// GlobalRegistry is the default registry resolvers register into via
// their package init functions.
var GlobalRegistry = NewRegistry()

// Register registers a resolver in the global registry
func Register(res Resolver) {
	GlobalRegistry.Register(res)
}
