// Package llm - Text generation providers for the design assistant
// Providers are tried in priority order; any provider error falls
// through to the next one so a single bad credential does not take the
// assistant down.
package llm

import (
	"context"

	"go.uber.org/zap"

	"archcost/internal/errors"
	"archcost/internal/logging"
)

// Provider generates a completion for a prompt
type Provider interface {
	// Name identifies the provider in logs and errors
	Name() string

	// Generate returns the model's text output for a prompt
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Chain tries providers in order until one succeeds
type Chain struct {
	providers []Provider
}

// NewChain creates a provider chain in priority order
func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// Name identifies the chain
func (c *Chain) Name() string { return "chain" }

// Generate implements Provider by falling through the chain
func (c *Chain) Generate(ctx context.Context, system, prompt string) (string, error) {
	if len(c.providers) == 0 {
		return "", errors.New(errors.TypeProvider, "no text generation providers configured")
	}

	var lastErr error
	for _, p := range c.providers {
		out, err := p.Generate(ctx, system, prompt)
		if err == nil {
			return out, nil
		}
		lastErr = err
		logging.Warn("provider failed, trying next",
			zap.String("provider", p.Name()),
			zap.Error(err))
	}
	return "", errors.Wrap(errors.TypeProvider, "all providers failed", lastErr)
}
