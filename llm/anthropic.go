package llm

import (
	"context"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"archcost/internal/errors"
)

const (
	defaultModel   = "claude-sonnet-4-6"
	defaultTimeout = 60 * time.Second
)

// AnthropicProvider generates text with the Anthropic Messages API.
// Credentials come from the environment (ANTHROPIC_API_KEY).
type AnthropicProvider struct {
	client  *anthropic.Client
	model   string
	timeout time.Duration
}

// NewAnthropicProvider creates an Anthropic provider
func NewAnthropicProvider(model string, timeout time.Duration) *AnthropicProvider {
	client := anthropic.NewClient()

	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &AnthropicProvider{
		client:  &client,
		model:   model,
		timeout: timeout,
	}
}

// Name identifies the provider
func (p *AnthropicProvider) Name() string { return "anthropic" }

// Generate implements Provider
func (p *AnthropicProvider) Generate(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(4096),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", errors.Wrap(errors.TypeProvider, "anthropic request failed", err)
	}
	if len(resp.Content) == 0 {
		return "", errors.New(errors.TypeProvider, "empty response from anthropic")
	}
	return resp.Content[0].Text, nil
}
