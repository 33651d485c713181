package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/umputun/chatgate/pkg/config"
	"github.com/umputun/chatgate/pkg/settings"
)

// Anthropic is a chat client for Anthropic
type Anthropic struct {
	client    anthropic.Client
	model     string
	maxTokens int
}

func newAnthropic(s *settings.Anthropic, hc *http.Client, extra ...option.RequestOption) (*Anthropic, error) {
	maxTokens, err := config.ParseTokens(s.MaxTokens.String())
	if err != nil {
		return nil, fmt.Errorf("max tokens: %w", err)
	}
	opts := []option.RequestOption{option.WithAPIKey(s.APIKey.String())}
	if hc != nil {
		opts = append(opts, option.WithHTTPClient(hc))
	}
	opts = append(opts, extra...)

	// NewClient returns a value, not a pointer
	return &Anthropic{
		client:    anthropic.NewClient(opts...),
		model:     s.Model.String(),
		maxTokens: maxTokens,
	}, nil
}

// Name returns the connector name
func (a *Anthropic) Name() string {
	return "Anthropic"
}

// Model returns the model name
func (a *Anthropic) Model() string {
	return a.model
}

// Generate sends a prompt to Anthropic and returns the first text block
func (a *Anthropic) Generate(ctx context.Context, prompt string) (string, error) {
	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		MaxTokens: int64(a.maxTokens),
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Model:     anthropic.Model(a.model),
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	for _, block := range message.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			return textBlock.Text, nil
		}
	}
	return "", errors.New("anthropic returned empty response")
}
