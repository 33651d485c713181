package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"github.com/umputun/chatgate/pkg/settings"
)

// Google is a chat client for Gemini models, used by the GoogleVertexAI connector
type Google struct {
	client *genai.Client
	model  string
}

// newGoogle creates genai client; baseURL overrides the API endpoint and is empty outside of tests
func newGoogle(ctx context.Context, s *settings.GoogleVertexAI, hc *http.Client, baseURL string) (*Google, error) {
	cfg := &genai.ClientConfig{
		APIKey:     s.APIKey.String(),
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &Google{client: client, model: s.Model.String()}, nil
}

// Name returns the connector name
func (g *Google) Name() string {
	return "GoogleVertexAI"
}

// Model returns the model name
func (g *Google) Model() string {
	return g.model
}

// Generate sends a prompt to Gemini and returns the response text
func (g *Google) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("google api error: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("google returned empty response")
	}
	return text, nil
}
