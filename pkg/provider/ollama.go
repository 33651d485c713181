package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ollama/ollama/api"
)

// Ollama is a chat client for models served by Ollama: Ollama itself, HuggingFace GGUF and LG EXAONE models
type Ollama struct {
	client *api.Client
	name   string
	model  string
}

func newOllama(name, baseURL, model string, hc *http.Client) (*Ollama, error) {
	u, err := parseEndpoint(baseURL)
	if err != nil {
		return nil, err
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Ollama{client: api.NewClient(u, hc), name: name, model: model}, nil
}

// Name returns the connector name
func (o *Ollama) Name() string {
	return o.name
}

// Model returns the model name
func (o *Ollama) Model() string {
	return o.model
}

// Generate sends a prompt and collects the whole answer
func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    o.model,
		Messages: []api.Message{{Role: "user", Content: prompt}},
		Stream:   &stream,
	}

	var sb strings.Builder
	err := o.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%s api error: %w", strings.ToLower(o.name), err)
	}
	if sb.Len() == 0 {
		return "", errors.New(strings.ToLower(o.name) + " returned empty response")
	}
	return sb.String(), nil
}
