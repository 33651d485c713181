package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/chatgate/pkg/settings"
)

// NaverBaseURL is the OpenAI-compatible endpoint of HyperCLOVA X
const NaverBaseURL = "https://clovastudio.stream.ntruss.com/v1/openai"

// OpenAI is a chat client for OpenAI and every OpenAI-compatible connector
type OpenAI struct {
	client *openai.Client
	name   string
	model  string
}

// compatOptions describe an OpenAI-compatible endpoint
type compatOptions struct {
	name       string
	apiKey     string
	baseURL    string // empty keeps the go-openai default
	model      string
	httpClient *http.Client
}

func newCompat(opts compatOptions) (*OpenAI, error) {
	cfg := openai.DefaultConfig(opts.apiKey)
	if strings.TrimSpace(opts.baseURL) != "" {
		u, err := parseEndpoint(opts.baseURL)
		if err != nil {
			return nil, err
		}
		cfg.BaseURL = strings.TrimSuffix(u.String(), "/")
	}
	if opts.httpClient != nil {
		cfg.HTTPClient = opts.httpClient
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), name: opts.name, model: opts.model}, nil
}

func newOpenAI(s *settings.OpenAI, hc *http.Client) (*OpenAI, error) {
	return newCompat(compatOptions{name: "OpenAI", apiKey: s.APIKey.String(), baseURL: s.BaseURL.String(),
		model: s.Model.String(), httpClient: hc})
}

func newGitHubModels(s *settings.GitHubModels, hc *http.Client) (*OpenAI, error) {
	return newCompat(compatOptions{name: "GitHubModels", apiKey: s.Token.String(), baseURL: s.Endpoint.String(),
		model: s.Model.String(), httpClient: hc})
}

func newDockerModelRunner(s *settings.DockerModelRunner, hc *http.Client) (*OpenAI, error) {
	return newCompat(compatOptions{name: "DockerModelRunner", baseURL: s.BaseURL.String(),
		model: s.Model.String(), httpClient: hc})
}

func newNaver(s *settings.Naver, hc *http.Client) (*OpenAI, error) {
	return newCompat(compatOptions{name: "Naver", apiKey: s.APIKey.String(), baseURL: NaverBaseURL,
		model: s.Model.String(), httpClient: hc})
}

func newUpstage(s *settings.Upstage, hc *http.Client) (*OpenAI, error) {
	return newCompat(compatOptions{name: "Upstage", apiKey: s.APIKey.String(), baseURL: s.BaseURL.String(),
		model: s.Model.String(), httpClient: hc})
}

// newAzureAIFoundry talks to a deployment; the deployment name is used as the model
func newAzureAIFoundry(s *settings.AzureAIFoundry, hc *http.Client) (*OpenAI, error) {
	u, err := parseEndpoint(s.Endpoint.String())
	if err != nil {
		return nil, err
	}
	deployment := s.DeploymentName.String()
	cfg := openai.DefaultAzureConfig(s.APIKey.String(), strings.TrimSuffix(u.String(), "/"))
	cfg.AzureModelMapperFunc = func(string) string { return deployment }
	if hc != nil {
		cfg.HTTPClient = hc
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), name: "AzureAIFoundry", model: deployment}, nil
}

// Name returns the connector name
func (o *OpenAI) Name() string {
	return o.name
}

// Model returns the model name
func (o *OpenAI) Model() string {
	return o.model
}

// Generate sends a prompt and returns the first choice
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
	})
	if err != nil {
		return "", o.formatError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices - check your model configuration and prompt length",
			strings.ToLower(o.name))
	}
	return resp.Choices[0].Message.Content, nil
}

// formatError adds context to api errors, keeping the original for errors.Is/As
func (o *OpenAI) formatError(err error) error {
	name := strings.ToLower(o.name)
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%s api error: %w", name, err)
	}
	switch {
	case apiErr.HTTPStatusCode == http.StatusUnauthorized || apiErr.HTTPStatusCode == http.StatusForbidden:
		return fmt.Errorf("%s api error (authentication failed): %w", name, err)
	case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%s api error (rate limit exceeded): %w", name, err)
	case apiErr.HTTPStatusCode == http.StatusNotFound:
		return fmt.Errorf("%s api error (model issue - check if model exists): %w", name, err)
	default:
		return fmt.Errorf("%s api error: %w", name, err)
	}
}
