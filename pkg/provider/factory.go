package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/chatgate/pkg/connector"
	"github.com/umputun/chatgate/pkg/settings"
)

// ErrNotValidated is returned for settings which didn't come from settings.Validate
var ErrNotValidated = errors.New("settings are not validated")

// Factory builds chat clients for validated settings. The zero value is usable
// and discovers Foundry Local through its cli.
type Factory struct {
	HTTPClient *http.Client // optional, shared by all SDK clients
	Discoverer Discoverer   // optional, endpoint discovery for FoundryLocal

	googleBaseURL string // overrides gemini endpoint, tests only
}

// CreateClient builds the client of a validated connector. Failures of the connector are
// returned as *ConstructionError. If ctx is canceled nothing is returned but the error.
func CreateClient(ctx context.Context, v settings.Valid) (Client, error) {
	return (&Factory{}).CreateClient(ctx, v)
}

// CreateClient builds the client of a validated connector, see CreateClient
func (f *Factory) CreateClient(ctx context.Context, v settings.Valid) (Client, error) {
	s := v.Settings()
	if s == nil {
		return nil, ErrNotValidated
	}
	id := v.Connector()

	client, err := f.construct(ctx, s)
	if err == nil {
		err = ctx.Err() // don't hand out a client built after cancellation
	}
	if err != nil {
		return nil, &ConstructionError{Provider: id, Err: err}
	}
	lgr.Printf("[INFO] %s client ready, model %s", client.Name(), client.Model())
	return client, nil
}

func (f *Factory) construct(ctx context.Context, s settings.Settings) (Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hc := f.HTTPClient

	switch ts := s.(type) {
	case *settings.AmazonBedrock:
		return newBedrock(ts, hc), nil
	case *settings.AzureAIFoundry:
		return newAzureAIFoundry(ts, hc)
	case *settings.GitHubModels:
		return newGitHubModels(ts, hc)
	case *settings.GoogleVertexAI:
		return newGoogle(ctx, ts, hc, f.googleBaseURL)
	case *settings.DockerModelRunner:
		return newDockerModelRunner(ts, hc)
	case *settings.FoundryLocal:
		return f.newFoundryLocal(ctx, ts)
	case *settings.HuggingFace:
		return newOllama(connector.HuggingFace.String(), ts.BaseURL.String(), ts.Model.String(), hc)
	case *settings.Ollama:
		return newOllama(connector.Ollama.String(), ts.BaseURL.String(), ts.Model.String(), hc)
	case *settings.Anthropic:
		return newAnthropic(ts, hc)
	case *settings.LG:
		return newOllama(connector.LG.String(), ts.BaseURL.String(), ts.Model.String(), hc)
	case *settings.Naver:
		return newNaver(ts, hc)
	case *settings.OpenAI:
		return newOpenAI(ts, hc)
	case *settings.Upstage:
		return newUpstage(ts, hc)
	default:
		return nil, fmt.Errorf("no client for settings %T", s)
	}
}

// newFoundryLocal discovers the local endpoint serving the alias, then talks to it as OpenAI-compatible
func (f *Factory) newFoundryLocal(ctx context.Context, s *settings.FoundryLocal) (Client, error) {
	d := f.Discoverer
	if d == nil {
		d = &FoundryDiscoverer{HTTPClient: f.HTTPClient}
	}
	endpoint, modelID, err := d.Discover(ctx, s.Alias.String())
	if err != nil {
		return nil, err
	}
	return newCompat(compatOptions{name: "FoundryLocal", baseURL: strings.TrimSuffix(endpoint.String(), "/") + "/v1",
		model: modelID, httpClient: f.HTTPClient})
}
