package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os/exec"
	"regexp"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/sashabaranov/go-openai"
)

// Discoverer finds the endpoint and model id serving a model alias on a local model runtime
type Discoverer interface {
	Discover(ctx context.Context, alias string) (endpoint *url.URL, modelID string, err error)
}

// FoundryDiscoverer discovers models served by Foundry Local. The service url is Endpoint if set,
// otherwise it is taken from the output of "foundry service status". Models are listed through
// the OpenAI-compatible api and the alias is mapped to its own model, see matchAlias.
type FoundryDiscoverer struct {
	Endpoint   string
	HTTPClient *http.Client
	StatusFn   func(ctx context.Context) (string, error) // replaces the foundry cli call, for tests
}

var serviceURLRe = regexp.MustCompile(`https?://[^\s/]+`)

// Discover implements Discoverer
func (d *FoundryDiscoverer) Discover(ctx context.Context, alias string) (*url.URL, string, error) {
	raw := d.Endpoint
	if raw == "" {
		status, err := d.status(ctx)
		if err != nil {
			return nil, "", fmt.Errorf("foundry service status: %w", err)
		}
		if raw = serviceURLRe.FindString(status); raw == "" {
			return nil, "", errors.New("foundry local service is not running")
		}
	}
	endpoint, err := parseEndpoint(raw)
	if err != nil {
		return nil, "", err
	}
	lgr.Printf("[DEBUG] foundry local service at %s", endpoint)

	cfg := openai.DefaultConfig("")
	cfg.BaseURL = strings.TrimSuffix(endpoint.String(), "/") + "/v1"
	if d.HTTPClient != nil {
		cfg.HTTPClient = d.HTTPClient
	}
	models, err := openai.NewClientWithConfig(cfg).ListModels(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("list foundry models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, m := range models.Models {
		ids = append(ids, m.ID)
	}
	modelID, ok := matchAlias(alias, ids)
	if !ok {
		return nil, "", fmt.Errorf("no model for alias %q is loaded in foundry local", alias)
	}
	return endpoint, modelID, nil
}

// variantRe matches what Foundry Local appends to an alias to name a model variant,
// e.g. -instruct-generic-cpu, -cuda-gpu or -npu:2
var variantRe = regexp.MustCompile(`^(-instruct)?-(generic|cuda|npu|qnn|openvino|vitis|trt-rtx|webgpu)(-[a-z0-9]+)*(:\S+)?$`)

// matchAlias picks the model id of alias: an exact, case-insensitive match first, then the
// first id made of the alias and a variant suffix. An alias which is merely a prefix of
// another model name, like phi-4 of phi-4-mini, doesn't match.
func matchAlias(alias string, ids []string) (string, bool) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	for _, id := range ids {
		if strings.ToLower(id) == alias {
			return id, true
		}
	}
	for _, id := range ids {
		lid := strings.ToLower(id)
		if strings.HasPrefix(lid, alias) && variantRe.MatchString(lid[len(alias):]) {
			return id, true
		}
	}
	return "", false
}

func (d *FoundryDiscoverer) status(ctx context.Context) (string, error) {
	if d.StatusFn != nil {
		return d.StatusFn(ctx)
	}
	out, err := exec.CommandContext(ctx, "foundry", "service", "status").CombinedOutput()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
