// Package provider constructs chat clients for validated connector settings.
package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/umputun/chatgate/pkg/connector"
)

//go:generate moq -out mocks/client_mock.go -pkg mocks -skip-ensure -fmt goimports . Client

// Client is a ready chat client of one connector
type Client interface {
	Name() string  // connector name
	Model() string // model, deployment or alias in use
	Generate(ctx context.Context, prompt string) (string, error)
}

// ConstructionError is returned when a connector failed to build its client after validation
// passed, e.g. a malformed endpoint, rejected credentials or failed endpoint discovery.
type ConstructionError struct {
	Provider connector.ID
	Err      error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("can't create %s client: %v", e.Provider, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// parseEndpoint accepts absolute http(s) URLs only
func parseEndpoint(s string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", s, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: absolute http(s) url expected", s)
	}
	return u, nil
}
