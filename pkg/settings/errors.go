package settings

import (
	"errors"
	"fmt"

	"github.com/umputun/chatgate/pkg/config"
	"github.com/umputun/chatgate/pkg/connector"
)

// sentinel errors, ConfigError unwraps to one of the first three
var (
	ErrMissingProvider = errors.New("missing connector configuration")
	ErrMissingField    = errors.New("missing required setting")
	ErrInvalidFormat   = errors.New("invalid setting format")
	ErrUnknownProvider = errors.New("unknown connector")
)

// ErrorKind classifies validation failures
type ErrorKind int

// validation failure kinds
const (
	MissingProviderConfiguration ErrorKind = iota + 1
	MissingField
	FormatError
)

// ConfigError is returned by validation. It identifies the connector and, except for
// MissingProviderConfiguration, the offending field.
type ConfigError struct {
	Kind     ErrorKind
	Provider connector.ID
	Field    string
	Reason   string
}

// Key returns the configuration key of the field, e.g. Upstage:ApiKey, or the connector name
// if the error is about the whole connector
func (e *ConfigError) Key() string {
	if e.Field == "" {
		return e.Provider.String()
	}
	return config.Key(e.Provider.String(), e.Field)
}

func (e *ConfigError) Error() string {
	switch e.Kind {
	case MissingProviderConfiguration:
		return fmt.Sprintf("missing configuration for connector %s", e.Provider)
	case MissingField:
		return fmt.Sprintf("missing required setting %s", e.Key())
	case FormatError:
		return fmt.Sprintf("invalid setting %s: %s", e.Key(), e.Reason)
	default:
		return fmt.Sprintf("invalid configuration %s", e.Key())
	}
}

// Unwrap allows errors.Is against the sentinel of the kind
func (e *ConfigError) Unwrap() error {
	switch e.Kind {
	case MissingProviderConfiguration:
		return ErrMissingProvider
	case MissingField:
		return ErrMissingField
	case FormatError:
		return ErrInvalidFormat
	default:
		return nil
	}
}
