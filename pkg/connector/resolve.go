package connector

import (
	"strings"

	"github.com/umputun/chatgate/pkg/config"
)

// ConfigKey is the base configuration key holding the connector name
const ConfigKey = "ConnectorType"

// global flags, matched case-insensitively
const (
	FlagConnectorType      = "--connector-type"
	FlagConnectorTypeShort = "-c"
	FlagHelp               = "--help"
	FlagHelpShort          = "-h"
)

// IsConnectorTypeFlag reports whether tok selects the connector type
func IsConnectorTypeFlag(tok string) bool {
	return strings.EqualFold(tok, FlagConnectorType) || strings.EqualFold(tok, FlagConnectorTypeShort)
}

// IsHelpFlag reports whether tok requests help
func IsHelpFlag(tok string) bool {
	return strings.EqualFold(tok, FlagHelp) || strings.EqualFold(tok, FlagHelpShort)
}

// Resolve determines the active connector. The ConnectorType configuration key is read first,
// then args are scanned once for the connector-type flag; a parsable value following the first
// occurrence of the flag overrides the configured one. The scan stops at that first occurrence
// even if its value is missing or unparsable. Unknown is returned when nothing matches.
func Resolve(cfg config.Source, args []string) ID {
	id := Unknown
	if cfg != nil {
		if v, ok := cfg.Lookup(ConfigKey); ok {
			id, _ = Parse(v)
		}
	}

	for i, tok := range args {
		if !IsConnectorTypeFlag(tok) {
			continue
		}
		if i+1 < len(args) {
			if parsed, ok := Parse(args[i+1]); ok {
				id = parsed
			}
		}
		break
	}
	return id
}
