// Package settings resolves, merges and validates the settings of the active chat connector.
package settings

import (
	"github.com/go-pkgz/lgr"

	"github.com/umputun/chatgate/pkg/config"
	"github.com/umputun/chatgate/pkg/connector"
)

// AppSettings is the root aggregate built once at startup
type AppSettings struct {
	Connector connector.ID
	Help      bool
	Settings  Settings // live variant matching Connector, nil if Connector is Unknown
	Unknown   []string // argument tokens nothing recognized
}

// Load resolves the connector from cfg and args, merges its settings from cfg, env and args
// and decides on help mode. It never fails: anything unrecognized ends in help mode.
func Load(cfg config.Source, env config.EnvLookup, args []string) AppSettings {
	id := connector.Resolve(cfg, args)
	res := AppSettings{Connector: id}

	if id == connector.Unknown {
		res.Unknown = UnknownArgs(args)
		res.Help = true
		lgr.Printf("[DEBUG] connector type not resolved, switching to help")
		return res
	}

	s, unknown, err := Merge(id, Sources{Config: cfg, Env: env, Args: args})
	if err != nil {
		// resolved ids are always registered, keep the help fallback anyway
		lgr.Printf("[WARN] can't merge settings for %s: %v", id, err)
		res.Connector, res.Unknown, res.Help = connector.Unknown, UnknownArgs(args), true
		return res
	}
	res.Settings, res.Unknown = s, unknown
	res.Help = ShouldShowHelp(id, HelpRequested(args), len(unknown) > 0)
	if len(unknown) > 0 {
		lgr.Printf("[DEBUG] unrecognized arguments for %s: %v", id, unknown)
	}
	return res
}

// ShouldShowHelp is true for an unresolved connector, an explicit help flag or any
// unrecognized argument
func ShouldShowHelp(id connector.ID, explicitHelp, sawUnknown bool) bool {
	return id == connector.Unknown || explicitHelp || sawUnknown
}

// Validate runs the validation gate on the live settings variant
func (a AppSettings) Validate() (Valid, error) {
	return Validate(a.Connector, a.Settings)
}
