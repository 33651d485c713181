package settings

import (
	"reflect"
	"strings"

	"github.com/umputun/chatgate/pkg/config"
	"github.com/umputun/chatgate/pkg/connector"
)

// Sources are the layers settings are merged from, lowest precedence first:
// base configuration, then environment, then command-line arguments.
// Nil Config or Env are treated as empty.
type Sources struct {
	Config config.Source
	Env    config.EnvLookup
	Args   []string
}

// Merge builds settings for id from src. Each field starts from its static default, then is
// overridden by the configuration key <Connector>:<Field>, the <NAMESPACE>_<FIELD> environment
// variable and finally the field's flag, each layer only when it defines the field.
// A flag's value is the token following it, taken verbatim; the last occurrence wins.
//
// The second result lists argument tokens recognized neither as a global flag, a flag of id,
// nor a value consumed by one of those. It is never an error, callers switch to help mode instead.
func Merge(id connector.ID, src Sources) (Settings, []string, error) {
	e, err := lookup(id)
	if err != nil {
		return nil, nil, err
	}

	res := reflect.New(e.typ)
	rv := res.Elem()
	for _, f := range e.fields {
		v := Value{}
		if f.hasDef {
			v = Some(f.def)
		}
		if src.Config != nil {
			if s, ok := src.Config.Lookup(config.Key(id.String(), f.name)); ok {
				v = Some(s)
			}
		}
		if src.Env != nil {
			if s, ok := src.Env(id.EnvNamespace() + "_" + f.env); ok {
				v = Some(s)
			}
		}
		f.set(rv, v)
	}

	sc := scanArgs(src.Args, e.fields)
	for _, f := range e.fields {
		if v, ok := sc.values[f.index]; ok {
			f.set(rv, Some(v))
		}
	}

	return res.Interface().(Settings), sc.unknown, nil
}

// UnknownArgs reports tokens that are not global flags or their values.
// Used when no connector is resolved, so no connector flag is recognized.
func UnknownArgs(args []string) []string {
	return scanArgs(args, nil).unknown
}

// HelpRequested reports whether the help flag appears anywhere in args
func HelpRequested(args []string) bool {
	for _, tok := range args {
		if connector.IsHelpFlag(tok) {
			return true
		}
	}
	return false
}

type scanResult struct {
	values  map[int]string // field index to the last value seen
	unknown []string
}

// scanArgs walks args once, left to right. Value-taking flags consume the following token.
// A recognized flag with nothing after it is still known, it just assigns nothing.
func scanArgs(args []string, fields []field) scanResult {
	res := scanResult{values: map[int]string{}}
	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch {
		case connector.IsConnectorTypeFlag(tok):
			i++ // value, if any, belongs to the flag
		case connector.IsHelpFlag(tok):
		default:
			f, ok := matchField(tok, fields)
			if !ok {
				res.unknown = append(res.unknown, tok)
				continue
			}
			if i+1 < len(args) {
				res.values[f.index] = args[i+1]
				i++
			}
		}
	}
	return res
}

func matchField(tok string, fields []field) (field, bool) {
	for _, f := range fields {
		if strings.EqualFold(tok, f.flag()) {
			return f, true
		}
	}
	return field{}, false
}
