package settings

import (
	"fmt"
	"reflect"
	"strings"
)

var valueType = reflect.TypeOf(Value{})

// field describes one recognized setting of a connector, read from struct tags
type field struct {
	index  int
	name   string // configuration key under the connector section, e.g. ApiKey
	long   string // flag name without dashes
	env    string // env suffix, joined to the connector env namespace
	def    string
	hasDef bool
	secret bool
}

// flag returns the command-line token for the field
func (f field) flag() string {
	return "--" + f.long
}

func (f field) get(rv reflect.Value) Value {
	return rv.Field(f.index).Interface().(Value)
}

func (f field) set(rv reflect.Value, v Value) {
	rv.Field(f.index).Set(reflect.ValueOf(v))
}

// fieldsOf collects Value fields of a settings struct. A settings struct with a non-Value
// field or a field without long tag is a programming error and panics at init.
func fieldsOf(typ reflect.Type) []field {
	res := make([]field, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if sf.Type != valueType {
			panic(fmt.Sprintf("settings %s: field %s is %s, not Value", typ.Name(), sf.Name, sf.Type))
		}
		f := field{
			index:  i,
			name:   sf.Tag.Get("ini-name"),
			long:   sf.Tag.Get("long"),
			env:    sf.Tag.Get("env"),
			secret: sf.Tag.Get("secret") == "true",
		}
		f.def, f.hasDef = sf.Tag.Lookup("default")
		if f.name == "" {
			f.name = sf.Name
		}
		if f.long == "" {
			panic(fmt.Sprintf("settings %s: field %s has no long flag", typ.Name(), sf.Name))
		}
		if f.env == "" {
			f.env = strings.ToUpper(strings.ReplaceAll(f.long, "-", "_"))
		}
		res = append(res, f)
	}
	return res
}
