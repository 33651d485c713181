package settings

import (
	"fmt"
	"reflect"

	"github.com/umputun/chatgate/pkg/connector"
)

// entry binds a connector to its settings type, recognized fields and validator
type entry struct {
	typ      reflect.Type // struct type behind the Settings pointer
	fields   []field
	validate func(Settings) error
}

// registry is built once at init and read-only afterwards
var registry = map[connector.ID]entry{
	connector.AmazonBedrock:     register[AmazonBedrock](validateAmazonBedrock),
	connector.AzureAIFoundry:    register[AzureAIFoundry](validateAzureAIFoundry),
	connector.GitHubModels:      register[GitHubModels](validateGitHubModels),
	connector.GoogleVertexAI:    register[GoogleVertexAI](validateGoogleVertexAI),
	connector.DockerModelRunner: register[DockerModelRunner](validateDockerModelRunner),
	connector.FoundryLocal:      register[FoundryLocal](validateFoundryLocal),
	connector.HuggingFace:       register[HuggingFace](validateHuggingFace),
	connector.Ollama:            register[Ollama](validateOllama),
	connector.Anthropic:         register[Anthropic](validateAnthropic),
	connector.LG:                register[LG](validateLG),
	connector.Naver:             register[Naver](validateNaver),
	connector.OpenAI:            register[OpenAI](validateOpenAI),
	connector.Upstage:           register[Upstage](validateUpstage),
}

// register makes an entry for settings struct T, pointer type PT must implement Settings
func register[T any, PT interface {
	*T
	Settings
}](validate func(PT) error) entry {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	return entry{
		typ:    typ,
		fields: fieldsOf(typ),
		validate: func(s Settings) error {
			ps, ok := s.(PT)
			if !ok {
				return fmt.Errorf("unexpected settings type %T for %s", s, typ.Name())
			}
			return validate(ps)
		},
	}
}

func lookup(id connector.ID) (entry, error) {
	e, ok := registry[id]
	if !ok {
		return entry{}, fmt.Errorf("%w: %s", ErrUnknownProvider, id)
	}
	return e, nil
}

// New returns zero settings for id, with no source applied. Nil for Unknown.
func New(id connector.ID) Settings {
	e, err := lookup(id)
	if err != nil {
		return nil
	}
	return reflect.New(e.typ).Interface().(Settings)
}

// Flags returns the flag tokens recognized by id, e.g. --api-key, in declaration order
func Flags(id connector.ID) []string {
	e, err := lookup(id)
	if err != nil {
		return nil
	}
	res := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		res = append(res, f.flag())
	}
	return res
}

// Secrets returns all set values of secret fields, used to mask them in logs
func Secrets(s Settings) []string {
	if s == nil {
		return nil
	}
	e, err := lookup(s.Connector())
	if err != nil {
		return nil
	}
	rv := reflect.ValueOf(s).Elem()
	var res []string
	for _, f := range e.fields {
		if !f.secret {
			continue
		}
		if v := f.get(rv); !v.Blank() {
			res = append(res, v.String())
		}
	}
	return res
}

// clone returns a shallow copy of s; Value fields are immutable, so the copy is independent
func clone(s Settings) Settings {
	rv := reflect.ValueOf(s).Elem()
	cp := reflect.New(rv.Type())
	cp.Elem().Set(rv)
	return cp.Interface().(Settings)
}
