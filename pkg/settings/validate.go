package settings

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/umputun/chatgate/pkg/config"
	"github.com/umputun/chatgate/pkg/connector"
)

// Valid is settings which passed validation. It can be obtained only from Validate,
// the zero value holds nothing and is rejected by client construction.
type Valid struct {
	s Settings
}

// Connector returns the connector of validated settings, Unknown for the zero value
func (v Valid) Connector() connector.ID {
	if v.s == nil {
		return connector.Unknown
	}
	return v.s.Connector()
}

// Settings returns a copy of validated settings, nil for the zero value
func (v Valid) Settings() Settings {
	if v.s == nil {
		return nil
	}
	return clone(v.s)
}

// Validate checks settings of connector id. Required fields are checked in the connector's
// fixed order and the first blank one fails; format checks run only for present fields.
// Settings are never modified, Valid holds a private copy.
func Validate(id connector.ID, s Settings) (Valid, error) {
	e, err := lookup(id)
	if err != nil {
		return Valid{}, err
	}
	if s == nil || reflect.ValueOf(s).IsNil() || s.Connector() != id {
		return Valid{}, &ConfigError{Kind: MissingProviderConfiguration, Provider: id}
	}
	if err := e.validate(s); err != nil {
		return Valid{}, err
	}
	return Valid{s: clone(s)}, nil
}

// validation collects the first failure for a connector, checks after it are skipped
type validation struct {
	id  connector.ID
	err error
}

func newValidation(id connector.ID) *validation {
	return &validation{id: id}
}

func (v *validation) required(name string, val Value) *validation {
	if v.err == nil && val.Blank() {
		v.err = &ConfigError{Kind: MissingField, Provider: v.id, Field: name}
	}
	return v
}

func (v *validation) format(name string, val Value, check func(string) error) *validation {
	if v.err != nil || val.Blank() {
		return v
	}
	if err := check(val.String()); err != nil {
		v.err = &ConfigError{Kind: FormatError, Provider: v.id, Field: name, Reason: err.Error()}
	}
	return v
}

var (
	hfModelRe = regexp.MustCompile(`(?i)^hf\.co/[^/\s:]+/[^/\s:]+gguf(:\S+)?$`)
	lgModelRe = regexp.MustCompile(`(?i)^hf\.co/LGAI-EXAONE/[^/\s:]+(:\S+)?$`)
)

func matches(re *regexp.Regexp, want string) func(string) error {
	return func(s string) error {
		if !re.MatchString(s) {
			return fmt.Errorf("%q doesn't match %s", s, want)
		}
		return nil
	}
}

func tokenCount(s string) error {
	_, err := config.ParseTokens(s)
	return err
}

func validateAmazonBedrock(s *AmazonBedrock) error {
	return newValidation(connector.AmazonBedrock).
		required("AccessKeyId", s.AccessKeyID).
		required("SecretAccessKey", s.SecretAccessKey).
		required("Region", s.Region).
		required("ModelId", s.ModelID).err
}

func validateAzureAIFoundry(s *AzureAIFoundry) error {
	return newValidation(connector.AzureAIFoundry).
		required("Endpoint", s.Endpoint).
		required("ApiKey", s.APIKey).
		required("DeploymentName", s.DeploymentName).err
}

func validateGitHubModels(s *GitHubModels) error {
	return newValidation(connector.GitHubModels).
		required("Endpoint", s.Endpoint).
		required("Token", s.Token).
		required("Model", s.Model).err
}

func validateGoogleVertexAI(s *GoogleVertexAI) error {
	return newValidation(connector.GoogleVertexAI).
		required("ApiKey", s.APIKey).
		required("Model", s.Model).err
}

func validateDockerModelRunner(s *DockerModelRunner) error {
	return newValidation(connector.DockerModelRunner).
		required("BaseUrl", s.BaseURL).
		required("Model", s.Model).err
}

func validateFoundryLocal(s *FoundryLocal) error {
	return newValidation(connector.FoundryLocal).
		required("Alias", s.Alias).err
}

func validateHuggingFace(s *HuggingFace) error {
	return newValidation(connector.HuggingFace).
		required("BaseUrl", s.BaseURL).
		required("Model", s.Model).
		format("Model", s.Model, matches(hfModelRe, "hf.co/<org>/<repo>-GGUF[:tag]")).err
}

func validateOllama(s *Ollama) error {
	return newValidation(connector.Ollama).
		required("BaseUrl", s.BaseURL).
		required("Model", s.Model).err
}

func validateAnthropic(s *Anthropic) error {
	return newValidation(connector.Anthropic).
		required("ApiKey", s.APIKey).
		required("Model", s.Model).
		required("MaxTokens", s.MaxTokens).
		format("MaxTokens", s.MaxTokens, tokenCount).err
}

func validateLG(s *LG) error {
	return newValidation(connector.LG).
		required("BaseUrl", s.BaseURL).
		required("Model", s.Model).
		format("Model", s.Model, matches(lgModelRe, "hf.co/LGAI-EXAONE/<repo>[:tag]")).err
}

func validateNaver(s *Naver) error {
	return newValidation(connector.Naver).
		required("ApiKey", s.APIKey).
		required("Model", s.Model).err
}

func validateOpenAI(s *OpenAI) error {
	return newValidation(connector.OpenAI).
		required("ApiKey", s.APIKey).
		required("Model", s.Model).err
}

func validateUpstage(s *Upstage) error {
	return newValidation(connector.Upstage).
		required("BaseUrl", s.BaseURL).
		required("ApiKey", s.APIKey).
		required("Model", s.Model).err
}
