package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/chatgate/pkg/connector"
)

func TestValidate_FirstMissingFieldWins(t *testing.T) {
	tests := []struct {
		id  connector.ID
		key string
	}{
		{id: connector.AmazonBedrock, key: "AmazonBedrock:AccessKeyId"},
		{id: connector.AzureAIFoundry, key: "AzureAIFoundry:Endpoint"},
		{id: connector.GitHubModels, key: "GitHubModels:Endpoint"},
		{id: connector.GoogleVertexAI, key: "GoogleVertexAI:ApiKey"},
		{id: connector.DockerModelRunner, key: "DockerModelRunner:BaseUrl"},
		{id: connector.FoundryLocal, key: "FoundryLocal:Alias"},
		{id: connector.HuggingFace, key: "HuggingFace:BaseUrl"},
		{id: connector.Ollama, key: "Ollama:BaseUrl"},
		{id: connector.Anthropic, key: "Anthropic:ApiKey"},
		{id: connector.LG, key: "LG:BaseUrl"},
		{id: connector.Naver, key: "Naver:ApiKey"},
		{id: connector.OpenAI, key: "OpenAI:ApiKey"},
		{id: connector.Upstage, key: "Upstage:BaseUrl"},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			// zero settings, every required field is blank
			_, err := Validate(tt.id, New(tt.id))
			require.Error(t, err)
			var cerr *ConfigError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, MissingField, cerr.Kind)
			assert.Equal(t, tt.key, cerr.Key())
			assert.Contains(t, err.Error(), tt.key)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestValidate_Order(t *testing.T) {
	s := &AzureAIFoundry{Endpoint: Some("https://x"), APIKey: Some("  ")}
	_, err := Validate(connector.AzureAIFoundry, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AzureAIFoundry:ApiKey")
	assert.NotContains(t, err.Error(), "DeploymentName")

	s.APIKey = Some("key")
	_, err = Validate(connector.AzureAIFoundry, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AzureAIFoundry:DeploymentName")
}

func TestValidate_Format(t *testing.T) {
	tests := []struct {
		name    string
		id      connector.ID
		s       Settings
		wantErr string
	}{
		{name: "hf model ok", id: connector.HuggingFace,
			s: &HuggingFace{BaseURL: Some("http://localhost:11434"), Model: Some("hf.co/Qwen/Qwen3-0.6B-GGUF")}},
		{name: "hf model with tag ok", id: connector.HuggingFace,
			s: &HuggingFace{BaseURL: Some("http://x"), Model: Some("hf.co/unsloth/gemma-3-gguf:Q4_K_M")}},
		{name: "hf model without prefix", id: connector.HuggingFace,
			s: &HuggingFace{BaseURL: Some("http://x"), Model: Some("Qwen/Qwen3-0.6B-GGUF")}, wantErr: "HuggingFace:Model"},
		{name: "hf model not gguf", id: connector.HuggingFace,
			s: &HuggingFace{BaseURL: Some("http://x"), Model: Some("hf.co/Qwen/Qwen3-0.6B")}, wantErr: "HuggingFace:Model"},
		{name: "lg model ok", id: connector.LG,
			s: &LG{BaseURL: Some("http://x"), Model: Some("hf.co/LGAI-EXAONE/EXAONE-4.0-1.2B-GGUF")}},
		{name: "lg foreign org", id: connector.LG,
			s: &LG{BaseURL: Some("http://x"), Model: Some("hf.co/Qwen/Qwen3-GGUF")}, wantErr: "LG:Model"},
		{name: "anthropic max tokens with suffix", id: connector.Anthropic,
			s: &Anthropic{APIKey: Some("k"), Model: Some("m"), MaxTokens: Some("8k")}},
		{name: "anthropic bad max tokens", id: connector.Anthropic,
			s: &Anthropic{APIKey: Some("k"), Model: Some("m"), MaxTokens: Some("lots")}, wantErr: "Anthropic:MaxTokens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Validate(tt.id, tt.s)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.id, v.Connector())
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_MissingProvider(t *testing.T) {
	_, err := Validate(connector.OpenAI, nil)
	require.Error(t, err)
	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, MissingProviderConfiguration, cerr.Kind)
	assert.Empty(t, cerr.Field)
	assert.Equal(t, "OpenAI", cerr.Key())
	assert.ErrorIs(t, err, ErrMissingProvider)

	_, err = Validate(connector.OpenAI, (*OpenAI)(nil))
	assert.ErrorIs(t, err, ErrMissingProvider)

	// settings of another connector don't fill the slot
	_, err = Validate(connector.OpenAI, &Upstage{})
	assert.ErrorIs(t, err, ErrMissingProvider)
}

func TestValidate_UnknownConnector(t *testing.T) {
	_, err := Validate(connector.Unknown, &OpenAI{})
	require.ErrorIs(t, err, ErrUnknownProvider)
}

func TestValidate_DoesNotMutate(t *testing.T) {
	s := &OpenAI{APIKey: Some("k"), Model: Some("m")}
	v, err := Validate(connector.OpenAI, s)
	require.NoError(t, err)
	assert.Equal(t, &OpenAI{APIKey: Some("k"), Model: Some("m")}, s)

	// the proof holds its own copy
	s.Model = Some("changed")
	got := v.Settings().(*OpenAI)
	assert.Equal(t, "m", got.Model.String())
	got.Model = Some("again")
	assert.Equal(t, "m", v.Settings().(*OpenAI).Model.String())
}

func TestValid_Zero(t *testing.T) {
	var v Valid
	assert.Equal(t, connector.Unknown, v.Connector())
	assert.Nil(t, v.Settings())
}

func TestConfigError_Messages(t *testing.T) {
	assert.Equal(t, "missing configuration for connector Naver",
		(&ConfigError{Kind: MissingProviderConfiguration, Provider: connector.Naver}).Error())
	assert.Equal(t, "missing required setting Naver:ApiKey",
		(&ConfigError{Kind: MissingField, Provider: connector.Naver, Field: "ApiKey"}).Error())
	assert.Equal(t, "invalid setting LG:Model: bad",
		(&ConfigError{Kind: FormatError, Provider: connector.LG, Field: "Model", Reason: "bad"}).Error())
	assert.NoError(t, (&ConfigError{}).Unwrap())
}
