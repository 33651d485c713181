package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/chatgate/pkg/connector"
)

func TestRegistry_Complete(t *testing.T) {
	for _, id := range connector.All() {
		t.Run(id.String(), func(t *testing.T) {
			s := New(id)
			require.NotNil(t, s)
			assert.Equal(t, id, s.Connector())
			assert.NotEmpty(t, Flags(id))
		})
	}
	assert.Nil(t, New(connector.Unknown))
	assert.Nil(t, Flags(connector.Unknown))
}

func TestFlags(t *testing.T) {
	assert.Equal(t, []string{"--access-key-id", "--secret-access-key", "--region", "--model-id"},
		Flags(connector.AmazonBedrock))
	assert.Equal(t, []string{"--api-key", "--model", "--base-url"}, Flags(connector.OpenAI))
	assert.Equal(t, []string{"--alias"}, Flags(connector.FoundryLocal))
}

func TestFieldsOf_Tags(t *testing.T) {
	e, err := lookup(connector.Anthropic)
	require.NoError(t, err)
	require.Len(t, e.fields, 3)

	apiKey := e.fields[0]
	assert.Equal(t, "ApiKey", apiKey.name)
	assert.Equal(t, "API_KEY", apiKey.env)
	assert.True(t, apiKey.secret)
	assert.False(t, apiKey.hasDef)

	maxTokens := e.fields[2]
	assert.Equal(t, "MaxTokens", maxTokens.name)
	assert.Equal(t, "--max-tokens", maxTokens.flag())
	assert.True(t, maxTokens.hasDef)
	assert.Equal(t, "1024", maxTokens.def)
}

func TestFieldsOf_Invalid(t *testing.T) {
	type badType struct {
		Name string `long:"name"`
	}
	type noLong struct {
		Name Value `env:"NAME"`
	}
	assert.Panics(t, func() { fieldsOf(typeOf[badType]()) })
	assert.Panics(t, func() { fieldsOf(typeOf[noLong]()) })
}

func TestSecrets(t *testing.T) {
	s := &AmazonBedrock{AccessKeyID: Some("AKIA"), SecretAccessKey: Some(" "), Region: Some("us-east-1")}
	assert.Equal(t, []string{"AKIA"}, Secrets(s))
	assert.Nil(t, Secrets(nil))
	assert.Equal(t, []string{"sk-1"}, Secrets(&OpenAI{APIKey: Some("sk-1"), Model: Some("m")}))
}

func TestClone(t *testing.T) {
	orig := &OpenAI{APIKey: Some("k"), Model: Some("m")}
	cp, ok := clone(orig).(*OpenAI)
	require.True(t, ok)
	assert.Equal(t, orig, cp)
	cp.Model = Some("changed")
	assert.Equal(t, "m", orig.Model.String())
}
