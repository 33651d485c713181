package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/chatgate/pkg/config"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		cfg  map[string]string
		args []string
		want ID
	}{
		{name: "nothing set", want: Unknown},
		{name: "from config", cfg: map[string]string{"ConnectorType": "OpenAI"}, want: OpenAI},
		{name: "from config case-insensitive", cfg: map[string]string{"connectortype": "ollama"}, want: Ollama},
		{name: "unparsable config", cfg: map[string]string{"ConnectorType": "nope"}, want: Unknown},
		{name: "cli long flag", args: []string{"--connector-type", "Upstage"}, want: Upstage},
		{name: "cli short flag", args: []string{"-c", "naver"}, want: Naver},
		{name: "cli flag case-insensitive", args: []string{"--Connector-Type", "LG"}, want: LG},
		{name: "cli overrides config", cfg: map[string]string{"ConnectorType": "OpenAI"},
			args: []string{"--model", "x", "-c", "Anthropic"}, want: Anthropic},
		{name: "unparsable cli keeps config", cfg: map[string]string{"ConnectorType": "OpenAI"},
			args: []string{"-c", "bogus"}, want: OpenAI},
		{name: "flag without value keeps config", cfg: map[string]string{"ConnectorType": "OpenAI"},
			args: []string{"--connector-type"}, want: OpenAI},
		{name: "scan stops at first flag", args: []string{"-c", "bogus", "-c", "OpenAI"}, want: Unknown},
		{name: "first valid flag wins", args: []string{"-c", "Ollama", "--connector-type", "OpenAI"}, want: Ollama},
		{name: "unparsable everywhere", cfg: map[string]string{"ConnectorType": "x"}, args: []string{"-c", "y"},
			want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(config.NewMap(tt.cfg), tt.args))
		})
	}
}

func TestResolve_NilConfig(t *testing.T) {
	assert.Equal(t, OpenAI, Resolve(nil, []string{"-c", "OpenAI"}))
	assert.Equal(t, Unknown, Resolve(nil, nil))
}

func TestFlagMatchers(t *testing.T) {
	assert.True(t, IsConnectorTypeFlag("--CONNECTOR-TYPE"))
	assert.True(t, IsConnectorTypeFlag("-C"))
	assert.False(t, IsConnectorTypeFlag("--connector"))
	assert.True(t, IsHelpFlag("--Help"))
	assert.True(t, IsHelpFlag("-h"))
	assert.False(t, IsHelpFlag("help"))
}
