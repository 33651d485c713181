package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/chatgate/pkg/settings"
)

func TestAnthropic_Generate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		var req struct {
			Model     string `json:"model"`
			MaxTokens int    `json:"max_tokens"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-sonnet-4-0", req.Model)
		assert.Equal(t, 2048, req.MaxTokens)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg_1","type":"message","role":"assistant","model":"claude-sonnet-4-0",` +
			`"content":[{"type":"text","text":"anthropic response"}],"stop_reason":"end_turn",` +
			`"usage":{"input_tokens":3,"output_tokens":2}}`))
	}))
	defer ts.Close()

	client, err := newAnthropic(&settings.Anthropic{APIKey: settings.Some("test-key"), Model: settings.Some("claude-sonnet-4-0"),
		MaxTokens: settings.Some("2k")}, nil, option.WithBaseURL(ts.URL))
	require.NoError(t, err)
	assert.Equal(t, "Anthropic", client.Name())
	assert.Equal(t, "claude-sonnet-4-0", client.Model())

	res, err := client.Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "anthropic response", res)
}

func TestAnthropic_GenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized,
			body:    `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`,
			wantErr: "anthropic api error"},
		{name: "no text blocks", status: http.StatusOK,
			body:    `{"id":"msg_1","type":"message","role":"assistant","content":[],"usage":{"input_tokens":1,"output_tokens":0}}`,
			wantErr: "anthropic returned empty response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			client, err := newAnthropic(&settings.Anthropic{APIKey: settings.Some("key"), Model: settings.Some("claude-sonnet-4-0"),
				MaxTokens: settings.Some("1024")}, nil, option.WithBaseURL(ts.URL), option.WithMaxRetries(0))
			require.NoError(t, err)
			_, err = client.Generate(context.Background(), "hi")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewAnthropic_BadMaxTokens(t *testing.T) {
	_, err := newAnthropic(&settings.Anthropic{APIKey: settings.Some("key"), Model: settings.Some("m"),
		MaxTokens: settings.Some("lots")}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max tokens")
}
