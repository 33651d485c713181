package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllama_Generate(t *testing.T) {
	tests := []struct {
		name  string
		conn  string
		model string
	}{
		{name: "ollama", conn: "Ollama", model: "llama3.2"},
		{name: "hugging face gguf", conn: "HuggingFace", model: "hf.co/Qwen/Qwen3-0.6B-GGUF"},
		{name: "lg exaone", conn: "LG", model: "hf.co/LGAI-EXAONE/EXAONE-4.0-1.2B-GGUF:Q4_K_M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/chat", r.URL.Path)
				var req struct {
					Model    string `json:"model"`
					Stream   *bool  `json:"stream"`
					Messages []struct {
						Role    string `json:"role"`
						Content string `json:"content"`
					} `json:"messages"`
				}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, tt.model, req.Model)
				if assert.NotNil(t, req.Stream) {
					assert.False(t, *req.Stream)
				}
				if assert.Len(t, req.Messages, 1) {
					assert.Equal(t, "what is go?", req.Messages[0].Content)
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"model":"m","message":{"role":"assistant","content":"a language"},"done":true}`))
			}))
			defer ts.Close()

			client, err := newOllama(tt.conn, ts.URL, tt.model, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.conn, client.Name())
			assert.Equal(t, tt.model, client.Model())

			res, err := client.Generate(context.Background(), "what is go?")
			require.NoError(t, err)
			assert.Equal(t, "a language", res)
		})
	}
}

func TestOllama_GenerateErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"model 'nope' not found"}`))
		}))
		defer ts.Close()

		client, err := newOllama("Ollama", ts.URL, "nope", nil)
		require.NoError(t, err)
		_, err = client.Generate(context.Background(), "hi")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ollama api error")
	})

	t.Run("empty answer", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"model":"m","message":{"role":"assistant","content":""},"done":true}`))
		}))
		defer ts.Close()

		client, err := newOllama("LG", ts.URL, "m", nil)
		require.NoError(t, err)
		_, err = client.Generate(context.Background(), "hi")
		require.EqualError(t, err, "lg returned empty response")
	})
}

func TestNewOllama_BadBaseURL(t *testing.T) {
	_, err := newOllama("Ollama", "localhost:11434", "llama3.2", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absolute http(s) url expected")
}
