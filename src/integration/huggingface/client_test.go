package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextGeneration(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"generated_text":"  a reply  "}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "hf_test_key")
	text, err := client.TextGeneration(context.Background(), "org/model", "a prompt", TextParams{
		MaxNewTokens: 250,
		Temperature:  0.7,
	})

	require.NoError(t, err)
	assert.Equal(t, "  a reply  ", text, "raw model output is returned untrimmed")
	assert.Equal(t, "/models/org/model", gotPath)
	assert.Equal(t, "Bearer hf_test_key", gotAuth)
	assert.Equal(t, "a prompt", gotBody["inputs"])

	params := gotBody["parameters"].(map[string]any)
	assert.Equal(t, float64(250), params["max_new_tokens"])
	assert.Equal(t, 0.7, params["temperature"])
	assert.Equal(t, false, params["return_full_text"])

	options := gotBody["options"].(map[string]any)
	assert.Equal(t, true, options["wait_for_model"])
}

func TestTextGenerationEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "hf_test_key")
	text, err := client.TextGeneration(context.Background(), "org/model", "a prompt", TextParams{})

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestTextGenerationUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model is overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "hf_test_key")
	_, err := client.TextGeneration(context.Background(), "org/model", "a prompt", TextParams{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestGenerate(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G'}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer server.Close()

	client := NewClient(server.URL, "hf_test_key")
	raw, contentType, err := client.Generate(context.Background(), "org/model", map[string]any{"inputs": "a cat"})

	require.NoError(t, err)
	assert.Equal(t, payload, raw)
	assert.Equal(t, "image/png", contentType)
}
