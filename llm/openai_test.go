//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUnknownVariant(t *testing.T) {
	_, err := New(Variant("mystery"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported llm backend")
}

func TestNewRequiresAPIKey(t *testing.T) {
	t.Setenv(openAIAPIKeyName, "")

	_, err := New(VariantOpenAI)
	require.Error(t, err)
	require.Contains(t, err.Error(), openAIAPIKeyName)
}

func TestNewOllamaNeedsNoKey(t *testing.T) {
	model, err := New(VariantOllama)
	require.NoError(t, err)
	defer model.Close()

	require.Equal(t, VariantOllama, model.Variant())
	require.Equal(t, defaultOllamaModel, model.ModelName())
}

func TestNewAppliesVariantDefaults(t *testing.T) {
	t.Setenv(deepSeekAPIKeyName, "test-key")

	model, err := New(VariantDeepSeek)
	require.NoError(t, err)
	defer model.Close()

	require.Equal(t, defaultDeepSeekModel, model.ModelName())
	require.Equal(t, defaultOptions.temperature, model.temperature)
	require.Equal(t, defaultOptions.maxTokens, model.maxTokens)
}

func TestNewOptionOverrides(t *testing.T) {
	model, err := New(VariantOllama,
		WithModel("qwen2.5:32b"),
		WithTemperature(0.7),
		WithMaxCompletionTokens(1024),
	)
	require.NoError(t, err)
	defer model.Close()

	require.Equal(t, "qwen2.5:32b", model.ModelName())
	require.Equal(t, 0.7, model.temperature)
	require.Equal(t, int64(1024), model.maxTokens)
}

// completionResponse is the minimal chat completion shape the client reads.
func completionResponse(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "test-model",
		"choices": []map[string]any{
			{
				"index":   0,
				"message": map[string]any{"role": "assistant", "content": content},
			},
		},
	}
}

func TestCompleteAgainstStubServer(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(completionResponse("  the answer  ")))
	}))
	defer server.Close()

	model, err := New(VariantOllama, WithBaseURL(server.URL))
	require.NoError(t, err)
	defer model.Close()

	text, err := model.Complete(context.Background(), "a question", WithJSONResponse())
	require.NoError(t, err)
	require.Equal(t, "the answer", text)

	// The request carries the model, the prompt and the JSON response format.
	require.Equal(t, defaultOllamaModel, gotBody["model"])
	format, ok := gotBody["response_format"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "json_object", format["type"])
}

func TestCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"id": "chatcmpl-test", "object": "chat.completion", "choices": []any{},
		}))
	}))
	defer server.Close()

	model, err := New(VariantOllama, WithBaseURL(server.URL))
	require.NoError(t, err)
	defer model.Close()

	_, err = model.Complete(context.Background(), "a question")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no choices")
}

func TestCompleteBatchKeepsOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Messages, 1)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(completionResponse("echo: "+body.Messages[0].Content)))
	}))
	defer server.Close()

	model, err := New(VariantOllama, WithBaseURL(server.URL))
	require.NoError(t, err)
	defer model.Close()

	results := model.CompleteBatch(context.Background(), []string{"one", "two", "three"})
	require.Len(t, results, 3)
	for i, want := range []string{"echo: one", "echo: two", "echo: three"} {
		require.NoError(t, results[i].Err)
		require.Equal(t, want, results[i].Text)
	}
}
