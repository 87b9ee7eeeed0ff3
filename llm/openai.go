//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// Variant selects which OpenAI-compatible backend a Model talks to.
type Variant string

const (
	// VariantOpenAI is the OpenAI API.
	VariantOpenAI Variant = "openai"
	// VariantDeepSeek is the DeepSeek API (OpenAI-compatible).
	VariantDeepSeek Variant = "deepseek"
	// VariantOllama is a local Ollama server via its OpenAI-compatible
	// endpoint.
	VariantOllama Variant = "ollama"
)

const (
	//nolint:gosec
	openAIAPIKeyName = "OPENAI_API_KEY"
	//nolint:gosec
	deepSeekAPIKeyName = "DEEPSEEK_API_KEY"

	defaultOpenAIModel   = "gpt-3.5-turbo"
	defaultDeepSeekModel = "deepseek-chat"
	defaultOllamaModel   = "qwen2.5:7b"

	defaultDeepSeekBaseURL = "https://api.deepseek.com"
	defaultOllamaBaseURL   = "http://localhost:11434/v1"
)

// variantConfig holds per-variant defaults.
type variantConfig struct {
	// apiKeyName is the environment variable holding the API key. Empty
	// means the variant does not require a key.
	apiKeyName string
	// placeholderAPIKey is sent when the variant requires no real key.
	placeholderAPIKey string
	defaultBaseURL    string
	defaultModel      string
}

// variantConfigs maps variant names to their configurations.
var variantConfigs = map[Variant]variantConfig{
	VariantOpenAI: {
		apiKeyName:   openAIAPIKeyName,
		defaultModel: defaultOpenAIModel,
	},
	VariantDeepSeek: {
		apiKeyName:     deepSeekAPIKeyName,
		defaultBaseURL: defaultDeepSeekBaseURL,
		defaultModel:   defaultDeepSeekModel,
	},
	VariantOllama: {
		placeholderAPIKey: "ollama",
		defaultBaseURL:    defaultOllamaBaseURL,
		defaultModel:      defaultOllamaModel,
	},
}

// Verify that Model implements the Client interface.
var _ Client = (*Model)(nil)

// Model is an OpenAI-compatible completion client.
type Model struct {
	client      openai.Client
	httpClient  *http.Client
	variant     Variant
	model       string
	temperature float64
	maxTokens   int64
}

// New creates a completion client for the given backend variant.
//
// Unknown variants and missing required API keys are configuration errors
// and fail construction immediately.
func New(variant Variant, opts ...Option) (*Model, error) {
	cfg, ok := variantConfigs[variant]
	if !ok {
		return nil, fmt.Errorf("unsupported llm backend: %s", variant)
	}

	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.apiKey == "" && cfg.apiKeyName != "" {
		o.apiKey = os.Getenv(cfg.apiKeyName)
	}
	if o.apiKey == "" {
		if cfg.placeholderAPIKey == "" {
			return nil, fmt.Errorf("llm backend %s requires an API key (set %s)", variant, cfg.apiKeyName)
		}
		o.apiKey = cfg.placeholderAPIKey
	}
	if o.baseURL == "" {
		o.baseURL = cfg.defaultBaseURL
	}
	if o.model == "" {
		o.model = cfg.defaultModel
	}

	httpClient := &http.Client{Timeout: o.timeout}

	clientOpts := []openaiopt.RequestOption{
		openaiopt.WithAPIKey(o.apiKey),
		openaiopt.WithHTTPClient(httpClient),
	}
	if o.baseURL != "" {
		clientOpts = append(clientOpts, openaiopt.WithBaseURL(o.baseURL))
	}

	return &Model{
		client:      openai.NewClient(clientOpts...),
		httpClient:  httpClient,
		variant:     variant,
		model:       o.model,
		temperature: o.temperature,
		maxTokens:   o.maxTokens,
	}, nil
}

// Variant returns the backend variant this client was built for.
func (m *Model) Variant() Variant {
	return m.variant
}

// ModelName returns the model name requested from the backend.
func (m *Model) ModelName() string {
	return m.model
}

// Complete implements the Client interface.
func (m *Model) Complete(ctx context.Context, prompt string, opts ...CompleteOption) (string, error) {
	var o CompleteOptions
	for _, opt := range opts {
		opt(&o)
	}

	chatRequest := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(m.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(m.temperature),
		MaxCompletionTokens: openai.Int(m.maxTokens),
	}
	if o.JSONResponse {
		chatRequest.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	completion, err := m.client.Chat.Completions.New(ctx, chatRequest)
	if err != nil {
		return "", fmt.Errorf("%s completion failed: %w", m.variant, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%s completion returned no choices", m.variant)
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// CompleteBatch implements the Client interface. Requests are issued
// concurrently and gathered by input position; each slot carries its own
// success or failure.
func (m *Model) CompleteBatch(ctx context.Context, prompts []string, opts ...CompleteOption) []Result {
	results := make([]Result, len(prompts))

	var wg sync.WaitGroup
	for i, prompt := range prompts {
		wg.Add(1)
		go func(idx int, p string) {
			defer wg.Done()
			text, err := m.Complete(ctx, p, opts...)
			results[idx] = Result{Text: text, Err: err}
		}(i, prompt)
	}
	wg.Wait()

	return results
}

// Close implements the Client interface.
func (m *Model) Close() error {
	m.httpClient.CloseIdleConnections()
	return nil
}
