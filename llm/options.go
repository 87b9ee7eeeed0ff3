//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package llm

import "time"

// options holds construction options for Model.
type options struct {
	model       string
	apiKey      string
	baseURL     string
	timeout     time.Duration
	temperature float64
	maxTokens   int64
}

var defaultOptions = options{
	timeout:     300 * time.Second,
	temperature: 0.1,
	maxTokens:   8000,
}

// Option is a functional option for configuring Model.
type Option func(*options)

// WithModel sets the model name to request.
func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// WithAPIKey sets the API key, overriding the variant's environment lookup.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithBaseURL sets the base URL, overriding the variant default.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) Option {
	return func(o *options) {
		o.temperature = temperature
	}
}

// WithMaxCompletionTokens caps the completion length in tokens.
func WithMaxCompletionTokens(maxTokens int64) Option {
	return func(o *options) {
		o.maxTokens = maxTokens
	}
}
