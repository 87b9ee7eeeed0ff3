//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package llm provides the text-completion capability consumed by the
// cleaning and segmentation pipeline.
package llm

import "context"

// Result is the outcome of one completion in a batch. Exactly one of Text
// and Err is meaningful: a nil Err means Text holds the completion.
type Result struct {
	Text string
	Err  error
}

// Client is the completion capability backing the cleaner and the semantic
// splitter. Implementations must be safe for concurrent use; each logical
// request is independent.
type Client interface {
	// Complete submits a single prompt and returns the completion text.
	Complete(ctx context.Context, prompt string, opts ...CompleteOption) (string, error)

	// CompleteBatch submits one independent request per prompt and returns
	// one result per prompt, in input order. A failure on one prompt is
	// recorded in its slot and does not affect the others.
	CompleteBatch(ctx context.Context, prompts []string, opts ...CompleteOption) []Result

	// Close releases any resources held by the client.
	Close() error
}

// CompleteOptions holds per-request options.
type CompleteOptions struct {
	// JSONResponse asks the backend to force a JSON object response.
	JSONResponse bool
}

// CompleteOption configures a single completion request.
type CompleteOption func(*CompleteOptions)

// WithJSONResponse forces the backend's JSON object response mode.
func WithJSONResponse() CompleteOption {
	return func(o *CompleteOptions) {
		o.JSONResponse = true
	}
}
