//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package cleaner normalizes raw extracted text into clean paragraphs via an
// LLM backend, with a deterministic fallback that never fails.
package cleaner

import (
	"context"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/Arccosnsx/MultiModalDocSystem/document"
	"github.com/Arccosnsx/MultiModalDocSystem/llm"
	"github.com/Arccosnsx/MultiModalDocSystem/log"
)

// defaultBatchParallelism bounds concurrent requests in BatchClean.
const defaultBatchParallelism = 4

// Result is the outcome of cleaning one text. Paragraphs is never empty for
// non-empty input; Fallback marks results produced from the raw input after
// a backend failure.
type Result struct {
	Paragraphs []string
	Fallback   bool
}

// Cleaner cleans raw document text through an LLM backend.
type Cleaner struct {
	client      llm.Client
	parallelism int
}

// Option is a functional option for configuring Cleaner.
type Option func(*Cleaner)

// WithBatchParallelism sets the number of concurrent requests BatchClean
// may have in flight.
func WithBatchParallelism(n int) Option {
	return func(c *Cleaner) {
		if n > 0 {
			c.parallelism = n
		}
	}
}

// New creates a cleaner backed by the given completion client.
func New(client llm.Client, opts ...Option) *Cleaner {
	c := &Cleaner{
		client:      client,
		parallelism: defaultBatchParallelism,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CleanOptions holds per-call options for Clean and BatchClean.
type CleanOptions struct {
	// Instruction is appended to the default cleaning instruction.
	Instruction string
}

// CleanOption configures one cleaning call.
type CleanOption func(*CleanOptions)

// WithInstruction appends a caller instruction to the default one.
func WithInstruction(instruction string) CleanOption {
	return func(o *CleanOptions) {
		o.Instruction = instruction
	}
}

// Clean normalizes one text and splits it into paragraphs. It never fails:
// any backend error degrades to splitting the raw input, with Fallback set.
func (c *Cleaner) Clean(ctx context.Context, text string, opts ...CleanOption) Result {
	var o CleanOptions
	for _, opt := range opts {
		opt(&o)
	}

	log.Debugf("cleaning text, %d chars", len(text))

	cleaned, err := c.client.Complete(ctx, buildCleanPrompt(text, o.Instruction))
	if err != nil {
		log.Warnf("text cleaning failed, splitting raw input: %v", err)
		return Result{Paragraphs: SplitParagraphs(text), Fallback: true}
	}

	paragraphs := SplitParagraphs(cleaned)
	if len(paragraphs) == 0 {
		// A blank completion would otherwise erase the document.
		log.Warnf("text cleaning returned no content, splitting raw input")
		return Result{Paragraphs: SplitParagraphs(text), Fallback: true}
	}

	log.Debugf("cleaning produced %d paragraphs", len(paragraphs))
	return Result{Paragraphs: paragraphs}
}

// BatchClean cleans several texts with one independent request per text.
// Results are returned in input order and failures are isolated: a failed
// text is individually replaced by its own fallback split.
func (c *Cleaner) BatchClean(ctx context.Context, texts []string, opts ...CleanOption) []Result {
	results := make([]Result, len(texts))

	pool, err := ants.NewPool(c.parallelism)
	if err != nil {
		// Pool construction only fails on invalid sizes; run sequentially.
		log.Warnf("batch clean pool unavailable, running sequentially: %v", err)
		for i, text := range texts {
			results[i] = c.Clean(ctx, text, opts...)
		}
		return results
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		idx, input := i, text
		if err := pool.Submit(func() {
			defer wg.Done()
			results[idx] = c.Clean(ctx, input, opts...)
		}); err != nil {
			wg.Done()
			results[idx] = Result{Paragraphs: SplitParagraphs(input), Fallback: true}
		}
	}
	wg.Wait()

	return results
}

// SplitParagraphs splits text into trimmed non-empty paragraphs on blank
// lines. When that yields one paragraph or fewer, it re-splits on single
// line boundaries.
func SplitParagraphs(text string) []string {
	paragraphs := splitNonEmpty(text, document.ParagraphSeparator)
	if len(paragraphs) <= 1 {
		if lines := splitNonEmpty(text, "\n"); len(lines) > 1 {
			return lines
		}
	}
	return paragraphs
}

// splitNonEmpty splits text on sep and keeps trimmed non-empty pieces.
func splitNonEmpty(text, sep string) []string {
	var result []string
	for _, part := range strings.Split(text, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
