//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package segmenter orchestrates document segmentation: it selects a
// splitting strategy, applies token budgets and guarantees that callers
// always receive a chunk slice, never an error.
package segmenter

import (
	"context"
	"fmt"

	"github.com/Arccosnsx/MultiModalDocSystem/chunking"
	"github.com/Arccosnsx/MultiModalDocSystem/document"
	"github.com/Arccosnsx/MultiModalDocSystem/llm"
	"github.com/Arccosnsx/MultiModalDocSystem/log"
	"github.com/Arccosnsx/MultiModalDocSystem/tokenizer"
)

// Default token budgets for produced chunks.
const (
	DefaultChunkSize = 500
	DefaultOverlap   = 50
)

// Segmenter splits document text into chunks. Construction validates
// configuration eagerly; segmentation itself absorbs every failure.
type Segmenter struct {
	strategy  chunking.Strategy
	counter   *tokenizer.Counter
	client    llm.Client
	ownClient bool
	chunkSize int
	overlap   int
}

// Option is a functional option for configuring Segmenter.
type Option func(*Segmenter)

// WithChunkSize sets the chunk token budget.
func WithChunkSize(size int) Option {
	return func(s *Segmenter) {
		s.chunkSize = size
	}
}

// WithOverlap sets the desired token overlap between neighboring chunks.
func WithOverlap(overlap int) Option {
	return func(s *Segmenter) {
		s.overlap = overlap
	}
}

// WithTokenCounter sets the token counter shared by the strategy and the
// chunk metadata.
func WithTokenCounter(counter *tokenizer.Counter) Option {
	return func(s *Segmenter) {
		s.counter = counter
	}
}

// WithLLMClient enables LLM-assisted splitting through the given client.
// The segmenter does not own the client; the caller closes it.
func WithLLMClient(client llm.Client) Option {
	return func(s *Segmenter) {
		s.client = client
		s.ownClient = false
	}
}

// WithStrategy overrides strategy selection entirely.
func WithStrategy(strategy chunking.Strategy) Option {
	return func(s *Segmenter) {
		s.strategy = strategy
	}
}

// New creates a segmenter. Without an LLM client it splits by paragraph
// accumulation; with one it splits semantically with per-window fallback.
func New(opts ...Option) (*Segmenter, error) {
	s := &Segmenter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultOverlap,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.chunkSize < 1 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", s.chunkSize)
	}
	if s.overlap < 0 || s.overlap >= s.chunkSize {
		return nil, fmt.Errorf("overlap must be in [0, %d), got %d", s.chunkSize, s.overlap)
	}

	if s.counter == nil {
		s.counter = tokenizer.NewDefault()
	}
	if s.strategy == nil {
		if s.client != nil {
			s.strategy = chunking.NewSemanticChunking(s.client, chunking.WithTokenCounter(s.counter))
		} else {
			s.strategy = chunking.NewParagraphChunking(chunking.WithParagraphTokenCounter(s.counter))
		}
	}

	return s, nil
}

// NewWithBackend creates a segmenter with its own LLM client for the given
// backend variant. The client is owned and released by Close.
func NewWithBackend(variant llm.Variant, llmOpts []llm.Option, opts ...Option) (*Segmenter, error) {
	client, err := llm.New(variant, llmOpts...)
	if err != nil {
		return nil, err
	}
	s, err := New(append(opts, WithLLMClient(client))...)
	if err != nil {
		client.Close()
		return nil, err
	}
	s.ownClient = true
	return s, nil
}

// Segment splits text into chunks. It never fails: empty input yields an
// empty slice, and any strategy error or panic yields an empty slice after
// logging. Chunk ids are contiguous from zero in document order.
func (s *Segmenter) Segment(ctx context.Context, text string) (chunks []*document.Chunk) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("segmentation panicked, returning no chunks: %v", r)
			chunks = []*document.Chunk{}
		}
	}()

	if text == "" {
		return []*document.Chunk{}
	}

	result, err := s.strategy.SplitBySemantics(ctx, text, s.chunkSize, s.overlap)
	if err != nil {
		log.Errorf("segmentation failed, returning no chunks: %v", err)
		return []*document.Chunk{}
	}
	if result == nil {
		return []*document.Chunk{}
	}
	return result
}

// SegmentDocument segments a document's content and stamps each chunk with
// the document id.
func (s *Segmenter) SegmentDocument(ctx context.Context, doc *document.Document) []*document.Chunk {
	if doc == nil || doc.IsEmpty() {
		return []*document.Chunk{}
	}
	chunks := s.Segment(ctx, doc.Content)
	for _, chunk := range chunks {
		chunk.Metadata[document.MetaDocumentID] = doc.ID
	}
	return chunks
}

// Close releases resources the segmenter owns. Clients supplied by the
// caller are left open.
func (s *Segmenter) Close() error {
	if s.ownClient && s.client != nil {
		return s.client.Close()
	}
	return nil
}
