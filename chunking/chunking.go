//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package chunking provides the semantic splitting strategies that partition
// cleaned document text into token-bounded chunks.
package chunking

import (
	"context"
	"strings"

	"github.com/Arccosnsx/MultiModalDocSystem/document"
	"github.com/Arccosnsx/MultiModalDocSystem/internal/encoding"
	"github.com/Arccosnsx/MultiModalDocSystem/tokenizer"
)

// Default token budgets applied when a caller passes non-positive values.
const (
	defaultChunkSize = 500
	defaultOverlap   = 50
)

// Strategy is a semantic splitting strategy. Implementations produce chunks
// in left-to-right document order with contiguous zero-based ids.
type Strategy interface {
	// SplitBySemantics partitions text into chunks of at most chunkSize
	// tokens each, best effort, with overlap tokens of desired overlap
	// between neighbors where the strategy supports it.
	SplitBySemantics(ctx context.Context, text string, chunkSize, overlap int) ([]*document.Chunk, error)
}

// splitIntoParagraphs splits text on blank-line boundaries into trimmed
// non-empty paragraphs.
func splitIntoParagraphs(text string) []string {
	var result []string
	for _, para := range strings.Split(text, document.ParagraphSeparator) {
		if trimmed := strings.TrimSpace(para); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// chunkMeta carries the bookkeeping for one produced chunk.
type chunkMeta struct {
	chunkSize   int
	overlap     int
	startPara   int
	endPara     int
	isFallback  bool
	splitMethod string
	backend     string
	model       string
}

// newChunk builds a chunk with measured token and character counts. The
// same counter that decided the boundaries measures the content, so the
// metadata stays internally consistent even when a chunk exceeds budget.
func newChunk(id int, content string, counter *tokenizer.Counter, meta chunkMeta) *document.Chunk {
	content = strings.TrimSpace(content)
	metadata := map[string]any{
		document.MetaChunkSize:      meta.chunkSize,
		document.MetaOverlap:        meta.overlap,
		document.MetaStartParagraph: meta.startPara,
		document.MetaEndParagraph:   meta.endPara,
		document.MetaTokenCount:     counter.CountTokens(content),
		document.MetaCharCount:      encoding.RuneCount(content),
		document.MetaIsFallback:     meta.isFallback,
		document.MetaSplitMethod:    meta.splitMethod,
	}
	if meta.backend != "" {
		metadata[document.MetaLLMBackend] = meta.backend
	}
	if meta.model != "" {
		metadata[document.MetaLLMModel] = meta.model
	}
	return &document.Chunk{
		ID:       id,
		Content:  content,
		Metadata: metadata,
	}
}

// normalizeBudgets applies defaults to non-positive budgets and keeps the
// overlap below the chunk size.
func normalizeBudgets(chunkSize, overlap int) (int, int) {
	if chunkSize < 1 {
		chunkSize = defaultChunkSize
	}
	if overlap < 0 {
		overlap = defaultOverlap
	}
	if overlap >= chunkSize {
		overlap = chunkSize - 1
	}
	return chunkSize, overlap
}
