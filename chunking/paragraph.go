//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"context"
	"strings"

	"github.com/Arccosnsx/MultiModalDocSystem/document"
	"github.com/Arccosnsx/MultiModalDocSystem/log"
	"github.com/Arccosnsx/MultiModalDocSystem/tokenizer"
)

// ParagraphChunking groups whole paragraphs into chunks under a token
// budget. It is fully deterministic, invokes no external services and
// cannot fail.
type ParagraphChunking struct {
	counter *tokenizer.Counter
}

// Verify that ParagraphChunking implements the Strategy interface.
var _ Strategy = (*ParagraphChunking)(nil)

// ParagraphOption is a functional option for configuring ParagraphChunking.
type ParagraphOption func(*ParagraphChunking)

// WithParagraphTokenCounter sets the token counter to use.
func WithParagraphTokenCounter(counter *tokenizer.Counter) ParagraphOption {
	return func(p *ParagraphChunking) {
		p.counter = counter
	}
}

// NewParagraphChunking creates a paragraph-based chunking strategy.
func NewParagraphChunking(opts ...ParagraphOption) *ParagraphChunking {
	p := &ParagraphChunking{}
	for _, opt := range opts {
		opt(p)
	}
	if p.counter == nil {
		p.counter = tokenizer.NewDefault()
	}
	return p
}

// SplitBySemantics implements the Strategy interface. Paragraphs are
// accumulated greedily while the running token count stays within the
// budget; each chunk records the contiguous paragraph range it covers, and
// the ranges partition the paragraph sequence exactly.
func (p *ParagraphChunking) SplitBySemantics(ctx context.Context, text string, chunkSize, overlap int) ([]*document.Chunk, error) {
	chunkSize, overlap = normalizeBudgets(chunkSize, overlap)

	paragraphs := splitIntoParagraphs(text)
	if len(paragraphs) == 0 {
		return nil, nil
	}

	var chunks []*document.Chunk
	var current []string
	currentTokens := 0

	flush := func(endPara int) {
		if len(current) == 0 {
			return
		}
		content := joinParagraphs(current)
		chunks = append(chunks, newChunk(len(chunks), content, p.counter, chunkMeta{
			chunkSize:   chunkSize,
			overlap:     overlap,
			startPara:   endPara - len(current) + 1,
			endPara:     endPara,
			splitMethod: document.SplitMethodSimpleParagraph,
		}))
		current = nil
		currentTokens = 0
	}

	for paraIdx, paragraph := range paragraphs {
		paraTokens := p.counter.CountTokens(paragraph)
		if len(current) > 0 && currentTokens+paraTokens > chunkSize {
			flush(paraIdx - 1)
		}
		current = append(current, paragraph)
		currentTokens += paraTokens
	}
	flush(len(paragraphs) - 1)

	log.Debugf("paragraph chunking produced %d chunks from %d paragraphs", len(chunks), len(paragraphs))
	return chunks, nil
}

// joinParagraphs reassembles buffered paragraphs with the blank-line
// separator.
func joinParagraphs(paragraphs []string) string {
	return strings.Join(paragraphs, document.ParagraphSeparator)
}
