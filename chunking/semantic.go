//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"context"
	"fmt"
	"strings"

	"github.com/Arccosnsx/MultiModalDocSystem/document"
	"github.com/Arccosnsx/MultiModalDocSystem/llm"
	"github.com/Arccosnsx/MultiModalDocSystem/log"
	"github.com/Arccosnsx/MultiModalDocSystem/tokenizer"
)

// defaultWindowSize is the number of paragraphs examined per window. The
// window bounds worst-case prompt size; it never shrinks below one.
const defaultWindowSize = 4

// splitPromptTemplate asks the backend to split one window by semantic
// completeness into a JSON object with a "content" list.
const splitPromptTemplate = `You are performing RAG segmentation. Split the document below into chunks by semantic completeness.
Requirements:
1. Keep every chunk semantically complete; never split inside a sentence.
2. Output a JSON object.
3. Every chunk should be a coherent passage.
4. Every chunk must be at most %d tokens and repeat %d tokens of its predecessor.
Document content:
%s
EXAMPLE JSON OUTPUT:
{
"content": ["passage 1", "passage 2"]
}
`

// SemanticChunking splits text with LLM assistance. It walks the paragraph
// sequence in fixed-width windows: windows within the token budget become
// chunks directly, oversized windows are split by the backend, and any
// backend or parse failure degrades to deterministic token slicing for that
// window only.
type SemanticChunking struct {
	client     llm.Client
	counter    *tokenizer.Counter
	windowSize int
	backend    string
	model      string
}

// Verify that SemanticChunking implements the Strategy interface.
var _ Strategy = (*SemanticChunking)(nil)

// SemanticOption is a functional option for configuring SemanticChunking.
type SemanticOption func(*SemanticChunking)

// WithTokenCounter sets the token counter to use.
func WithTokenCounter(counter *tokenizer.Counter) SemanticOption {
	return func(s *SemanticChunking) {
		s.counter = counter
	}
}

// WithWindowSize sets the paragraph window width.
func WithWindowSize(size int) SemanticOption {
	return func(s *SemanticChunking) {
		if size > 0 {
			s.windowSize = size
		}
	}
}

// WithBackendTag records the backend name in chunk metadata.
func WithBackendTag(backend string) SemanticOption {
	return func(s *SemanticChunking) {
		s.backend = backend
	}
}

// WithModelTag records the model name in chunk metadata.
func WithModelTag(model string) SemanticOption {
	return func(s *SemanticChunking) {
		s.model = model
	}
}

// NewSemanticChunking creates an LLM-assisted chunking strategy.
func NewSemanticChunking(client llm.Client, opts ...SemanticOption) *SemanticChunking {
	s := &SemanticChunking{
		client:     client,
		windowSize: defaultWindowSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.counter == nil {
		s.counter = tokenizer.NewDefault()
	}
	if m, ok := client.(*llm.Model); ok {
		if s.backend == "" {
			s.backend = string(m.Variant())
		}
		if s.model == "" {
			s.model = m.ModelName()
		}
	}
	return s
}

// SplitBySemantics implements the Strategy interface.
//
// The window advance is independent of how many chunks a window produced:
// windows never revisit paragraphs, and chunk ids keep increasing across
// the whole document regardless of which path produced each chunk.
func (s *SemanticChunking) SplitBySemantics(ctx context.Context, text string, chunkSize, overlap int) ([]*document.Chunk, error) {
	chunkSize, overlap = normalizeBudgets(chunkSize, overlap)

	paragraphs := splitIntoParagraphs(text)
	if len(paragraphs) == 0 {
		return nil, nil
	}

	log.Infof("semantic splitting %d paragraphs, chunk budget %d tokens", len(paragraphs), chunkSize)

	var chunks []*document.Chunk
	for i := 0; i < len(paragraphs); i += s.windowSize {
		end := min(i+s.windowSize, len(paragraphs))
		windowText := joinParagraphs(paragraphs[i:end])

		if s.counter.CountTokens(windowText) <= chunkSize {
			chunks = append(chunks, newChunk(len(chunks), windowText, s.counter, chunkMeta{
				chunkSize:   chunkSize,
				overlap:     overlap,
				startPara:   i,
				endPara:     end - 1,
				splitMethod: document.SplitMethodLLMSemantic,
				backend:     s.backend,
				model:       s.model,
			}))
			continue
		}

		for _, sub := range s.splitWindow(ctx, windowText, i, chunkSize, overlap) {
			if strings.TrimSpace(sub.content) == "" {
				// The backend occasionally emits blank segments; they carry
				// no text and are dropped rather than chunked.
				continue
			}
			chunks = append(chunks, newChunk(len(chunks), sub.content, s.counter, chunkMeta{
				chunkSize:   chunkSize,
				overlap:     overlap,
				startPara:   i,
				endPara:     i,
				isFallback:  sub.fallback,
				splitMethod: sub.method,
				backend:     s.backend,
				model:       s.model,
			}))
		}
	}

	log.Infof("semantic splitting produced %d chunks", len(chunks))
	return chunks, nil
}

// windowSegment is one segment produced from an oversized window.
type windowSegment struct {
	content  string
	fallback bool
	method   string
}

// splitWindow asks the backend to split one oversized window. Any request
// or recovery failure resolves to deterministic token slicing for this
// window only; the failure never propagates.
func (s *SemanticChunking) splitWindow(ctx context.Context, windowText string, windowStart, chunkSize, overlap int) []windowSegment {
	prompt := fmt.Sprintf(splitPromptTemplate, chunkSize, overlap, windowText)

	reply, err := s.client.Complete(ctx, prompt, llm.WithJSONResponse())
	if err != nil {
		log.Warnf("window at paragraph %d: completion failed, token slicing: %v", windowStart, err)
		return s.fallbackSegments(windowText, chunkSize)
	}

	segments, err := extractSegments(reply)
	if err != nil {
		log.Warnf("window at paragraph %d: reply not usable as JSON, token slicing: %v", windowStart, err)
		return s.fallbackSegments(windowText, chunkSize)
	}

	result := make([]windowSegment, 0, len(segments))
	for _, segment := range segments {
		result = append(result, windowSegment{
			content: segment,
			method:  document.SplitMethodLLMSemantic,
		})
	}
	return result
}

// fallbackSegments token-slices the window text into budget-sized pieces.
func (s *SemanticChunking) fallbackSegments(windowText string, chunkSize int) []windowSegment {
	slices := s.counter.SplitByTokens(windowText, chunkSize)
	result := make([]windowSegment, 0, len(slices))
	for _, piece := range slices {
		result = append(result, windowSegment{
			content:  piece,
			fallback: true,
			method:   document.SplitMethodTokenBased,
		})
	}
	return result
}
