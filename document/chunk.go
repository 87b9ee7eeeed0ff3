//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package document

// Metadata keys attached to chunks by the segmentation pipeline.
const (
	// MetaChunkSize is the target token budget the chunk was produced under.
	MetaChunkSize = "chunk_size"
	// MetaOverlap is the target overlap budget in tokens.
	MetaOverlap = "overlap"
	// MetaStartParagraph is the index of the first paragraph the chunk
	// derives from.
	MetaStartParagraph = "start_paragraph"
	// MetaEndParagraph is the index of the last paragraph the chunk
	// derives from.
	MetaEndParagraph = "end_paragraph"
	// MetaTokenCount is the measured token count of the chunk content.
	MetaTokenCount = "token_count"
	// MetaCharCount is the measured character count of the chunk content.
	MetaCharCount = "char_count"
	// MetaIsFallback marks chunks produced by a deterministic fallback path.
	MetaIsFallback = "is_fallback"
	// MetaSplitMethod identifies which splitting method produced the chunk.
	MetaSplitMethod = "split_method"
	// MetaLLMBackend records the backend variant used for LLM splitting.
	MetaLLMBackend = "llm_backend"
	// MetaLLMModel records the model name used for LLM splitting.
	MetaLLMModel = "llm_model"
	// MetaDocumentID links a chunk back to its source document.
	MetaDocumentID = "document_id"
)

// Split method tags recorded under MetaSplitMethod.
const (
	// SplitMethodLLMSemantic marks chunks whose boundaries came from the LLM.
	SplitMethodLLMSemantic = "llm_semantic"
	// SplitMethodTokenBased marks chunks produced by fixed token slicing.
	SplitMethodTokenBased = "token_based"
	// SplitMethodSimpleParagraph marks chunks produced by the offline
	// paragraph-grouping strategy.
	SplitMethodSimpleParagraph = "simple_paragraph"
)

// Chunk is one bounded, semantically coherent unit of output text.
//
// IDs are assigned in production order, zero-based and contiguous within one
// segmentation run; they carry no identity across runs.
type Chunk struct {
	// ID is the sequence position of the chunk within its run.
	ID int `json:"id"`

	// Content is the non-empty trimmed chunk text.
	Content string `json:"content"`

	// Metadata carries provenance and accounting for the chunk.
	Metadata map[string]any `json:"metadata"`
}

// IsFallback reports whether the chunk was produced by a fallback path.
func (c *Chunk) IsFallback() bool {
	v, ok := c.Metadata[MetaIsFallback].(bool)
	return ok && v
}

// SplitMethod returns the splitting method tag, or an empty string when the
// chunk carries none.
func (c *Chunk) SplitMethod() string {
	v, _ := c.Metadata[MetaSplitMethod].(string)
	return v
}
