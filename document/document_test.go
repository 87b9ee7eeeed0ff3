//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package document

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocumentClone(t *testing.T) {
	doc := &Document{
		ID:       "id-1",
		Name:     "name",
		Content:  "content",
		Origin:   OriginOCR,
		Metadata: map[string]any{"key": "value"},
	}

	clone := doc.Clone()
	require.Equal(t, doc, clone)

	clone.Metadata["key"] = "changed"
	require.Equal(t, "value", doc.Metadata["key"], "clone metadata must be independent")
}

func TestDocumentSize(t *testing.T) {
	doc := &Document{Content: "hello"}
	require.Equal(t, 5, doc.Size())
	require.False(t, doc.IsEmpty())
	require.True(t, (&Document{}).IsEmpty())
}

func TestChunkHelpers(t *testing.T) {
	chunk := &Chunk{
		ID:      0,
		Content: "text",
		Metadata: map[string]any{
			MetaIsFallback:  true,
			MetaSplitMethod: SplitMethodTokenBased,
		},
	}
	require.True(t, chunk.IsFallback())
	require.Equal(t, SplitMethodTokenBased, chunk.SplitMethod())

	bare := &Chunk{Metadata: map[string]any{}}
	require.False(t, bare.IsFallback())
	require.Equal(t, "", bare.SplitMethod())
}
