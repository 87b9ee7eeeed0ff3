//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package cleaner

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arccosnsx/MultiModalDocSystem/llm"
)

// fakeClient answers Complete with a fixed reply, or fails inputs that
// contain failOn.
type fakeClient struct {
	mu     sync.Mutex
	reply  string
	failOn string
	calls  int
}

func (f *fakeClient) Complete(ctx context.Context, prompt string, opts ...llm.CompleteOption) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.failOn != "" && strings.Contains(prompt, f.failOn) {
		return "", errors.New("backend unavailable")
	}
	return f.reply, nil
}

func (f *fakeClient) CompleteBatch(ctx context.Context, prompts []string, opts ...llm.CompleteOption) []llm.Result {
	results := make([]llm.Result, len(prompts))
	for i, prompt := range prompts {
		text, err := f.Complete(ctx, prompt, opts...)
		results[i] = llm.Result{Text: text, Err: err}
	}
	return results
}

func (f *fakeClient) Close() error { return nil }

func TestCleanSuccess(t *testing.T) {
	client := &fakeClient{reply: "Clean paragraph one.\n\nClean paragraph two."}
	c := New(client)

	result := c.Clean(context.Background(), "r4w   t3xt with OCR n0ise")
	require.False(t, result.Fallback)
	require.Equal(t, []string{"Clean paragraph one.", "Clean paragraph two."}, result.Paragraphs)
}

func TestCleanBackendFailureFallsBack(t *testing.T) {
	client := &fakeClient{failOn: "raw input"}
	c := New(client)

	result := c.Clean(context.Background(), "raw input line one\n\nraw input line two")
	require.True(t, result.Fallback)
	require.Equal(t, []string{"raw input line one", "raw input line two"}, result.Paragraphs)
}

func TestCleanBlankCompletionFallsBack(t *testing.T) {
	client := &fakeClient{reply: "   \n  \n"}
	c := New(client)

	result := c.Clean(context.Background(), "original content")
	require.True(t, result.Fallback)
	require.Equal(t, []string{"original content"}, result.Paragraphs)
}

func TestCleanWithInstruction(t *testing.T) {
	client := &fakeClient{reply: "cleaned"}
	c := New(client)

	result := c.Clean(context.Background(), "text", WithInstruction("keep tables"))
	require.False(t, result.Fallback)
	require.Equal(t, []string{"cleaned"}, result.Paragraphs)
}

func TestBatchCleanOrderAndIsolation(t *testing.T) {
	client := &fakeClient{reply: "cleaned output", failOn: "poison"}
	c := New(client, WithBatchParallelism(2))

	inputs := []string{"first text", "poison text", "third text"}
	results := c.BatchClean(context.Background(), inputs)
	require.Len(t, results, 3)

	require.False(t, results[0].Fallback)
	require.Equal(t, []string{"cleaned output"}, results[0].Paragraphs)

	// The failing item degrades to its own raw split without affecting
	// its neighbors.
	require.True(t, results[1].Fallback)
	require.Equal(t, []string{"poison text"}, results[1].Paragraphs)

	require.False(t, results[2].Fallback)
	require.Equal(t, []string{"cleaned output"}, results[2].Paragraphs)
}

func TestBatchCleanEmpty(t *testing.T) {
	c := New(&fakeClient{reply: "x"})
	require.Empty(t, c.BatchClean(context.Background(), nil))
}

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "blank line boundaries",
			input: "one\n\ntwo\n\n\n\nthree",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "single block re-splits on lines",
			input: "line one\nline two\nline three",
			want:  []string{"line one", "line two", "line three"},
		},
		{
			name:  "whitespace only",
			input: "  \n \n ",
			want:  nil,
		},
		{
			name:  "single line stays whole",
			input: "just one line",
			want:  []string{"just one line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SplitParagraphs(tt.input))
		})
	}
}
