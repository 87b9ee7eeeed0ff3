//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefault(t *testing.T) {
	counter := NewDefault()
	require.False(t, counter.IsFallback())
	require.Equal(t, 0, counter.CountTokens(""))
	require.Greater(t, counter.CountTokens("hello world"), 0)
}

func TestNewUnknownEncodingFallsBack(t *testing.T) {
	counter := New("no-such-encoding")
	require.True(t, counter.IsFallback())
}

func TestCountTokensFallbackApproximation(t *testing.T) {
	counter := New("no-such-encoding")

	// Half the rune count, not the byte count.
	require.Equal(t, 5, counter.CountTokens("hello worl"))
	require.Equal(t, 4, counter.CountTokens("日本語のテキスト"))
	require.Equal(t, 0, counter.CountTokens(""))
}

func TestSplitByTokensRoundTrip(t *testing.T) {
	counter := NewDefault()
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)

	parts := counter.SplitByTokens(text, 16)
	require.Greater(t, len(parts), 1)
	require.Equal(t, text, strings.Join(parts, ""))
	for _, part := range parts {
		require.LessOrEqual(t, counter.CountTokens(part), 16)
	}
}

func TestSplitByTokensSmallInput(t *testing.T) {
	counter := NewDefault()

	require.Nil(t, counter.SplitByTokens("", 10))
	require.Equal(t, []string{"hi"}, counter.SplitByTokens("hi", 10))
}

func TestSplitByTokensFallbackRoundTrip(t *testing.T) {
	counter := New("no-such-encoding")
	text := strings.Repeat("héllo wörld ", 30)

	parts := counter.SplitByTokens(text, 8)
	require.Greater(t, len(parts), 1)
	require.Equal(t, text, strings.Join(parts, ""))
}
