//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSafeSplitBySize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		size  int
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			size:  3,
			want:  nil,
		},
		{
			name:  "input fits in one window",
			input: "hello",
			size:  10,
			want:  []string{"hello"},
		},
		{
			name:  "exact multiple",
			input: "abcdef",
			size:  3,
			want:  []string{"abc", "def"},
		},
		{
			name:  "remainder window",
			input: "abcdefg",
			size:  3,
			want:  []string{"abc", "def", "g"},
		},
		{
			name:  "non-positive size keeps input whole",
			input: "abc",
			size:  0,
			want:  []string{"abc"},
		},
		{
			name:  "multibyte runes are not cut",
			input: "日本語のテキスト",
			size:  3,
			want:  []string{"日本語", "のテキ", "スト"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeSplitBySize(tt.input, tt.size)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSafeSplitBySizeRoundTrip(t *testing.T) {
	input := strings.Repeat("héllo wörld ", 50)
	for _, size := range []int{1, 2, 7, 64, 1000} {
		parts := SafeSplitBySize(input, size)
		require.Equal(t, input, strings.Join(parts, ""))
		for _, part := range parts {
			require.LessOrEqual(t, RuneCount(part), max(size, RuneCount(input)))
		}
	}
}

func TestSafeOverlap(t *testing.T) {
	require.Equal(t, "", SafeOverlap("hello", 0))
	require.Equal(t, "llo", SafeOverlap("hello", 3))
	require.Equal(t, "hello", SafeOverlap("hello", 10))
	require.Equal(t, "キスト", SafeOverlap("日本語のテキスト", 3))
}

func TestRuneCount(t *testing.T) {
	require.Equal(t, 0, RuneCount(""))
	require.Equal(t, 5, RuneCount("hello"))
	require.Equal(t, 8, RuneCount("日本語のテキスト"))
}
