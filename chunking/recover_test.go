//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractSegments(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			name:  "bare object with content list",
			reply: `{"content": ["first passage", "second passage"]}`,
			want:  []string{"first passage", "second passage"},
		},
		{
			name:  "fenced code block",
			reply: "```json\n{\"content\": [\"first passage\", \"second passage\"]}\n```",
			want:  []string{"first passage", "second passage"},
		},
		{
			name:  "object embedded in prose",
			reply: `Here is the split you asked for: {"content": ["only passage"]} hope that helps!`,
			want:  []string{"only passage"},
		},
		{
			name:  "bare list",
			reply: `["first passage", "second passage"]`,
			want:  []string{"first passage", "second passage"},
		},
		{
			name:  "content field is not a list",
			reply: `{"content": "single passage"}`,
			want:  []string{"single passage"},
		},
		{
			name:  "object without content field",
			reply: `{"chunks": ["a"]}`,
			want:  []string{`{"chunks":["a"]}`},
		},
		{
			name:  "list elements with content objects",
			reply: `{"content": [{"content": "nested passage"}, "plain passage"]}`,
			want:  []string{"nested passage", "plain passage"},
		},
		{
			name:  "non-string list elements are stringified",
			reply: `{"content": ["text", 42]}`,
			want:  []string{"text", "42"},
		},
		{
			name:  "braces inside strings do not confuse recovery",
			reply: `noise {"content": ["uses { and } freely"]} noise`,
			want:  []string{"uses { and } freely"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractSegments(tt.reply)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExtractSegmentsUnrecoverable(t *testing.T) {
	_, err := extractSegments("not json at all")
	require.Error(t, err)

	_, err = extractSegments("```json\nstill {not json\n```")
	require.Error(t, err)
}

// The same payload must recover identically whether it arrives bare, fenced
// or buried in prose.
func TestExtractSegmentsStageEquivalence(t *testing.T) {
	payload := `{"content": ["alpha", "beta"]}`

	bare, err := extractSegments(payload)
	require.NoError(t, err)

	fenced, err := extractSegments("```json\n" + payload + "\n```")
	require.NoError(t, err)

	prose, err := extractSegments("Sure! " + payload + " Let me know.")
	require.NoError(t, err)

	require.Equal(t, bare, fenced)
	require.Equal(t, bare, prose)
}

func TestFirstBraceSpan(t *testing.T) {
	require.Equal(t, `{"a":1}`, firstBraceSpan(`x {"a":1} y`))
	require.Equal(t, `{"a":{"b":2}}`, firstBraceSpan(`{"a":{"b":2}} {"c":3}`))
	require.Equal(t, "", firstBraceSpan("no braces here"))
	require.Equal(t, "", firstBraceSpan(`{"unbalanced": 1`))
}
