//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package tokenizer provides token counting and token-bounded slicing backed
// by tiktoken, with a deterministic character-based approximation when no
// encoder is available.
package tokenizer

import (
	"github.com/tiktoken-go/tokenizer"

	"github.com/Arccosnsx/MultiModalDocSystem/internal/encoding"
	"github.com/Arccosnsx/MultiModalDocSystem/log"
)

// DefaultEncoding is the encoding used when none is specified.
const DefaultEncoding = string(tokenizer.Cl100kBase)

// fallbackCharsPerToken is the chars-per-token ratio of the approximation
// used when no encoder is available.
const fallbackCharsPerToken = 4

// Counter counts tokens and slices text by token budget.
//
// Construction never fails: when the requested encoding is unsupported the
// counter silently degrades to a character-based approximation (one token
// per two runes, slices of maxTokens*4 runes).
type Counter struct {
	codec tokenizer.Codec
}

// New creates a counter for the given tiktoken encoding name, for example
// "cl100k_base". Unsupported names degrade to the character approximation.
func New(encodingName string) *Counter {
	codec, err := tokenizer.Get(tokenizer.Encoding(encodingName))
	if err != nil {
		log.Warnf("tokenizer: encoding %q unavailable, using character approximation: %v", encodingName, err)
		return &Counter{}
	}
	return &Counter{codec: codec}
}

// NewDefault creates a counter with the default encoding.
func NewDefault() *Counter {
	return New(DefaultEncoding)
}

// IsFallback reports whether the counter runs on the character approximation.
func (c *Counter) IsFallback() bool {
	return c.codec == nil
}

// CountTokens returns the token count of text. It never fails; in fallback
// mode the count is approximated as half the rune count.
func (c *Counter) CountTokens(text string) int {
	if c.codec == nil {
		return encoding.RuneCount(text) / 2
	}
	ids, _, err := c.codec.Encode(text)
	if err != nil {
		// Encoding errors degrade to the approximation rather than failing.
		return encoding.RuneCount(text) / 2
	}
	return len(ids)
}

// SplitByTokens splits text into consecutive pieces of at most maxTokens
// tokens each. Concatenating the pieces reproduces the input under the
// counter's own encode/decode round trip; in fallback mode the pieces are
// fixed rune windows and concatenation is exact.
func (c *Counter) SplitByTokens(text string, maxTokens int) []string {
	if text == "" {
		return nil
	}
	if maxTokens < 1 {
		maxTokens = 1
	}
	if c.codec == nil {
		return encoding.SafeSplitBySize(text, maxTokens*fallbackCharsPerToken)
	}

	ids, _, err := c.codec.Encode(text)
	if err != nil {
		return encoding.SafeSplitBySize(text, maxTokens*fallbackCharsPerToken)
	}

	var parts []string
	for start := 0; start < len(ids); start += maxTokens {
		end := min(start+maxTokens, len(ids))
		piece, err := c.codec.Decode(ids[start:end])
		if err != nil {
			// A token window that fails to decode would lose text; fall back
			// to character windows over the whole input instead.
			return encoding.SafeSplitBySize(text, maxTokens*fallbackCharsPerToken)
		}
		parts = append(parts, piece)
	}
	return parts
}
