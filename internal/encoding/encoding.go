//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package encoding provides rune-safe text slicing helpers used by the
// character-based fallback paths.
package encoding

import "unicode/utf8"

// RuneCount returns the number of runes in s.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}

// SafeSplitBySize splits s into consecutive windows of at most size runes.
// Windows never cut a rune in half and concatenating them reproduces s
// exactly. A size below 1 yields the whole string as a single window.
func SafeSplitBySize(s string, size int) []string {
	if s == "" {
		return nil
	}
	if size < 1 || RuneCount(s) <= size {
		return []string{s}
	}

	var parts []string
	count := 0
	start := 0
	for i := range s {
		if count == size {
			parts = append(parts, s[start:i])
			start = i
			count = 0
		}
		count++
	}
	parts = append(parts, s[start:])
	return parts
}

// SafeOverlap returns the last size runes of s without cutting a rune.
func SafeOverlap(s string, size int) string {
	if size < 1 {
		return ""
	}
	total := RuneCount(s)
	if total <= size {
		return s
	}
	skip := total - size
	for i := range s {
		if skip == 0 {
			return s[i:]
		}
		skip--
	}
	return ""
}
