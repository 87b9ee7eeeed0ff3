//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package chunking

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// fencedJSONRegex matches a ```json fenced code block and captures its body.
var fencedJSONRegex = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// extractSegments recovers the segment list from an LLM reply. The reply
// may be a bare JSON value, a fenced code block, or JSON embedded in prose.
// Recovery stages run in order: strict parse, fenced-block parse, first
// brace-span parse. Each stage is pure; the first that yields a JSON value
// wins, and the value is then normalized into a list of segment strings.
func extractSegments(raw string) ([]string, error) {
	value, err := parseJSONReply(raw)
	if err != nil {
		return nil, err
	}
	return normalizeSegments(value), nil
}

// parseJSONReply runs the staged recovery and returns the decoded value.
func parseJSONReply(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)

	var value any
	if err := json.Unmarshal([]byte(trimmed), &value); err == nil {
		return value, nil
	}

	if match := fencedJSONRegex.FindStringSubmatch(trimmed); match != nil {
		if err := json.Unmarshal([]byte(match[1]), &value); err == nil {
			return value, nil
		}
	}

	if span := firstBraceSpan(trimmed); span != "" {
		if err := json.Unmarshal([]byte(span), &value); err == nil {
			return value, nil
		}
	}

	return nil, fmt.Errorf("no JSON payload recovered from reply (%d chars)", len(raw))
}

// firstBraceSpan returns the first balanced top-level {...} span in s, or
// an empty string when none exists. Braces inside JSON strings are skipped.
func firstBraceSpan(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// normalizeSegments maps a decoded JSON value onto segment strings.
//
// Accepted shapes:
//   - an object with a list-valued "content" field: string elements are
//     used verbatim, anything else is stringified as a whole;
//   - an object whose "content" field is not a list: the field value is
//     stringified into a single segment;
//   - a bare list: treated like a "content" list;
//   - any other value: stringified into a single segment.
func normalizeSegments(value any) []string {
	switch v := value.(type) {
	case map[string]any:
		content, ok := v["content"]
		if !ok {
			return []string{stringify(v)}
		}
		list, ok := content.([]any)
		if !ok {
			return []string{stringify(content)}
		}
		return normalizeList(list)
	case []any:
		return normalizeList(v)
	default:
		return []string{stringify(v)}
	}
}

// normalizeList converts list elements into segment strings. An object
// element carrying a string "content" field contributes that field;
// everything else is stringified.
func normalizeList(list []any) []string {
	segments := make([]string, 0, len(list))
	for _, elem := range list {
		switch e := elem.(type) {
		case string:
			segments = append(segments, e)
		case map[string]any:
			if content, ok := e["content"].(string); ok {
				segments = append(segments, content)
			} else {
				segments = append(segments, stringify(e))
			}
		default:
			segments = append(segments, stringify(e))
		}
	}
	return segments
}

// stringify renders a decoded JSON value back to compact text.
func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(b)
}
