//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package cleaner

import "strings"

// defaultInstruction is the base cleaning instruction. A caller-supplied
// instruction is appended to it, never substituted for it.
const defaultInstruction = "Remove the markdown markers and non-text artifacts from the passage below, " +
	"plausibly repair parts that look like OCR misrecognition, and segment the result " +
	"by semantics at roughly 500 tokens per segment."

// buildCleanPrompt assembles the cleaning prompt for one input text.
func buildCleanPrompt(text, customInstruction string) string {
	var b strings.Builder
	b.WriteString(defaultInstruction)
	if customInstruction != "" {
		b.WriteString("\n")
		b.WriteString(customInstruction)
	}
	b.WriteString("\n\nOriginal text:\n")
	b.WriteString(text)
	return b.String()
}
