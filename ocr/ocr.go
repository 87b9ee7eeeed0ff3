//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package ocr defines the interface for extracting text from scanned page
// images. Engine implementations live outside the pipeline; the pipeline
// only consumes the extracted text.
package ocr

import (
	"context"
	"io"
)

// Extractor recognizes text in page images.
type Extractor interface {
	// ExtractText extracts text from raw image data.
	ExtractText(ctx context.Context, imageData []byte, opts ...Option) (string, error)

	// ExtractTextFromReader extracts text from an image reader.
	ExtractTextFromReader(ctx context.Context, reader io.Reader, opts ...Option) (string, error)

	// Close releases any resources held by the OCR engine.
	Close() error
}

// Option configures one extraction call.
type Option func(*Options)

// Options holds runtime options for extraction.
type Options struct {
	// Languages overrides the engine's configured recognition languages.
	Languages []string
}

// WithLanguages overrides the recognition languages for one call.
func WithLanguages(languages ...string) Option {
	return func(o *Options) {
		o.Languages = languages
	}
}
