//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package reader defines the interface for document readers. Readers turn
// file content into documents carrying extracted text; cleaning and
// segmentation happen downstream.
package reader

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/Arccosnsx/MultiModalDocSystem/document"
	"github.com/Arccosnsx/MultiModalDocSystem/ocr"
)

// Document metadata keys set by readers.
const (
	// MetaSource records where the document content came from (file name
	// or URL).
	MetaSource = "source"
	// MetaNeedsOCR marks documents whose source had no extractable text
	// layer and no OCR extractor was available.
	MetaNeedsOCR = "needs_ocr"
)

// Config holds configuration for readers.
type Config struct {
	// OCRExtractor recovers text from sources without a text layer.
	OCRExtractor ocr.Extractor
}

// Option is a functional option for configuring readers.
type Option func(*Config)

// WithOCRExtractor sets the OCR extractor used when a source has no
// extractable text layer.
func WithOCRExtractor(extractor ocr.Extractor) Option {
	return func(c *Config) {
		c.OCRExtractor = extractor
	}
}

// Reader interface for different document readers.
type Reader interface {
	// ReadFromReader reads content from an io.Reader and returns a list of
	// documents. The name parameter identifies the source.
	ReadFromReader(name string, r io.Reader) ([]*document.Document, error)

	// ReadFromFile reads content from a file path and returns a list of
	// documents.
	ReadFromFile(filePath string) ([]*document.Document, error)

	// Name returns the name of this reader.
	Name() string

	// SupportedExtensions returns the file extensions this reader supports,
	// dot prefix included (e.g. ".pdf", ".txt").
	SupportedExtensions() []string
}

// NewDocument builds a document from extracted text with a fresh id and
// timestamps.
func NewDocument(name, content string, origin document.Origin) *document.Document {
	now := time.Now()
	return &document.Document{
		ID:        uuid.NewString(),
		Name:      name,
		Content:   content,
		Origin:    origin,
		Metadata:  map[string]any{MetaSource: name},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
