//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package document provides the document and chunk data model shared by the
// cleaning and segmentation pipeline.
package document

import (
	"errors"
	"time"
)

// ParagraphSeparator is the blank-line boundary that delimits paragraphs in
// document text.
const ParagraphSeparator = "\n\n"

// Origin identifies how a document's text was produced.
type Origin string

const (
	// OriginOCR marks text produced by an OCR engine from a scanned source.
	OriginOCR Origin = "ocr"
	// OriginExtracted marks text extracted directly from a digital source.
	OriginExtracted Origin = "extracted"
)

var (
	// ErrNilDocument is returned when a nil document is passed to an operation.
	ErrNilDocument = errors.New("document cannot be nil")
	// ErrEmptyDocument is returned when a document has no content.
	ErrEmptyDocument = errors.New("document has no content")
)

// Document represents one text document entering the pipeline.
type Document struct {
	// ID is the unique identifier of the document.
	ID string `json:"id,omitempty"`

	// Name is the name or title of the document.
	Name string `json:"name,omitempty"`

	// Content is the text content of the document.
	Content string `json:"content"`

	// Origin records whether the content came from OCR or direct extraction.
	Origin Origin `json:"origin,omitempty"`

	// Metadata contains additional information about the document.
	Metadata map[string]any `json:"metadata,omitempty"`

	// CreatedAt is the creation timestamp of the document.
	CreatedAt time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the last update timestamp of the document.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Size returns the size of the document content in bytes.
func (d *Document) Size() int {
	return len(d.Content)
}

// IsEmpty returns true if the document has no content.
func (d *Document) IsEmpty() bool {
	return len(d.Content) == 0
}

// Clone creates a deep copy of the document.
func (d *Document) Clone() *Document {
	clone := &Document{
		ID:        d.ID,
		Name:      d.Name,
		Content:   d.Content,
		Origin:    d.Origin,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	if d.Metadata != nil {
		clone.Metadata = make(map[string]any)
		for k, v := range d.Metadata {
			clone.Metadata[k] = v
		}
	}

	return clone
}
