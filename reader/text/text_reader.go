//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package text provides a plain-text document reader.
package text

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Arccosnsx/MultiModalDocSystem/document"
	"github.com/Arccosnsx/MultiModalDocSystem/reader"
)

// supportedExtensions defines the file extensions supported by this reader.
var supportedExtensions = []string{".txt", ".text", ".log"}

// Reader reads plain-text documents.
type Reader struct{}

// New creates a new text reader with the given options.
func New(opts ...reader.Option) reader.Reader {
	config := &reader.Config{}
	for _, opt := range opts {
		opt(config)
	}
	return &Reader{}
}

// ReadFromReader reads text content from an io.Reader.
func (r *Reader) ReadFromReader(name string, rd io.Reader) ([]*document.Document, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read text content: %w", err)
	}
	doc := reader.NewDocument(name, string(content), document.OriginExtracted)
	return []*document.Document{doc}, nil
}

// ReadFromFile reads text content from a file path.
func (r *Reader) ReadFromFile(filePath string) ([]*document.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open text file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.ReadFromReader(name, file)
}

// Name implements the reader.Reader interface.
func (r *Reader) Name() string {
	return "TextReader"
}

// SupportedExtensions implements the reader.Reader interface.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}
