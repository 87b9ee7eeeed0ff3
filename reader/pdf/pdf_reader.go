//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package pdf provides a PDF document reader built on the text layer, with
// optional OCR recovery for scanned documents.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Arccosnsx/MultiModalDocSystem/document"
	"github.com/Arccosnsx/MultiModalDocSystem/ocr"
	"github.com/Arccosnsx/MultiModalDocSystem/reader"
)

// supportedExtensions defines the file extensions supported by this reader.
var supportedExtensions = []string{".pdf"}

// Reader reads PDF documents through their text layer. When a document has
// no extractable text and an OCR extractor is configured, the raw bytes are
// handed to the extractor; otherwise the document is marked as needing OCR.
type Reader struct {
	ocrExtractor ocr.Extractor
}

// New creates a new PDF reader with the given options.
func New(opts ...reader.Option) reader.Reader {
	config := &reader.Config{}
	for _, opt := range opts {
		opt(config)
	}
	return &Reader{
		ocrExtractor: config.OCRExtractor,
	}
}

// ReadFromReader reads PDF content from an io.Reader.
func (r *Reader) ReadFromReader(name string, rd io.Reader) ([]*document.Document, error) {
	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF content: %w", err)
	}
	return r.readBytes(context.Background(), name, content)
}

// ReadFromFile reads PDF content from a file path.
func (r *Reader) ReadFromFile(filePath string) ([]*document.Document, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF file: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.readBytes(context.Background(), name, content)
}

// Name implements the reader.Reader interface.
func (r *Reader) Name() string {
	return "PDFReader"
}

// SupportedExtensions implements the reader.Reader interface.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}

// readBytes extracts the text layer and falls back to OCR when there is
// none.
func (r *Reader) readBytes(ctx context.Context, name string, content []byte) ([]*document.Document, error) {
	text, err := extractTextLayer(content)
	if err != nil {
		return nil, fmt.Errorf("failed to extract PDF text: %w", err)
	}

	if strings.TrimSpace(text) != "" {
		doc := reader.NewDocument(name, text, document.OriginExtracted)
		return []*document.Document{doc}, nil
	}

	if r.ocrExtractor != nil {
		recognized, err := r.ocrExtractor.ExtractText(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("OCR extraction failed: %w", err)
		}
		doc := reader.NewDocument(name, recognized, document.OriginOCR)
		return []*document.Document{doc}, nil
	}

	// No text layer and no extractor: surface the document anyway so the
	// caller can route it to OCR later.
	doc := reader.NewDocument(name, "", document.OriginExtracted)
	doc.Metadata[reader.MetaNeedsOCR] = true
	return []*document.Document{doc}, nil
}

// extractTextLayer pulls plain text from every page of the PDF. Pages whose
// text cannot be decoded are skipped rather than failing the document.
func extractTextLayer(content []byte) (string, error) {
	pdfReader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || pageText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}
