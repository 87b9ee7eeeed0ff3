//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package pipeline orchestrates document ingestion end to end: extract text
// from a file, recover it through OCR when there is no text layer, clean it
// into paragraphs and segment it into chunks.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/Arccosnsx/MultiModalDocSystem/cleaner"
	"github.com/Arccosnsx/MultiModalDocSystem/document"
	"github.com/Arccosnsx/MultiModalDocSystem/log"
	"github.com/Arccosnsx/MultiModalDocSystem/ocr"
	"github.com/Arccosnsx/MultiModalDocSystem/reader"
	"github.com/Arccosnsx/MultiModalDocSystem/reader/markdown"
	"github.com/Arccosnsx/MultiModalDocSystem/reader/pdf"
	"github.com/Arccosnsx/MultiModalDocSystem/reader/text"
	"github.com/Arccosnsx/MultiModalDocSystem/segmenter"
)

// defaultBatchParallelism bounds concurrent documents in ProcessBatch.
const defaultBatchParallelism = 4

// Result is the outcome of processing one file.
type Result struct {
	// Task records identity and progress for the processing run.
	Task Task

	// Document carries the extracted (pre-clean) text.
	Document *document.Document

	// Paragraphs is the cleaned paragraph list.
	Paragraphs []string

	// CleanFallback reports that cleaning degraded to the raw input.
	CleanFallback bool

	// Chunks is the final segmentation output.
	Chunks []*document.Chunk
}

// Pipeline processes files into cleaned, segmented chunks.
type Pipeline struct {
	registry     *reader.Registry
	cleaner      *cleaner.Cleaner
	segmenter    *segmenter.Segmenter
	ocrExtractor ocr.Extractor
	parallelism  int
}

// Option is a functional option for configuring Pipeline.
type Option func(*Pipeline)

// WithRegistry replaces the default reader registry.
func WithRegistry(registry *reader.Registry) Option {
	return func(p *Pipeline) {
		p.registry = registry
	}
}

// WithCleaner enables LLM text cleaning between extraction and
// segmentation.
func WithCleaner(c *cleaner.Cleaner) Option {
	return func(p *Pipeline) {
		p.cleaner = c
	}
}

// WithOCRExtractor sets the OCR extractor used for sources without a text
// layer.
func WithOCRExtractor(extractor ocr.Extractor) Option {
	return func(p *Pipeline) {
		p.ocrExtractor = extractor
	}
}

// WithBatchParallelism sets the number of files ProcessBatch works on
// concurrently.
func WithBatchParallelism(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.parallelism = n
		}
	}
}

// New creates a pipeline around the given segmenter. Without WithCleaner
// the cleaning stage is skipped; without WithRegistry a registry covering
// text, markdown and PDF files is used.
func New(seg *segmenter.Segmenter, opts ...Option) (*Pipeline, error) {
	if seg == nil {
		return nil, fmt.Errorf("pipeline requires a segmenter")
	}
	p := &Pipeline{
		segmenter:   seg,
		parallelism: defaultBatchParallelism,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.registry == nil {
		p.registry = NewReaderRegistry()
	}
	return p, nil
}

// NewReaderRegistry builds a registry with the built-in readers.
func NewReaderRegistry() *reader.Registry {
	registry := reader.NewRegistry()
	registry.Register(new(text.Reader).SupportedExtensions(), text.New)
	registry.Register(new(markdown.Reader).SupportedExtensions(), markdown.New)
	registry.Register(new(pdf.Reader).SupportedExtensions(), pdf.New)
	return registry
}

// ProcessFile runs one file through extraction, cleaning and segmentation.
// The returned result carries the task record even on failure.
func (p *Pipeline) ProcessFile(ctx context.Context, filePath string) (*Result, error) {
	task := newTask(filepath.Base(filePath))
	result := &Result{Task: task}

	result.Task.advance(StatusProcessing, "extracting text")
	doc, err := p.extract(ctx, filePath)
	if err != nil {
		result.Task.fail(err)
		return result, fmt.Errorf("extract %s: %w", filePath, err)
	}
	result.Document = doc
	result.Task.DocumentID = doc.ID

	result.Task.advance(StatusProcessing, "cleaning text")
	cleanText := doc.Content
	if p.cleaner != nil {
		cleaned := p.cleaner.Clean(ctx, doc.Content)
		result.Paragraphs = cleaned.Paragraphs
		result.CleanFallback = cleaned.Fallback
		cleanText = strings.Join(cleaned.Paragraphs, document.ParagraphSeparator)
	}

	result.Task.advance(StatusProcessing, "segmenting text")
	result.Chunks = p.segmenter.Segment(ctx, cleanText)
	for _, chunk := range result.Chunks {
		chunk.Metadata[document.MetaDocumentID] = doc.ID
	}

	result.Task.complete(len(result.Chunks))
	log.Infof("processed %s: %d chunks", filePath, len(result.Chunks))
	return result, nil
}

// ProcessBatch processes files concurrently with per-file isolation.
// Results are returned in input order; a failed file yields a result whose
// task is failed while its neighbors proceed.
func (p *Pipeline) ProcessBatch(ctx context.Context, filePaths []string) []*Result {
	results := make([]*Result, len(filePaths))

	pool, err := ants.NewPool(p.parallelism)
	if err != nil {
		log.Warnf("batch pool unavailable, running sequentially: %v", err)
		for i, path := range filePaths {
			results[i], _ = p.ProcessFile(ctx, path)
		}
		return results
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, path := range filePaths {
		wg.Add(1)
		idx, filePath := i, path
		if err := pool.Submit(func() {
			defer wg.Done()
			results[idx], _ = p.ProcessFile(ctx, filePath)
		}); err != nil {
			wg.Done()
			task := newTask(filepath.Base(filePath))
			task.fail(err)
			results[idx] = &Result{Task: task}
		}
	}
	wg.Wait()

	return results
}

// extract turns a file into a document. Registered readers run first; a
// file no reader supports goes straight to OCR when an extractor is
// configured, matching the producer contract for scanned sources.
func (p *Pipeline) extract(ctx context.Context, filePath string) (*document.Document, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	if rdr, ok := p.registry.Get(ext, reader.WithOCRExtractor(p.ocrExtractor)); ok {
		docs, err := rdr.ReadFromFile(filePath)
		if err != nil {
			return nil, err
		}
		if len(docs) == 0 {
			return nil, fmt.Errorf("reader %s produced no documents", rdr.Name())
		}
		doc := docs[0]
		if needsOCR, _ := doc.Metadata[reader.MetaNeedsOCR].(bool); needsOCR {
			return nil, fmt.Errorf("%s has no text layer and no OCR extractor is configured", filePath)
		}
		return doc, nil
	}

	if p.ocrExtractor == nil {
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	recognized, err := p.ocrExtractor.ExtractText(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("OCR extraction failed: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(filePath), ext)
	return reader.NewDocument(name, recognized, document.OriginOCR), nil
}
