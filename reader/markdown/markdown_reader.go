//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

// Package markdown provides a markdown document reader that extracts plain
// text from the parsed AST, one paragraph per top-level block.
package markdown

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/Arccosnsx/MultiModalDocSystem/document"
	"github.com/Arccosnsx/MultiModalDocSystem/reader"
)

// supportedExtensions defines the file extensions supported by this reader.
var supportedExtensions = []string{".md", ".markdown"}

// Reader reads markdown documents and extracts their plain text.
type Reader struct {
	md goldmark.Markdown
}

// New creates a new markdown reader with the given options.
func New(opts ...reader.Option) reader.Reader {
	config := &reader.Config{}
	for _, opt := range opts {
		opt(config)
	}
	return &Reader{
		md: goldmark.New(),
	}
}

// ReadFromReader reads markdown content from an io.Reader.
func (r *Reader) ReadFromReader(name string, rd io.Reader) ([]*document.Document, error) {
	source, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("failed to read markdown content: %w", err)
	}
	doc := reader.NewDocument(name, r.extractText(source), document.OriginExtracted)
	return []*document.Document{doc}, nil
}

// ReadFromFile reads markdown content from a file path.
func (r *Reader) ReadFromFile(filePath string) ([]*document.Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open markdown file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return r.ReadFromReader(name, file)
}

// Name implements the reader.Reader interface.
func (r *Reader) Name() string {
	return "MarkdownReader"
}

// SupportedExtensions implements the reader.Reader interface.
func (r *Reader) SupportedExtensions() []string {
	return supportedExtensions
}

// extractText parses markdown and renders each top-level block as one
// plain-text paragraph, joined by blank lines. Markup is discarded; code
// block content is kept verbatim.
func (r *Reader) extractText(source []byte) string {
	root := r.md.Parser().Parse(gtext.NewReader(source))

	var blocks []string
	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		if block := strings.TrimSpace(renderBlock(node, source)); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, document.ParagraphSeparator)
}

// renderBlock collects the plain text of one block node and its children.
func renderBlock(node ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(t.Value)
		case *ast.FencedCodeBlock:
			writeLines(&sb, t.Lines(), source)
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			writeLines(&sb, t.Lines(), source)
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// writeLines copies raw source lines of a code block.
func writeLines(sb *strings.Builder, lines *gtext.Segments, source []byte) {
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
}
