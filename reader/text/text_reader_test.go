//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package text

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arccosnsx/MultiModalDocSystem/document"
)

func TestReadFromReader(t *testing.T) {
	rdr := New()

	docs, err := rdr.ReadFromReader("notes", strings.NewReader("hello\nworld"))
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	require.Equal(t, "notes", doc.Name)
	require.Equal(t, "hello\nworld", doc.Content)
	require.Equal(t, document.OriginExtracted, doc.Origin)
	require.NotEmpty(t, doc.ID)
}

func TestReadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("file content"), 0o644))

	rdr := New()
	docs, err := rdr.ReadFromFile(path)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "sample", docs[0].Name)
	require.Equal(t, "file content", docs[0].Content)
}

func TestReadFromFileMissing(t *testing.T) {
	rdr := New()
	_, err := rdr.ReadFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestSupportedExtensions(t *testing.T) {
	rdr := New()
	require.Contains(t, rdr.SupportedExtensions(), ".txt")
}
