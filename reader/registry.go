//
// Copyright (C) 2026 MultiModalDocSystem Authors. All rights reserved.
//
// MultiModalDocSystem is licensed under the Apache License Version 2.0.
//
//

package reader

import (
	"sort"
	"strings"
	"sync"
)

// Builder creates a new Reader instance with options.
type Builder func(opts ...Option) Reader

// Registry maps file extensions to reader builders. Each caller owns its
// registry; there is no process-global instance.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]Builder),
	}
}

// Register binds a builder to file extensions. Extensions include the dot
// prefix and are matched case-insensitively; later registrations replace
// earlier ones.
func (r *Registry) Register(extensions []string, builder Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range extensions {
		r.builders[strings.ToLower(ext)] = builder
	}
}

// Get returns a new reader instance for the given file extension. It
// reports false when no reader is registered for the extension.
func (r *Registry) Get(extension string, opts ...Option) (Reader, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	builder, ok := r.builders[strings.ToLower(extension)]
	if !ok {
		return nil, false
	}
	return builder(opts...), true
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	extensions := make([]string, 0, len(r.builders))
	for ext := range r.builders {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	return extensions
}
