/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory catalog.Source for testing
package mock

import (
	"context"
	"sync"

	"github.com/suparena/gesturerecognizer/catalog"
	"github.com/suparena/gesturerecognizer/errors"
)

// Source is an in-memory catalog.Source that keeps bindings in insertion order
type Source struct {
	mu        sync.RWMutex
	bindings  []catalog.Binding
	loadError error
	calls     int
}

// New creates a mock Source holding bindings
func New(bindings ...catalog.Binding) *Source {
	return &Source{bindings: append([]catalog.Binding(nil), bindings...)}
}

// WithLoadError makes Bindings return err
func (m *Source) WithLoadError(err error) *Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadError = err
	return m
}

// Bindings implements catalog.Source
func (m *Source) Bindings(ctx context.Context, recognizer string) ([]catalog.Binding, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.loadError != nil {
		return nil, m.loadError
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]catalog.Binding, 0, len(m.bindings))
	for _, b := range m.bindings {
		if recognizer == "" || b.Recognizer == recognizer {
			out = append(out, b)
		}
	}
	return out, nil
}

// Add appends a binding
func (m *Source) Add(b catalog.Binding) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindings = append(m.bindings, b)
}

// Delete removes the binding with the same key as b
func (m *Source) Delete(b catalog.Binding) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.bindings {
		if existing.Key() == b.Key() {
			m.bindings = append(m.bindings[:i], m.bindings[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("binding", b.Key())
}

// Helper methods for testing

// Count returns the number of stored bindings
func (m *Source) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bindings)
}

// Calls returns how many times Bindings was called
func (m *Source) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// Clear removes all bindings
func (m *Source) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindings = nil
}
