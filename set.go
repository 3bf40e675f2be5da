/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gesturerecognizer

import (
	"sort"
	"sync"

	"github.com/suparena/gesturerecognizer/errors"
)

// Set is a thread-safe collection of named recognizers. The lock only
// guards the name map; each Recognizer is still owned by one goroutine.
type Set struct {
	mu          sync.RWMutex
	recognizers map[string]*Recognizer
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{
		recognizers: make(map[string]*Recognizer),
	}
}

// Register stores r under name.
func (s *Set) Register(name string, r *Recognizer) error {
	if name == "" {
		return errors.NewValidationError("name", "recognizer name cannot be empty")
	}
	if r == nil {
		return errors.NewValidationError("recognizer", "recognizer cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.recognizers[name]; exists {
		return errors.NewAlreadyExistsError("recognizer", name)
	}
	s.recognizers[name] = r
	return nil
}

// Get retrieves the recognizer registered under name.
func (s *Set) Get(name string) (*Recognizer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, exists := s.recognizers[name]
	if !exists {
		return nil, errors.NewNotFoundError("recognizer", name)
	}
	return r, nil
}

// Remove deletes the recognizer registered under name.
func (s *Set) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.recognizers[name]; !exists {
		return errors.NewNotFoundError("recognizer", name)
	}
	delete(s.recognizers, name)
	return nil
}

// Names returns the registered names in sorted order.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.recognizers))
	for name := range s.recognizers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
