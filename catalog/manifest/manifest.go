/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package manifest reads and writes binding catalogs as YAML documents:
//
//	bindings:
//	  - recognizer: swipe
//	    target: gallery
//	    action: next
//	    createdAt: 2025-03-01T12:00:00.000Z
//
// An action that is not a YAML string (a mapping, a list, a number) is
// rejected with errors.ErrInvalidActionType.
package manifest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-openapi/strfmt"
	"gopkg.in/yaml.v3"

	"github.com/suparena/gesturerecognizer/catalog"
	"github.com/suparena/gesturerecognizer/errors"
)

type document struct {
	Bindings []entry `yaml:"bindings"`
}

type entry struct {
	Recognizer string    `yaml:"recognizer"`
	Target     string    `yaml:"target"`
	Action     yaml.Node `yaml:"action"`
	CreatedAt  string    `yaml:"createdAt,omitempty"`
}

// Parse reads a manifest from r.
func Parse(r io.Reader) ([]catalog.Binding, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	bindings := make([]catalog.Binding, 0, len(doc.Bindings))
	for i, e := range doc.Bindings {
		b, err := e.binding()
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

func (e entry) binding() (catalog.Binding, error) {
	b := catalog.Binding{Recognizer: e.Recognizer, Target: e.Target}

	if b.Recognizer == "" {
		return b, errors.NewValidationError("recognizer", "recognizer name cannot be empty")
	}
	if b.Target == "" {
		return b, errors.NewRegistrationError(errors.ErrMissingTarget, "", "")
	}

	switch {
	case e.Action.Kind == 0, e.Action.Kind == yaml.ScalarNode && e.Action.ShortTag() == "!!null":
		return b, errors.NewRegistrationError(errors.ErrMissingAction, b.Target, "")
	case e.Action.Kind != yaml.ScalarNode || e.Action.ShortTag() != "!!str":
		return b, errors.NewRegistrationError(errors.ErrInvalidActionType, b.Target, "")
	}
	b.Action = e.Action.Value

	if e.CreatedAt != "" {
		dt, err := strfmt.ParseDateTime(e.CreatedAt)
		if err != nil {
			return b, errors.NewValidationError("createdAt", err.Error())
		}
		b.CreatedAt = dt
	}

	return b, b.Validate()
}

// Load reads the manifest at path.
func Load(path string) ([]catalog.Binding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Marshal encodes bindings as a manifest.
func Marshal(bindings []catalog.Binding) ([]byte, error) {
	doc := struct {
		Bindings []map[string]string `yaml:"bindings"`
	}{Bindings: make([]map[string]string, 0, len(bindings))}

	for _, b := range bindings {
		m := map[string]string{
			"recognizer": b.Recognizer,
			"target":     b.Target,
			"action":     b.Action,
		}
		if b.HasCreatedAt() {
			m["createdAt"] = b.CreatedAt.String()
		}
		doc.Bindings = append(doc.Bindings, m)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// File is a catalog.Source reading the manifest at the given path on every call.
type File string

// Bindings implements catalog.Source.
func (f File) Bindings(ctx context.Context, recognizer string) ([]catalog.Binding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all, err := Load(string(f))
	if err != nil {
		return nil, err
	}
	if recognizer == "" {
		return all, nil
	}

	out := all[:0]
	for _, b := range all {
		if b.Recognizer == recognizer {
			out = append(out, b)
		}
	}
	return out, nil
}
