/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/rs/zerolog"

	"github.com/suparena/gesturerecognizer"
	"github.com/suparena/gesturerecognizer/errors"
	"github.com/suparena/gesturerecognizer/registry"
)

// Binding declares that Action on the target named Target is registered
// with the recognizer named Recognizer.
type Binding struct {
	Recognizer string
	Target     string
	Action     string
	// CreatedAt is optional; the zero value means unknown.
	CreatedAt strfmt.DateTime
}

// Key identifies a binding within a catalog.
func (b Binding) Key() string {
	return b.Recognizer + "/" + b.Target + "/" + b.Action
}

// HasCreatedAt reports whether CreatedAt is set.
func (b Binding) HasCreatedAt() bool {
	return !time.Time(b.CreatedAt).IsZero()
}

// Validate runs the checks that do not need the target itself, in the same
// order as registry.Registry.Add.
func (b Binding) Validate() error {
	if b.Recognizer == "" {
		return errors.NewValidationError("recognizer", "recognizer name cannot be empty")
	}
	if b.Target == "" {
		return errors.NewRegistrationError(errors.ErrMissingTarget, "", b.Action)
	}
	if b.Action == "" {
		return errors.NewRegistrationError(errors.ErrMissingAction, b.Target, b.Action)
	}
	if !registry.IsActionName(b.Action) {
		return errors.NewRegistrationError(errors.ErrInvalidActionType, b.Target, b.Action)
	}
	return nil
}

// Source loads bindings. An empty recognizer name selects every binding.
type Source interface {
	Bindings(ctx context.Context, recognizer string) ([]Binding, error)
}

// Resolver maps target names to targets.
type Resolver interface {
	ResolveTarget(name string) (registry.Target, bool)
}

// Targets is a Resolver backed by a map.
type Targets map[string]registry.Target

// ResolveTarget implements Resolver.
func (t Targets) ResolveTarget(name string) (registry.Target, bool) {
	target, ok := t[name]
	return target, ok
}

// Apply loads every binding from src and adds it to the recognizer it names
// in set. It stops at the first failing binding and returns the number of
// bindings applied before it. Duplicate bindings count as applied.
func Apply(ctx context.Context, src Source, resolver Resolver, set *gesturerecognizer.Set) (int, error) {
	logger := zerolog.Ctx(ctx)

	bindings, err := src.Bindings(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("failed to load bindings: %w", err)
	}
	logger.Debug().Int("bindings", len(bindings)).Msg("Applying bindings")

	for i, b := range bindings {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := applyOne(b, resolver, set); err != nil {
			logger.Warn().Err(err).Str("binding", b.Key()).Msg("Binding rejected")
			return i, fmt.Errorf("binding %d (%s): %w", i, b.Key(), err)
		}
		logger.Trace().Str("binding", b.Key()).Msg("Binding applied")
	}
	return len(bindings), nil
}

func applyOne(b Binding, resolver Resolver, set *gesturerecognizer.Set) error {
	if err := b.Validate(); err != nil {
		return err
	}
	r, err := set.Get(b.Recognizer)
	if err != nil {
		return err
	}
	target, ok := resolver.ResolveTarget(b.Target)
	if !ok {
		return errors.NewNotFoundError("target", b.Target)
	}
	return r.AddTarget(target, b.Action)
}
