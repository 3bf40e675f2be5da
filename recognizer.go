/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gesturerecognizer

import (
	"github.com/rs/zerolog"

	"github.com/suparena/gesturerecognizer/registry"
	"github.com/suparena/gesturerecognizer/state"
)

// Recognizer holds a recognition state and the target-action pairs to
// notify when that state is reported. The state is driven by an external
// recognition engine; the recognizer never changes it on its own.
type Recognizer struct {
	// State is the current recognition state. It starts at state.Possible.
	State state.State

	targets *registry.Registry
	logger  zerolog.Logger
}

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithRegistry makes the recognizer use r instead of a fresh registry.
// Sharing one registry between recognizers is the caller's decision.
func WithRegistry(r *registry.Registry) Option {
	return func(g *Recognizer) {
		if r != nil {
			g.targets = r
		}
	}
}

// WithLogger sets the logger used for registration events.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Recognizer) {
		g.logger = l
	}
}

// New creates a Recognizer in the Possible state.
func New(opts ...Option) *Recognizer {
	g := &Recognizer{
		State:  state.Possible,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.targets == nil {
		g.targets = registry.New()
	}
	return g
}

// AddTarget registers action on target. See registry.Registry.Add.
func (g *Recognizer) AddTarget(target registry.Target, action string) error {
	before := g.targets.Len()
	if err := g.targets.Add(target, action); err != nil {
		g.logger.Debug().Err(err).Str("action", action).Msg("Rejected target")
		return err
	}
	if g.targets.Len() == before {
		g.logger.Trace().Str("action", action).Msg("Target already registered")
		return nil
	}
	g.logger.Debug().Str("action", action).Int("pairs", g.targets.Len()).Msg("Target added")
	return nil
}

// RemoveTarget removes the pairs selected by the filters. See
// registry.Registry.Remove.
func (g *Recognizer) RemoveTarget(target registry.TargetFilter, action registry.ActionFilter) {
	before := g.targets.Len()
	g.targets.Remove(target, action)
	if removed := before - g.targets.Len(); removed > 0 {
		g.logger.Debug().Int("removed", removed).Int("pairs", g.targets.Len()).Msg("Targets removed")
	}
}

// Targets returns the registered pairs in insertion order, for a dispatcher
// to invoke when the state is reported.
func (g *Recognizer) Targets() []registry.Pair {
	return g.targets.Pairs()
}

// Registry returns the underlying registry.
func (g *Recognizer) Registry() *registry.Registry {
	return g.targets
}
