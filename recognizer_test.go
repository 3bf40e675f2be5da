/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gesturerecognizer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/suparena/gesturerecognizer/errors"
	"github.com/suparena/gesturerecognizer/registry"
	"github.com/suparena/gesturerecognizer/state"
)

func newView(actions ...string) *registry.Actions {
	v := registry.NewActions(nil)
	for _, name := range actions {
		v.Set(name, func(any) {})
	}
	return v
}

func TestNewRecognizer(t *testing.T) {
	g := New()

	if g.State != state.Possible {
		t.Fatalf("Expected initial state %q, got %q", state.Possible, g.State)
	}
	if g.Registry() == nil {
		t.Fatal("Expected a registry")
	}
	if len(g.Targets()) != 0 {
		t.Fatalf("Expected no targets, got %d", len(g.Targets()))
	}
}

func TestRecognizersOwnSeparateRegistries(t *testing.T) {
	a, b := New(), New()
	view := newView("tap")

	if err := a.AddTarget(view, "tap"); err != nil {
		t.Fatalf("AddTarget failed: %v", err)
	}

	if len(b.Targets()) != 0 {
		t.Fatal("Recognizers must not share storage unless asked to")
	}
}

func TestWithRegistry(t *testing.T) {
	shared := registry.New()
	a := New(WithRegistry(shared))
	b := New(WithRegistry(shared))
	view := newView("tap")

	_ = a.AddTarget(view, "tap")

	if len(b.Targets()) != 1 {
		t.Fatalf("Expected shared registry to hold 1 pair, got %d", len(b.Targets()))
	}

	c := New(WithRegistry(nil))
	if c.Registry() == nil || c.Registry() == shared {
		t.Fatal("nil registry option must fall back to a fresh registry")
	}
}

func TestAddTargetErrors(t *testing.T) {
	g := New()

	if err := g.AddTarget(nil, ""); !errors.IsMissingTarget(err) {
		t.Errorf("Expected missing target, got %v", err)
	}
	if err := g.AddTarget(newView(), ""); !errors.IsMissingAction(err) {
		t.Errorf("Expected missing action, got %v", err)
	}
	if err := g.AddTarget(newView(), "\xff"); !errors.IsInvalidActionType(err) {
		t.Errorf("Expected invalid action type, got %v", err)
	}
	if err := g.AddTarget(newView(), "foo"); !errors.IsActionNotCallable(err) {
		t.Errorf("Expected action not callable, got %v", err)
	}
}

func TestRecognizerScenario(t *testing.T) {
	g := New()
	tView, uView := newView("a", "b"), newView("a", "b")

	_ = g.AddTarget(tView, "a")
	_ = g.AddTarget(tView, "a")
	_ = g.AddTarget(tView, "b")
	_ = g.AddTarget(uView, "a")
	_ = g.AddTarget(uView, "b")
	if n := len(g.Targets()); n != 4 {
		t.Fatalf("Expected 4 pairs, got %d", n)
	}

	g.RemoveTarget(registry.ForTarget(tView), registry.ForAction("a"))
	if n := len(g.Targets()); n != 3 {
		t.Fatalf("Expected 3 pairs, got %d", n)
	}

	g.RemoveTarget(registry.AnyTarget(), registry.ForAction("b"))
	pairs := g.Targets()
	if len(pairs) != 1 || pairs[0].Target != uView || pairs[0].Action != "a" {
		t.Fatalf("Expected only (U, a) to remain, got %v", pairs)
	}

	g.RemoveTarget(registry.AnyTarget(), registry.AnyAction())
	if n := len(g.Targets()); n != 0 {
		t.Fatalf("Expected empty registry, got %d", n)
	}
}

func TestRegistryDoesNotChangeState(t *testing.T) {
	g := New()
	g.State = state.Began

	_ = g.AddTarget(newView("x"), "x")
	g.RemoveTarget(registry.AnyTarget(), registry.AnyAction())

	if g.State != state.Began {
		t.Fatalf("Registry operations must not touch state, got %q", g.State)
	}
}

func TestRecognizerLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	g := New(WithLogger(logger))
	view := newView("tap")

	_ = g.AddTarget(view, "tap")
	_ = g.AddTarget(view, "missing")
	g.RemoveTarget(registry.ForTarget(view), registry.AnyAction())

	out := buf.String()
	for _, want := range []string{"Target added", "Rejected target", "Targets removed"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log output to contain %q, got:\n%s", want, out)
		}
	}
}
