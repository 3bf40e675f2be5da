/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import "sort"

// ActionFunc is an action a dispatcher invokes on a target. sender is
// whatever the dispatcher passes, usually the recognizer.
type ActionFunc func(sender any)

// Target is a listener that exposes named actions. Targets are matched by
// ==, so a target must have a stable identity: pointers to structs with at
// least one field, or comparable values.
type Target interface {
	// Action returns the action registered under name, if any.
	Action(name string) (ActionFunc, bool)
}

// Actions is a Target backed by a map of named functions.
// Use it through a pointer so that identity comparisons work.
type Actions struct {
	fns map[string]ActionFunc
}

// NewActions creates an Actions target holding a copy of fns.
func NewActions(fns map[string]ActionFunc) *Actions {
	a := &Actions{fns: make(map[string]ActionFunc, len(fns))}
	for name, fn := range fns {
		a.fns[name] = fn
	}
	return a
}

// Set adds or replaces the action registered under name.
func (a *Actions) Set(name string, fn ActionFunc) *Actions {
	if a.fns == nil {
		a.fns = make(map[string]ActionFunc)
	}
	a.fns[name] = fn
	return a
}

// Action implements Target. A nil function is reported as absent.
func (a *Actions) Action(name string) (ActionFunc, bool) {
	fn, ok := a.fns[name]
	if !ok || fn == nil {
		return nil, false
	}
	return fn, true
}

// Names returns the action names in sorted order.
func (a *Actions) Names() []string {
	names := make([]string, 0, len(a.fns))
	for name := range a.fns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
