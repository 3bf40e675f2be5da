/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

// TargetFilter selects pairs by target. The zero value matches nothing.
type TargetFilter struct {
	target   Target
	wildcard bool
	set      bool
}

// AnyTarget matches every target.
func AnyTarget() TargetFilter {
	return TargetFilter{wildcard: true, set: true}
}

// ForTarget matches pairs whose target is t.
func ForTarget(t Target) TargetFilter {
	return TargetFilter{target: t, set: true}
}

func (f TargetFilter) match(t Target) bool {
	if !f.set {
		return false
	}
	return f.wildcard || sameTarget(t, f.target)
}

// ActionFilter selects pairs by action name. The zero value matches nothing.
type ActionFilter struct {
	name     string
	wildcard bool
	set      bool
}

// AnyAction matches every action.
func AnyAction() ActionFilter {
	return ActionFilter{wildcard: true, set: true}
}

// ForAction matches pairs whose action is name.
func ForAction(name string) ActionFilter {
	return ActionFilter{name: name, set: true}
}

func (f ActionFilter) match(name string) bool {
	if !f.set {
		return false
	}
	return f.wildcard || (f.name != "" && name == f.name)
}
