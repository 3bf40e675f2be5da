/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/suparena/gesturerecognizer/errors"
)

// Pair is a registered target-action pair.
type Pair struct {
	Target Target
	Action string
}

// Resolve looks up the pair's action on its target. It does not invoke it.
func (p Pair) Resolve() (ActionFunc, bool) {
	if p.Target == nil {
		return nil, false
	}
	return p.Target.Action(p.Action)
}

// Registry is an insertion-ordered set of target-action pairs.
type Registry struct {
	pairs []Pair
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Add registers the pair (target, action). Adding a pair that is already
// registered is a no-op. Validation stops at the first failing check:
// missing target, missing action, non-textual action name, action not
// callable on the target, target not comparable. Targets whose values
// cannot be compared with ==, and pointers to zero-size values, are
// rejected since their identity is not well defined.
func (r *Registry) Add(target Target, action string) error {
	if isNil(target) {
		return errors.NewRegistrationError(errors.ErrMissingTarget, "", action)
	}

	targetType := fmt.Sprintf("%T", target)

	if action == "" {
		return errors.NewRegistrationError(errors.ErrMissingAction, targetType, action)
	}

	if !IsActionName(action) {
		return errors.NewRegistrationError(errors.ErrInvalidActionType, targetType, action)
	}

	if fn, ok := target.Action(action); !ok || fn == nil {
		return errors.NewRegistrationError(errors.ErrActionNotCallable, targetType, action)
	}

	if !reflect.ValueOf(target).Comparable() || zeroSizePointee(target) {
		return errors.NewRegistrationError(errors.ErrTargetNotComparable, targetType, action)
	}

	if r.indexOf(target, action) >= 0 {
		return nil
	}

	r.pairs = append(r.pairs, Pair{Target: target, Action: action})
	return nil
}

// Remove deletes the pairs selected by the two filters:
//
//   - AnyTarget, AnyAction: every pair
//   - AnyTarget, ForAction(a): every pair with action a
//   - ForTarget(t), AnyAction: every pair with target t
//   - ForTarget(t), ForAction(a): the pair (t, a), if registered
//
// Filters that match nothing leave the registry unchanged.
func (r *Registry) Remove(target TargetFilter, action ActionFilter) {
	switch {
	case target.wildcard && action.wildcard:
		r.Clear()
	case target.wildcard || action.wildcard:
		// Walk backwards so deleting an element never skips its neighbour.
		for i := len(r.pairs) - 1; i >= 0; i-- {
			if target.match(r.pairs[i].Target) && action.match(r.pairs[i].Action) {
				r.removeAt(i)
			}
		}
	default:
		if !target.set || !action.set || target.target == nil {
			return
		}
		if i := r.indexOf(target.target, action.name); i >= 0 {
			r.removeAt(i)
		}
	}
}

// Clear removes every pair.
func (r *Registry) Clear() {
	for i := range r.pairs {
		r.pairs[i] = Pair{}
	}
	r.pairs = r.pairs[:0]
}

// Pairs returns a copy of the registered pairs in insertion order.
func (r *Registry) Pairs() []Pair {
	out := make([]Pair, len(r.pairs))
	copy(out, r.pairs)
	return out
}

// Len returns the number of registered pairs.
func (r *Registry) Len() int {
	return len(r.pairs)
}

// Contains reports whether (target, action) is registered.
func (r *Registry) Contains(target Target, action string) bool {
	if isNil(target) {
		return false
	}
	return r.indexOf(target, action) >= 0
}

func (r *Registry) indexOf(target Target, action string) int {
	for i, p := range r.pairs {
		if p.Action == action && sameTarget(p.Target, target) {
			return i
		}
	}
	return -1
}

func (r *Registry) removeAt(i int) {
	copy(r.pairs[i:], r.pairs[i+1:])
	r.pairs[len(r.pairs)-1] = Pair{}
	r.pairs = r.pairs[:len(r.pairs)-1]
}

// sameTarget reports whether a and b are the same target. Values that
// cannot be compared with == never match anything.
func sameTarget(a, b Target) bool {
	if a == nil || b == nil {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

// zeroSizePointee reports whether t points to a zero-size value. Distinct
// pointers to such values may compare equal.
func zeroSizePointee(t Target) bool {
	typ := reflect.TypeOf(t)
	return typ.Kind() == reflect.Pointer && typ.Elem().Size() == 0
}

func isNil(t Target) bool {
	if t == nil {
		return true
	}
	v := reflect.ValueOf(t)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IsActionName reports whether s is usable as an action name: non-empty
// and valid UTF-8.
func IsActionName(s string) bool {
	return s != "" && utf8.ValidString(s)
}
