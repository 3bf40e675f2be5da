/*
Package gesturerecognizer provides the target-action core of a gesture
recognizer: a recognition state plus the set of (target, action) pairs that a
recognition engine notifies when that state is reported.

Gesture detection itself is not part of this module. An engine owns one or
more Recognizers, moves their State through the values in package state, and
walks Targets() to call each action.

Basic Usage:

	swipe := gesturerecognizer.New()

	gallery := registry.NewActions(map[string]registry.ActionFunc{
	    "next": func(sender any) { ... },
	})
	if err := swipe.AddTarget(gallery, "next"); err != nil {
	    return err
	}

	// later, from the engine
	swipe.State = state.Recognized
	for _, pair := range swipe.Targets() {
	    if fn, ok := pair.Resolve(); ok {
	        fn(swipe)
	    }
	}

	swipe.RemoveTarget(registry.ForTarget(gallery), registry.AnyAction())

Hosts with several recognizers can keep them in a Set, and populate them from
a declarative binding catalog (package catalog).
*/
package gesturerecognizer
