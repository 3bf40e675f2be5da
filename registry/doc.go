/*
Package registry keeps the target-action pairs of a gesture recognizer.

A pair couples a listener (the target) with the name of one of its actions.
Targets advertise their actions through the Target interface, so a pair is
only stored once the action is known to be callable:

	view := registry.NewActions(map[string]registry.ActionFunc{
	    "handleSwipe": func(sender any) { ... },
	})

	r := registry.New()
	err := r.Add(view, "handleSwipe") // stored
	err = r.Add(view, "handleSwipe")  // duplicate, ignored

Removal takes one filter per side of the pair; AnyTarget and AnyAction act as
wildcards:

	r.Remove(registry.ForTarget(view), registry.ForAction("handleSwipe")) // one pair
	r.Remove(registry.AnyTarget(), registry.ForAction("handleSwipe"))      // every target
	r.Remove(registry.ForTarget(view), registry.AnyAction())              // every action
	r.Remove(registry.AnyTarget(), registry.AnyAction())                  // everything

Targets are matched by identity (==), so the same listener value must be
used for Add and Remove. Pointer targets are the common case.

A Registry is not safe for concurrent use. It belongs to one recognizer and
is driven from a single event-handling goroutine.
*/
package registry
