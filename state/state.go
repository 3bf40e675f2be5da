/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package state defines the lifecycle states a gesture recognizer can report.
//
// The values are shared vocabulary between recognizers and whatever
// recognition engine drives them; nothing in this module transitions them.
package state

import (
	"fmt"
	"strings"
)

// State is a recognition state.
type State string

const (
	Possible  State = "possible"
	Began     State = "began"
	Changed   State = "changed"
	Ended     State = "ended"
	Cancelled State = "cancelled"
	Failed    State = "failed"

	// Recognized is an alias of Ended for discrete gestures.
	Recognized = Ended
)

var values = []State{Possible, Began, Changed, Ended, Cancelled, Failed}

// Values returns every distinct state in lifecycle order.
func Values() []State {
	out := make([]State, len(values))
	copy(out, values)
	return out
}

// Parse resolves a state name, ignoring case and surrounding space.
// "recognized" resolves to Ended.
func Parse(name string) (State, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "recognized" {
		return Recognized, nil
	}
	s := State(n)
	if !s.Valid() {
		return "", fmt.Errorf("unknown recognition state %q", name)
	}
	return s, nil
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}

func (s State) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown recognition state %q", string(s))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
