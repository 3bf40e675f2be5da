/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestRegistrationError(t *testing.T) {
	tests := []struct {
		name     string
		reason   error
		target   string
		action   string
		expected string
		check    func(error) bool
	}{
		{
			name:     "missing target",
			reason:   ErrMissingTarget,
			expected: "you must specify a target",
			check:    IsMissingTarget,
		},
		{
			name:     "missing action",
			reason:   ErrMissingAction,
			target:   "*main.View",
			expected: `you must specify an action (target *main.View, action "")`,
			check:    IsMissingAction,
		},
		{
			name:     "invalid action type",
			reason:   ErrInvalidActionType,
			action:   "bad\x00name",
			expected: `action must be a string (action "bad\x00name")`,
			check:    IsInvalidActionType,
		},
		{
			name:     "action not callable",
			reason:   ErrActionNotCallable,
			target:   "*registry.Actions",
			action:   "foo",
			expected: `the specified action must be a function of the target (target *registry.Actions, action "foo")`,
			check:    IsActionNotCallable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistrationError(tt.reason, tt.target, tt.action)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, tt.reason) {
				t.Errorf("RegistrationError should match %v", tt.reason)
			}

			if !tt.check(err) {
				t.Error("helper should return true for its own reason")
			}
		})
	}
}

func TestRegistrationErrorDoesNotMatchOtherReasons(t *testing.T) {
	err := NewRegistrationError(ErrMissingAction, "", "")

	if IsMissingTarget(err) || IsInvalidActionType(err) || IsActionNotCallable(err) {
		t.Errorf("missing action error matched another reason: %v", err)
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("recognizer", "swipe")

	expected := `recognizer with key "swipe" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestAlreadyExistsError(t *testing.T) {
	err := NewAlreadyExistsError("recognizer", "pinch")

	expected := `recognizer with key "pinch" already exists`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsAlreadyExists(err) {
		t.Error("IsAlreadyExists should return true for AlreadyExistsError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "recognizer",
			message:  "must not be empty",
			expected: `validation failed for field "recognizer": must not be empty`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "validation failed: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestConditionFailedError(t *testing.T) {
	err := NewConditionFailedError("put", "attribute_not_exists(PK)")

	expected := "condition check failed for put operation: attribute_not_exists(PK)"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsConditionFailed(err) {
		t.Error("IsConditionFailed should return true for ConditionFailedError")
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewRegistrationError(ErrActionNotCallable, "*main.View", "zoom")
	wrapped := fmt.Errorf("binding 3: %w", original)

	if !IsActionNotCallable(wrapped) {
		t.Error("IsActionNotCallable should work with wrapped errors")
	}

	var regErr *RegistrationError
	if !errors.As(wrapped, &regErr) {
		t.Fatal("errors.As should find the RegistrationError")
	}
	if regErr.Action != "zoom" {
		t.Errorf("Expected action zoom, got %q", regErr.Action)
	}
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrMissingTarget,
		ErrMissingAction,
		ErrInvalidActionType,
		ErrActionNotCallable,
		ErrTargetNotComparable,
		ErrNotFound,
		ErrAlreadyExists,
		ErrInvalidInput,
		ErrConditionFailed,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
