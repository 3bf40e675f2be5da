/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Registration errors, in the order Registry.Add checks them.
var (
	// ErrMissingTarget is returned when no target is supplied
	ErrMissingTarget = errors.New("you must specify a target")

	// ErrMissingAction is returned when no action name is supplied
	ErrMissingAction = errors.New("you must specify an action")

	// ErrInvalidActionType is returned when the action name is not textual
	ErrInvalidActionType = errors.New("action must be a string")

	// ErrActionNotCallable is returned when the target has no callable action of that name
	ErrActionNotCallable = errors.New("the specified action must be a function of the target")

	// ErrTargetNotComparable is returned when target identity cannot be decided with ==
	ErrTargetNotComparable = errors.New("target must be comparable")
)

// Catalog errors
var (
	// ErrNotFound is returned when a named recognizer, target or binding does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a name is registered twice
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConditionFailed is returned when a conditional write fails
	ErrConditionFailed = errors.New("condition check failed")
)

// RegistrationError describes a rejected target-action registration.
// Reason is one of the registration sentinels.
type RegistrationError struct {
	Target string
	Action string
	Reason error
}

func (e *RegistrationError) Error() string {
	switch {
	case e.Target == "" && e.Action == "":
		return e.Reason.Error()
	case e.Target == "":
		return fmt.Sprintf("%s (action %q)", e.Reason, e.Action)
	default:
		return fmt.Sprintf("%s (target %s, action %q)", e.Reason, e.Target, e.Action)
	}
}

func (e *RegistrationError) Is(target error) bool {
	return target == e.Reason
}

func (e *RegistrationError) Unwrap() error {
	return e.Reason
}

// NotFoundError represents an error when a named item is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when a named item already exists
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with key %q already exists", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConditionFailedError represents a failed conditional operation
type ConditionFailedError struct {
	Operation string
	Condition string
}

func (e *ConditionFailedError) Error() string {
	return fmt.Sprintf("condition check failed for %s operation: %s", e.Operation, e.Condition)
}

func (e *ConditionFailedError) Is(target error) bool {
	return target == ErrConditionFailed
}

// Helper functions for creating errors

// NewRegistrationError creates a new RegistrationError. target is a
// human-readable description of the target, usually its %T.
func NewRegistrationError(reason error, target, action string) error {
	return &RegistrationError{Target: target, Action: action, Reason: reason}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Type: kind, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(kind, key string) error {
	return &AlreadyExistsError{Type: kind, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConditionFailedError creates a new ConditionFailedError
func NewConditionFailedError(operation, condition string) error {
	return &ConditionFailedError{Operation: operation, Condition: condition}
}

// IsMissingTarget checks if an error is a missing target error
func IsMissingTarget(err error) bool {
	return errors.Is(err, ErrMissingTarget)
}

// IsMissingAction checks if an error is a missing action error
func IsMissingAction(err error) bool {
	return errors.Is(err, ErrMissingAction)
}

// IsInvalidActionType checks if an error is an invalid action type error
func IsInvalidActionType(err error) bool {
	return errors.Is(err, ErrInvalidActionType)
}

// IsActionNotCallable checks if an error is an action not callable error
func IsActionNotCallable(err error) bool {
	return errors.Is(err, ErrActionNotCallable)
}

// IsTargetNotComparable checks if an error is a non-comparable target error
func IsTargetNotComparable(err error) bool {
	return errors.Is(err, ErrTargetNotComparable)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConditionFailed checks if an error is a condition failed error
func IsConditionFailed(err error) bool {
	return errors.Is(err, ErrConditionFailed)
}
