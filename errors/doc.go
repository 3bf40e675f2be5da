/*
Package errors provides semantic error types for the gesture recognizer library.

Target registration fails with one of four sentinel errors, checked in order:

	var (
	    ErrMissingTarget       = errors.New("missing target")
	    ErrMissingAction       = errors.New("missing action")
	    ErrInvalidActionType   = errors.New("action must be a string")
	    ErrActionNotCallable   = errors.New("action is not callable on target")
	)

Usage:

	err := recognizer.AddTarget(view, "handleSwipe")
	if err != nil {
	    if errors.IsActionNotCallable(err) {
	        // the view does not expose handleSwipe
	    }
	    return err
	}

The binding catalog adds lookup and persistence errors (ErrNotFound,
ErrAlreadyExists, ErrInvalidInput, ErrConditionFailed) with matching typed
errors. All typed errors implement Is, so they keep matching after being
wrapped with fmt.Errorf and %w.
*/
package errors
