package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request conflicts with the current state of a resource.
var ErrConflict = errors.New("resource state conflict")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure inside the service or its storage.
var ErrInternal = errors.New("internal error")

// Posting spine errors.
var (
	ErrInvalidStateTransition = errors.New("invalid document state transition")
	ErrInvalidDocumentState   = errors.New("document is not in the required state")
	ErrUnbalancedPostings     = errors.New("postings are not balanced")
	ErrAlreadyReversed        = errors.New("already reversed")
	ErrAlreadyPosted          = errors.New("document already posted")
	ErrEmptyPostingSet        = errors.New("posting set is empty")
	ErrNoPostingsFound        = errors.New("no postings found for event")
	ErrEventCreationFailed    = errors.New("economic event creation failed")
	ErrCannotReverseReversal  = errors.New("cannot reverse a reversal")
)

// AppError carries an HTTP-ish status code together with the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a code and a message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// UnbalancedPostingsError reports the totals of a rejected posting set.
// All amounts are rendered with exactly four fraction digits.
type UnbalancedPostingsError struct {
	Debits     string
	Credits    string
	Difference string
}

func (e *UnbalancedPostingsError) Error() string {
	return fmt.Sprintf("postings are not balanced: debits=%s credits=%s difference=%s",
		e.Debits, e.Credits, e.Difference)
}

func (e *UnbalancedPostingsError) Unwrap() error {
	return ErrUnbalancedPostings
}

// InvalidTransitionError reports a state change that the transition table does not allow.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid document state transition from %q to %q", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// InvalidDocumentStateError reports a document found in the wrong state for an operation.
// When the document is already posted it also matches ErrAlreadyPosted.
type InvalidDocumentStateError struct {
	DocumentID string
	Current    string
	Required   string
}

func (e *InvalidDocumentStateError) Error() string {
	return fmt.Sprintf("document %s is in state %q, %q required", e.DocumentID, e.Current, e.Required)
}

func (e *InvalidDocumentStateError) Unwrap() []error {
	if e.Current == "posted" || e.Current == "reversed" {
		return []error{ErrInvalidDocumentState, ErrAlreadyPosted}
	}
	return []error{ErrInvalidDocumentState}
}
