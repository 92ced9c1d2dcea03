package error

import (
	"errors"
	"fmt"
)

// Savings goal domain errors.
var (
	// ErrInvalidGoal is returned when a goal has a non-positive target or a negative saved amount.
	ErrInvalidGoal = errors.New("invalid savings goal")

	// ErrGoalNotFound is returned when a savings goal is not found for the user.
	ErrGoalNotFound = errors.New("savings goal not found")
)

// GoalErrorCode defines error codes for savings goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoal       GoalErrorCode = "GOL-010001"
	ErrCodeMissingGoalFields GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetDate GoalErrorCode = "GOL-010003"

	// Lookup errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"

	// Internal errors (99XXXX)
	ErrCodeGoalInternalError GoalErrorCode = "GOL-990001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Title   string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	msg := e.Message
	if e.Title != "" {
		msg = fmt.Sprintf("goal %q: %s", e.Title, e.Message)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewInvalidGoalError creates an InvalidGoal error attributed to the titled goal.
func NewInvalidGoalError(title, message string) *GoalError {
	return &GoalError{
		Code:    ErrCodeInvalidGoal,
		Message: message,
		Title:   title,
		Err:     ErrInvalidGoal,
	}
}
