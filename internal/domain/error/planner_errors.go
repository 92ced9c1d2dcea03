// Package error defines domain-specific errors for the Budget Dashboard application.
package error

import (
	"errors"
	"fmt"
)

// Debt planner domain errors.
var (
	// ErrEmptyInput is returned when a plan is requested without any debts.
	ErrEmptyInput = errors.New("at least one debt is required")

	// ErrInvalidPayment is returned when a payment is not positive or does not exceed one month of interest.
	ErrInvalidPayment = errors.New("monthly payment does not amortize the balance")

	// ErrInvalidDebt is returned when a debt carries a negative balance or rate.
	ErrInvalidDebt = errors.New("invalid debt")

	// ErrTooManyDebts is returned when a single request exceeds the configured debt limit.
	ErrTooManyDebts = errors.New("too many debts in a single plan")

	// ErrDuplicateDebtID is returned when two debts of one request share an identifier.
	ErrDuplicateDebtID = errors.New("duplicate debt id")
)

// PlannerErrorCode defines error codes for debt planner errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlannerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyInput       PlannerErrorCode = "PLN-010001"
	ErrCodeInvalidPayment   PlannerErrorCode = "PLN-010002"
	ErrCodeInvalidDebt      PlannerErrorCode = "PLN-010004"
	ErrCodeTooManyDebts     PlannerErrorCode = "PLN-010005"
	ErrCodeDuplicateDebtID  PlannerErrorCode = "PLN-010006"
	ErrCodeMissingDebtField PlannerErrorCode = "PLN-010007"

	// Internal errors (99XXXX)
	ErrCodePlannerInternalError PlannerErrorCode = "PLN-990001"
)

// PlannerError represents a debt planner error with code and message.
// Subject names the debt the error is attributed to, when there is one.
type PlannerError struct {
	Code    PlannerErrorCode
	Message string
	Subject string
	Err     error
}

// Error implements the error interface.
func (e *PlannerError) Error() string {
	msg := e.Message
	if e.Subject != "" {
		msg = fmt.Sprintf("debt %q: %s", e.Subject, e.Message)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *PlannerError) Unwrap() error {
	return e.Err
}

// NewPlannerError creates a new PlannerError with the given code and message.
func NewPlannerError(code PlannerErrorCode, message string, err error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewDebtError creates a PlannerError attributed to the named debt.
func NewDebtError(code PlannerErrorCode, debtName, message string, err error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Subject: debtName,
		Err:     err,
	}
}
