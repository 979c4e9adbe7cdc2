package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRecordNotFound covers both a missing record and a record owned by
// another user. Callers translate it into a 404.
var ErrRecordNotFound = errors.New("record not found")

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

var ErrInvalidCategory = NewValidationError("Invalid category")
var ErrInvalidCurrency = NewValidationError("Invalid currency")
var ErrInvalidPaymentMethod = NewValidationError("Invalid payment method")
var ErrInvalidSavingsWallet = NewValidationError("Invalid savings wallet")
var ErrInvalidIssuingEntity = NewValidationError("Invalid issuing entity")

type ValidationErrors struct {
	Errors []error
}

func (ve *ValidationErrors) Error() string {
	errorMessages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		errorMessages[i] = err.Error()
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(errorMessages, "; "))
}

func (ve *ValidationErrors) Add(err error) {
	ve.Errors = append(ve.Errors, err)
}

func IsValidationErrors(err error) bool {
	var validationErrors *ValidationErrors
	ok := errors.As(err, &validationErrors)
	return ok
}
