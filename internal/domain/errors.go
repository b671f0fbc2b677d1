package domain

import (
	"errors"
	"fmt"

	"pr_report/pkg/errcodes"
)

type AppError struct {
	Code    errcodes.Code
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewError(code errcodes.Code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, code errcodes.Code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or InternalError.
func CodeOf(err error) errcodes.Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return errcodes.InternalError
}
