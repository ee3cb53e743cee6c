package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeUnprocessable    ErrorCode = "UNPROCESSABLE"
	CodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	CodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents a domain-specific error. Message is for logs;
// clients only ever see the fixed envelope text for the code.
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewBadRequestError(message string) *DomainError {
	return NewError(CodeBadRequest, message, nil)
}

func NewUnprocessableError(message string) *DomainError {
	return NewError(CodeUnprocessable, message, nil)
}

func NewUnauthorizedError(message string, cause error) *DomainError {
	return NewError(CodeUnauthorized, message, cause)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewCategoryNotFoundError(id int64) *DomainError {
	return NewNotFoundError(fmt.Sprintf("category not found with ID: %d", id))
}

func NewQuestionNotFoundError(id int64) *DomainError {
	return NewNotFoundError(fmt.Sprintf("question not found with ID: %d", id))
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code ErrorCode) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	return de.Code == code
}
