package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal ErrorCode = "INTERNAL_ERROR"
	ErrNotFound ErrorCode = "NOT_FOUND"

	// Generation pipeline errors
	ErrValidation        ErrorCode = "VALIDATION_ERROR"
	ErrIngestion         ErrorCode = "INGESTION_ERROR"
	ErrTransport         ErrorCode = "TRANSPORT_ERROR"
	ErrService           ErrorCode = "SERVICE_ERROR"
	ErrNormalization     ErrorCode = "NORMALIZATION_ERROR"
	ErrOperationInFlight ErrorCode = "OPERATION_IN_FLIGHT"
	ErrOperationStale    ErrorCode = "OPERATION_STALE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
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
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// Helper functions for common errors
func NewValidationError(message string) *DomainError {
	return NewError(ErrValidation, message, nil)
}

func NewIngestionError(message string, err error) *DomainError {
	return NewError(ErrIngestion, message, err)
}

func NewTransportError(err error) *DomainError {
	return NewError(ErrTransport, "Failed to reach the generation service", err)
}

func NewServiceError(statusCode int) *DomainError {
	return NewError(ErrService, fmt.Sprintf("Generation service returned status %d", statusCode), nil)
}

func NewNormalizationError(message string) *DomainError {
	return NewError(ErrNormalization, message, nil)
}

func NewNotFoundError(id string) *DomainError {
	return NewError(ErrNotFound, fmt.Sprintf("Question not found with ID: %s", id), nil)
}

func NewOperationInFlightError() *DomainError {
	return NewError(ErrOperationInFlight, "A generation operation is already in flight for this session", nil)
}

func NewStaleOperationError() *DomainError {
	return NewError(ErrOperationStale, "The session owning this operation was reset or disposed", nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}
