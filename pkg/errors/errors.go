// Package errors provides custom error types for the semt system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the semt system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedService indicates an unknown reconciliator or extender id
	ErrUnsupportedService = errors.New("unsupported service")

	// ErrMalformedResponse indicates a service response that does not match
	// the expected schema
	ErrMalformedResponse = errors.New("malformed response")

	// ErrServiceUnavailable indicates a transport or HTTP failure from the
	// backend or an enrichment service
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrRateLimited indicates that the API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrCredentialsRequired indicates that sign-in credentials are required
	// but not provided
	ErrCredentialsRequired = errors.New("credentials required")

	// ErrSignInFailed indicates that the backend rejected a sign-in attempt
	ErrSignInFailed = errors.New("sign-in failed")
)

// ConfigError represents invalid or incomplete caller-supplied parameters,
// such as a missing required extension parameter or an unsupported service id.
type ConfigError struct {
	Param   string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("configuration error for %s: %s", e.Param, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewConfigError creates a new ConfigError
func NewConfigError(param, message string) *ConfigError {
	return &ConfigError{Param: param, Message: message}
}

// NewUnsupportedServiceError creates a ConfigError for an unknown service id.
// It matches both ErrInvalidInput and ErrUnsupportedService.
func NewUnsupportedServiceError(serviceID string) *ConfigError {
	return &ConfigError{
		Param:   "serviceId",
		Message: fmt.Sprintf("unsupported service %q", serviceID),
		Err:     ErrUnsupportedService,
	}
}

// ResponseError represents an enrichment-service response that does not match
// the expected schema: a missing column summary item, a cell id without the
// row/column delimiter, or a reference to an unknown row.
type ResponseError struct {
	Service string
	Item    string
	Message string
}

// Error implements the error interface
func (e *ResponseError) Error() string {
	switch {
	case e.Service != "" && e.Item != "":
		return fmt.Sprintf("malformed response from %s (item %s): %s", e.Service, e.Item, e.Message)
	case e.Service != "":
		return fmt.Sprintf("malformed response from %s: %s", e.Service, e.Message)
	default:
		return fmt.Sprintf("malformed response: %s", e.Message)
	}
}

// Is implements errors.Is support
func (e *ResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// NewResponseError creates a new ResponseError
func NewResponseError(service, item, message string) *ResponseError {
	return &ResponseError{Service: service, Item: item, Message: message}
}

// APIError represents a transport or HTTP failure from the backend
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode == 429 && target == ErrRateLimited {
		return true
	}
	return target == ErrServiceUnavailable
}

// NewAPIError creates a new APIError
func NewAPIError(endpoint string, statusCode int, message string) *APIError {
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure in the data model
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", "csv", etc.
	Source  string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parse error in %s %s: %s", e.Format, e.Source, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, source, message string, err error) *ParseError {
	return &ParseError{Format: format, Source: source, Message: message, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConfig checks if an error stems from invalid caller-supplied parameters
func IsConfig(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnsupportedService checks if an error is an unsupported service id error
func IsUnsupportedService(err error) bool {
	return errors.Is(err, ErrUnsupportedService)
}

// IsMalformedResponse checks if an error is a malformed response error
func IsMalformedResponse(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}

// IsServiceUnavailable checks if an error indicates backend unavailability
func IsServiceUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapAPI wraps an error as an APIError
func WrapAPI(endpoint string, statusCode int, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Message:    err.Error(),
		Err:        err,
	}
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, source string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, source, err.Error(), err)
}
