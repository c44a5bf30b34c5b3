package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Authentication errors
	ErrUnauthorized = errors.New("authentication required")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Upstream collaborator errors (identity provider, captcha, media)
	ErrUpstreamFailure = errors.New("upstream service failure")

	// User errors
	ErrUserNotFound = errors.New("user not found")
)

// Catalog errors
var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubCategoryNotFound = errors.New("subcategory not found")
	ErrNoteNotFound        = errors.New("note not found")
)

// Webinar and inbox errors
var (
	ErrWebinarNotFound = errors.New("webinar not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrCaptchaRejected = errors.New("captcha verification rejected")
)

// NewConflictError creates a custom error for a uniqueness violation. The
// message should name the field that collided (name/slug/rank).
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a custom error for permission denied with a message.
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewValidationError creates a custom error for a failed precondition on the
// request payload.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewUpstreamError creates a custom error for a failed third-party call.
func NewUpstreamError(message string) error {
	return &CustomError{
		Err:     ErrUpstreamFailure,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
