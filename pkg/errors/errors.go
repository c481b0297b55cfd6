package custom_error

import "fmt"

type CustomError interface {
	Error() string
}

// ConflictError signals a uniqueness violation, e.g. a duplicate SKU.
type ConflictError struct {
	message string
	code    string // PostgreSQL error code (e.g., "23505")
}

// ForeignKeyViolationError signals a reference to or from a missing row.
type ForeignKeyViolationError struct {
	message string
	code    string // PostgreSQL error code (e.g., "23503")
}

// NotFoundError signals that the requested resource does not exist.
type NotFoundError struct {
	Resource string
	ID       int
}

// ValidationError signals rejected input; no mutation has been performed.
type ValidationError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s (code: %s)", e.message, e.code)
}

func (f *ForeignKeyViolationError) Error() string {
	return fmt.Sprintf("%s (code: %s)", f.message, f.code)
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewNotFoundError(resource string, id int) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func WrapDBError(message, code string) CustomError {
	switch code {
	case "23505":
		return &ConflictError{
			message: message,
			code:    code,
		}
	case "23503":
		return &ForeignKeyViolationError{
			message: "Value is already used by other resources " + message,
			code:    code,
		}
	default:
		return fmt.Errorf("uncategorized error occurred with code %s: %s", code, message)
	}
}
