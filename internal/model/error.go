package model

import "fmt"

// Standard error codes for API responses
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeUnauthenticated = "UNAUTHENTICATED"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeStorage         = "STORAGE_ERROR"
	ErrCodeUpload          = "UPLOAD_ERROR"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure that maps to a well-defined
// HTTP status and a client-safe message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrCategoryNotFound  = NewDomainError(ErrCodeNotFound, "Category not found")
	ErrMenuItemNotFound  = NewDomainError(ErrCodeNotFound, "Menu item not found")
	ErrImageNotFound     = NewDomainError(ErrCodeNotFound, "Image not found")
	ErrUserNotFound      = NewDomainError(ErrCodeNotFound, "User not found")
	ErrNoFieldsToUpdate  = NewDomainError(ErrCodeValidation, "No fields to update")
	ErrInvalidCredential = NewDomainError(ErrCodeUnauthenticated, "Invalid email or password")
	ErrNotAuthenticated  = NewDomainError(ErrCodeUnauthenticated, "Authentication required")
	ErrAdminRequired     = NewDomainError(ErrCodeUnauthorized, "Unauthorized: Admin access required")
)

// DependentItemsError reports a category delete that was refused because
// menu items still reference it. Count is the number of dependents.
type DependentItemsError struct {
	Count int
}

func (e *DependentItemsError) Error() string {
	return fmt.Sprintf("Cannot delete category with %d menu items. Move items to another category first.", e.Count)
}
