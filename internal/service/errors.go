// Package service provides application-level services for managing
// medicines, catalog reference data, and users.
package service

import (
	"fmt"
)

// MedicineServiceError is a custom error type for medicine service errors.
type MedicineServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for MedicineServiceError.
func (e *MedicineServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("medicine service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("medicine service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *MedicineServiceError) Unwrap() error {
	return e.Err
}

// NewMedicineServiceError creates a new MedicineServiceError.
func NewMedicineServiceError(operation, message string, err error) *MedicineServiceError {
	return &MedicineServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// CatalogServiceError is a custom error type for catalog service errors.
type CatalogServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for CatalogServiceError.
func (e *CatalogServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("catalog service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CatalogServiceError) Unwrap() error {
	return e.Err
}

// NewCatalogServiceError creates a new CatalogServiceError.
func NewCatalogServiceError(operation, message string, err error) *CatalogServiceError {
	return &CatalogServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
