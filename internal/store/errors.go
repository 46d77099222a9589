package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrMedicineNotFound, ErrCategoryNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a medicine with the same slug).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or when a write violates referential integrity.
	// Check the wrapped error for specific details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrHasChildren is returned when deleting a hierarchical entity that
	// still has child nodes referencing it.
	ErrHasChildren = errors.New("entity has children")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrMedicineNotFound indicates that the requested medicine does not exist in the store.
	ErrMedicineNotFound = fmt.Errorf("%w: medicine", ErrNotFound)

	// ErrCategoryNotFound indicates that the requested category does not exist in the store.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrDoseFormNotFound indicates that the requested dose form does not exist in the store.
	ErrDoseFormNotFound = fmt.Errorf("%w: dose form", ErrNotFound)

	// ErrStrengthNotFound indicates that the requested strength does not exist in the store.
	ErrStrengthNotFound = fmt.Errorf("%w: strength", ErrNotFound)

	// ErrATCCodeNotFound indicates that the requested ATC code does not exist in the store.
	ErrATCCodeNotFound = fmt.Errorf("%w: atc code", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrSlugExists indicates that an entity with the given slug already exists.
	ErrSlugExists = fmt.Errorf("%w: slug", ErrDuplicate)

	// ErrATCCodeExists indicates that an ATC code with the given code string
	// already exists.
	ErrATCCodeExists = fmt.Errorf("%w: atc code", ErrDuplicate)

	// ErrStrengthExists indicates that an identical strength variant already
	// exists for the medicine (same dose form, concentration, chemical form,
	// volume, and info).
	ErrStrengthExists = fmt.Errorf("%w: strength variant", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
