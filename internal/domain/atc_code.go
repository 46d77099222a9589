package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ATC classification levels range from 1 (anatomical main group) to
// 5 (chemical substance).
const (
	ATCLevelMin = 1
	ATCLevelMax = 5
)

// ATCCode-specific validation errors
var (
	// ErrATCCodeIDEmpty is returned when an ATC code ID is empty or nil.
	ErrATCCodeIDEmpty = errors.New("ATC code ID cannot be empty")

	// ErrATCCodeNameEmpty is returned when an ATC code's name is empty.
	ErrATCCodeNameEmpty = errors.New("ATC code name cannot be empty")

	// ErrATCCodeCodeEmpty is returned when the code string is empty.
	ErrATCCodeCodeEmpty = errors.New("ATC code cannot be empty")

	// ErrATCCodeSlugEmpty is returned when an ATC code's slug is empty.
	ErrATCCodeSlugEmpty = errors.New("ATC code slug cannot be empty")

	// ErrATCCodeLevelInvalid is returned when the level is outside 1..5.
	ErrATCCodeLevelInvalid = errors.New("ATC code level must be between 1 and 5")

	// ErrATCCodeSelfParent is returned when an ATC code references itself
	// as its own parent.
	ErrATCCodeSelfParent = errors.New("ATC code cannot be its own parent")
)

// ATCCode represents a node in the WHO Anatomical Therapeutic Chemical
// classification, for example "A02BC02" (pantoprazole). Codes form a tree
// through the optional ParentID self-reference and carry audit fields
// recording who created, updated, or deleted them. ATC codes are
// soft-deleted via DeletedAt.
type ATCCode struct {
	ID          uuid.UUID  `json:"id"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Level       int        `json:"level"`
	Slug        string     `json:"slug"`
	Status      Status     `json:"status"`
	Description string     `json:"description,omitempty"`
	CreatedBy   string     `json:"created_by,omitempty"`
	UpdatedBy   string     `json:"updated_by,omitempty"`
	DeletedBy   string     `json:"deleted_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// NewATCCode creates a new ATCCode with the given name, code, level, and slug.
// It generates a new UUID for the ID, defaults the status to active, and sets
// the creation/update timestamps. Returns an error if validation fails.
func NewATCCode(name, code string, level int, slug string, parentID *uuid.UUID) (*ATCCode, error) {
	now := time.Now().UTC()
	atcCode := &ATCCode{
		ID:        uuid.New(),
		ParentID:  parentID,
		Name:      name,
		Code:      code,
		Level:     level,
		Slug:      slug,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := atcCode.Validate(); err != nil {
		return nil, err
	}

	return atcCode, nil
}

// Validate checks if the ATCCode has valid data.
// Returns an error if any field fails validation.
func (a *ATCCode) Validate() error {
	if a.ID == uuid.Nil {
		return ErrATCCodeIDEmpty
	}

	if a.Name == "" {
		return ErrATCCodeNameEmpty
	}

	if a.Code == "" {
		return ErrATCCodeCodeEmpty
	}

	if a.Level < ATCLevelMin || a.Level > ATCLevelMax {
		return ErrATCCodeLevelInvalid
	}

	if a.Slug == "" {
		return ErrATCCodeSlugEmpty
	}

	if a.ParentID != nil && *a.ParentID == a.ID {
		return ErrATCCodeSelfParent
	}

	if !a.Status.IsValid() {
		return ErrInvalidStatus
	}

	return nil
}

// IsDeleted reports whether the ATC code has been soft-deleted.
func (a *ATCCode) IsDeleted() bool {
	return a.DeletedAt != nil
}
