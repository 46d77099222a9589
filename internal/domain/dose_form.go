package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// DoseForm-specific validation errors
var (
	// ErrDoseFormIDEmpty is returned when a dose form ID is empty or nil.
	ErrDoseFormIDEmpty = errors.New("dose form ID cannot be empty")

	// ErrDoseFormNameEmpty is returned when a dose form's name is empty.
	ErrDoseFormNameEmpty = errors.New("dose form name cannot be empty")
)

// DoseForm represents a physical administration form such as "tablet",
// "syrup", or "injection". Strengths reference a dose form to describe
// how a medicine is dispensed.
type DoseForm struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewDoseForm creates a new DoseForm with the given name.
// Returns an error if validation fails.
func NewDoseForm(name, description string) (*DoseForm, error) {
	now := time.Now().UTC()
	doseForm := &DoseForm{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := doseForm.Validate(); err != nil {
		return nil, err
	}

	return doseForm, nil
}

// Validate checks if the DoseForm has valid data.
func (d *DoseForm) Validate() error {
	if d.ID == uuid.Nil {
		return ErrDoseFormIDEmpty
	}

	if d.Name == "" {
		return ErrDoseFormNameEmpty
	}

	return nil
}
