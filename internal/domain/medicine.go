package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Medicine-specific validation errors
var (
	// ErrMedicineIDEmpty is returned when a medicine ID is empty or nil.
	ErrMedicineIDEmpty = errors.New("medicine ID cannot be empty")

	// ErrMedicineNameEmpty is returned when a medicine's name is empty.
	ErrMedicineNameEmpty = errors.New("medicine name cannot be empty")

	// ErrMedicineSlugEmpty is returned when a medicine's slug is empty.
	ErrMedicineSlugEmpty = errors.New("medicine slug cannot be empty")
)

// Medicine represents a product in the inventory catalog. A medicine is
// identified by a unique slug and can be linked to multiple categories,
// multiple ATC codes, and any number of strengths (concrete dosage variants).
type Medicine struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	GenericName string    `json:"generic_name,omitempty"`
	Status      Status    `json:"status"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations, populated on detail reads only.
	Categories []*Category `json:"categories,omitempty"`
	Strengths  []*Strength `json:"strengths,omitempty"`
	ATCCodes   []*ATCCode  `json:"atc_codes,omitempty"`
}

// NewMedicine creates a new Medicine with the given name and slug.
// It generates a new UUID for the medicine ID, defaults the status to active,
// and sets the creation/update timestamps. Returns an error if validation fails.
func NewMedicine(name, slug, genericName, description string) (*Medicine, error) {
	now := time.Now().UTC()
	medicine := &Medicine{
		ID:          uuid.New(),
		Name:        name,
		Slug:        slug,
		GenericName: genericName,
		Status:      StatusActive,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := medicine.Validate(); err != nil {
		return nil, err
	}

	return medicine, nil
}

// Validate checks if the Medicine has valid data.
// Returns an error if any field fails validation.
func (m *Medicine) Validate() error {
	if m.ID == uuid.Nil {
		return ErrMedicineIDEmpty
	}

	if m.Name == "" {
		return ErrMedicineNameEmpty
	}

	if m.Slug == "" {
		return ErrMedicineSlugEmpty
	}

	if !m.Status.IsValid() {
		return ErrInvalidStatus
	}

	return nil
}
