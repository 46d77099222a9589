package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Strength-specific validation errors
var (
	// ErrStrengthIDEmpty is returned when a strength ID is empty or nil.
	ErrStrengthIDEmpty = errors.New("strength ID cannot be empty")

	// ErrStrengthMedicineIDEmpty is returned when a strength's medicine ID is empty or nil.
	ErrStrengthMedicineIDEmpty = errors.New("strength medicine ID cannot be empty")

	// ErrStrengthDoseFormIDEmpty is returned when a strength's dose form ID is empty or nil.
	ErrStrengthDoseFormIDEmpty = errors.New("strength dose form ID cannot be empty")

	// ErrStrengthConcentrationInvalid is returned when the concentration amount
	// is zero or negative.
	ErrStrengthConcentrationInvalid = errors.New("strength concentration amount must be positive")

	// ErrStrengthConcentrationUnitEmpty is returned when the concentration unit is empty.
	ErrStrengthConcentrationUnitEmpty = errors.New("strength concentration unit cannot be empty")

	// ErrStrengthVolumeInvalid is returned when a volume amount is set but
	// is zero or negative.
	ErrStrengthVolumeInvalid = errors.New("strength volume amount must be positive")
)

// Strength represents one concrete dosage variant of a medicine, for example
// "500 mg tablet" or "125 mg / 5 ml syrup". A strength always belongs to a
// medicine and references a dose form. Strengths are soft-deleted: DeletedAt
// is set instead of removing the row, and reads exclude deleted rows.
type Strength struct {
	ID                  uuid.UUID  `json:"id"`
	MedicineID          uuid.UUID  `json:"medicine_id"`
	DoseFormID          uuid.UUID  `json:"dose_form_id"`
	ConcentrationAmount float64    `json:"concentration_amount"`
	ConcentrationUnit   string     `json:"concentration_unit"`
	VolumeAmount        *float64   `json:"volume_amount,omitempty"`
	VolumeUnit          string     `json:"volume_unit,omitempty"`
	ChemicalForm        string     `json:"chemical_form,omitempty"`
	Info                string     `json:"info,omitempty"`
	Description         string     `json:"description,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	DeletedAt           *time.Time `json:"deleted_at,omitempty"`
}

// NewStrength creates a new Strength for the given medicine and dose form.
// Returns an error if validation fails.
func NewStrength(
	medicineID, doseFormID uuid.UUID,
	concentrationAmount float64,
	concentrationUnit string,
) (*Strength, error) {
	now := time.Now().UTC()
	strength := &Strength{
		ID:                  uuid.New(),
		MedicineID:          medicineID,
		DoseFormID:          doseFormID,
		ConcentrationAmount: concentrationAmount,
		ConcentrationUnit:   concentrationUnit,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := strength.Validate(); err != nil {
		return nil, err
	}

	return strength, nil
}

// Validate checks if the Strength has valid data.
// Returns an error if any field fails validation.
func (s *Strength) Validate() error {
	if s.ID == uuid.Nil {
		return ErrStrengthIDEmpty
	}

	if s.MedicineID == uuid.Nil {
		return ErrStrengthMedicineIDEmpty
	}

	if s.DoseFormID == uuid.Nil {
		return ErrStrengthDoseFormIDEmpty
	}

	if s.ConcentrationAmount <= 0 {
		return ErrStrengthConcentrationInvalid
	}

	if s.ConcentrationUnit == "" {
		return ErrStrengthConcentrationUnitEmpty
	}

	if s.VolumeAmount != nil && *s.VolumeAmount <= 0 {
		return ErrStrengthVolumeInvalid
	}

	return nil
}

// IsDeleted reports whether the strength has been soft-deleted.
func (s *Strength) IsDeleted() bool {
	return s.DeletedAt != nil
}
