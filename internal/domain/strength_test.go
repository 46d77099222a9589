package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewStrength(t *testing.T) {
	medicineID := uuid.New()
	doseFormID := uuid.New()

	strength, err := NewStrength(medicineID, doseFormID, 500, "mg")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if strength.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if strength.MedicineID != medicineID {
		t.Errorf("Expected medicine ID %v, got %v", medicineID, strength.MedicineID)
	}

	if strength.DoseFormID != doseFormID {
		t.Errorf("Expected dose form ID %v, got %v", doseFormID, strength.DoseFormID)
	}

	if strength.ConcentrationAmount != 500 {
		t.Errorf("Expected concentration 500, got %f", strength.ConcentrationAmount)
	}

	if strength.DeletedAt != nil {
		t.Error("Expected nil DeletedAt for a new strength")
	}

	// Test missing medicine ID
	_, err = NewStrength(uuid.Nil, doseFormID, 500, "mg")
	if err != ErrStrengthMedicineIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrStrengthMedicineIDEmpty, err)
	}

	// Test missing dose form ID
	_, err = NewStrength(medicineID, uuid.Nil, 500, "mg")
	if err != ErrStrengthDoseFormIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrStrengthDoseFormIDEmpty, err)
	}

	// Test non-positive concentration
	_, err = NewStrength(medicineID, doseFormID, 0, "mg")
	if err != ErrStrengthConcentrationInvalid {
		t.Errorf("Expected error %v, got %v", ErrStrengthConcentrationInvalid, err)
	}

	// Test empty concentration unit
	_, err = NewStrength(medicineID, doseFormID, 500, "")
	if err != ErrStrengthConcentrationUnitEmpty {
		t.Errorf("Expected error %v, got %v", ErrStrengthConcentrationUnitEmpty, err)
	}
}

func TestStrengthValidateVolume(t *testing.T) {
	strength := Strength{
		ID:                  uuid.New(),
		MedicineID:          uuid.New(),
		DoseFormID:          uuid.New(),
		ConcentrationAmount: 125,
		ConcentrationUnit:   "mg",
	}

	volume := 5.0
	strength.VolumeAmount = &volume
	strength.VolumeUnit = "ml"
	if err := strength.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalid := 0.0
	strength.VolumeAmount = &invalid
	if err := strength.Validate(); err != ErrStrengthVolumeInvalid {
		t.Errorf("Expected error %v, got %v", ErrStrengthVolumeInvalid, err)
	}
}

func TestStrengthIsDeleted(t *testing.T) {
	strength := Strength{ID: uuid.New()}

	if strength.IsDeleted() {
		t.Error("Expected IsDeleted to be false without DeletedAt")
	}

	now := time.Now().UTC()
	strength.DeletedAt = &now
	if !strength.IsDeleted() {
		t.Error("Expected IsDeleted to be true with DeletedAt set")
	}
}
