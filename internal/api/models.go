package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/imslabs/ims-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    string    `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh
// endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// CreateMedicineRequest defines the payload for creating a medicine.
// Category and ATC code links are optional and applied in the same
// transaction as the medicine row.
type CreateMedicineRequest struct {
	Name        string      `json:"name"         validate:"required,max=255"`
	Slug        string      `json:"slug"         validate:"required,max=255"`
	GenericName string      `json:"generic_name" validate:"max=255"`
	Description string      `json:"description"`
	CategoryIDs []uuid.UUID `json:"category_ids"`
	ATCCodeIDs  []uuid.UUID `json:"atc_code_ids"`
}

// UpdateMedicineRequest defines the payload for updating a medicine.
// Nil fields are left unchanged; the add/remove lists adjust association
// links alongside the scalar update.
type UpdateMedicineRequest struct {
	Name              *string     `json:"name"         validate:"omitempty,max=255"`
	Slug              *string     `json:"slug"         validate:"omitempty,max=255"`
	GenericName       *string     `json:"generic_name" validate:"omitempty,max=255"`
	Description       *string     `json:"description"`
	Status            *string     `json:"status"       validate:"omitempty,oneof=active inactive"`
	AddCategoryIDs    []uuid.UUID `json:"add_category_ids"`
	RemoveCategoryIDs []uuid.UUID `json:"remove_category_ids"`
	AddATCCodeIDs     []uuid.UUID `json:"add_atc_code_ids"`
	RemoveATCCodeIDs  []uuid.UUID `json:"remove_atc_code_ids"`
}

// MedicineResponse is the wire representation of a medicine. Association
// slices are only populated on detail endpoints.
type MedicineResponse struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	GenericName string             `json:"generic_name,omitempty"`
	Status      string             `json:"status"`
	Description string             `json:"description,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Categories  []CategoryResponse `json:"categories,omitempty"`
	Strengths   []StrengthResponse `json:"strengths,omitempty"`
	ATCCodes    []ATCCodeResponse  `json:"atc_codes,omitempty"`
}

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string     `json:"name"        validate:"required,max=255"`
	Slug        string     `json:"slug"        validate:"max=255"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

// UpdateCategoryRequest defines the payload for updating a category.
type UpdateCategoryRequest struct {
	Name        *string    `json:"name"        validate:"omitempty,max=255"`
	Slug        *string    `json:"slug"        validate:"omitempty,max=255"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=active inactive"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

// CategoryResponse is the wire representation of a category. Children is
// populated only by the tree endpoint.
type CategoryResponse struct {
	ID          uuid.UUID          `json:"id"`
	ParentID    *uuid.UUID         `json:"parent_id,omitempty"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug,omitempty"`
	Description string             `json:"description,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Children    []CategoryResponse `json:"children,omitempty"`
}

// CreateDoseFormRequest defines the payload for creating a dose form.
type CreateDoseFormRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

// DoseFormResponse is the wire representation of a dose form.
type DoseFormResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateStrengthRequest defines the payload for adding a strength to a
// medicine. The medicine ID comes from the URL path.
type CreateStrengthRequest struct {
	DoseFormID          uuid.UUID `json:"dose_form_id"         validate:"required"`
	ConcentrationAmount float64   `json:"concentration_amount" validate:"required,gt=0"`
	ConcentrationUnit   string    `json:"concentration_unit"   validate:"required,max=64"`
	VolumeAmount        *float64  `json:"volume_amount"        validate:"omitempty,gt=0"`
	VolumeUnit          string    `json:"volume_unit"          validate:"max=64"`
	ChemicalForm        string    `json:"chemical_form"        validate:"max=255"`
	Info                string    `json:"info"`
	Description         string    `json:"description"`
}

// StrengthResponse is the wire representation of a strength.
type StrengthResponse struct {
	ID                  uuid.UUID `json:"id"`
	MedicineID          uuid.UUID `json:"medicine_id"`
	DoseFormID          uuid.UUID `json:"dose_form_id"`
	ConcentrationAmount float64   `json:"concentration_amount"`
	ConcentrationUnit   string    `json:"concentration_unit"`
	VolumeAmount        *float64  `json:"volume_amount,omitempty"`
	VolumeUnit          string    `json:"volume_unit,omitempty"`
	ChemicalForm        string    `json:"chemical_form,omitempty"`
	Info                string    `json:"info,omitempty"`
	Description         string    `json:"description,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CreateATCCodeRequest defines the payload for creating an ATC code.
type CreateATCCodeRequest struct {
	Name        string     `json:"name"        validate:"required,max=255"`
	Code        string     `json:"code"        validate:"required,max=16"`
	Level       int        `json:"level"       validate:"required,gte=1,lte=5"`
	Slug        string     `json:"slug"        validate:"required,max=255"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

// ATCCodeResponse is the wire representation of an ATC code.
type ATCCodeResponse struct {
	ID          uuid.UUID  `json:"id"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Level       int        `json:"level"`
	Slug        string     `json:"slug"`
	Status      string     `json:"status"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ListResponse wraps paginated collection results.
type ListResponse[T any] struct {
	Items  []T `json:"items"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Count  int `json:"count"`
}

// Conversion helpers from domain entities to response models.

func toMedicineResponse(m *domain.Medicine) MedicineResponse {
	resp := MedicineResponse{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		GenericName: m.GenericName,
		Status:      string(m.Status),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, c := range m.Categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(c))
	}
	for _, s := range m.Strengths {
		resp.Strengths = append(resp.Strengths, toStrengthResponse(s))
	}
	for _, a := range m.ATCCodes {
		resp.ATCCodes = append(resp.ATCCodes, toATCCodeResponse(a))
	}
	return resp
}

func toCategoryResponse(c *domain.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:          c.ID,
		ParentID:    c.ParentID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	for _, child := range c.Children {
		resp.Children = append(resp.Children, toCategoryResponse(child))
	}
	return resp
}

func toDoseFormResponse(d *domain.DoseForm) DoseFormResponse {
	return DoseFormResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toStrengthResponse(s *domain.Strength) StrengthResponse {
	return StrengthResponse{
		ID:                  s.ID,
		MedicineID:          s.MedicineID,
		DoseFormID:          s.DoseFormID,
		ConcentrationAmount: s.ConcentrationAmount,
		ConcentrationUnit:   s.ConcentrationUnit,
		VolumeAmount:        s.VolumeAmount,
		VolumeUnit:          s.VolumeUnit,
		ChemicalForm:        s.ChemicalForm,
		Info:                s.Info,
		Description:         s.Description,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func toATCCodeResponse(a *domain.ATCCode) ATCCodeResponse {
	return ATCCodeResponse{
		ID:          a.ID,
		ParentID:    a.ParentID,
		Name:        a.Name,
		Code:        a.Code,
		Level:       a.Level,
		Slug:        a.Slug,
		Status:      string(a.Status),
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
