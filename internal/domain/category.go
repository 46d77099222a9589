package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Category-specific validation errors
var (
	// ErrCategoryIDEmpty is returned when a category ID is empty or nil.
	ErrCategoryIDEmpty = errors.New("category ID cannot be empty")

	// ErrCategoryNameEmpty is returned when a category's name is empty.
	ErrCategoryNameEmpty = errors.New("category name cannot be empty")

	// ErrCategorySelfParent is returned when a category references itself
	// as its own parent.
	ErrCategorySelfParent = errors.New("category cannot be its own parent")
)

// Category represents a node in the hierarchical product taxonomy.
// Categories form a tree through the optional ParentID self-reference;
// the Children slice is populated only when assembling the full tree.
type Category struct {
	ID          uuid.UUID  `json:"id"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Children []*Category `json:"children,omitempty"`
}

// NewCategory creates a new Category with the given name and optional parent.
// It generates a new UUID for the category ID, defaults the status to active,
// and sets the creation/update timestamps. Returns an error if validation fails.
func NewCategory(name, slug, description string, parentID *uuid.UUID) (*Category, error) {
	now := time.Now().UTC()
	category := &Category{
		ID:          uuid.New(),
		ParentID:    parentID,
		Name:        name,
		Slug:        slug,
		Description: description,
		Status:      StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
// Returns an error if any field fails validation.
func (c *Category) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCategoryIDEmpty
	}

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if c.ParentID != nil && *c.ParentID == c.ID {
		return ErrCategorySelfParent
	}

	if !c.Status.IsValid() {
		return ErrInvalidStatus
	}

	return nil
}
