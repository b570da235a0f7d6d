package blog

import (
	"fmt"
	"time"

	"novita/internal/shared/slug"
)

// Category groups posts. Name and slug are unique; identity is immutable
// after creation.
type Category struct {
	id          uint
	name        string
	slug        string
	description string
	createdAt   time.Time
}

// NewCategory creates a category, deriving the slug from the name when not
// given explicitly.
func NewCategory(name, slugValue, description string) (*Category, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if slugValue == "" {
		slugValue = slug.Make(name)
	}
	if slugValue == "" {
		return nil, fmt.Errorf("cannot derive a slug from name %q", name)
	}
	if len(slugValue) > 100 {
		return nil, fmt.Errorf("slug exceeds maximum length of 100 characters")
	}

	return &Category{
		name:        name,
		slug:        slugValue,
		description: description,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructCategory(id uint, name, slugValue, description string, createdAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	return &Category{
		id:          id,
		name:        name,
		slug:        slugValue,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Slug() string {
	return c.slug
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}
