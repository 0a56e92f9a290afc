package domain

import (
	"strings"
	"time"
)

type Category struct {
	ID           string
	Name         string
	DisplayOrder int
	CreatedAt    time.Time
}

type CategoryPatch struct {
	Name         *string
	DisplayOrder *int
}

func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil && p.DisplayOrder == nil
}

// NormalizeCategoryName trims and lower-cases a category name.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DefaultCategories are seeded into an empty catalog.
func DefaultCategories() []Category {
	return []Category{
		{Name: "chicken", DisplayOrder: 1},
		{Name: "mutton", DisplayOrder: 2},
		{Name: "others", DisplayOrder: 3},
	}
}
