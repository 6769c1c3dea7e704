// Package categories owns the closed category list offered for data
// entry. The list is fixed for the application; the ledger itself never
// rejects unknown categories on import, so validation against this list
// happens only at the CLI boundary.
package categories

import "github.com/tally-dev/tally/internal/model"

// Default returns the fixed category list in display order.
func Default() []model.Category {
	return []model.Category{
		model.CategoryFood,
		model.CategoryRent,
		model.CategoryEntertainment,
		model.CategorySalary,
		model.CategoryTransport,
		model.CategoryUtilities,
		model.CategoryShopping,
		model.CategoryHealth,
		model.CategoryOther,
	}
}

// Service provides in-memory lookup over the category list.
type Service struct {
	categories []model.Category
	byName     map[model.Category]bool
}

// NewService creates a Service from a slice of categories.
func NewService(cats []model.Category) *Service {
	byName := make(map[model.Category]bool, len(cats))
	for _, c := range cats {
		byName[c] = true
	}
	return &Service{categories: cats, byName: byName}
}

// NewDefaultService creates a Service over the fixed default list.
func NewDefaultService() *Service {
	return NewService(Default())
}

// All returns all categories in display order.
func (s *Service) All() []model.Category {
	return s.categories
}

// Exists reports whether a category is in the list.
func (s *Service) Exists(c model.Category) bool {
	return s.byName[c]
}
