package model

import "time"

// CategoryType indicates whether a category holds income or expense transactions.
type CategoryType string

const (
	// CategoryTypeIncome represents categories for income transactions.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories for expense transactions.
	CategoryTypeExpense CategoryType = "expense"
	// CategoryTypeAny represents categories usable for either direction,
	// such as the generic fallback bucket.
	CategoryTypeAny CategoryType = "any"
)

// FallbackCategoryID is the generic bucket used when nothing else matches.
// It is always eligible regardless of transaction direction.
const FallbackCategoryID = "other"

// Category represents a spending or income category.
type Category struct {
	CreatedAt time.Time
	ID        string // Stable slug identifier, e.g. "food-grocery"
	Name      string // Display name
	Type      CategoryType
	IsActive  bool
}

// IsIncome reports whether the category belongs to the income partition.
func (c *Category) IsIncome() bool {
	return c.Type == CategoryTypeIncome
}
