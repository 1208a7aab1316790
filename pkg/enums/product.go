package enums

import "fmt"

// ProductCategory represents the fixed furniture categories in the catalog.
type ProductCategory string

const (
	ProductCategoryChairs ProductCategory = "Chairs"
	ProductCategorySofas  ProductCategory = "Sofas"
	ProductCategoryTables ProductCategory = "Tables"
)

// CategoryAll is the browse wildcard; it is never stored on a product.
const CategoryAll = "All"

var validProductCategories = []ProductCategory{
	ProductCategoryChairs,
	ProductCategorySofas,
	ProductCategoryTables,
}

// ProductCategories returns the categories in display order.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}

// SortMode orders the filtered catalog.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
)

var validSortModes = []SortMode{SortRelevance, SortPriceAsc, SortPriceDesc}

// String implements fmt.Stringer.
func (s SortMode) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortMode.
func (s SortMode) IsValid() bool {
	for _, candidate := range validSortModes {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortMode converts raw input into a SortMode. Empty input means relevance.
func ParseSortMode(value string) (SortMode, error) {
	if value == "" {
		return SortRelevance, nil
	}
	for _, candidate := range validSortModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort mode %q", value)
}
