package models

// Category represents one of the four outfit slots. The declaration order is
// the placement order used by the outfit search and is never reordered.
type Category int

const (
	CategoryTop Category = iota
	CategoryBottom
	CategoryJacket
	CategoryShoe
)

// Categories is the fixed placement order for the outfit search
var Categories = []Category{CategoryTop, CategoryBottom, CategoryJacket, CategoryShoe}

// String returns the singular tag for the category (e.g. "top")
func (c Category) String() string {
	switch c {
	case CategoryTop:
		return "top"
	case CategoryBottom:
		return "bottom"
	case CategoryJacket:
		return "jacket"
	case CategoryShoe:
		return "shoe"
	}
	return "unknown"
}

// CatalogKey returns the plural key the category uses in the closet catalog
// file (e.g. "tops")
func (c Category) CatalogKey() string {
	switch c {
	case CategoryTop:
		return "tops"
	case CategoryBottom:
		return "bottoms"
	case CategoryJacket:
		return "jackets"
	case CategoryShoe:
		return "shoes"
	}
	return "unknown"
}

// HasWarmthRating reports whether pieces in this category carry a meaningful
// warmth rating. Only bottoms and jackets are warmth-checked.
func (c Category) HasWarmthRating() bool {
	return c == CategoryBottom || c == CategoryJacket
}

// Next returns the category that follows c in placement order. The second
// return value is false for the last category.
func (c Category) Next() (Category, bool) {
	for i, category := range Categories {
		if category == c && i+1 < len(Categories) {
			return Categories[i+1], true
		}
	}
	return 0, false
}
