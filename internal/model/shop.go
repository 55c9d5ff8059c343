package model

// Vertical identifies the business domain a shop belongs to.
type Vertical string

// The four supported verticals. A shop always carries exactly one of these.
const (
	VerticalBrewery    Vertical = "brewery"
	VerticalTeaShop    Vertical = "teaShop"
	VerticalBeautyShop Vertical = "beautyShop"
	VerticalHerbShop   Vertical = "herbShop"
)

// Verticals lists all supported verticals in a stable order.
func Verticals() []Vertical {
	return []Vertical{VerticalBrewery, VerticalTeaShop, VerticalBeautyShop, VerticalHerbShop}
}

// Valid reports whether v is one of the four supported verticals.
func (v Vertical) Valid() bool {
	switch v {
	case VerticalBrewery, VerticalTeaShop, VerticalBeautyShop, VerticalHerbShop:
		return true
	}
	return false
}

// Shop represents a tenant of the catalog. It is read-only to the filtering
// core for the lifetime of a filtering session.
type Shop struct {
	ID         string     `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Vertical   Vertical   `json:"shopType" db:"shop_type"`
	Categories []Category `json:"categories,omitempty"`
}

// CategoryName resolves a category id to its display name. Returns an empty
// string when the shop does not know the category.
func (s *Shop) CategoryName(categoryID string) string {
	for _, c := range s.Categories {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return ""
}
