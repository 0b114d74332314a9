package models

// Category enumerates the closed set of product categories.
type Category string

const (
	CategoryNew     Category = "new"
	CategoryLimited Category = "limited"
	CategoryPromo   Category = "promo"
)

// Valid reports whether the category is one of the three known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryNew, CategoryLimited, CategoryPromo:
		return true
	}
	return false
}

// BadgeLabel returns the storefront badge text for the category.
func (c Category) BadgeLabel() string {
	switch c {
	case CategoryNew:
		return "NOVO"
	case CategoryLimited:
		return "LIMITADA"
	case CategoryPromo:
		return "PROMOÇÃO"
	}
	return ""
}

// Product represents one catalog entry. The collection is persisted as a
// single JSON blob under a fixed store key; fields mirror that wire format.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Images        []string `json:"images"`
	Category      Category `json:"category"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Description   string   `json:"description"`
	Featured      bool     `json:"featured"`
}

// PrimaryImage returns the first image reference, used by list views.
func (p *Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// HasSize reports whether the size token is part of the product's size set.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor reports whether the color is one of the product's colors.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
