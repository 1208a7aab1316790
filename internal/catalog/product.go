package catalog

import (
	"github.com/lumastudio/storefront/pkg/enums"
	"github.com/shopspring/decimal"
)

// NoPhotoImage is the placeholder shown for products without photography.
const NoPhotoImage = "https://png.pngtree.com/png-clipart/20230411/original/pngtree-no-photo-line-icon-png-image_9045393.png"

// ColorOption is an immutable finish variant owned by a product.
type ColorOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// DefaultColor is assigned when a product is created without colors.
var DefaultColor = ColorOption{ID: "default", Name: "Default", Hex: "#E5E5E5"}

type Product struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Category        enums.ProductCategory `json:"category"`
	Price           decimal.Decimal       `json:"price"`
	OldPrice        *decimal.Decimal      `json:"oldPrice,omitempty"`
	IsNew           bool                  `json:"isNew,omitempty"`
	IsBestseller    bool                  `json:"isBestseller,omitempty"`
	DiscountPercent *int                  `json:"discountPercent,omitempty"`
	Image           string                `json:"image"`
	Description     string                `json:"description"`
	Colors          []ColorOption         `json:"colors"`
	Gallery         []string              `json:"gallery,omitempty"`
}

// Color resolves a color variant by id.
func (p Product) Color(id string) (ColorOption, bool) {
	for _, c := range p.Colors {
		if c.ID == id {
			return c, true
		}
	}
	return ColorOption{}, false
}

// DefaultColorID is the first variant, used when a caller does not pick one.
func (p Product) DefaultColorID() string {
	if len(p.Colors) == 0 {
		return DefaultColor.ID
	}
	return p.Colors[0].ID
}

// NewProduct is a product before an id has been assigned.
type NewProduct struct {
	Name            string
	Category        enums.ProductCategory
	Price           decimal.Decimal
	OldPrice        *decimal.Decimal
	IsNew           bool
	IsBestseller    bool
	DiscountPercent *int
	Image           string
	Description     string
	Colors          []ColorOption
	Gallery         []string
}

// Patch carries the fields to merge into an existing product. Nil fields are
// left unchanged.
type Patch struct {
	Name            *string
	Category        *enums.ProductCategory
	Price           *decimal.Decimal
	OldPrice        *decimal.Decimal
	IsNew           *bool
	IsBestseller    *bool
	DiscountPercent *int
	Image           *string
	Description     *string
	Colors          []ColorOption
	Gallery         *[]string
}

func (p Patch) apply(prod Product) Product {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Category != nil {
		prod.Category = *p.Category
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.OldPrice != nil {
		v := *p.OldPrice
		prod.OldPrice = &v
	}
	if p.IsNew != nil {
		prod.IsNew = *p.IsNew
	}
	if p.IsBestseller != nil {
		prod.IsBestseller = *p.IsBestseller
	}
	if p.DiscountPercent != nil {
		v := *p.DiscountPercent
		prod.DiscountPercent = &v
	}
	if p.Image != nil {
		prod.Image = *p.Image
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.Colors != nil {
		prod.Colors = append([]ColorOption(nil), p.Colors...)
	}
	if p.Gallery != nil {
		prod.Gallery = append([]string{}, (*p.Gallery)...)
	}
	return prod
}
