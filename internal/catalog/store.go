// Package catalog owns the list of sellable products.
package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// State is the persisted catalog.
type State struct {
	Products []Product `json:"products"`
}

// DefaultState returns the seeded catalog.
func DefaultState() State {
	return State{Products: Seed()}
}

// Action is a catalog transition.
type Action interface {
	Name() string
}

// AddProduct appends a product with an id derived from its name and At.
type AddProduct struct {
	Product NewProduct
	At      time.Time
}

func (AddProduct) Name() string { return "add_product" }

// UpdateProduct merges Patch into the product with ID. Unknown ids are a no-op.
type UpdateProduct struct {
	ID    string
	Patch Patch
}

func (UpdateProduct) Name() string { return "update_product" }

// Reduce applies action to state and returns the next state. The input state
// is not modified.
func Reduce(state State, action Action) (State, error) {
	switch a := action.(type) {
	case AddProduct:
		next := make([]Product, len(state.Products), len(state.Products)+1)
		copy(next, state.Products)
		in := a.Product
		next = append(next, Product{
			ID:              GenerateID(in.Name, a.At),
			Name:            in.Name,
			Category:        in.Category,
			Price:           in.Price,
			OldPrice:        in.OldPrice,
			IsNew:           in.IsNew,
			IsBestseller:    in.IsBestseller,
			DiscountPercent: in.DiscountPercent,
			Image:           in.Image,
			Description:     in.Description,
			Colors:          append([]ColorOption(nil), in.Colors...),
			Gallery:         append([]string(nil), in.Gallery...),
		})
		return State{Products: next}, nil
	case UpdateProduct:
		next := make([]Product, len(state.Products))
		for i, p := range state.Products {
			if p.ID == a.ID {
				p = a.Patch.apply(p)
			}
			next[i] = p
		}
		return State{Products: next}, nil
	default:
		return state, fmt.Errorf("catalog: unsupported action %T", action)
	}
}

// Find resolves a product by id.
func (s State) Find(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

const maxSlugLen = 24

// Slug lowercases name, collapses every run outside [a-z0-9] into "-" and
// truncates to 24 characters. An empty result becomes "product".
func Slug(name string) string {
	base := nonSlugRe.ReplaceAllString(strings.ToLower(name), "-")
	if len(base) > maxSlugLen {
		base = base[:maxSlugLen]
	}
	if base == "" {
		return "product"
	}
	return base
}

// GenerateID returns <slug>-<unix millis>.
func GenerateID(name string, at time.Time) string {
	return fmt.Sprintf("%s-%d", Slug(name), at.UnixMilli())
}
