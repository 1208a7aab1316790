// Package favorites owns the set of products the shopper marked.
package favorites

import (
	"fmt"
	"slices"

	"github.com/lumastudio/storefront/internal/catalog"
)

// State is the persisted favorite set, kept in insertion order.
type State struct {
	IDs []string `json:"ids"`
}

func DefaultState() State {
	return State{IDs: []string{}}
}

// Action is a favorites transition.
type Action interface {
	Name() string
}

// Toggle adds ProductID when absent and removes it when present.
type Toggle struct {
	ProductID string
}

func (Toggle) Name() string { return "toggle" }

func Reduce(state State, action Action) (State, error) {
	switch a := action.(type) {
	case Toggle:
		if state.Contains(a.ProductID) {
			next := make([]string, 0, len(state.IDs))
			for _, id := range state.IDs {
				if id != a.ProductID {
					next = append(next, id)
				}
			}
			return State{IDs: next}, nil
		}
		next := make([]string, len(state.IDs), len(state.IDs)+1)
		copy(next, state.IDs)
		return State{IDs: append(next, a.ProductID)}, nil
	default:
		return state, fmt.Errorf("favorites: unsupported action %T", action)
	}
}

func (s State) Contains(productID string) bool {
	return slices.Contains(s.IDs, productID)
}

// Products resolves favorites in insertion order, skipping unknown ids.
func (s State) Products(products catalog.State) []catalog.Product {
	out := make([]catalog.Product, 0, len(s.IDs))
	for _, id := range s.IDs {
		if p, ok := products.Find(id); ok {
			out = append(out, p)
		}
	}
	return out
}
