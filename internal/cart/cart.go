// Package cart owns the shopping cart line items.
package cart

import (
	"fmt"
	"time"

	"github.com/lumastudio/storefront/internal/catalog"
	"github.com/shopspring/decimal"
)

// Item is one (product, color) selection and its quantity.
type Item struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	ColorID   string `json:"colorId"`
	Quantity  int    `json:"quantity"`
}

// State is the persisted cart.
type State struct {
	Items []Item `json:"items"`
}

func DefaultState() State {
	return State{Items: []Item{}}
}

// Action is a cart transition.
type Action interface {
	Name() string
}

// AddItem increments the line for (ProductID, ColorID) or appends a new one.
type AddItem struct {
	ProductID string
	ColorID   string
	At        time.Time
}

func (AddItem) Name() string { return "add_item" }

// UpdateQuantity sets the quantity of a line, clamped to at least 1.
type UpdateQuantity struct {
	ID       string
	Quantity int
}

func (UpdateQuantity) Name() string { return "update_quantity" }

// RemoveItem drops a line.
type RemoveItem struct {
	ID string
}

func (RemoveItem) Name() string { return "remove_item" }

// Clear empties the cart.
type Clear struct{}

func (Clear) Name() string { return "clear" }

// ItemID returns <productID>-<colorID>-<unix millis>.
func ItemID(productID, colorID string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%d", productID, colorID, at.UnixMilli())
}

// Reduce applies action to state and returns the next state.
func Reduce(state State, action Action) (State, error) {
	switch a := action.(type) {
	case AddItem:
		next := make([]Item, len(state.Items), len(state.Items)+1)
		copy(next, state.Items)
		for i, item := range next {
			if item.ProductID == a.ProductID && item.ColorID == a.ColorID {
				next[i].Quantity++
				return State{Items: next}, nil
			}
		}
		next = append(next, Item{
			ID:        ItemID(a.ProductID, a.ColorID, a.At),
			ProductID: a.ProductID,
			ColorID:   a.ColorID,
			Quantity:  1,
		})
		return State{Items: next}, nil
	case UpdateQuantity:
		next := make([]Item, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ID == a.ID {
				item.Quantity = max(1, a.Quantity)
			}
			if item.Quantity > 0 {
				next = append(next, item)
			}
		}
		return State{Items: next}, nil
	case RemoveItem:
		next := make([]Item, 0, len(state.Items))
		for _, item := range state.Items {
			if item.ID != a.ID {
				next = append(next, item)
			}
		}
		return State{Items: next}, nil
	case Clear:
		return DefaultState(), nil
	default:
		return state, fmt.Errorf("cart: unsupported action %T", action)
	}
}

// Find resolves a line by id.
func (s State) Find(id string) (Item, bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Count is the total number of units, shown on the cart badge.
func (s State) Count() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

// Line is a cart item resolved against the catalog.
type Line struct {
	Item      Item
	Product   catalog.Product
	Color     catalog.ColorOption
	LineTotal decimal.Decimal
}

// Lines resolves items against products. Items whose product is gone are
// skipped.
func (s State) Lines(products catalog.State) []Line {
	out := make([]Line, 0, len(s.Items))
	for _, item := range s.Items {
		p, ok := products.Find(item.ProductID)
		if !ok {
			continue
		}
		color, _ := p.Color(item.ColorID)
		out = append(out, Line{
			Item:      item,
			Product:   p,
			Color:     color,
			LineTotal: p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return out
}

// Subtotal sums quantity × price over resolvable items.
func (s State) Subtotal(products catalog.State) decimal.Decimal {
	total := decimal.Zero
	for _, line := range s.Lines(products) {
		total = total.Add(line.LineTotal)
	}
	return total
}
