// Package orders keeps the append-only log of completed checkouts.
package orders

import (
	"fmt"
	"time"

	"github.com/lumastudio/storefront/internal/cart"
	"github.com/shopspring/decimal"
)

// TimestampLayout matches an ISO-8601 UTC timestamp with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Meta is the optional contact data captured at checkout.
type Meta struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"address,omitempty"`
	PromoCode string `json:"promoCode,omitempty"`
}

type Order struct {
	ID        string          `json:"id"`
	CreatedAt string          `json:"createdAt"`
	Total     decimal.Decimal `json:"total"`
	Items     []cart.Item     `json:"items"`
	Meta
}

// State is the persisted order log.
type State struct {
	Orders []Order `json:"orders"`
}

func DefaultState() State {
	return State{Orders: []Order{}}
}

// Action is an order log transition.
type Action interface {
	Name() string
}

// CreateOrder snapshots Items and appends a new order stamped with At.
type CreateOrder struct {
	Items []cart.Item
	Total decimal.Decimal
	Meta  Meta
	At    time.Time
}

func (CreateOrder) Name() string { return "create_order" }

// OrderID returns order-<unix millis>.
func OrderID(at time.Time) string {
	return fmt.Sprintf("order-%d", at.UnixMilli())
}

func Reduce(state State, action Action) (State, error) {
	switch a := action.(type) {
	case CreateOrder:
		items := make([]cart.Item, len(a.Items))
		copy(items, a.Items)
		next := make([]Order, len(state.Orders), len(state.Orders)+1)
		copy(next, state.Orders)
		next = append(next, Order{
			ID:        OrderID(a.At),
			CreatedAt: a.At.UTC().Format(TimestampLayout),
			Total:     a.Total,
			Items:     items,
			Meta:      a.Meta,
		})
		return State{Orders: next}, nil
	default:
		return state, fmt.Errorf("orders: unsupported action %T", action)
	}
}

// Revenue sums every order total.
func (s State) Revenue() decimal.Decimal {
	total := decimal.Zero
	for _, o := range s.Orders {
		total = total.Add(o.Total)
	}
	return total
}

// Latest returns up to n orders, newest first.
func (s State) Latest(n int) []Order {
	if n <= 0 {
		return nil
	}
	out := make([]Order, 0, min(n, len(s.Orders)))
	for i := len(s.Orders) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.Orders[i])
	}
	return out
}

// Units is the number of pieces in the order.
func (o Order) Units() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
