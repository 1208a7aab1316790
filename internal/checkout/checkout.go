// Package checkout prices a cart and turns a submitted form into an order.
package checkout

import (
	"strings"
	"time"

	"github.com/lumastudio/storefront/internal/cart"
	"github.com/lumastudio/storefront/internal/catalog"
	"github.com/lumastudio/storefront/internal/forms"
	"github.com/lumastudio/storefront/internal/i18n"
	"github.com/lumastudio/storefront/internal/orders"
	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
	"github.com/shopspring/decimal"
)

// Promo codes accepted at checkout.
const (
	PromoWelcome10 = "WELCOME10"
	PromoFreeShip  = "FREESHIP"
)

var (
	welcomeRate    = decimal.RequireFromString("0.1")
	freeShipAmount = decimal.NewFromInt(15)
)

// NormalizePromo trims and upper-cases a promo code.
func NormalizePromo(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Discount returns the promo discount for subtotal. Unknown codes give zero.
func Discount(subtotal decimal.Decimal, code string) decimal.Decimal {
	switch NormalizePromo(code) {
	case PromoWelcome10:
		return subtotal.Mul(welcomeRate)
	case PromoFreeShip:
		return freeShipAmount
	default:
		return decimal.Zero
	}
}

type Quote struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Price computes the quote; the total never drops below zero.
func Price(subtotal decimal.Decimal, code string) Quote {
	discount := Discount(subtotal, code)
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	return Quote{Subtotal: subtotal, Discount: discount, Total: total}
}

// QuoteCart prices the resolvable lines of a cart.
func QuoteCart(c cart.State, products catalog.State, code string) Quote {
	return Price(c.Subtotal(products), code)
}

// PlaceOrder validates the form against the current cart and returns the
// order action to apply. The promo code is stored as typed.
func PlaceOrder(form forms.Checkout, c cart.State, products catalog.State, at time.Time) (orders.CreateOrder, Quote, error) {
	if len(c.Items) == 0 {
		return orders.CreateOrder{}, Quote{}, forms.Error(pkgerrors.CodeValidation, i18n.MsgEmptyCart)
	}
	if err := form.Validate(); err != nil {
		return orders.CreateOrder{}, Quote{}, err
	}
	quote := QuoteCart(c, products, form.Promo)
	return orders.CreateOrder{
		Items: c.Items,
		Total: quote.Total,
		Meta: orders.Meta{
			Name:      form.Name,
			Email:     form.Email,
			Address:   form.Address,
			PromoCode: form.Promo,
		},
		At: at,
	}, quote, nil
}
