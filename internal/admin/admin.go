// Package admin implements the admin panel: the access gate, dashboard
// stats and the product forms.
package admin

import (
	"strings"
	"time"

	"github.com/lumastudio/storefront/internal/auth"
	"github.com/lumastudio/storefront/internal/catalog"
	"github.com/lumastudio/storefront/internal/forms"
	"github.com/lumastudio/storefront/internal/i18n"
	"github.com/lumastudio/storefront/internal/orders"
	"github.com/lumastudio/storefront/pkg/enums"
	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
	"github.com/shopspring/decimal"
)

// LatestOrdersLimit is how many orders the dashboard lists.
const LatestOrdersLimit = 5

var newProductDescription = map[enums.Lang]string{
	enums.LangEN: "New product added from the admin panel.",
	enums.LangRU: "Новый товар, добавленный через админ-панель.",
}

// Authorize rejects sessions that are not a signed-in admin.
func Authorize(state auth.State) error {
	if !state.IsAdmin() {
		return forms.Error(pkgerrors.CodeForbidden, i18n.MsgAdminOnly)
	}
	return nil
}

type Stats struct {
	Products     int
	Orders       int
	Revenue      decimal.Decimal
	LatestOrders []orders.Order
}

func StatsFor(products catalog.State, log orders.State) Stats {
	return Stats{
		Products:     len(products.Products),
		Orders:       len(log.Orders),
		Revenue:      log.Revenue(),
		LatestOrders: log.Latest(LatestOrdersLimit),
	}
}

// AddProduct turns the add-product form into a catalog action. Incomplete
// color rows are skipped; with none left the product gets DefaultColor.
func AddProduct(form forms.AdminProduct, lang enums.Lang, at time.Time) (catalog.AddProduct, error) {
	if err := form.Validate(); err != nil {
		return catalog.AddProduct{}, err
	}
	price, err := decimal.NewFromString(strings.TrimSpace(form.Price))
	if err != nil {
		return catalog.AddProduct{}, forms.Error(pkgerrors.CodeValidation, i18n.MsgAdminProductInvalid)
	}
	category, err := enums.ParseProductCategory(form.Category)
	if err != nil {
		return catalog.AddProduct{}, forms.Error(pkgerrors.CodeValidation, i18n.MsgAdminProductInvalid)
	}

	colors := make([]catalog.ColorOption, 0, len(form.Colors))
	for i, c := range form.Colors {
		if !c.Complete() {
			continue
		}
		colors = append(colors, catalog.ColorOption{ID: colorID(i), Name: c.Name, Hex: c.Hex})
	}
	if len(colors) == 0 {
		colors = append(colors, catalog.DefaultColor)
	}

	description, ok := newProductDescription[lang]
	if !ok {
		description = newProductDescription[enums.LangEN]
	}

	return catalog.AddProduct{
		Product: catalog.NewProduct{
			Name:        form.Name,
			Category:    category,
			Price:       price,
			Image:       form.Image,
			Description: description,
			Colors:      colors,
			Gallery:     forms.SplitList(form.Gallery),
		},
		At: at,
	}, nil
}

func colorID(i int) string {
	return "c" + string(rune('1'+i))
}

// EditImages replaces the main image (kept when empty) and the gallery of an
// existing product.
func EditImages(form forms.AdminImages, products catalog.State) (catalog.UpdateProduct, error) {
	if err := form.Validate(); err != nil {
		return catalog.UpdateProduct{}, err
	}
	current, ok := products.Find(form.ProductID)
	if !ok {
		return catalog.UpdateProduct{}, forms.Error(pkgerrors.CodeNotFound, i18n.MsgUnknownProduct)
	}
	image := form.Image
	if image == "" {
		image = current.Image
	}
	gallery := forms.SplitList(form.Gallery)
	return catalog.UpdateProduct{
		ID:    current.ID,
		Patch: catalog.Patch{Image: &image, Gallery: &gallery},
	}, nil
}
