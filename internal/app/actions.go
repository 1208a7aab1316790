package app

import (
	"context"

	"github.com/lumastudio/storefront/internal/admin"
	"github.com/lumastudio/storefront/internal/auth"
	"github.com/lumastudio/storefront/internal/cart"
	"github.com/lumastudio/storefront/internal/catalog"
	"github.com/lumastudio/storefront/internal/checkout"
	"github.com/lumastudio/storefront/internal/favorites"
	"github.com/lumastudio/storefront/internal/forms"
	"github.com/lumastudio/storefront/internal/i18n"
	"github.com/lumastudio/storefront/internal/navigation"
	"github.com/lumastudio/storefront/internal/orders"
	"github.com/lumastudio/storefront/internal/settings"
	"github.com/lumastudio/storefront/pkg/enums"
	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
)

func (a *App) navigate(ctx context.Context, action navigation.Action) error {
	return apply(ctx, a, storeNavigation, "", &a.state.Navigation, action, func(s navigation.State) (navigation.State, error) {
		return navigation.Reduce(s, action)
	})
}

// GoTo switches screens.
func (a *App) GoTo(ctx context.Context, screen enums.Screen) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.navigate(a.context(ctx), navigation.GoTo{Screen: screen})
}

// OpenDetails shows a product.
func (a *App) OpenDetails(ctx context.Context, productID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.navigate(a.context(ctx), navigation.OpenDetails{ProductID: productID})
}

func (a *App) dispatchCatalog(ctx context.Context, action catalog.Action) error {
	return apply(ctx, a, storeCatalog, KeyProducts, &a.state.Catalog, action, func(s catalog.State) (catalog.State, error) {
		return catalog.Reduce(s, action)
	})
}

func (a *App) dispatchCart(ctx context.Context, action cart.Action) error {
	return apply(ctx, a, storeCart, KeyCart, &a.state.Cart, action, func(s cart.State) (cart.State, error) {
		return cart.Reduce(s, action)
	})
}

// AddToCart adds one unit of a product in colorID. An empty colorID picks
// the product's first color.
func (a *App) AddToCart(ctx context.Context, productID, colorID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctx = a.context(ctx)

	action := cart.AddItem{ProductID: productID, ColorID: colorID, At: a.now()}
	product, ok := a.state.Catalog.Find(productID)
	if !ok {
		return a.reject(ctx, storeCart, action, forms.Error(pkgerrors.CodeNotFound, i18n.MsgUnknownProduct))
	}
	if action.ColorID == "" {
		action.ColorID = product.DefaultColorID()
	}
	if _, ok := product.Color(action.ColorID); !ok {
		return a.reject(ctx, storeCart, action, pkgerrors.New(pkgerrors.CodeValidation, "unknown color").
			WithDetails(forms.Details{Message: i18n.MsgInvalidInput, Fields: map[string]string{"color": action.ColorID}}))
	}
	return a.dispatchCart(ctx, action)
}

// UpdateQuantity sets a line quantity, clamped to at least 1.
func (a *App) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dispatchCart(a.context(ctx), cart.UpdateQuantity{ID: itemID, Quantity: quantity})
}

// RemoveItem drops a cart line.
func (a *App) RemoveItem(ctx context.Context, itemID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dispatchCart(a.context(ctx), cart.RemoveItem{ID: itemID})
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dispatchCart(a.context(ctx), cart.Clear{})
}

// ToggleFavorite flips a product's favorite membership.
func (a *App) ToggleFavorite(ctx context.Context, productID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	action := favorites.Toggle{ProductID: productID}
	return apply(a.context(ctx), a, storeFavorites, KeyFavorites, &a.state.Favorites, action, func(s favorites.State) (favorites.State, error) {
		return favorites.Reduce(s, action)
	})
}

func (a *App) dispatchAuth(ctx context.Context, action auth.Action) error {
	return apply(ctx, a, storeAuth, KeyAuth, &a.state.Auth, action, func(s auth.State) (auth.State, error) {
		return a.auth.Reduce(s, action)
	})
}

// Register validates the form, replaces the stored account and moves to
// email verification.
func (a *App) Register(ctx context.Context, email, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctx = a.context(ctx)

	action := auth.Register{Email: email, Password: password}
	if err := (forms.Credentials{Email: email, Password: password}).Validate(); err != nil {
		return a.reject(ctx, storeAuth, action, err)
	}
	if a.state.Auth.IsRegistered(email) {
		return a.reject(ctx, storeAuth, action, forms.Error(pkgerrors.CodeConflict, i18n.MsgEmailRegistered))
	}
	if err := a.dispatchAuth(ctx, action); err != nil {
		return err
	}
	return a.navigate(ctx, navigation.GoTo{Screen: enums.ScreenEmailVerification})
}

// Login signs in the stored account and moves home.
func (a *App) Login(ctx context.Context, email, password string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctx = a.context(ctx)

	action := auth.Login{Email: email, Password: password}
	if err := (forms.Credentials{Email: email, Password: password}).Validate(); err != nil {
		return a.reject(ctx, storeAuth, action, err)
	}
	if err := a.dispatchAuth(ctx, action); err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized) {
			return forms.Error(pkgerrors.CodeUnauthorized, i18n.MsgIncorrectCredentials)
		}
		return err
	}
	return a.navigate(ctx, navigation.GoTo{Screen: enums.ScreenHome})
}

// VerifyEmail accepts any 6-character code and moves home.
func (a *App) VerifyEmail(ctx context.Context, code string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctx = a.context(ctx)

	action := auth.VerifyEmail{Code: code}
	if err := (forms.Verification{Code: code}).Validate(); err != nil {
		return a.reject(ctx, storeAuth, action, err)
	}
	if err := a.dispatchAuth(ctx, action); err != nil {
		return err
	}
	return a.navigate(ctx, navigation.GoTo{Screen: enums.ScreenHome})
}

// Logout ends the session, keeps the account and returns to onboarding.
func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctx = a.context(ctx)
	if err := a.dispatchAuth(ctx, auth.Logout{}); err != nil {
		return err
	}
	return a.navigate(ctx, navigation.GoTo{Screen: enums.ScreenOnboarding})
}

// ResetAccount deletes the stored account and returns to onboarding.
func (a *App) ResetAccount(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctx = a.context(ctx)
	action := auth.Reset{}
	err := apply(ctx, a, storeAuth, "", &a.state.Auth, action, func(s auth.State) (auth.State, error) {
		return a.auth.Reduce(s, action)
	})
	if err != nil {
		return err
	}
	a.remove(ctx, KeyAuth)
	return a.navigate(ctx, navigation.GoTo{Screen: enums.ScreenOnboarding})
}

// Quote prices the current cart with promo.
func (a *App) Quote(promo string) checkout.Quote {
	a.mu.Lock()
	defer a.mu.Unlock()
	return checkout.QuoteCart(a.state.Cart, a.state.Catalog, promo)
}

// Checkout records an order for the cart, clears the cart and shows the
// order history.
func (a *App) Checkout(ctx context.Context, form forms.Checkout) (orders.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctx = a.context(ctx)

	action, _, err := checkout.PlaceOrder(form, a.state.Cart, a.state.Catalog, a.now())
	if err != nil {
		return orders.Order{}, a.reject(ctx, storeOrders, action, err)
	}
	err = apply(ctx, a, storeOrders, KeyOrders, &a.state.Orders, action, func(s orders.State) (orders.State, error) {
		return orders.Reduce(s, action)
	})
	if err != nil {
		return orders.Order{}, err
	}
	order := a.state.Orders.Orders[len(a.state.Orders.Orders)-1]
	if err := a.dispatchCart(ctx, cart.Clear{}); err != nil {
		return order, err
	}
	return order, a.navigate(ctx, navigation.GoTo{Screen: enums.ScreenOrders})
}

// AdminStats returns the dashboard numbers for an admin session.
func (a *App) AdminStats() (admin.Stats, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := admin.Authorize(a.state.Auth); err != nil {
		return admin.Stats{}, err
	}
	return admin.StatsFor(a.state.Catalog, a.state.Orders), nil
}

// AdminAddProduct appends a product from the admin form and returns it.
func (a *App) AdminAddProduct(ctx context.Context, form forms.AdminProduct) (catalog.Product, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctx = a.context(ctx)

	if err := admin.Authorize(a.state.Auth); err != nil {
		return catalog.Product{}, a.reject(ctx, storeCatalog, catalog.AddProduct{}, err)
	}
	action, err := admin.AddProduct(form, a.state.Language.Lang, a.now())
	if err != nil {
		return catalog.Product{}, a.reject(ctx, storeCatalog, action, err)
	}
	if err := a.dispatchCatalog(ctx, action); err != nil {
		return catalog.Product{}, err
	}
	return a.state.Catalog.Products[len(a.state.Catalog.Products)-1], nil
}

// AdminEditImages replaces a product's main image and gallery.
func (a *App) AdminEditImages(ctx context.Context, form forms.AdminImages) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctx = a.context(ctx)

	if err := admin.Authorize(a.state.Auth); err != nil {
		return a.reject(ctx, storeCatalog, catalog.UpdateProduct{ID: form.ProductID}, err)
	}
	action, err := admin.EditImages(form, a.state.Catalog)
	if err != nil {
		return a.reject(ctx, storeCatalog, action, err)
	}
	return a.dispatchCatalog(ctx, action)
}

// SetTheme changes the appearance preference.
func (a *App) SetTheme(ctx context.Context, theme enums.Theme) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	action := settings.SetTheme{Theme: theme}
	return apply(a.context(ctx), a, storeTheme, KeyTheme, &a.state.Theme, action, func(s settings.Theme) (settings.Theme, error) {
		return settings.ReduceTheme(s, action)
	})
}

func (a *App) dispatchNotifications(ctx context.Context, action settings.Action) error {
	return apply(ctx, a, storeNotifications, KeyNotifications, &a.state.Notifications, action, func(s settings.Notifications) (settings.Notifications, error) {
		return settings.ReduceNotifications(s, action)
	})
}

// SetPushNotifications toggles push notifications.
func (a *App) SetPushNotifications(ctx context.Context, enabled bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dispatchNotifications(a.context(ctx), settings.SetPush{Enabled: enabled})
}

// SetEmailNotifications toggles email notifications.
func (a *App) SetEmailNotifications(ctx context.Context, enabled bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dispatchNotifications(a.context(ctx), settings.SetEmail{Enabled: enabled})
}

func (a *App) dispatchLanguage(ctx context.Context, action settings.Action) error {
	return apply(ctx, a, storeLang, KeyLang, &a.state.Language, action, func(s settings.Language) (settings.Language, error) {
		return settings.ReduceLanguage(s, action)
	})
}

// SetLang switches the UI language.
func (a *App) SetLang(ctx context.Context, lang enums.Lang) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dispatchLanguage(a.context(ctx), settings.SetLang{Lang: lang})
}

// ToggleLang flips between en and ru.
func (a *App) ToggleLang(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dispatchLanguage(a.context(ctx), settings.ToggleLang{})
}
