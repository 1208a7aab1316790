// Package views renders screens as plain text.
package views

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/lumastudio/storefront/internal/admin"
	"github.com/lumastudio/storefront/internal/app"
	"github.com/lumastudio/storefront/internal/auth"
	"github.com/lumastudio/storefront/internal/cart"
	"github.com/lumastudio/storefront/internal/catalog"
	"github.com/lumastudio/storefront/internal/checkout"
	"github.com/lumastudio/storefront/internal/forms"
	"github.com/lumastudio/storefront/internal/i18n"
	"github.com/lumastudio/storefront/pkg/enums"
	"github.com/shopspring/decimal"
)

// Frame carries the transient view input that does not live in a store.
type Frame struct {
	Filter   catalog.Filter
	Promo    string
	Err      error
	Notice   string
	Stats    *admin.Stats
	Degraded bool
}

// Renderer writes screens to out. The first render of the home screen after
// arriving there shows a loading line for LoadingDelay.
type Renderer struct {
	out          io.Writer
	loadingDelay time.Duration
	lastScreen   enums.Screen
}

func NewRenderer(out io.Writer, loadingDelay time.Duration) *Renderer {
	return &Renderer{out: out, loadingDelay: loadingDelay}
}

// Render prints the current screen. It only blocks during the home loading
// delay and returns ctx.Err() if cancelled while waiting.
func (r *Renderer) Render(ctx context.Context, snap app.Snapshot, frame Frame) error {
	lang := snap.Language.Lang
	screen := snap.Navigation.Current
	arriving := screen != r.lastScreen
	r.lastScreen = screen

	var b strings.Builder
	header(&b, snap, lang)
	if frame.Degraded {
		line(&b, "! "+i18n.T(lang, i18n.MsgStorageUnavailable))
	}

	if screen == enums.ScreenHome && arriving && r.loadingDelay > 0 {
		line(&b, i18n.T(lang, i18n.MsgLoading))
		if _, err := io.WriteString(r.out, b.String()); err != nil {
			return err
		}
		b.Reset()
		timer := time.NewTimer(r.loadingDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	switch screen {
	case enums.ScreenOnboarding:
		onboarding(&b, lang)
	case enums.ScreenAuth:
		authScreen(&b, snap, lang)
	case enums.ScreenEmailVerification:
		verifyScreen(&b, snap, lang)
	case enums.ScreenHome:
		home(&b, snap, frame.Filter, lang)
	case enums.ScreenDetails:
		details(&b, snap, lang)
	case enums.ScreenCart:
		cartScreen(&b, snap, lang)
	case enums.ScreenCheckout:
		checkoutScreen(&b, snap, frame.Promo, lang)
	case enums.ScreenProfile:
		profile(&b, snap, lang)
	case enums.ScreenNotifications:
		notifications(&b, lang)
	case enums.ScreenFavorites:
		favoritesScreen(&b, snap, lang)
	case enums.ScreenOrders:
		ordersScreen(&b, snap, lang)
	case enums.ScreenAdmin:
		adminScreen(&b, snap, frame.Stats, lang)
	case enums.ScreenSettings:
		settingsScreen(&b, snap, lang)
	case enums.ScreenPrivacy:
		title(&b, i18n.T(lang, i18n.MsgPrivacyTitle))
		line(&b, i18n.T(lang, i18n.MsgPrivacyContent))
	case enums.ScreenTerms:
		title(&b, i18n.T(lang, i18n.MsgTermsTitle))
		line(&b, i18n.T(lang, i18n.MsgTermsContent))
	default:
		line(&b, i18n.T(lang, i18n.MsgUnknownScreen))
	}

	if frame.Notice != "" {
		line(&b, "* "+frame.Notice)
	}
	if frame.Err != nil {
		line(&b, "! "+i18n.T(lang, forms.Message(frame.Err)))
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func line(b *strings.Builder, s string) {
	b.WriteString(s)
	b.WriteByte('\n')
}

func title(b *strings.Builder, s string) {
	line(b, "== "+s+" ==")
}

// Money formats an amount with two decimals.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func header(b *strings.Builder, snap app.Snapshot, lang enums.Lang) {
	line(b, fmt.Sprintf("Luma Studio · %s  [%s] [cart %d] [%s]",
		i18n.T(lang, i18n.MsgHomeSubtitle), snap.Navigation.Current, snap.Cart.Count(), lang))
}

func onboarding(b *strings.Builder, lang enums.Lang) {
	line(b, i18n.T(lang, i18n.MsgOnboardingChip))
	title(b, i18n.T(lang, i18n.MsgOnboardingTitle))
	line(b, i18n.T(lang, i18n.MsgOnboardingSubtitle))
	line(b, "> "+i18n.T(lang, i18n.MsgOnboardingCTA)+": goto auth")
}

func authScreen(b *strings.Builder, snap app.Snapshot, lang enums.Lang) {
	title(b, i18n.T(lang, i18n.MsgAuthTitle))
	switch snap.Auth.Phase() {
	case auth.PhaseSignedOut:
		line(b, "login <email> <password>   ("+snap.Auth.User.Email+")")
	default:
		line(b, "register <email> <password>")
		line(b, "login <email> <password>")
	}
}

func verifyScreen(b *strings.Builder, snap app.Snapshot, lang enums.Lang) {
	title(b, i18n.T(lang, i18n.MsgVerifyTitle))
	desc := i18n.T(lang, i18n.MsgVerifyDescription)
	if snap.Auth.User != nil {
		desc += ": " + snap.Auth.User.Email
	}
	line(b, desc)
	line(b, "verify <code>")
}

func home(b *strings.Builder, snap app.Snapshot, filter catalog.Filter, lang enums.Lang) {
	category := filter.Category
	if category == "" {
		category = enums.CategoryAll
	}
	cats := []string{i18n.Category(lang, enums.CategoryAll)}
	for _, c := range enums.ProductCategories() {
		cats = append(cats, i18n.Category(lang, string(c)))
	}
	line(b, strings.Join(cats, " | ")+"   ["+i18n.Category(lang, category)+"]")
	if filter.Active() || filter.Sort != "" {
		line(b, fmt.Sprintf("q=%q min=%q max=%q sort=%s", filter.Query, filter.Min, filter.Max, sortName(filter.Sort)))
	}

	products := catalog.Apply(snap.Catalog.Products, filter)
	if len(products) == 0 {
		line(b, i18n.T(lang, i18n.MsgNoResults))
		return
	}
	for _, p := range products {
		line(b, productRow(p, snap.Favorites.Contains(p.ID)))
	}
}

func sortName(s enums.SortMode) string {
	if s == "" {
		return string(enums.SortRelevance)
	}
	return string(s)
}

func productRow(p catalog.Product, favorite bool) string {
	mark := " "
	if favorite {
		mark = "♥"
	}
	var tags []string
	if p.IsNew {
		tags = append(tags, "new")
	}
	if p.IsBestseller {
		tags = append(tags, "bestseller")
	}
	if p.DiscountPercent != nil {
		tags = append(tags, fmt.Sprintf("-%d%%", *p.DiscountPercent))
	}
	row := fmt.Sprintf("%s %-28s %-6s $%s", mark, p.ID, p.Category, p.Price.String())
	if p.OldPrice != nil {
		row += fmt.Sprintf(" (was $%s)", p.OldPrice.String())
	}
	row += "  " + p.Name
	if len(tags) > 0 {
		row += " [" + strings.Join(tags, ", ") + "]"
	}
	return row
}

func details(b *strings.Builder, snap app.Snapshot, lang enums.Lang) {
	line(b, "← "+i18n.T(lang, i18n.MsgBackToCollection))
	p, ok := snap.Catalog.Find(snap.Navigation.SelectedProductID)
	if !ok {
		line(b, i18n.T(lang, i18n.MsgUnknownProduct))
		return
	}
	title(b, p.Name)
	line(b, fmt.Sprintf("%s · $%s", i18n.Category(lang, string(p.Category)), p.Price.String()))
	line(b, p.Description)
	line(b, "image: "+p.Image)
	for _, g := range p.Gallery {
		line(b, "       "+g)
	}
	line(b, i18n.T(lang, i18n.MsgFinishAndColor)+":")
	for _, c := range p.Colors {
		line(b, fmt.Sprintf("  %-12s %-14s %s", c.ID, c.Name, c.Hex))
	}
	line(b, "> "+i18n.T(lang, i18n.MsgAddToCart, p.Price.String())+": add "+p.ID+" <color>")
	line(b, i18n.T(lang, i18n.MsgFreeDelivery))
}

func cartScreen(b *strings.Builder, snap app.Snapshot, lang enums.Lang) {
	title(b, i18n.T(lang, i18n.MsgCartTitle))
	lines := snap.Cart.Lines(snap.Catalog)
	if len(lines) == 0 {
		line(b, i18n.T(lang, i18n.MsgCartEmpty))
		return
	}
	writeLines(b, lines)
	line(b, fmt.Sprintf("%s: %s", i18n.T(lang, i18n.MsgSubtotal), Money(snap.Cart.Subtotal(snap.Catalog))))
	line(b, fmt.Sprintf("%s: %s", i18n.T(lang, i18n.MsgShipping), i18n.T(lang, i18n.MsgShippingNote)))
}

func writeLines(b *strings.Builder, lines []cart.Line) {
	for _, l := range lines {
		color := l.Color.Name
		if color == "" {
			color = l.Item.ColorID
		}
		line(b, fmt.Sprintf("  %s  %s (%s) x%d  %s", l.Item.ID, l.Product.Name, color, l.Item.Quantity, Money(l.LineTotal)))
	}
}

func checkoutScreen(b *strings.Builder, snap app.Snapshot, promo string, lang enums.Lang) {
	title(b, i18n.T(lang, i18n.MsgCheckoutTitle))
	if len(snap.Cart.Items) == 0 {
		line(b, i18n.T(lang, i18n.MsgEmptyCart))
		return
	}
	writeLines(b, snap.Cart.Lines(snap.Catalog))
	q := checkout.QuoteCart(snap.Cart, snap.Catalog, promo)
	line(b, fmt.Sprintf("%s: %s", i18n.T(lang, i18n.MsgSubtotal), Money(q.Subtotal)))
	line(b, fmt.Sprintf("%s: -%s", i18n.T(lang, i18n.MsgDiscount), Money(q.Discount)))
	line(b, fmt.Sprintf("%s: %s", i18n.T(lang, i18n.MsgTotal), Money(q.Total)))
	line(b, "checkout name=.. email=.. address=.. [promo=..]   ("+i18n.T(lang, i18n.MsgPromoHint)+")")
}

func profile(b *strings.Builder, snap app.Snapshot, lang enums.Lang) {
	title(b, i18n.T(lang, i18n.MsgProfileTitle))
	who := i18n.T(lang, i18n.MsgProfileGuest)
	if snap.Auth.User != nil {
		who = snap.Auth.User.Email
		if snap.Auth.User.IsAdmin {
			who += " (admin)"
		}
	}
	line(b, who+" · "+string(snap.Auth.Phase()))
	for _, s := range []enums.Screen{enums.ScreenSettings, enums.ScreenNotifications, enums.ScreenOrders, enums.ScreenFavorites, enums.ScreenPrivacy, enums.ScreenTerms} {
		line(b, "  goto "+string(s))
	}
	if snap.Auth.IsAdmin() {
		line(b, "  goto admin")
	}
	line(b, "  logout | reset")
}

func notifications(b *strings.Builder, lang enums.Lang) {
	title(b, i18n.T(lang, i18n.MsgNotificationsTitle))
	line(b, "  "+i18n.T(lang, i18n.MsgOrderCreated))
	line(b, "  "+i18n.T(lang, i18n.MsgNewChairs))
}

func favoritesScreen(b *strings.Builder, snap app.Snapshot, lang enums.Lang) {
	title(b, i18n.T(lang, i18n.MsgFavoritesTitle))
	products := snap.Favorites.Products(snap.Catalog)
	if len(products) == 0 {
		line(b, i18n.T(lang, i18n.MsgFavoritesEmpty))
		return
	}
	for _, p := range products {
		line(b, productRow(p, true))
	}
}

func ordersScreen(b *strings.Builder, snap app.Snapshot, lang enums.Lang) {
	title(b, i18n.T(lang, i18n.MsgOrdersTitle))
	list := snap.Orders.Orders
	line(b, fmt.Sprintf("%s: %d · %s: %s", i18n.T(lang, i18n.MsgTotalOrders), len(list), i18n.T(lang, i18n.MsgLifetimeValue), Money(snap.Orders.Revenue())))
	if len(list) == 0 {
		line(b, i18n.T(lang, i18n.MsgOrdersEmpty))
		return
	}
	for _, o := range snap.Orders.Latest(len(list)) {
		line(b, fmt.Sprintf("  %s  %s  %d pcs  %s", o.ID, o.CreatedAt, o.Units(), Money(o.Total)))
	}
}

func adminScreen(b *strings.Builder, snap app.Snapshot, stats *admin.Stats, lang enums.Lang) {
	title(b, i18n.T(lang, i18n.MsgAdminTitle))
	if stats == nil {
		line(b, i18n.T(lang, i18n.MsgAdminOnly))
		return
	}
	line(b, fmt.Sprintf("%s: %d", i18n.T(lang, i18n.MsgTotalProducts), stats.Products))
	line(b, fmt.Sprintf("%s: %d", i18n.T(lang, i18n.MsgTotalOrders), stats.Orders))
	line(b, fmt.Sprintf("%s: %s", i18n.T(lang, i18n.MsgRevenue), Money(stats.Revenue)))
	line(b, i18n.T(lang, i18n.MsgLatestOrders)+":")
	if len(stats.LatestOrders) == 0 {
		line(b, "  "+i18n.T(lang, i18n.MsgOrdersEmpty))
	}
	for _, o := range stats.LatestOrders {
		line(b, fmt.Sprintf("  %s  %s  %s", o.ID, o.Email, Money(o.Total)))
	}
	line(b, "admin-add name=.. category=.. price=.. image=.. [gallery=..] [color1=name:hex ..]")
	line(b, "admin-images <productID> image=.. [gallery=..]")
	for _, p := range snap.Catalog.Products {
		line(b, fmt.Sprintf("  %s  %s  (%d photos)", p.ID, p.Image, len(p.Gallery)))
	}
}

func settingsScreen(b *strings.Builder, snap app.Snapshot, lang enums.Lang) {
	title(b, i18n.T(lang, i18n.MsgSettingsTitle))
	line(b, fmt.Sprintf("%s: %s", i18n.T(lang, i18n.MsgThemeLabel), snap.Theme.Theme))
	line(b, fmt.Sprintf("%s: %s", i18n.T(lang, i18n.MsgLanguageLabel), snap.Language.Lang))
	line(b, fmt.Sprintf("%s: %s", i18n.T(lang, i18n.MsgPushNotifications), onOff(lang, snap.Notifications.PushEnabled)))
	line(b, fmt.Sprintf("%s: %s", i18n.T(lang, i18n.MsgEmailNotifications), onOff(lang, snap.Notifications.EmailEnabled)))
}

func onOff(lang enums.Lang, v bool) string {
	if v {
		return i18n.T(lang, i18n.MsgOn)
	}
	return i18n.T(lang, i18n.MsgOff)
}
