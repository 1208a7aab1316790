package views

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/lumastudio/storefront/internal/app"
	"github.com/lumastudio/storefront/internal/auth"
	"github.com/lumastudio/storefront/internal/catalog"
	"github.com/lumastudio/storefront/internal/forms"
	"github.com/lumastudio/storefront/internal/i18n"
	"github.com/lumastudio/storefront/pkg/enums"
	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
	"github.com/lumastudio/storefront/pkg/kv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *app.App {
	t.Helper()
	a, err := app.New(app.Params{
		Store: kv.NewMemory(),
		Admin: auth.Credentials{Email: "admin@furniture.local", Password: "admin123"},
	})
	require.NoError(t, err)
	a.Load(context.Background())
	return a
}

func TestRenderOnboarding(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, 0)
	require.NoError(t, r.Render(context.Background(), newApp(t).Snapshot(), Frame{}))
	assert.Contains(t, out.String(), i18n.T(enums.LangEN, i18n.MsgOnboardingTitle))
}

func TestHomeShowsLoadingOnceOnArrival(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	require.NoError(t, a.GoTo(ctx, enums.ScreenHome))

	var out bytes.Buffer
	r := NewRenderer(&out, time.Millisecond)
	require.NoError(t, r.Render(ctx, a.Snapshot(), Frame{}))
	assert.Contains(t, out.String(), i18n.T(enums.LangEN, i18n.MsgLoading))
	assert.Contains(t, out.String(), "chair-knot")

	out.Reset()
	require.NoError(t, r.Render(ctx, a.Snapshot(), Frame{}))
	assert.NotContains(t, out.String(), i18n.T(enums.LangEN, i18n.MsgLoading))
}

func TestHomeLoadingHonoursCancellation(t *testing.T) {
	a := newApp(t)
	require.NoError(t, a.GoTo(context.Background(), enums.ScreenHome))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := NewRenderer(&out, time.Hour).Render(ctx, a.Snapshot(), Frame{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHomeFilterWithoutMatches(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	require.NoError(t, a.GoTo(ctx, enums.ScreenHome))

	var out bytes.Buffer
	r := NewRenderer(&out, 0)
	require.NoError(t, r.Render(ctx, a.Snapshot(), Frame{Filter: catalog.Filter{Query: "zzz-nothing"}}))
	assert.Contains(t, out.String(), i18n.T(enums.LangEN, i18n.MsgNoResults))
}

func TestCheckoutShowsDiscountedTotal(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	require.NoError(t, a.AddToCart(ctx, "chair-knot", ""))
	require.NoError(t, a.GoTo(ctx, enums.ScreenCheckout))

	snap := a.Snapshot()
	var out bytes.Buffer
	require.NoError(t, NewRenderer(&out, 0).Render(ctx, snap, Frame{Promo: "welcome10"}))
	q := a.Quote("welcome10")
	assert.Contains(t, out.String(), Money(q.Total))
	assert.True(t, q.Discount.IsPositive())
}

func TestRenderTranslatesErrors(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	require.NoError(t, a.SetLang(ctx, enums.LangRU))

	var out bytes.Buffer
	err := forms.Error(pkgerrors.CodeValidation, i18n.MsgInvalidEmail)
	require.NoError(t, NewRenderer(&out, 0).Render(ctx, a.Snapshot(), Frame{Err: err, Degraded: true}))
	assert.Contains(t, out.String(), i18n.T(enums.LangRU, i18n.MsgInvalidEmail))
	assert.Contains(t, out.String(), i18n.T(enums.LangRU, i18n.MsgStorageUnavailable))
}

func TestAdminWithoutStatsShowsGate(t *testing.T) {
	ctx := context.Background()
	a := newApp(t)
	require.NoError(t, a.GoTo(ctx, enums.ScreenAdmin))

	var out bytes.Buffer
	require.NoError(t, NewRenderer(&out, 0).Render(ctx, a.Snapshot(), Frame{}))
	assert.Contains(t, out.String(), i18n.T(enums.LangEN, i18n.MsgAdminOnly))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$2041.20", Money(decimal.RequireFromString("2041.2")))
}
