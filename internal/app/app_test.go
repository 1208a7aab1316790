package app

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lumastudio/storefront/internal/auth"
	"github.com/lumastudio/storefront/internal/forms"
	"github.com/lumastudio/storefront/internal/i18n"
	"github.com/lumastudio/storefront/pkg/enums"
	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
	"github.com/lumastudio/storefront/pkg/kv"
	"github.com/lumastudio/storefront/pkg/logger"
	"github.com/lumastudio/storefront/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminCreds = auth.Credentials{Email: "admin@furniture.local", Password: "admin123"}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func newApp(t *testing.T, store kv.Store) *App {
	t.Helper()
	clock := &fakeClock{t: time.UnixMilli(1_700_000_000_000)}
	a, err := New(Params{Store: store, Admin: adminCreds, Now: clock.Now})
	require.NoError(t, err)
	a.Load(context.Background())
	return a
}

func TestNewValidatesParams(t *testing.T) {
	_, err := New(Params{Admin: adminCreds})
	require.Error(t, err)
	_, err = New(Params{Store: kv.NewMemory()})
	require.Error(t, err)
}

func TestInitialState(t *testing.T) {
	a := newApp(t, kv.NewMemory())
	snap := a.Snapshot()
	assert.Equal(t, enums.ScreenOnboarding, snap.Navigation.Current)
	assert.Len(t, snap.Catalog.Products, 20)
	assert.Empty(t, snap.Cart.Items)
	assert.Equal(t, auth.PhaseNoUser, snap.Auth.Phase())
	assert.Equal(t, enums.ThemeSystem, snap.Theme.Theme)
	assert.NotEmpty(t, a.SessionID())
}

func TestShoppingFlowSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	store, err := kv.NewFile(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)

	a := newApp(t, store)
	require.NoError(t, a.Register(ctx, "ada@example.com", "secret1"))
	assert.Equal(t, enums.ScreenEmailVerification, a.Snapshot().Navigation.Current)
	require.NoError(t, a.VerifyEmail(ctx, "123456"))
	assert.Equal(t, enums.ScreenHome, a.Snapshot().Navigation.Current)

	require.NoError(t, a.AddToCart(ctx, "chair-knot", ""))
	require.NoError(t, a.AddToCart(ctx, "chair-knot", "linen"))
	require.NoError(t, a.AddToCart(ctx, "sofa-arc", "olive"))
	require.NoError(t, a.ToggleFavorite(ctx, "sofa-arc"))
	require.NoError(t, a.SetTheme(ctx, enums.ThemeDark))
	require.NoError(t, a.ToggleLang(ctx))

	cartState := a.Snapshot().Cart
	require.Len(t, cartState.Items, 2)
	assert.Equal(t, 3, cartState.Count(), "empty color picks the first color (linen)")

	quote := a.Quote("welcome10")
	assert.Equal(t, "2268", quote.Subtotal.String())
	assert.Equal(t, "2041.2", quote.Total.String())

	order, err := a.Checkout(ctx, forms.Checkout{Name: "Ada", Email: "ada@example.com", Address: "1 Main St", Promo: "welcome10"})
	require.NoError(t, err)
	assert.Equal(t, "2041.2", order.Total.String())
	assert.Empty(t, a.Snapshot().Cart.Items)
	assert.Equal(t, enums.ScreenOrders, a.Snapshot().Navigation.Current)

	restarted := newApp(t, store)
	snap := restarted.Snapshot()
	require.Len(t, snap.Orders.Orders, 1)
	assert.Equal(t, order.ID, snap.Orders.Orders[0].ID)
	assert.Empty(t, snap.Cart.Items)
	assert.True(t, snap.Favorites.Contains("sofa-arc"))
	assert.Equal(t, enums.ThemeDark, snap.Theme.Theme)
	assert.Equal(t, enums.LangRU, snap.Language.Lang)
	assert.Equal(t, auth.PhaseSignedIn, snap.Auth.Phase())
	assert.Equal(t, enums.ScreenOnboarding, snap.Navigation.Current, "navigation is not persisted")
}

func TestCorruptBlobFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Put(ctx, KeyCart, []byte("{not json")))
	require.NoError(t, store.Put(ctx, KeyTheme, []byte(`{"theme":"light"}`)))

	var buf bytes.Buffer
	a, err := New(Params{Store: store, Admin: adminCreds, Logger: logger.New(logger.Options{ServiceName: "test", Level: zerolog.DebugLevel, Output: &buf})})
	require.NoError(t, err)
	a.Load(ctx)

	snap := a.Snapshot()
	assert.Empty(t, snap.Cart.Items)
	assert.Equal(t, enums.ThemeLight, snap.Theme.Theme)
	assert.Contains(t, buf.String(), "state.corrupt")
}

func TestRegisterErrors(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, kv.NewMemory())

	err := a.Register(ctx, "bad-email", "secret1")
	assert.Equal(t, i18n.MsgInvalidEmail, forms.Message(err))

	err = a.Register(ctx, "ada@example.com", "123")
	assert.Equal(t, i18n.MsgPasswordTooShort, forms.Message(err))

	require.NoError(t, a.Register(ctx, "ada@example.com", "secret1"))
	err = a.Register(ctx, "ada@example.com", "secret2")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))
	assert.Equal(t, i18n.MsgEmailRegistered, forms.Message(err))
}

func TestLogoutKeepsAccountAndResetRemovesIt(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, kv.NewMemory())

	err := a.Login(ctx, "ada@example.com", "secret1")
	assert.Equal(t, i18n.MsgIncorrectCredentials, forms.Message(err))

	require.NoError(t, a.Register(ctx, "ada@example.com", "secret1"))
	require.NoError(t, a.Logout(ctx))
	assert.Equal(t, auth.PhaseSignedOut, a.Snapshot().Auth.Phase())
	assert.Equal(t, enums.ScreenOnboarding, a.Snapshot().Navigation.Current)

	err = a.Login(ctx, "ada@example.com", "wrong-password")
	assert.Equal(t, i18n.MsgIncorrectCredentials, forms.Message(err))

	require.NoError(t, a.Login(ctx, "ada@example.com", "secret1"))
	assert.Equal(t, enums.ScreenHome, a.Snapshot().Navigation.Current)

	require.NoError(t, a.ResetAccount(ctx))
	assert.Equal(t, auth.PhaseNoUser, a.Snapshot().Auth.Phase())
	require.Error(t, a.Login(ctx, "ada@example.com", "secret1"))
}

func TestResetAccountDeletesStoredRecord(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	a := newApp(t, store)
	require.NoError(t, a.Register(ctx, "ada@example.com", "secret1"))
	_, found, err := store.Get(ctx, KeyAuth)
	require.NoError(t, err)
	require.True(t, found)

	require.NoError(t, a.ResetAccount(ctx))
	_, found, err = store.Get(ctx, KeyAuth)
	require.NoError(t, err)
	assert.False(t, found)

	restarted := newApp(t, store)
	assert.Equal(t, auth.PhaseNoUser, restarted.Snapshot().Auth.Phase())
}

func TestVerifyEmailRejectsShortCode(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, kv.NewMemory())
	require.NoError(t, a.Register(ctx, "ada@example.com", "secret1"))
	err := a.VerifyEmail(ctx, "123")
	assert.Equal(t, i18n.MsgVerificationCodeLength, forms.Message(err))
	assert.Equal(t, enums.ScreenEmailVerification, a.Snapshot().Navigation.Current)
}

func TestVerifyEmailAfterLogoutDoesNotSignIn(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, kv.NewMemory())
	require.NoError(t, a.Register(ctx, adminCreds.Email, adminCreds.Password))
	require.NoError(t, a.VerifyEmail(ctx, "123456"))
	require.NoError(t, a.Logout(ctx))

	err := a.VerifyEmail(ctx, "000000")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeUnauthorized))
	assert.Equal(t, auth.PhaseSignedOut, a.Snapshot().Auth.Phase())
	assert.Equal(t, enums.ScreenOnboarding, a.Snapshot().Navigation.Current)

	_, err = a.AdminStats()
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeForbidden))
}

func TestAddToCartRejectsUnknownProductAndColor(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, kv.NewMemory())
	assert.True(t, pkgerrors.IsCode(a.AddToCart(ctx, "missing", ""), pkgerrors.CodeNotFound))
	assert.True(t, pkgerrors.IsCode(a.AddToCart(ctx, "chair-knot", "purple"), pkgerrors.CodeValidation))
	assert.Empty(t, a.Snapshot().Cart.Items)
}

func TestCartQuantityNeverRemoves(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, kv.NewMemory())
	require.NoError(t, a.AddToCart(ctx, "table-orbit", "oak"))
	id := a.Snapshot().Cart.Items[0].ID

	require.NoError(t, a.UpdateQuantity(ctx, id, 0))
	require.Len(t, a.Snapshot().Cart.Items, 1)
	assert.Equal(t, 1, a.Snapshot().Cart.Items[0].Quantity)

	require.NoError(t, a.RemoveItem(ctx, id))
	assert.Empty(t, a.Snapshot().Cart.Items)
}

func TestAdminRequiresAdminSession(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, kv.NewMemory())

	_, err := a.AdminStats()
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeForbidden))

	require.NoError(t, a.Register(ctx, "user@example.com", "secret1"))
	_, err = a.AdminAddProduct(ctx, forms.AdminProduct{Name: "Nova", Category: "Chairs", Price: "10", Image: "x.jpg"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeForbidden))

	require.NoError(t, a.Register(ctx, "admin@furniture.local", "admin123"))
	product, err := a.AdminAddProduct(ctx, forms.AdminProduct{Name: "Nova", Category: "Chairs", Price: "10", Image: "x.jpg"})
	require.NoError(t, err)
	assert.Contains(t, product.ID, "nova-")

	require.NoError(t, a.AdminEditImages(ctx, forms.AdminImages{ProductID: product.ID, Image: "y.jpg", Gallery: "g.jpg"}))
	updated, ok := a.Snapshot().Catalog.Find(product.ID)
	require.True(t, ok)
	assert.Equal(t, "y.jpg", updated.Image)

	stats, err := a.AdminStats()
	require.NoError(t, err)
	assert.Equal(t, 21, stats.Products)
}

func TestCheckoutRequiresItemsAndFields(t *testing.T) {
	ctx := context.Background()
	a := newApp(t, kv.NewMemory())
	_, err := a.Checkout(ctx, forms.Checkout{Name: "a", Email: "b", Address: "c"})
	assert.Equal(t, i18n.MsgEmptyCart, forms.Message(err))

	require.NoError(t, a.AddToCart(ctx, "chair-knot", ""))
	_, err = a.Checkout(ctx, forms.Checkout{Name: "a"})
	assert.Equal(t, i18n.MsgCheckoutMissingFields, forms.Message(err))
	assert.Empty(t, a.Snapshot().Orders.Orders)
	assert.Len(t, a.Snapshot().Cart.Items, 1)
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("disk gone"), "read state file")
}

func (failingStore) Put(context.Context, string, []byte) error {
	return pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("disk gone"), "write state file")
}

func (failingStore) Delete(context.Context, string) error { return nil }

func TestStorageFailureFallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := metrics.NewStoreMetrics(reg)
	store := kv.NewFallback(failingStore{}, nil, m)

	a, err := New(Params{Store: store, Admin: adminCreds, Metrics: m})
	require.NoError(t, err)
	a.Load(ctx)
	assert.True(t, a.StorageDegraded())

	require.NoError(t, a.ToggleFavorite(ctx, "chair-knot"))
	assert.True(t, a.Snapshot().Favorites.Contains("chair-knot"))

	blob, found, err := store.Get(ctx, KeyFavorites)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"ids":["chair-knot"]}`, string(blob))
}

func TestStorageFailureWithoutFallbackIsNotFatal(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m := metrics.NewStoreMetrics(reg)

	a, err := New(Params{Store: failingStore{}, Admin: adminCreds, Metrics: m})
	require.NoError(t, err)
	a.Load(ctx)
	require.NoError(t, a.ToggleFavorite(ctx, "chair-knot"))
	assert.True(t, a.Snapshot().Favorites.Contains("chair-knot"))
	assert.False(t, a.StorageDegraded())

	var buf bytes.Buffer
	require.NoError(t, metrics.WriteText(&buf, reg))
	assert.Contains(t, buf.String(), `storefront_persist_failures_total{key="furniture-favorites"} 2`)
	assert.Contains(t, buf.String(), `storefront_actions_total{action="toggle",store="favorites"} 1`)
}

func TestRejectedActionsAreCounted(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewStoreMetrics(reg)
	a, err := New(Params{Store: kv.NewMemory(), Admin: adminCreds, Metrics: m})
	require.NoError(t, err)

	require.Error(t, a.SetTheme(context.Background(), "sepia"))
	count, err := testutil.GatherAndCount(reg, "storefront_action_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
