// Package app owns every store, loads them at startup and saves the owning
// store after each transition.
package app

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lumastudio/storefront/internal/auth"
	"github.com/lumastudio/storefront/internal/cart"
	"github.com/lumastudio/storefront/internal/catalog"
	"github.com/lumastudio/storefront/internal/favorites"
	"github.com/lumastudio/storefront/internal/navigation"
	"github.com/lumastudio/storefront/internal/orders"
	"github.com/lumastudio/storefront/internal/settings"
	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
	"github.com/lumastudio/storefront/pkg/kv"
	"github.com/lumastudio/storefront/pkg/logger"
	"github.com/lumastudio/storefront/pkg/metrics"
)

// Storage keys, one per persisted store.
const (
	KeyProducts      = "furniture-products"
	KeyCart          = "furniture-cart"
	KeyFavorites     = "furniture-favorites"
	KeyOrders        = "furniture-orders"
	KeyAuth          = "furniture-auth-v2"
	KeyTheme         = "furniture-theme"
	KeyNotifications = "furniture-notifications-settings"
	KeyLang          = "furniture-lang"
)

// Store names used in logs and metrics.
const (
	storeCatalog       = "catalog"
	storeCart          = "cart"
	storeFavorites     = "favorites"
	storeOrders        = "orders"
	storeAuth          = "auth"
	storeNavigation    = "navigation"
	storeTheme         = "theme"
	storeNotifications = "notifications"
	storeLang          = "lang"
)

// Params groups dependencies for the app shell.
type Params struct {
	Store     kv.Store
	Logger    *logger.Logger
	Metrics   *metrics.StoreMetrics
	Admin     auth.Credentials
	Now       func() time.Time
	SessionID string
}

// Snapshot is a consistent copy of every store for rendering.
type Snapshot struct {
	Catalog       catalog.State
	Cart          cart.State
	Favorites     favorites.State
	Orders        orders.State
	Auth          auth.State
	Navigation    navigation.State
	Theme         settings.Theme
	Notifications settings.Notifications
	Language      settings.Language
}

type App struct {
	mu        sync.Mutex
	store     kv.Store
	logg      *logger.Logger
	metrics   *metrics.StoreMetrics
	now       func() time.Time
	sessionID string
	auth      auth.Reducer

	state Snapshot
}

// New builds the app shell with default state. Call Load to restore
// persisted state.
func New(params Params) (*App, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "state store is required")
	}
	if params.Admin.Email == "" || params.Admin.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "admin credentials are required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	sessionID := params.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	m := params.Metrics
	if m == nil {
		m = metrics.NewStoreMetrics(nil)
	}
	return &App{
		store:     params.Store,
		logg:      logg,
		metrics:   m,
		now:       now,
		sessionID: sessionID,
		auth:      auth.Reducer{Admin: params.Admin},
		state:     defaultSnapshot(),
	}, nil
}

func defaultSnapshot() Snapshot {
	return Snapshot{
		Catalog:       catalog.DefaultState(),
		Cart:          cart.DefaultState(),
		Favorites:     favorites.DefaultState(),
		Orders:        orders.DefaultState(),
		Auth:          auth.DefaultState(),
		Navigation:    navigation.DefaultState(),
		Theme:         settings.DefaultTheme(),
		Notifications: settings.DefaultNotifications(),
		Language:      settings.DefaultLanguage(),
	}
}

// SessionID identifies this run in logs.
func (a *App) SessionID() string {
	return a.sessionID
}

// Snapshot returns a copy of the current state.
func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// StorageDegraded reports whether persistence fell back to memory.
func (a *App) StorageDegraded() bool {
	if d, ok := a.store.(interface{ Degraded() bool }); ok {
		return d.Degraded()
	}
	return false
}

func (a *App) context(ctx context.Context) context.Context {
	ctx = a.logg.WithSessionID(ctx, a.sessionID)
	return a.logg.WithScreen(ctx, string(a.state.Navigation.Current))
}

// Load restores every persisted store. Missing keys keep their defaults;
// unreadable or undecodable blobs are logged and replaced by defaults.
func (a *App) Load(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	ctx = a.context(ctx)

	load(ctx, a, KeyProducts, &a.state.Catalog, catalog.DefaultState())
	load(ctx, a, KeyCart, &a.state.Cart, cart.DefaultState())
	load(ctx, a, KeyFavorites, &a.state.Favorites, favorites.DefaultState())
	load(ctx, a, KeyOrders, &a.state.Orders, orders.DefaultState())
	load(ctx, a, KeyAuth, &a.state.Auth, auth.DefaultState())
	load(ctx, a, KeyTheme, &a.state.Theme, settings.DefaultTheme())
	load(ctx, a, KeyNotifications, &a.state.Notifications, settings.DefaultNotifications())
	load(ctx, a, KeyLang, &a.state.Language, settings.DefaultLanguage())

	a.logg.Info(ctx, "state loaded")
}

func load[S any](ctx context.Context, a *App, key string, dst *S, fallback S) {
	ctx = a.logg.WithField(ctx, "key", key)
	blob, found, err := a.store.Get(ctx, key)
	if err != nil {
		a.metrics.IncPersistFailure(key)
		a.logg.Error(a.logg.WithFields(ctx, pkgerrors.Dump(err).Fields()), "state.load_failed", err)
		*dst = fallback
		return
	}
	if !found {
		*dst = fallback
		return
	}
	var decoded S
	if err := json.Unmarshal(blob, &decoded); err != nil {
		a.logg.Warn(a.logg.WithField(ctx, "error", err.Error()), "state.corrupt")
		*dst = fallback
		return
	}
	*dst = decoded
}

func (a *App) save(ctx context.Context, key string, value any) {
	blob, err := json.Marshal(value)
	if err != nil {
		a.logg.Error(ctx, "state.encode_failed", err)
		return
	}
	start := time.Now()
	err = a.store.Put(ctx, key, blob)
	a.metrics.ObservePersist(key, time.Since(start))
	if err != nil {
		a.metrics.IncPersistFailure(key)
		a.logg.Error(a.logg.WithFields(ctx, pkgerrors.Dump(err).Fields()), "state.save_failed", err)
	}
}

// remove deletes a persisted key so the next Load sees the store default.
func (a *App) remove(ctx context.Context, key string) {
	if err := a.store.Delete(ctx, key); err != nil {
		a.metrics.IncPersistFailure(key)
		a.logg.Error(a.logg.WithFields(ctx, pkgerrors.Dump(err).Fields()), "state.delete_failed", err)
	}
}

type named interface {
	Name() string
}

// apply runs one reducer transition on state and persists it under key.
// An empty key means the store is transient. Callers hold a.mu.
func apply[S any](ctx context.Context, a *App, store, key string, state *S, action named, reduce func(S) (S, error)) error {
	ctx = a.logg.WithActionID(ctx, uuid.NewString())
	ctx = a.logg.WithFields(ctx, map[string]any{"store": store, "action": action.Name()})

	next, err := reduce(*state)
	if err != nil {
		a.metrics.IncActionError(store, action.Name())
		a.logRejected(ctx, err)
		return err
	}
	*state = next
	a.metrics.IncAction(store, action.Name())
	if key != "" {
		a.save(ctx, key, next)
	}
	a.logg.Info(ctx, "action.applied")
	return nil
}

// reject logs and counts an action refused before reaching its reducer.
func (a *App) reject(ctx context.Context, store string, action named, err error) error {
	ctx = a.logg.WithFields(ctx, map[string]any{"store": store, "action": action.Name()})
	a.metrics.IncActionError(store, action.Name())
	a.logRejected(ctx, err)
	return err
}

// logRejected warns for recoverable input errors and reports anything else
// as an error.
func (a *App) logRejected(ctx context.Context, err error) {
	code := pkgerrors.As(err).Code()
	if pkgerrors.Recoverable(code) {
		a.logg.Warn(a.logg.WithFields(ctx, map[string]any{"error": err.Error(), "error_code": code}), "action.rejected")
		return
	}
	a.logg.Error(ctx, "action.rejected", err)
}
