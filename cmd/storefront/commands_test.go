package main

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lumastudio/storefront/internal/app"
	"github.com/lumastudio/storefront/internal/auth"
	"github.com/lumastudio/storefront/internal/views"
	"github.com/lumastudio/storefront/pkg/enums"
	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
	"github.com/lumastudio/storefront/pkg/kv"
	"github.com/lumastudio/storefront/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	cmd, err := parseCommand(`checkout name="Ada Lovelace" email=ada@example.com address="1 Main St" promo=welcome10`)
	require.NoError(t, err)
	assert.Equal(t, "checkout", cmd.Verb)
	assert.Empty(t, cmd.Args)
	assert.Equal(t, "Ada Lovelace", cmd.Opts["name"])
	assert.Equal(t, "1 Main St", cmd.Opts["address"])
	assert.Equal(t, "welcome10", cmd.Opts["promo"])

	cmd, err = parseCommand("  ADD chair-knot linen ")
	require.NoError(t, err)
	assert.Equal(t, "add", cmd.Verb)
	assert.Equal(t, []string{"chair-knot", "linen"}, cmd.Args)
	assert.Equal(t, "", cmd.arg(5))
}

func TestParseCommandUnterminatedQuote(t *testing.T) {
	_, err := parseCommand(`checkout name="Ada`)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestAdminProductFormColors(t *testing.T) {
	cmd, err := parseCommand("admin-add name=Stool price=120 image=x.jpg color1=Oak:#C8A27A color3=Ash")
	require.NoError(t, err)
	form := adminProductForm(cmd)
	assert.Equal(t, string(enums.ProductCategoryChairs), form.Category)
	assert.Equal(t, "Oak", form.Colors[0].Name)
	assert.Equal(t, "#C8A27A", form.Colors[0].Hex)
	assert.False(t, form.Colors[1].Complete())
	assert.False(t, form.Colors[2].Complete())
}

func newSession(t *testing.T) (*session, *bytes.Buffer) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.NewStoreMetrics(reg)
	a, err := app.New(app.Params{
		Store:   kv.NewMemory(),
		Metrics: m,
		Admin:   auth.Credentials{Email: "admin@furniture.local", Password: "admin123"},
	})
	require.NoError(t, err)
	a.Load(context.Background())
	var out bytes.Buffer
	return &session{app: a, renderer: views.NewRenderer(&out, 0), gatherer: reg, out: &out}, &out
}

func TestSessionScript(t *testing.T) {
	s, out := newSession(t)
	script := strings.Join([]string{
		"register ada@example.com secret1",
		"verify 123456",
		"filter category=Chairs sort=price-asc",
		"add chair-knot",
		"goto checkout",
		`checkout name=Ada email=ada@example.com address="1 Main St" promo=WELCOME10`,
		"quit",
		"goto home",
	}, "\n")
	require.NoError(t, run(context.Background(), s, bufio.NewScanner(strings.NewReader(script))))

	snap := s.app.Snapshot()
	assert.Equal(t, enums.ScreenOrders, snap.Navigation.Current)
	require.Len(t, snap.Orders.Orders, 1)
	assert.Empty(t, snap.Cart.Items)
	assert.Equal(t, "Chairs", s.filter.Category)
	assert.Equal(t, enums.SortPriceAsc, s.filter.Sort)
	assert.Contains(t, out.String(), snap.Orders.Orders[0].ID)
}

func TestSessionReportsErrorsAndKeepsGoing(t *testing.T) {
	s, out := newSession(t)
	ctx := context.Background()

	quit, err := s.handle(ctx, "frobnicate")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "Please check the highlighted input.")

	_, err = s.handle(ctx, "filter sort=sideways")
	require.NoError(t, err)
	assert.Equal(t, enums.SortMode(""), s.filter.Sort)

	_, err = s.handle(ctx, "notify push off")
	require.NoError(t, err)
	assert.False(t, s.app.Snapshot().Notifications.PushEnabled)

	_, err = s.handle(ctx, "lang ru-RU")
	require.NoError(t, err)
	assert.Equal(t, enums.LangRU, s.app.Snapshot().Language.Lang)
}

func TestMetricsCommand(t *testing.T) {
	s, out := newSession(t)
	ctx := context.Background()
	_, err := s.handle(ctx, "theme dark")
	require.NoError(t, err)

	out.Reset()
	_, err = s.handle(ctx, "metrics")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "storefront_actions_total")
}
