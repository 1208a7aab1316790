package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/lumastudio/storefront/internal/app"
	"github.com/lumastudio/storefront/internal/catalog"
	"github.com/lumastudio/storefront/internal/forms"
	"github.com/lumastudio/storefront/internal/i18n"
	"github.com/lumastudio/storefront/internal/views"
	"github.com/lumastudio/storefront/pkg/enums"
	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
	"github.com/lumastudio/storefront/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// command is one parsed input line: a verb, positional args and key=value
// options.
type command struct {
	Verb string
	Args []string
	Opts map[string]string
}

func (c command) arg(i int) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return ""
}

// tokenize splits a line on whitespace. Double quotes group a value that
// contains spaces, including the value half of key="a b".
func tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case unicode.IsSpace(r) && !quoted:
			if started {
				tokens = append(tokens, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if quoted {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unterminated quote")
	}
	if started {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}

func parseCommand(line string) (command, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return command{}, err
	}
	cmd := command{Opts: map[string]string{}}
	if len(tokens) == 0 {
		return cmd, nil
	}
	cmd.Verb = strings.ToLower(tokens[0])
	for _, tok := range tokens[1:] {
		if key, value, ok := strings.Cut(tok, "="); ok && key != "" {
			cmd.Opts[strings.ToLower(key)] = value
			continue
		}
		cmd.Args = append(cmd.Args, tok)
	}
	return cmd, nil
}

// session holds the per-run view inputs that are not persisted.
type session struct {
	app      *app.App
	renderer *views.Renderer
	gatherer prometheus.Gatherer
	out      io.Writer

	filter catalog.Filter
	promo  string
}

// handle runs one line and renders the resulting screen. It returns true when
// the user asked to quit.
func (s *session) handle(ctx context.Context, line string) (bool, error) {
	cmd, err := parseCommand(line)
	frame := views.Frame{}
	quit := false
	if err == nil {
		quit, frame.Notice, err = s.exec(ctx, cmd)
	}
	if quit {
		return true, nil
	}
	// help and metrics print their own output.
	if err == nil && (cmd.Verb == "help" || cmd.Verb == "metrics") {
		return false, nil
	}
	frame.Err = err
	return false, s.render(ctx, frame)
}

func (s *session) render(ctx context.Context, frame views.Frame) error {
	snap := s.app.Snapshot()
	frame.Filter = s.filter
	frame.Promo = s.promo
	frame.Degraded = s.app.StorageDegraded()
	if snap.Navigation.Current == enums.ScreenAdmin {
		if stats, err := s.app.AdminStats(); err == nil {
			frame.Stats = &stats
		}
	}
	return s.renderer.Render(ctx, snap, frame)
}

func invalid(msg string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, msg)
}

func (s *session) exec(ctx context.Context, cmd command) (bool, string, error) {
	a := s.app
	switch cmd.Verb {
	case "":
		return false, "", nil
	case "quit", "exit":
		return true, "", nil
	case "help":
		_, err := io.WriteString(s.out, helpText)
		return false, "", err
	case "metrics":
		return false, "", metrics.WriteText(s.out, s.gatherer)
	case "goto":
		return false, "", a.GoTo(ctx, enums.Screen(cmd.arg(0)))
	case "open":
		return false, "", a.OpenDetails(ctx, cmd.arg(0))
	case "filter":
		return false, "", s.applyFilter(cmd)
	case "add":
		return false, "", a.AddToCart(ctx, cmd.arg(0), cmd.arg(1))
	case "qty":
		n, err := strconv.Atoi(cmd.arg(1))
		if err != nil {
			return false, "", invalid("quantity must be a number")
		}
		return false, "", a.UpdateQuantity(ctx, cmd.arg(0), n)
	case "remove":
		return false, "", a.RemoveItem(ctx, cmd.arg(0))
	case "clear":
		return false, "", a.ClearCart(ctx)
	case "fav":
		return false, "", a.ToggleFavorite(ctx, cmd.arg(0))
	case "register":
		return false, "", a.Register(ctx, cmd.arg(0), cmd.arg(1))
	case "login":
		return false, "", a.Login(ctx, cmd.arg(0), cmd.arg(1))
	case "verify":
		return false, "", a.VerifyEmail(ctx, cmd.arg(0))
	case "logout":
		return false, "", a.Logout(ctx)
	case "reset":
		return false, "", a.ResetAccount(ctx)
	case "promo":
		s.promo = cmd.arg(0)
		return false, "", nil
	case "checkout":
		promo := s.promo
		if v, ok := cmd.Opts["promo"]; ok {
			promo = v
		}
		order, err := a.Checkout(ctx, forms.Checkout{
			Name:    cmd.Opts["name"],
			Email:   cmd.Opts["email"],
			Address: cmd.Opts["address"],
			Promo:   promo,
		})
		if err != nil {
			return false, "", err
		}
		s.promo = ""
		lang := a.Snapshot().Language.Lang
		return false, fmt.Sprintf("%s: %s %s", i18n.T(lang, i18n.MsgOrderCreated), order.ID, views.Money(order.Total)), nil
	case "admin-add":
		p, err := a.AdminAddProduct(ctx, adminProductForm(cmd))
		if err != nil {
			return false, "", err
		}
		return false, p.ID, nil
	case "admin-images":
		productID := cmd.arg(0)
		if v, ok := cmd.Opts["id"]; ok {
			productID = v
		}
		return false, "", a.AdminEditImages(ctx, forms.AdminImages{
			ProductID: productID,
			Image:     cmd.Opts["image"],
			Gallery:   cmd.Opts["gallery"],
		})
	case "theme":
		theme, err := enums.ParseTheme(cmd.arg(0))
		if err != nil {
			return false, "", invalid(err.Error())
		}
		return false, "", a.SetTheme(ctx, theme)
	case "notify":
		on, err := parseSwitch(cmd.arg(1))
		if err != nil {
			return false, "", err
		}
		switch cmd.arg(0) {
		case "push":
			return false, "", a.SetPushNotifications(ctx, on)
		case "email":
			return false, "", a.SetEmailNotifications(ctx, on)
		default:
			return false, "", invalid("notify expects push or email")
		}
	case "lang":
		if cmd.arg(0) == "toggle" {
			return false, "", a.ToggleLang(ctx)
		}
		lang, err := i18n.ParseLang(cmd.arg(0))
		if err != nil {
			return false, "", invalid(err.Error())
		}
		return false, "", a.SetLang(ctx, lang)
	default:
		return false, "", invalid(fmt.Sprintf("unknown command %q", cmd.Verb))
	}
}

func (s *session) applyFilter(cmd command) error {
	if cmd.arg(0) == "reset" {
		s.filter = catalog.Filter{}
		return nil
	}
	next := s.filter
	keys := make([]string, 0, len(cmd.Opts))
	for k := range cmd.Opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := cmd.Opts[k]
		switch k {
		case "category":
			if v != "" && v != enums.CategoryAll {
				if _, err := enums.ParseProductCategory(v); err != nil {
					return invalid(err.Error())
				}
			}
			next.Category = v
		case "q", "query":
			next.Query = v
		case "min":
			next.Min = v
		case "max":
			next.Max = v
		case "sort":
			mode, err := enums.ParseSortMode(v)
			if err != nil {
				return invalid(err.Error())
			}
			next.Sort = mode
		default:
			return invalid(fmt.Sprintf("unknown filter %q", k))
		}
	}
	s.filter = next
	return nil
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, invalid("expected on or off")
	}
}

// adminProductForm reads color rows from color1..color3 given as name:hex.
func adminProductForm(cmd command) forms.AdminProduct {
	form := forms.AdminProduct{
		Name:     cmd.Opts["name"],
		Category: cmd.Opts["category"],
		Price:    cmd.Opts["price"],
		Image:    cmd.Opts["image"],
		Gallery:  cmd.Opts["gallery"],
	}
	if form.Category == "" {
		form.Category = string(enums.ProductCategoryChairs)
	}
	for i := range form.Colors {
		raw, ok := cmd.Opts[fmt.Sprintf("color%d", i+1)]
		if !ok {
			continue
		}
		name, hex, _ := strings.Cut(raw, ":")
		form.Colors[i] = forms.Color{Name: name, Hex: hex}
	}
	return form
}

const helpText = `commands:
  goto <screen>                      onboarding auth home details cart checkout profile
                                     notifications favorites orders admin settings privacy terms
  open <productID>
  filter [category=] [q=] [min=] [max=] [sort=relevance|price-asc|price-desc] | filter reset
  add <productID> [colorID]          qty <itemID> <n>     remove <itemID>     clear
  fav <productID>
  register <email> <password>        login <email> <password>     verify <code>
  logout                             reset
  promo <code>
  checkout name=.. email=.. address=.. [promo=..]
  admin-add name=.. category=.. price=.. image=.. [gallery=a,b] [color1=name:hex ..color3]
  admin-images <productID> [image=..] [gallery=a,b]
  theme light|dark|system            notify push|email on|off     lang en|ru|toggle
  metrics                            help                         quit
`
