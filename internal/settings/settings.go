// Package settings holds the appearance, notification and language
// preferences. Each is persisted under its own key.
package settings

import (
	"fmt"

	"github.com/lumastudio/storefront/pkg/enums"
	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
)

type Theme struct {
	Theme enums.Theme `json:"theme"`
}

func DefaultTheme() Theme {
	return Theme{Theme: enums.ThemeSystem}
}

type Notifications struct {
	PushEnabled  bool `json:"pushEnabled"`
	EmailEnabled bool `json:"emailEnabled"`
}

func DefaultNotifications() Notifications {
	return Notifications{PushEnabled: true, EmailEnabled: true}
}

type Language struct {
	Lang enums.Lang `json:"lang"`
}

func DefaultLanguage() Language {
	return Language{Lang: enums.LangEN}
}

// Action is a settings transition.
type Action interface {
	Name() string
}

type SetTheme struct {
	Theme enums.Theme
}

func (SetTheme) Name() string { return "set_theme" }

type SetPush struct {
	Enabled bool
}

func (SetPush) Name() string { return "set_push" }

type SetEmail struct {
	Enabled bool
}

func (SetEmail) Name() string { return "set_email" }

type SetLang struct {
	Lang enums.Lang
}

func (SetLang) Name() string { return "set_lang" }

// ToggleLang flips between en and ru.
type ToggleLang struct{}

func (ToggleLang) Name() string { return "toggle_lang" }

func ReduceTheme(state Theme, action Action) (Theme, error) {
	switch a := action.(type) {
	case SetTheme:
		if !a.Theme.IsValid() {
			return state, pkgerrors.New(pkgerrors.CodeValidation, "unknown theme").WithDetails(map[string]any{"theme": string(a.Theme)})
		}
		return Theme{Theme: a.Theme}, nil
	default:
		return state, fmt.Errorf("settings: unsupported theme action %T", action)
	}
}

func ReduceNotifications(state Notifications, action Action) (Notifications, error) {
	switch a := action.(type) {
	case SetPush:
		state.PushEnabled = a.Enabled
		return state, nil
	case SetEmail:
		state.EmailEnabled = a.Enabled
		return state, nil
	default:
		return state, fmt.Errorf("settings: unsupported notifications action %T", action)
	}
}

func ReduceLanguage(state Language, action Action) (Language, error) {
	switch a := action.(type) {
	case SetLang:
		if !a.Lang.IsValid() {
			return state, pkgerrors.New(pkgerrors.CodeValidation, "unsupported language").WithDetails(map[string]any{"lang": string(a.Lang)})
		}
		return Language{Lang: a.Lang}, nil
	case ToggleLang:
		return Language{Lang: state.Lang.Other()}, nil
	default:
		return state, fmt.Errorf("settings: unsupported language action %T", action)
	}
}
