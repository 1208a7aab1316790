// Package navigation tracks the current screen. It is never persisted.
package navigation

import (
	"fmt"

	"github.com/lumastudio/storefront/pkg/enums"
	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
)

type State struct {
	Current           enums.Screen
	SelectedProductID string
}

func DefaultState() State {
	return State{Current: enums.ScreenOnboarding}
}

// Action is a navigation transition.
type Action interface {
	Name() string
}

// GoTo switches to Screen from any screen.
type GoTo struct {
	Screen enums.Screen
}

func (GoTo) Name() string { return "goto" }

// OpenDetails shows the details screen for ProductID.
type OpenDetails struct {
	ProductID string
}

func (OpenDetails) Name() string { return "open_details" }

func Reduce(state State, action Action) (State, error) {
	switch a := action.(type) {
	case GoTo:
		if !a.Screen.IsValid() {
			return state, pkgerrors.New(pkgerrors.CodeValidation, "unknown screen").WithDetails(map[string]any{"screen": string(a.Screen)})
		}
		return State{Current: a.Screen, SelectedProductID: state.SelectedProductID}, nil
	case OpenDetails:
		return State{Current: enums.ScreenDetails, SelectedProductID: a.ProductID}, nil
	default:
		return state, fmt.Errorf("navigation: unsupported action %T", action)
	}
}
