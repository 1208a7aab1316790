package enums

import "fmt"

// Screen identifies a view reachable through navigation.
type Screen string

const (
	ScreenOnboarding        Screen = "onboarding"
	ScreenAuth              Screen = "auth"
	ScreenHome              Screen = "home"
	ScreenDetails           Screen = "details"
	ScreenCart              Screen = "cart"
	ScreenCheckout          Screen = "checkout"
	ScreenProfile           Screen = "profile"
	ScreenNotifications     Screen = "notifications"
	ScreenFavorites         Screen = "favorites"
	ScreenOrders            Screen = "orders"
	ScreenAdmin             Screen = "admin"
	ScreenSettings          Screen = "settings"
	ScreenPrivacy           Screen = "privacy"
	ScreenTerms             Screen = "terms"
	ScreenEmailVerification Screen = "emailVerification"
)

var validScreens = []Screen{
	ScreenOnboarding,
	ScreenAuth,
	ScreenHome,
	ScreenDetails,
	ScreenCart,
	ScreenCheckout,
	ScreenProfile,
	ScreenNotifications,
	ScreenFavorites,
	ScreenOrders,
	ScreenAdmin,
	ScreenSettings,
	ScreenPrivacy,
	ScreenTerms,
	ScreenEmailVerification,
}

// Screens returns every known screen.
func Screens() []Screen {
	out := make([]Screen, len(validScreens))
	copy(out, validScreens)
	return out
}

// String implements fmt.Stringer.
func (s Screen) String() string {
	return string(s)
}

// IsValid reports whether the value is a known Screen.
func (s Screen) IsValid() bool {
	for _, candidate := range validScreens {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseScreen converts raw input into a Screen.
func ParseScreen(value string) (Screen, error) {
	for _, candidate := range validScreens {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid screen %q", value)
}
