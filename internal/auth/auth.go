// Package auth keeps the single demo account. Passwords are stored and
// compared as plain text; this is not a credential store.
package auth

import (
	"fmt"
	"strings"

	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
)

// Phase is the derived session phase.
type Phase string

const (
	PhaseNoUser     Phase = "no_user"
	PhaseUnverified Phase = "unverified"
	PhaseSignedIn   Phase = "signed_in"
	PhaseSignedOut  Phase = "signed_out"
)

type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// State is the persisted auth record plus session flags.
type State struct {
	User     *User `json:"user,omitempty"`
	SignedIn bool  `json:"signedIn"`
	Verified bool  `json:"verified"`
}

func DefaultState() State {
	return State{}
}

// Phase derives the session phase from the record and flags.
func (s State) Phase() Phase {
	switch {
	case s.User == nil:
		return PhaseNoUser
	case !s.SignedIn:
		return PhaseSignedOut
	case !s.Verified:
		return PhaseUnverified
	default:
		return PhaseSignedIn
	}
}

// IsAdmin reports whether a signed-in admin holds the session.
func (s State) IsAdmin() bool {
	return s.User != nil && s.SignedIn && s.User.IsAdmin
}

// IsRegistered reports whether email is already the stored account.
func (s State) IsRegistered(email string) bool {
	return s.User != nil && s.User.Email == email
}

// Matches compares credentials verbatim against the stored user.
func (s State) Matches(email, password string) bool {
	if s.User == nil {
		return false
	}
	return s.User.Email == email && s.User.Password == password
}

// Credentials is the demo pair that grants admin at registration.
type Credentials struct {
	Email    string
	Password string
}

// Action is an auth transition.
type Action interface {
	Name() string
}

// Register replaces the stored user and starts an unverified session.
type Register struct {
	Email    string
	Password string
}

func (Register) Name() string { return "register" }

// Login starts a session when the credentials match the stored user.
type Login struct {
	Email    string
	Password string
}

func (Login) Name() string { return "login" }

// VerifyEmail completes the cosmetic verification step.
type VerifyEmail struct {
	Code string
}

func (VerifyEmail) Name() string { return "verify_email" }

// Logout ends the session and keeps the stored record.
type Logout struct{}

func (Logout) Name() string { return "logout" }

// Reset deletes the stored user.
type Reset struct{}

func (Reset) Name() string { return "reset" }

// Reducer applies auth actions. Admin is the pair that grants the admin flag.
type Reducer struct {
	Admin Credentials
}

func (r Reducer) Reduce(state State, action Action) (State, error) {
	switch a := action.(type) {
	case Register:
		isAdmin := strings.ToLower(a.Email) == strings.ToLower(r.Admin.Email) && a.Password == r.Admin.Password
		return State{
			User:     &User{Email: a.Email, Password: a.Password, IsAdmin: isAdmin},
			SignedIn: true,
		}, nil
	case Login:
		if !state.Matches(a.Email, a.Password) {
			return state, pkgerrors.New(pkgerrors.CodeUnauthorized, "incorrect email or password")
		}
		return State{User: state.User, SignedIn: true, Verified: true}, nil
	case VerifyEmail:
		if state.Phase() != PhaseUnverified {
			return state, pkgerrors.New(pkgerrors.CodeUnauthorized, "no account awaiting verification")
		}
		return State{User: state.User, SignedIn: true, Verified: true}, nil
	case Logout:
		return State{User: state.User, Verified: state.Verified}, nil
	case Reset:
		return DefaultState(), nil
	default:
		return state, fmt.Errorf("auth: unsupported action %T", action)
	}
}
