package forms

import (
	"errors"
	"testing"

	"github.com/lumastudio/storefront/internal/i18n"
	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
)

func TestCredentials(t *testing.T) {
	if err := (Credentials{Email: "ada@example.com", Password: "secret1"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Credentials{Email: "ada.example.com", Password: "x"}.Validate()
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := Message(err); got != i18n.MsgInvalidEmail {
		t.Fatalf("email error must win, got %s", got)
	}

	err = Credentials{Email: "ada@example.com", Password: "12345"}.Validate()
	if got := Message(err); got != i18n.MsgPasswordTooShort {
		t.Fatalf("expected password message, got %s", got)
	}
}

func TestVerification(t *testing.T) {
	if err := (Verification{Code: "123456"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Verification{Code: "abcdef"}).Validate(); err != nil {
		t.Fatalf("any 6 characters are accepted, got %v", err)
	}
	for _, code := range []string{"", "12345", "1234567"} {
		if got := Message(Verification{Code: code}.Validate()); got != i18n.MsgVerificationCodeLength {
			t.Fatalf("code %q: expected length message, got %s", code, got)
		}
	}
}

func TestCheckout(t *testing.T) {
	if err := (Checkout{Name: "Ada", Email: "ada@example.com", Address: "1 Main St"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := Checkout{Name: "Ada", Email: "ada@example.com"}.Validate()
	if got := Message(err); got != i18n.MsgCheckoutMissingFields {
		t.Fatalf("expected missing fields message, got %s", got)
	}
	typed := pkgerrors.As(err)
	details := typed.Details().(Details)
	if details.Fields["address"] != "required" {
		t.Fatalf("expected address to be flagged, got %v", details.Fields)
	}
}

func TestAdminProduct(t *testing.T) {
	valid := AdminProduct{Name: "Nova", Category: "Chairs", Price: "120.50", Image: "nova.jpg"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, f := range map[string]AdminProduct{
		"missing name":  {Category: "Chairs", Price: "10", Image: "x"},
		"missing image": {Name: "n", Category: "Chairs", Price: "10"},
		"zero price":    {Name: "n", Category: "Chairs", Price: "0", Image: "x"},
		"negative":      {Name: "n", Category: "Chairs", Price: "-5", Image: "x"},
		"not a number":  {Name: "n", Category: "Chairs", Price: "cheap", Image: "x"},
		"bad category":  {Name: "n", Category: "Lamps", Price: "10", Image: "x"},
	} {
		if got := Message(f.Validate()); got != i18n.MsgAdminProductInvalid {
			t.Fatalf("%s: expected admin product message, got %s", name, got)
		}
	}
}

func TestMessageFallbacks(t *testing.T) {
	if got := Message(errors.New("boom")); got != i18n.MsgUnexpected {
		t.Fatalf("plain errors map to unexpected, got %s", got)
	}
	if got := Message(pkgerrors.New(pkgerrors.CodeForbidden, "nope")); got != i18n.MsgAdminOnly {
		t.Fatalf("forbidden maps to admin only, got %s", got)
	}
	if got := Message(Error(pkgerrors.CodeConflict, i18n.MsgEmailRegistered)); got != i18n.MsgEmailRegistered {
		t.Fatalf("explicit message must win, got %s", got)
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" a.jpg, ,b.jpg ,, ")
	if len(got) != 2 || got[0] != "a.jpg" || got[1] != "b.jpg" {
		t.Fatalf("unexpected list %v", got)
	}
	if len(SplitList("")) != 0 {
		t.Fatalf("empty input yields empty list")
	}
}
