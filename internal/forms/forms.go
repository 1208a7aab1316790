// Package forms validates user input before it becomes a store action.
package forms

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lumastudio/storefront/internal/i18n"
	pkgerrors "github.com/lumastudio/storefront/pkg/errors"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	_ = v.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil && d.IsPositive()
	})
	return v
}

// Details is attached to every form error.
type Details struct {
	Message i18n.MessageID
	Fields  map[string]string
}

// Error builds a form error carrying a translatable message.
func Error(code pkgerrors.Code, id i18n.MessageID) *pkgerrors.Error {
	return pkgerrors.New(code, string(id)).WithDetails(Details{Message: id, Fields: map[string]string{}})
}

// Message returns the translatable message for err. Errors that did not come
// from a form map onto a generic message for their code.
func Message(err error) i18n.MessageID {
	typed := pkgerrors.As(err)
	if typed == nil {
		return i18n.MsgUnexpected
	}
	if d, ok := typed.Details().(Details); ok && d.Message != "" {
		return d.Message
	}
	switch typed.Code() {
	case pkgerrors.CodeValidation:
		return i18n.MsgInvalidInput
	case pkgerrors.CodeForbidden:
		return i18n.MsgAdminOnly
	case pkgerrors.CodeUnauthorized:
		return i18n.MsgIncorrectCredentials
	case pkgerrors.CodeNotFound:
		return i18n.MsgUnknownProduct
	case pkgerrors.CodeDependency:
		return i18n.MsgStorageUnavailable
	default:
		return i18n.MsgUnexpected
	}
}

type form interface {
	fieldMessages() map[string]i18n.MessageID
	fallbackMessage() i18n.MessageID
}

func check(f form) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
	}
	messages := f.fieldMessages()
	details := Details{Fields: map[string]string{}}
	for _, fe := range errs {
		details.Fields[fe.Field()] = fe.Tag()
		if details.Message == "" {
			details.Message = messages[fe.Field()]
		}
	}
	if details.Message == "" {
		details.Message = f.fallbackMessage()
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
}

// Credentials is the register/login form.
type Credentials struct {
	Email    string `form:"email" validate:"contains=@"`
	Password string `form:"password" validate:"min=6"`
}

func (Credentials) fieldMessages() map[string]i18n.MessageID {
	return map[string]i18n.MessageID{"email": i18n.MsgInvalidEmail, "password": i18n.MsgPasswordTooShort}
}

func (Credentials) fallbackMessage() i18n.MessageID { return i18n.MsgInvalidEmail }

func (c Credentials) Validate() error { return check(c) }

// Verification is the email verification form.
type Verification struct {
	Code string `form:"code" validate:"len=6"`
}

func (Verification) fieldMessages() map[string]i18n.MessageID {
	return map[string]i18n.MessageID{"code": i18n.MsgVerificationCodeLength}
}

func (Verification) fallbackMessage() i18n.MessageID { return i18n.MsgVerificationCodeLength }

func (v Verification) Validate() error { return check(v) }

// Checkout is the contact form submitted with an order.
type Checkout struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required"`
	Address string `form:"address" validate:"required"`
	Promo   string `form:"promo"`
}

func (Checkout) fieldMessages() map[string]i18n.MessageID {
	return map[string]i18n.MessageID{}
}

func (Checkout) fallbackMessage() i18n.MessageID { return i18n.MsgCheckoutMissingFields }

func (c Checkout) Validate() error { return check(c) }

// Color is an optional color row of the admin product form.
type Color struct {
	Name string
	Hex  string
}

// Complete reports whether both parts were provided.
func (c Color) Complete() bool {
	return c.Name != "" && c.Hex != ""
}

// AdminProduct is the admin "add product" form.
type AdminProduct struct {
	Name     string `form:"name" validate:"required"`
	Category string `form:"category" validate:"oneof=Chairs Sofas Tables"`
	Price    string `form:"price" validate:"positive_decimal"`
	Image    string `form:"image" validate:"required"`
	Gallery  string `form:"gallery"`
	Colors   [3]Color
}

func (AdminProduct) fieldMessages() map[string]i18n.MessageID {
	return map[string]i18n.MessageID{}
}

func (AdminProduct) fallbackMessage() i18n.MessageID { return i18n.MsgAdminProductInvalid }

func (a AdminProduct) Validate() error { return check(a) }

// AdminImages edits the photos of an existing product.
type AdminImages struct {
	ProductID string `form:"productId" validate:"required"`
	Image     string `form:"image"`
	Gallery   string `form:"gallery"`
}

func (AdminImages) fieldMessages() map[string]i18n.MessageID {
	return map[string]i18n.MessageID{"productId": i18n.MsgUnknownProduct}
}

func (AdminImages) fallbackMessage() i18n.MessageID { return i18n.MsgInvalidInput }

func (a AdminImages) Validate() error { return check(a) }

// SplitList splits a comma separated list, trimming entries and dropping
// empty ones.
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
