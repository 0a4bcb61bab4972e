// Package validation runs the client-side checks of the registration and
// onboarding forms. The first failing check, in form order, is reported as a
// *common.ValidationError carrying the message shown to the user.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/genfit/internal/common"
	"github.com/go-playground/validator"
)

// PhonePrefix is the country code every phone number must start with.
const PhonePrefix = "+62"

// MinPhoneLength is the shortest accepted phone number, prefix included.
const MinPhoneLength = 13

// User-facing messages.
const (
	MsgInvalidEmail     = "Harap masukkan format email yang valid."
	MsgInvalidPhone     = "Harap masukkan nomor HP yang valid dengan format +62 dan lebih dari 12 digit."
	MsgRequired         = "Harap isi semua field."
	MsgPasswordMismatch = "Password dan Konfirmasi Password tidak cocok."
	MsgConsentRequired  = "Anda harus menyetujui persyaratan penggunaan aplikasi."

	MsgFullNameRequired = "Nama lengkap wajib diisi."
	MsgInvalidHeight    = "Tinggi badan harus lebih dari 0."
	MsgInvalidWeight    = "Berat badan harus lebih dari 0."
	MsgInvalidGender    = "Gender harus male atau female."
	MsgInvalidDOB       = "Tanggal lahir tidak valid."
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegistrationForm is the sign-up form. Field order is check order.
type RegistrationForm struct {
	Email           string `validate:"email_loose"`
	PhoneNumber     string `validate:"phone_id"`
	Username        string `validate:"required"`
	Password        string `validate:"required"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Agree           bool   `validate:"accepted"`
}

// UserDetailForm is the onboarding form filled right after sign-up.
type UserDetailForm struct {
	FullName string    `validate:"required"`
	HeightCm float64   `validate:"gt=0"`
	WeightKg float64   `validate:"gt=0"`
	DOB      time.Time `validate:"past"`
	Gender   string    `validate:"oneof=male female"`
}

// Validator checks forms. The zero value is not usable; use New.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// New returns a Validator; now is used by the date-of-birth check and
// defaults to time.Now when nil.
func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	val := &Validator{v: validator.New(), now: now}

	_ = val.v.RegisterValidation("email_loose", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	_ = val.v.RegisterValidation("phone_id", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	_ = val.v.RegisterValidation("accepted", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.Bool && fl.Field().Bool()
	})
	_ = val.v.RegisterValidation("past", func(fl validator.FieldLevel) bool {
		dob, ok := fl.Field().Interface().(time.Time)
		return ok && !dob.IsZero() && !dob.After(val.now())
	})

	return val
}

// Registration validates the sign-up form.
func (val *Validator) Registration(f RegistrationForm) error {
	return val.first(f, registrationMessage)
}

// UserDetail validates the onboarding form.
func (val *Validator) UserDetail(f UserDetailForm) error {
	f.Gender = strings.ToLower(strings.TrimSpace(f.Gender))
	return val.first(f, userDetailMessage)
}

// ValidEmail reports whether v looks like an e-mail address.
func ValidEmail(v string) bool {
	return emailRe.MatchString(v)
}

// ValidPhone reports whether v carries the country prefix and is long enough.
func ValidPhone(v string) bool {
	return strings.HasPrefix(v, PhonePrefix) && len(v) >= MinPhoneLength
}

// NormalizePhone resets input that lost the country prefix back to the bare
// prefix, mirroring how the phone field behaves while typing.
func NormalizePhone(v string) string {
	if !strings.HasPrefix(v, PhonePrefix) {
		return PhonePrefix
	}
	return v
}

func (val *Validator) first(form any, message func(validator.FieldError) string) error {
	err := val.v.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	return &common.ValidationError{Field: fe.StructField(), Message: message(fe)}
}

func registrationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email_loose":
		return MsgInvalidEmail
	case "phone_id":
		return MsgInvalidPhone
	case "eqfield":
		return MsgPasswordMismatch
	case "accepted":
		return MsgConsentRequired
	default:
		return MsgRequired
	}
}

func userDetailMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "FullName":
		return MsgFullNameRequired
	case "HeightCm":
		return MsgInvalidHeight
	case "WeightKg":
		return MsgInvalidWeight
	case "DOB":
		return MsgInvalidDOB
	case "Gender":
		return MsgInvalidGender
	default:
		return MsgRequired
	}
}
