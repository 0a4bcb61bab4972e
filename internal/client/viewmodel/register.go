package viewmodel

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/genfit/internal/client/models"
	"github.com/dmitrijs2005/genfit/internal/client/navigation"
	"github.com/dmitrijs2005/genfit/internal/client/validation"
	"github.com/dmitrijs2005/genfit/internal/logging"
)

// MsgRegisterFailed is shown when the backend gives no reason.
const MsgRegisterFailed = "Registrasi gagal. Silakan coba lagi."

// Register creates the account, opens the session and continues to the
// onboarding (UserDetail) step.
type Register struct {
	api     Authenticator
	session Session
	nav     Navigator
	val     *validation.Validator
	log     logging.Logger
}

func NewRegister(api Authenticator, session Session, nav Navigator, val *validation.Validator, log logging.Logger) *Register {
	if log == nil {
		log = logging.Nop()
	}
	return &Register{api: api, session: session, nav: nav, val: val, log: log.With("screen", "register")}
}

// Submit validates f and registers. Nothing is sent when validation fails.
func (r *Register) Submit(ctx context.Context, f validation.RegistrationForm) error {
	f.Email = strings.TrimSpace(f.Email)
	f.Username = strings.TrimSpace(f.Username)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)

	if err := r.val.Registration(f); err != nil {
		return err
	}

	res, err := r.api.Register(ctx, models.RegisterRequest{
		Username:    f.Username,
		Email:       f.Email,
		Password:    f.Password,
		PhoneNumber: f.PhoneNumber,
	})
	if err != nil {
		r.log.Warn(ctx, "registration failed", "error", err)
		return err
	}

	if err := r.session.Begin(ctx, res.JWT, res.User.IDString()); err != nil {
		r.log.Error(ctx, "store session failed", "error", err)
		return err
	}
	r.log.Info(ctx, "registered", "user_id", res.User.IDString())

	return r.nav.SignIn(navigation.To(navigation.UserDetail))
}
