package viewmodel

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/genfit/internal/client/navigation"
	"github.com/dmitrijs2005/genfit/internal/client/validation"
	"github.com/dmitrijs2005/genfit/internal/common"
	"github.com/dmitrijs2005/genfit/internal/logging"
)

// MsgLoginFailed is shown when the backend gives no reason.
const MsgLoginFailed = "Login gagal. Periksa kembali email dan password Anda."

type Login struct {
	api     Authenticator
	session Session
	nav     Navigator
	log     logging.Logger
}

func NewLogin(api Authenticator, session Session, nav Navigator, log logging.Logger) *Login {
	if log == nil {
		log = logging.Nop()
	}
	return &Login{api: api, session: session, nav: nav, log: log.With("screen", "login")}
}

// Submit signs in with an e-mail or username and lands on MainTabs.
func (l *Login) Submit(ctx context.Context, identifier, password string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return &common.ValidationError{Field: "Identifier", Message: validation.MsgRequired}
	}

	res, err := l.api.Login(ctx, identifier, password)
	if err != nil {
		l.log.Warn(ctx, "login failed", "error", err)
		return err
	}

	if err := l.session.Begin(ctx, res.JWT, res.User.IDString()); err != nil {
		l.log.Error(ctx, "store session failed", "error", err)
		return err
	}
	l.log.Info(ctx, "signed in", "user_id", res.User.IDString())

	return l.nav.SignIn(navigation.To(navigation.MainTabs))
}
