package viewmodel

import (
	"context"

	"github.com/dmitrijs2005/genfit/internal/logging"
)

// Confirmation dialog shown before signing out.
const (
	LogoutTitle   = "Konfirmasi"
	LogoutPrompt  = "Apakah Anda yakin ingin logout?"
	LogoutCancel  = "Batal"
	LogoutConfirm = "Logout"
)

type Logout struct {
	session Session
	nav     Navigator
	log     logging.Logger
}

func NewLogout(session Session, nav Navigator, log logging.Logger) *Logout {
	if log == nil {
		log = logging.Nop()
	}
	return &Logout{session: session, nav: nav, log: log.With("screen", "logout")}
}

// Confirm ends the session when confirmed is true and returns to Login.
// It reports whether the user was signed out.
func (l *Logout) Confirm(ctx context.Context, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if err := l.session.End(ctx); err != nil {
		l.log.Error(ctx, "end session failed", "error", err)
		return false, err
	}
	l.nav.SignOut()
	l.log.Info(ctx, "signed out")
	return true, nil
}
