package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/genfit/internal/client/bmi"
	"github.com/dmitrijs2005/genfit/internal/client/models"
	"github.com/dmitrijs2005/genfit/internal/client/navigation"
	"github.com/dmitrijs2005/genfit/internal/client/validation"
	"github.com/dmitrijs2005/genfit/internal/common"
	"github.com/dmitrijs2005/genfit/internal/logging"
)

const (
	MsgUserIDMissing  = "User ID not found or is invalid."
	MsgTokenMissing   = "Token not found or is invalid."
	MsgDetailFailed   = "Failed to submit user details."
	MsgDetailAccepted = "User details submitted successfully."
)

// UserDetail submits the onboarding form filled right after registration.
type UserDetail struct {
	api     DetailSubmitter
	session Session
	nav     Navigator
	val     *validation.Validator
	now     func() time.Time
	log     logging.Logger
}

func NewUserDetail(api DetailSubmitter, session Session, nav Navigator, val *validation.Validator, now func() time.Time, log logging.Logger) *UserDetail {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logging.Nop()
	}
	return &UserDetail{api: api, session: session, nav: nav, val: val, now: now, log: log.With("screen", "user_detail")}
}

// Submit validates f, posts it for the signed-in user and lands on MainTabs.
func (u *UserDetail) Submit(ctx context.Context, f validation.UserDetailForm) error {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Gender = strings.ToLower(strings.TrimSpace(f.Gender))
	if err := u.val.UserDetail(f); err != nil {
		return err
	}

	userID, err := u.session.UserID(ctx)
	if err != nil {
		u.log.Error(ctx, "user id lookup failed", "error", err)
		switch {
		case errors.Is(err, common.ErrNoToken):
			return &common.ValidationError{Field: "Token", Message: MsgTokenMissing}
		case errors.Is(err, common.ErrNoUserID):
			return &common.ValidationError{Field: "UserID", Message: MsgUserIDMissing}
		default:
			return err
		}
	}

	_, ok, err := u.session.Token(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return &common.ValidationError{Field: "Token", Message: MsgTokenMissing}
	}

	detail := models.UserDetail{
		FullName: f.FullName,
		Height:   f.HeightCm,
		Weight:   f.WeightKg,
		Age:      bmi.AgeAt(f.DOB, u.now()),
		DOB:      f.DOB.Unix(),
		Gender:   f.Gender,
	}
	if err := u.api.SubmitUserDetail(ctx, userID, detail); err != nil {
		u.log.Warn(ctx, "submit user details failed", "error", err)
		return fmt.Errorf("submit user details: %w", err)
	}
	u.log.Info(ctx, "user details submitted", "user_id", userID)

	return u.nav.Reset(navigation.To(navigation.MainTabs))
}
