package viewmodel

import (
	"context"

	"github.com/dmitrijs2005/genfit/internal/client/models"
	"github.com/dmitrijs2005/genfit/internal/client/navigation"
)

// Session is the signed-in state a view model reads and mutates.
type Session interface {
	Token(ctx context.Context) (string, bool, error)
	Begin(ctx context.Context, token, userID string) error
	End(ctx context.Context) error
	UserID(ctx context.Context) (string, error)
}

// Navigator is the part of navigation.Navigator view models drive.
type Navigator interface {
	Navigate(r navigation.Route) error
	Reset(r navigation.Route) error
	SignIn(next navigation.Route) error
	SignOut()
}

type UserFetcher interface {
	Me(ctx context.Context) (*models.User, error)
}

type Authenticator interface {
	Login(ctx context.Context, identifier, password string) (*models.AuthResult, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error)
}

type DetailSubmitter interface {
	SubmitUserDetail(ctx context.Context, userID string, detail models.UserDetail) error
}
