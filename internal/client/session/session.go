// Package session is the explicit handle on the signed-in state. It is passed
// to whatever needs the bearer token instead of reaching into storage
// directly.
//
// Presence of a stored token is the only signal of an authenticated session;
// expiry is not checked.
package session

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/genfit/internal/client/storage"
	"github.com/dmitrijs2005/genfit/internal/common"
	"github.com/dmitrijs2005/genfit/internal/dbx"
	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	db      *sql.DB
	tokens  *storage.KeyStore
	userIDs *storage.KeyStore
}

func New(db *sql.DB) *Session {
	repo := storage.NewSQLiteRepository(db)
	return &Session{
		db:      db,
		tokens:  storage.NewTokenStore(repo),
		userIDs: storage.NewUserIDStore(repo),
	}
}

// Token returns the stored bearer token; ok is false when signed out.
func (s *Session) Token(ctx context.Context) (string, bool, error) {
	return s.tokens.Get(ctx)
}

// Begin stores the token and, when known, the user id atomically.
func (s *Session) Begin(ctx context.Context, token, userID string) error {
	if token == "" {
		return &common.StorageError{Op: "save token", Err: common.ErrEmptyValue}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := storage.NewTokenStore(repo).Save(ctx, token); err != nil {
			return err
		}
		ids := storage.NewUserIDStore(repo)
		if userID == "" {
			return ids.Delete(ctx)
		}
		return ids.Save(ctx, userID)
	})
}

// End forgets the token and the user id.
func (s *Session) End(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := storage.NewTokenStore(repo).Delete(ctx); err != nil {
			return err
		}
		return storage.NewUserIDStore(repo).Delete(ctx)
	})
}

// UserID returns the stored user id. When none was stored it falls back to the
// "id" claim of the token, read without signature verification; the backend
// remains the authority on the token.
func (s *Session) UserID(ctx context.Context) (string, error) {
	id, ok, err := s.userIDs.Get(ctx)
	if err != nil {
		return "", err
	}
	if ok {
		return id, nil
	}

	token, ok, err := s.tokens.Get(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrNoToken
	}
	return UserIDFromToken(token)
}

// UserIDFromToken extracts the "id" claim of an unverified JWT.
func UserIDFromToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrNoUserID, err)
	}

	switch v := claims["id"].(type) {
	case float64:
		return strconv.FormatInt(int64(v), 10), nil
	case string:
		if v != "" {
			return v, nil
		}
	}
	return "", common.ErrNoUserID
}
