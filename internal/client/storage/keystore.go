package storage

import (
	"context"

	"github.com/dmitrijs2005/genfit/internal/common"
)

// Fixed keys of the local store.
const (
	TokenKey  = "token"
	UserIDKey = "user_id"
)

// KeyStore persists a single string value under a fixed key.
type KeyStore struct {
	repo Repository
	key  string
}

// NewTokenStore returns the store of the bearer token.
func NewTokenStore(repo Repository) *KeyStore {
	return &KeyStore{repo: repo, key: TokenKey}
}

// NewUserIDStore returns the store of the registered user's id.
func NewUserIDStore(repo Repository) *KeyStore {
	return &KeyStore{repo: repo, key: UserIDKey}
}

// Save persists value, replacing any previous one. An empty value is rejected.
func (s *KeyStore) Save(ctx context.Context, value string) error {
	if value == "" {
		return &common.StorageError{Op: "save " + s.key, Err: common.ErrEmptyValue}
	}
	if err := s.repo.Set(ctx, s.key, []byte(value)); err != nil {
		return &common.StorageError{Op: "save " + s.key, Err: err}
	}
	return nil
}

// Get returns the stored value; ok is false when nothing is stored.
func (s *KeyStore) Get(ctx context.Context) (value string, ok bool, err error) {
	b, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return "", false, &common.StorageError{Op: "get " + s.key, Err: err}
	}
	if len(b) == 0 {
		return "", false, nil
	}
	return string(b), true, nil
}

// Delete removes the stored value. Deleting an absent value succeeds.
func (s *KeyStore) Delete(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.key); err != nil {
		return &common.StorageError{Op: "delete " + s.key, Err: err}
	}
	return nil
}
