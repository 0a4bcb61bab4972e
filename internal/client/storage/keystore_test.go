package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/genfit/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStore_RoundTrip(t *testing.T) {
	s := NewTokenStore(NewSQLiteRepository(setupDB(t)))
	ctx := context.Background()

	tokens := []string{
		"a",
		"eyJhbGciOiJIUzI1NiJ9.eyJpZCI6MX0.sig",
		"token with spaces and ünïcode",
	}
	for _, tok := range tokens {
		require.NoError(t, s.Save(ctx, tok))

		got, ok, err := s.Get(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, tok, got)
	}
}

func TestTokenStore_DeleteThenGetIsAbsent(t *testing.T) {
	s := NewTokenStore(NewSQLiteRepository(setupDB(t)))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "abc"))
	require.NoError(t, s.Delete(ctx))

	got, ok, err := s.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestTokenStore_DeleteWhenEmpty(t *testing.T) {
	s := NewTokenStore(NewSQLiteRepository(setupDB(t)))
	require.NoError(t, s.Delete(context.Background()))
}

func TestTokenStore_SaveEmptyRejected(t *testing.T) {
	s := NewTokenStore(NewSQLiteRepository(setupDB(t)))

	err := s.Save(context.Background(), "")
	require.ErrorIs(t, err, common.ErrStorage)
	require.ErrorIs(t, err, common.ErrEmptyValue)

	_, ok, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeyStores_AreIndependent(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	tokens, ids := NewTokenStore(repo), NewUserIDStore(repo)
	ctx := context.Background()

	require.NoError(t, tokens.Save(ctx, "tok"))
	require.NoError(t, ids.Save(ctx, "42"))
	require.NoError(t, tokens.Delete(ctx))

	id, ok, err := ids.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "42", id)
}

func TestTokenStore_NoMemoryCache(t *testing.T) {
	db := setupDB(t)
	s := NewTokenStore(NewSQLiteRepository(db))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "first"))
	_, err := db.Exec(`UPDATE metadata SET value = ? WHERE key = ?`, []byte("changed"), TokenKey)
	require.NoError(t, err)

	got, _, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "changed", got)
}

func TestTokenStore_StorageFailures(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewTokenStore(NewSQLiteRepository(db))
	ctx := context.Background()
	ioErr := errors.New("disk I/O error")

	mock.ExpectExec("INSERT INTO metadata").WithArgs(TokenKey, []byte("tok")).WillReturnError(ioErr)
	mock.ExpectQuery("SELECT value FROM metadata").WithArgs(TokenKey).WillReturnError(ioErr)
	mock.ExpectExec("DELETE FROM metadata").WithArgs(TokenKey).WillReturnError(ioErr)

	err = s.Save(ctx, "tok")
	var se *common.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "save token", se.Op)
	assert.ErrorIs(t, err, ioErr)

	_, ok, err := s.Get(ctx)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "get token", se.Op)
	assert.False(t, ok)

	err = s.Delete(ctx)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "delete token", se.Op)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenStore_GetFromMock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM metadata").
		WithArgs(TokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("from-mock")))

	got, ok, err := NewTokenStore(NewSQLiteRepository(db)).Get(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "from-mock", got)
	require.NoError(t, mock.ExpectationsWereMet())
}
