package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db)

	user, err := accounts.Register("alice", "alice@example.com", "sekret1")
	require.NoError(t, err)
	assert.NotEqual(t, "sekret1", user.Password, "password is stored hashed")

	got, err := accounts.Authenticate("alice", "sekret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db)

	_, err := accounts.Register("alice", "alice@example.com", "sekret1")
	require.NoError(t, err)

	_, err = accounts.Authenticate("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidLogin)

	_, err = accounts.Authenticate("nobody", "sekret1")
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db)

	_, err := accounts.Register("", "not-an-email", "123")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "username")
	assert.Contains(t, vErr.Fields, "email")
	assert.Contains(t, vErr.Fields, "password")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountService(db)

	_, err := accounts.Register("alice", "alice@example.com", "sekret1")
	require.NoError(t, err)

	_, err = accounts.Register("alice", "other@example.com", "sekret1")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "username")
}
