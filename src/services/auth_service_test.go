package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	user, err := f.auth.Register(ctx, "alice", "alice@example.com", testPassword)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, testPassword, user.PasswordHash, "password must be stored hashed")

	token, loggedIn, err := f.auth.Login(ctx, "alice", testPassword)
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	subject, err := f.auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestRegisterDuplicates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.auth.Register(ctx, "alice", "alice@example.com", testPassword)
	require.NoError(t, err)

	_, err = f.auth.Register(ctx, "alice", "other@example.com", testPassword)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.auth.Register(ctx, "alice2", "alice@example.com", testPassword)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.auth.Register(ctx, "al", "al@example.com", testPassword)
	assert.ErrorIs(t, err, ErrValidation, "short username")

	_, err = f.auth.Register(ctx, "alice", "not-an-email", testPassword)
	assert.ErrorIs(t, err, ErrValidation, "bad email")

	_, err = f.auth.Register(ctx, "alice", "alice@example.com", "weak")
	assert.ErrorIs(t, err, ErrValidation, "weak password")
}

func TestLoginInvalidCredentials(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.user(t, "alice")

	_, _, err := f.auth.Login(ctx, "alice", "Wr0ng!pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = f.auth.Login(ctx, "nobody", testPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.user(t, "alice")

	token, _, err := f.auth.Login(ctx, "alice", testPassword)
	require.NoError(t, err)

	_, err = f.auth.ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = f.auth.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Same claims signed with a different secret.
	other := NewAuthService(f.store.Users(), "other-secret", 24*time.Hour)
	otherToken, _, err := other.Login(ctx, "alice", testPassword)
	require.NoError(t, err)
	_, err = f.auth.ValidateToken(otherToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.user(t, "alice")

	// Issue a token whose 24h lifetime ended a day ago.
	f.auth.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, _, err := f.auth.Login(ctx, "alice", testPassword)
	require.NoError(t, err)

	_, err = f.auth.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveToken(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created := f.user(t, "alice")

	token, _, err := f.auth.Login(ctx, "alice", testPassword)
	require.NoError(t, err)

	user, err := f.auth.ResolveToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = f.auth.ResolveToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
