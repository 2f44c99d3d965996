package auth

import (
	"testing"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	user := &domain.User{ID: "u1", Role: domain.RoleOrganizer}

	pair, err := m.Issue(user)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))

	id, err := m.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)

	id, err = m.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", id)
}

func TestTokenManager_RejectsSwappedTokens(t *testing.T) {
	m := NewTokenManager("same-secret", "same-secret", time.Minute, time.Hour)

	pair, err := m.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = m.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = m.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("a", "r", time.Minute, time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	pair, err := m.Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = m.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("a", "r", time.Minute, time.Hour)
	other := NewTokenManager("x", "y", time.Minute, time.Hour)

	pair, err := issuer.Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = other.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, h.Compare(hash, "s3cret-pass"))
	assert.ErrorIs(t, h.Compare(hash, "wrong"), domain.ErrInvalidCredentials)
}
