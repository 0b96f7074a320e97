package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner() *Signer {
	return &Signer{
		Secret:     []byte("test-secret"),
		Issuer:     "lostandfound",
		AccessExp:  15 * time.Minute,
		RefreshExp: 30 * 24 * time.Hour,
	}
}

func TestSignParseRoundtrip(t *testing.T) {
	s := newTestSigner()

	signed, jti, err := s.Sign("user@example.com", TypeAccess)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	claims, err := s.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, TypeAccess, claims.Type)
	assert.Equal(t, jti, claims.ID)
}

func TestSign_DistinctIDs(t *testing.T) {
	s := newTestSigner()

	_, a, err := s.Sign("user@example.com", TypeAccess)
	require.NoError(t, err)
	_, b, err := s.Sign("user@example.com", TypeAccess)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSign_RefreshOutlivesAccess(t *testing.T) {
	s := newTestSigner()

	access, _, err := s.Sign("user@example.com", TypeAccess)
	require.NoError(t, err)
	refresh, _, err := s.Sign("user@example.com", TypeRefresh)
	require.NoError(t, err)

	ac, err := s.Parse(access)
	require.NoError(t, err)
	rc, err := s.Parse(refresh)
	require.NoError(t, err)
	assert.Equal(t, TypeRefresh, rc.Type)
	assert.True(t, rc.ExpiresAt.After(ac.ExpiresAt.Time))
}

func TestParse_WrongSecret(t *testing.T) {
	s := newTestSigner()
	signed, _, err := s.Sign("user@example.com", TypeAccess)
	require.NoError(t, err)

	other := newTestSigner()
	other.Secret = []byte("different")
	_, err = other.Parse(signed)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	s := newTestSigner()
	_, err := s.Parse("not.a.token")
	assert.Error(t, err)
}
