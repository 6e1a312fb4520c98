package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager("access-secret", "refresh-secret", "fuelcard-backend",
		15*time.Minute, 7*24*time.Hour)
}

func TestGeneratePairAndParse(t *testing.T) {
	tm := newTestManager()

	access, refresh, exp, err := tm.GeneratePair("42", true)
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)
	assert.True(t, exp.After(time.Now()))

	claims, isRefresh, err := tm.ParseAny(access)
	require.NoError(t, err)
	assert.False(t, isRefresh)
	assert.Equal(t, "42", claims.ClientID)
	assert.True(t, claims.Admin)
	assert.Equal(t, "fuelcard-backend", claims.Issuer)

	claims, isRefresh, err = tm.ParseAny(refresh)
	require.NoError(t, err)
	assert.True(t, isRefresh)
	assert.Equal(t, "42", claims.ClientID)
}

func TestParseAny_RejectsGarbage(t *testing.T) {
	tm := newTestManager()

	_, _, err := tm.ParseAny("not-a-token")
	assert.Error(t, err)
}

func TestParseAny_RejectsForeignSecret(t *testing.T) {
	other := NewTokenManager("other-access", "other-refresh", "fuelcard-backend",
		15*time.Minute, time.Hour)
	access, _, _, err := other.GeneratePair("42", false)
	require.NoError(t, err)

	_, _, err = newTestManager().ParseAny(access)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, VerifyPassword("s3cret", hash))
	assert.Error(t, VerifyPassword("wrong", hash))
}
