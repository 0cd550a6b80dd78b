package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", 7*24*time.Hour)
	id := uuid.New()

	token, err := m.GenerateAccessToken(id, "cashier1", "cashier")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "cashier1", claims.Username)
	assert.Equal(t, "cashier", claims.Role)
}

func TestAccessTokenExpiry(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, err := m.GenerateAccessToken(uuid.New(), "a", "admin")
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := NewJWTManager("one", time.Hour).GenerateAccessToken(uuid.New(), "a", "admin")
	require.NoError(t, err)

	_, err = NewJWTManager("two", time.Hour).ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
