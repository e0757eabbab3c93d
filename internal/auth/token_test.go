package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms-backend/internal/models"
)

func testCodec(accessTTL time.Duration, resetTTL time.Duration) *TokenCodec {
	return NewTokenCodec("test-secret", accessTTL, resetTTL)
}

func testEmployee() *models.Employee {
	return &models.Employee{
		ID:    uuid.New(),
		Email: "john@example.com",
		Role:  models.RoleEmployee,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	codec := testCodec(time.Hour, 15*time.Minute)
	employee := testEmployee()

	token, err := codec.SignAccess(employee)
	require.NoError(t, err)

	claims, err := codec.ParseAccess(token)
	require.NoError(t, err)
	assert.Equal(t, employee.ID.String(), claims.Subject)
	assert.Equal(t, employee.Email, claims.Email)
	assert.Equal(t, employee.Role, claims.Role)
}

func TestAccessTokenExpired(t *testing.T) {
	codec := testCodec(-time.Minute, 15*time.Minute)

	token, err := codec.SignAccess(testEmployee())
	require.NoError(t, err)

	_, err = codec.ParseAccess(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := testCodec(time.Hour, 15*time.Minute).SignAccess(testEmployee())
	require.NoError(t, err)

	other := NewTokenCodec("different-secret", time.Hour, 15*time.Minute)
	_, err = other.ParseAccess(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessTokenGarbage(t *testing.T) {
	_, err := testCodec(time.Hour, time.Minute).ParseAccess("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestResetTokenRoundTrip(t *testing.T) {
	codec := testCodec(time.Hour, 15*time.Minute)

	token, tokenID, err := codec.SignReset("john@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := codec.ParseReset(token)
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, tokenID, claims.ID)
}

func TestResetTokenExpired(t *testing.T) {
	codec := testCodec(time.Hour, -time.Minute)

	token, _, err := codec.SignReset("john@example.com")
	require.NoError(t, err)

	_, err = codec.ParseReset(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAccessTokenRejectedAsReset(t *testing.T) {
	codec := testCodec(time.Hour, 15*time.Minute)

	token, err := codec.SignAccess(testEmployee())
	require.NoError(t, err)

	_, err = codec.ParseReset(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestResetTokenRejectedAsAccess(t *testing.T) {
	// A reset link travels by mail; it must never double as an
	// authentication credential.
	codec := testCodec(time.Hour, 15*time.Minute)

	token, _, err := codec.SignReset("john@example.com")
	require.NoError(t, err)

	_, err = codec.ParseAccess(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
