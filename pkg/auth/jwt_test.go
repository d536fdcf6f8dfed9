package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret",
		Issuer:     "loanshield",
		Expiration: time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "priya", []string{RoleUser})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "priya", claims.Name)
	assert.True(t, claims.HasRole(RoleUser))
	assert.False(t, claims.HasRole(RoleAdmin))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)
	token, err := svc.GenerateToken(uuid.New(), "priya", []string{RoleUser})
	require.NoError(t, err)

	other, err := NewJWTService(JWTConfig{Secret: "different-secret", Issuer: "loanshield"})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	issuing, err := NewJWTService(JWTConfig{Secret: "s", Issuer: "someone-else", Expiration: time.Hour})
	require.NoError(t, err)
	token, err := issuing.GenerateToken(uuid.New(), "priya", []string{RoleUser})
	require.NoError(t, err)

	validating, err := NewJWTService(JWTConfig{Secret: "s", Issuer: "loanshield"})
	require.NoError(t, err)

	_, err = validating.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{Secret: "s", Issuer: "loanshield", Expiration: -time.Minute})
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.New(), "priya", []string{RoleUser})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestClaimsContextRoundTrip(t *testing.T) {
	claims := &Claims{UserID: uuid.New(), Roles: []string{RoleAnalyst}}
	ctx := ContextWithClaims(t.Context(), claims)

	got, ok := ClaimsFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, claims, got)
}
