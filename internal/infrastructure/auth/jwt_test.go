package auth

import (
	"testing"
	"time"

	"github.com/gestionale/backend/internal/domain/identity"
	"github.com/gestionale/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	cfg := config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: 15 * time.Minute,
		Issuer:     "test-issuer",
	}
	return NewJWTService(cfg)
}

func TestNewJWTService(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:     "test-secret",
		Expiration: 15 * time.Minute,
		Issuer:     "test-issuer",
	}

	svc := NewJWTService(cfg)

	assert.NotNil(t, svc)
	assert.Equal(t, []byte(cfg.Secret), svc.secret)
	assert.Equal(t, cfg.Expiration, svc.expiration)
	assert.Equal(t, cfg.Issuer, svc.issuer)
}

func TestGenerate(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.Generate(uuid.New(), "mario", identity.RoleAlcafer)

	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.True(t, token.ExpiresAt.After(time.Now()))
}

func TestValidate_Success(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	token, err := svc.Generate(userID, "mario", identity.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.Validate(token.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "mario", claims.Username)
	assert.Equal(t, identity.RoleAdmin, claims.GetRole())
	assert.Equal(t, "test-issuer", claims.Issuer)

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestValidate_Garbage(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.Validate("not-a-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:     "a-completely-different-secret-key-32",
		Expiration: 15 * time.Minute,
		Issuer:     "test-issuer",
	})

	token, err := other.Generate(uuid.New(), "mario", identity.RoleGabifer)
	require.NoError(t, err)

	_, err = svc.Validate(token.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: -time.Minute,
		Issuer:     "test-issuer",
	})

	token, err := svc.Generate(uuid.New(), "mario", identity.RoleAlcafer)
	require.NoError(t, err)

	_, err = svc.Validate(token.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidate_UnknownRole(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.Generate(uuid.New(), "mario", identity.Role("intruder"))
	require.NoError(t, err)

	_, err = svc.Validate(token.AccessToken)
	assert.ErrorIs(t, err, ErrMissingRole)
}

func TestClaims_HasPermission(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.Generate(uuid.New(), "paolo", identity.RoleGabifer)
	require.NoError(t, err)

	claims, err := svc.Validate(token.AccessToken)
	require.NoError(t, err)

	assert.True(t, claims.HasPermission(identity.PermJobWrite))
	assert.False(t, claims.HasPermission(identity.PermUserWrite))
}
