package auth

import (
	"context"
	"testing"
	"time"

	"cinetick/internal/dal"
	"cinetick/internal/shared/config"
	"cinetick/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			JWTExpiresIn:     15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
	return NewService(NewRepository(dal.NewMemStores().Users()), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, string(users.RoleRegisteredUser), resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// duplicate email is rejected
	_, err = svc.Register(ctx, &RegisterRequest{
		Name:     "Ada Again",
		Email:    "ada@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	login, err := svc.Login(ctx, &LoginRequest{Email: "ada@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(ctx, &LoginRequest{Email: "ada@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRoleHandling(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	admin, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Boss",
		Email:    "boss@example.com",
		Password: "secret123",
		Role:     "administrator",
	})
	require.NoError(t, err)
	assert.Equal(t, string(users.RoleAdministrator), admin.User.Role)

	// unknown roles fall back to the registered-user tier
	plain, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Plain",
		Email:    "plain@example.com",
		Password: "secret123",
		Role:     "SUPERUSER",
	})
	require.NoError(t, err)
	assert.Equal(t, string(users.RoleRegisteredUser), plain.User.Role)
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Refresher",
		Email:    "refresh@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	pair, err := svc.RefreshToken(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	// an access token cannot be used as a refresh token
	_, err = svc.RefreshToken(ctx, resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.RefreshToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Changer",
		Email:    "change@example.com",
		Password: "oldpass1",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, resp.User.ID, &ChangePasswordRequest{
		CurrentPassword: "wrongpass",
		NewPassword:     "newpass1",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, resp.User.ID, &ChangePasswordRequest{
		CurrentPassword: "oldpass1",
		NewPassword:     "newpass1",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginRequest{Email: "change@example.com", Password: "newpass1"})
	require.NoError(t, err)
	_, err = svc.Login(ctx, &LoginRequest{Email: "change@example.com", Password: "oldpass1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenClaims(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	resp, err := svc.Register(ctx, &RegisterRequest{
		Name:     "Claims",
		Email:    "claims@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "claims@example.com", claims.Email)
	assert.Equal(t, "access", claims.Type)
}
