package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/profenger/feedback-hub/internal/domain"
	"github.com/profenger/feedback-hub/internal/repository/memory"
	"github.com/profenger/feedback-hub/internal/service"
	"github.com/profenger/feedback-hub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	repos := memory.NewRepositories()
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithEmail("loginuser@example.com").
		WithPassword("correctpassword").
		Build(t, repos.User)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "successful login",
			email:    user.Email,
			password: rawPassword,
		},
		{
			name:     "email is case and whitespace insensitive",
			email:    "  LOGINUSER@EXAMPLE.COM ",
			password: rawPassword,
		},
		{
			name:     "wrong password",
			email:    user.Email,
			password: "wrongpassword",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "non-existent user",
			email:    "nonexistent@example.com",
			password: "anypassword",
			wantErr:  domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.Email, result.User.Email)
			assert.NotEmpty(t, result.Token)
		})
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	repos := memory.NewRepositories()
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithRole(domain.RoleSuperAdmin).
		Build(t, repos.User)

	result, err := authService.Login(ctx, user.Email, rawPassword)
	require.NoError(t, err)

	claims, err := authService.ValidateToken(result.Token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleSuperAdmin, claims.Role)

	// Expiry is 24 hours from issuance
	expiresIn := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (24 * time.Hour).Seconds(), expiresIn.Seconds(), (time.Minute).Seconds())
}

func TestAuthService_CreateUser(t *testing.T) {
	repos := memory.NewRepositories()
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		setup    func()
		wantErr  error
	}{
		{
			name:     "successful creation",
			email:    "newadmin@example.com",
			password: "password123",
		},
		{
			name:     "duplicate email",
			email:    "taken@example.com",
			password: "password123",
			setup: func() {
				_, err := authService.CreateUser(ctx, "taken@example.com", "password123")
				require.NoError(t, err)
			},
			wantErr: domain.ErrUserExists,
		},
		{
			name:     "duplicate differing only in case",
			email:    "MIXED@Example.Com",
			password: "password123",
			setup: func() {
				_, err := authService.CreateUser(ctx, "mixed@example.com", "password123")
				require.NoError(t, err)
			},
			wantErr: domain.ErrUserExists,
		},
		{
			name:     "missing email",
			email:    "",
			password: "password123",
			wantErr:  domain.ErrValidation,
		},
		{
			name:     "missing password",
			email:    "nopassword@example.com",
			password: "",
			wantErr:  domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}

			user, err := authService.CreateUser(ctx, tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, domain.NormalizeEmail(tt.email), user.Email)
			// Role is always admin regardless of input; only the seed creates
			// a superAdmin.
			assert.Equal(t, domain.RoleAdmin, user.Role)
		})
	}
}

func TestAuthService_Seed(t *testing.T) {
	repos := memory.NewRepositories()
	cfg := testutil.TestConfig()
	cfg.AdminEmail = "admin@example.com"
	cfg.AdminPassword = "secret123"
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	require.NoError(t, authService.Seed(ctx))

	users, err := repos.User.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@example.com", users[0].Email)
	assert.Equal(t, domain.RoleSuperAdmin, users[0].Role)

	// Idempotent on restart
	require.NoError(t, authService.Seed(ctx))
	users, err = repos.User.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	// Login with un-normalized credentials
	result, err := authService.Login(ctx, "ADMIN@EXAMPLE.COM ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuperAdmin, result.User.Role)
}

func TestAuthService_Seed_NotConfigured(t *testing.T) {
	repos := memory.NewRepositories()
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	require.NoError(t, authService.Seed(ctx))

	users, err := repos.User.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestAuthService_ValidateToken(t *testing.T) {
	repos := memory.NewRepositories()
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().Build(t, repos.User)
	result, err := authService.Login(ctx, user.Email, rawPassword)
	require.NoError(t, err)

	// A token signed with a different secret
	otherCfg := *cfg
	otherCfg.JWTSecret = "another-secret-entirely"
	otherService := service.NewAuthService(repos.User, &otherCfg)
	foreign, err := otherService.Login(ctx, user.Email, rawPassword)
	require.NoError(t, err)

	// A token that expired the moment it was issued
	expiredCfg := *cfg
	expiredCfg.JWTExpirationHours = -1
	expiredService := service.NewAuthService(repos.User, &expiredCfg)
	expired, err := expiredService.Login(ctx, user.Email, rawPassword)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{
			name:  "valid token",
			token: result.Token,
		},
		{
			name:    "token signed with wrong secret",
			token:   foreign.Token,
			wantErr: true,
		},
		{
			name:    "expired token",
			token:   expired.Token,
			wantErr: true,
		},
		{
			name:    "malformed token",
			token:   "notavalidjwt",
			wantErr: true,
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := authService.ValidateToken(tt.token)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.Email, claims.Email)
		})
	}
}
