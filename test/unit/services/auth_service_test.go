package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	config "github.com/voyago/tourism-platform/go/configs"
	impl "github.com/voyago/tourism-platform/go/internal/application/services"
	"github.com/voyago/tourism-platform/go/internal/core/domain/admin"
	"github.com/voyago/tourism-platform/go/test/mocks"
)

func adminUser(t *testing.T, password string) *admin.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &admin.User{
		ID:           uuid.New(),
		Email:        "ops@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

func TestLogin_IssuesValidToken(t *testing.T) {
	u := adminUser(t, "hunter2")
	users := &mocks.AdminUserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*admin.User, error) { return u, nil },
	}
	jwtCfg := &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: 15 * time.Minute}
	svc := impl.NewAuthService(users, jwtCfg, logrus.New())

	resp, err := svc.Login(context.Background(), &admin.LoginRequest{Email: u.Email, Password: "hunter2"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, int64(900), resp.ExpiresIn)

	claims, err := svc.ValidateToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, u.ID, claims.UserID)
	require.Equal(t, u.Email, claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	u := adminUser(t, "hunter2")
	users := &mocks.AdminUserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*admin.User, error) { return u, nil },
	}
	svc := impl.NewAuthService(users, &config.JWTConfig{Secret: "s", AccessTokenTTL: time.Minute}, logrus.New())

	_, err := svc.Login(context.Background(), &admin.LoginRequest{Email: u.Email, Password: "wrong"})
	require.Error(t, err)
}

func TestLogin_InactiveAccount(t *testing.T) {
	u := adminUser(t, "hunter2")
	u.IsActive = false
	users := &mocks.AdminUserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*admin.User, error) { return u, nil },
	}
	svc := impl.NewAuthService(users, &config.JWTConfig{Secret: "s", AccessTokenTTL: time.Minute}, logrus.New())

	_, err := svc.Login(context.Background(), &admin.LoginRequest{Email: u.Email, Password: "hunter2"})
	require.Error(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	svc := impl.NewAuthService(&mocks.AdminUserRepositoryMock{}, &config.JWTConfig{Secret: "s", AccessTokenTTL: time.Minute}, logrus.New())

	_, err := svc.ValidateToken(context.Background(), "not.a.jwt")
	require.Error(t, err)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	u := adminUser(t, "hunter2")
	users := &mocks.AdminUserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*admin.User, error) { return u, nil },
	}
	issuer := impl.NewAuthService(users, &config.JWTConfig{Secret: "secret-a", AccessTokenTTL: time.Minute}, logrus.New())
	verifier := impl.NewAuthService(users, &config.JWTConfig{Secret: "secret-b", AccessTokenTTL: time.Minute}, logrus.New())

	resp, err := issuer.Login(context.Background(), &admin.LoginRequest{Email: u.Email, Password: "hunter2"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(context.Background(), resp.AccessToken)
	require.Error(t, err)
}
