package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/voyago/tourism-platform/go/configs"
	"github.com/voyago/tourism-platform/go/internal/core/domain/admin"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
)

type AuthService struct {
	users     ports.AdminUserRepository
	jwtConfig *configs.JWTConfig
	logger    *logrus.Logger
}

func NewAuthService(users ports.AdminUserRepository, jwtConfig *configs.JWTConfig, logger *logrus.Logger) ports.AuthService {
	return &AuthService{users: users, jwtConfig: jwtConfig, logger: logger}
}

// Login authenticates a dashboard operator and issues an access token.
// Unknown email and wrong password return the same error so the endpoint
// does not leak which accounts exist.
func (s *AuthService) Login(ctx context.Context, req *admin.LoginRequest) (*admin.LoginResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		s.logger.WithField("email", req.Email).Warn("Login attempt for unknown email")
		return nil, fmt.Errorf("invalid credentials")
	}
	if !u.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	now := time.Now()
	claims := &admin.Claims{
		UserID: u.ID,
		Email:  u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("Admin login")

	return &admin.LoginResponse{
		AccessToken: signed,
		ExpiresIn:   int64(s.jwtConfig.AccessTokenTTL.Seconds()),
	}, nil
}

func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*admin.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &admin.Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC (prevent alg confusion)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(*admin.Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
