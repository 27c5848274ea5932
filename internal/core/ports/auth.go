package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyago/tourism-platform/go/internal/core/domain/admin"
)

// AdminUserRepository defines dashboard-operator account storage.
type AdminUserRepository interface {
	Create(ctx context.Context, u *admin.User) error
	GetByEmail(ctx context.Context, email string) (*admin.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*admin.User, error)
}

// AuthService defines admin dashboard authentication.
type AuthService interface {
	Login(ctx context.Context, req *admin.LoginRequest) (*admin.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*admin.Claims, error)
}
