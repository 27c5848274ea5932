package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/voyago/tourism-platform/go/internal/core/domain/admin"
	"github.com/voyago/tourism-platform/go/internal/core/ports"
	"github.com/voyago/tourism-platform/go/internal/infrastructure/db"
)

type adminUserRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewAdminUserRepository creates a new instance of AdminUserRepository
func NewAdminUserRepository(database *db.Database, logger *logrus.Logger) ports.AdminUserRepository {
	return &adminUserRepository{
		db:     database,
		logger: logger,
	}
}

func (r *adminUserRepository) Create(ctx context.Context, u *admin.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	query := `
		INSERT INTO admin_users (id, email, password_hash, full_name, is_active, created_at, updated_at)
		VALUES (:id, :email, :password_hash, :full_name, :is_active, :created_at, :updated_at)`

	if _, err := r.db.DB.NamedExecContext(ctx, query, u); err != nil {
		if r.logger != nil {
			r.logger.WithField("email", u.Email).WithError(err).Error("db: failed to insert admin user")
		}
		return err
	}
	return nil
}

func (r *adminUserRepository) GetByEmail(ctx context.Context, email string) (*admin.User, error) {
	var u admin.User
	err := r.db.DB.GetContext(ctx, &u, "SELECT * FROM admin_users WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin user not found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *adminUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*admin.User, error) {
	var u admin.User
	err := r.db.DB.GetContext(ctx, &u, "SELECT * FROM admin_users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("admin user not found")
		}
		return nil, err
	}
	return &u, nil
}
