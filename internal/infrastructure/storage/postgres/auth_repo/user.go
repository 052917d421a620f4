// Package auth_repo provides PostgreSQL persistence for users.
package auth_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain/auth"
	"stockroom/internal/infrastructure/storage/postgres"
	"stockroom/internal/infrastructure/storage/postgres/catalog_repo"
	"stockroom/internal/infrastructure/storage/postgres/queryspec"
)

// UserRepo persists application users.
type UserRepo struct {
	*catalog_repo.BaseCatalogRepo[*auth.User]
}

func NewUserRepo(txm *postgres.TxManager) *UserRepo {
	spec := queryspec.Spec{
		Columns: map[string]string{
			"name":      "name",
			"email":     "email",
			"phone":     "phone",
			"address":   "address",
			"role":      "role",
			"status":    "status",
			"createdAt": "created_at",
		},
		Search:       []string{"name", "email", "phone"},
		Dates:        map[string]bool{"createdAt": true},
		DefaultOrder: "name ASC",
	}

	return &UserRepo{
		BaseCatalogRepo: catalog_repo.NewBaseCatalogRepo(txm, "users", "user", spec,
			func() *auth.User { return &auth.User{} }),
	}
}

// GetByEmail loads a user by email for login.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	user := &auth.User{}

	sql, args, err := r.Builder().
		Select(postgres.ExtractDBColumns[auth.User]()...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", email)
		}
		return nil, fmt.Errorf("get by email: %w", err)
	}
	return user, nil
}

// UpdateLoginState records failed login attempts and the lockout window.
func (r *UserRepo) UpdateLoginState(ctx context.Context, userID id.ID, attempts int, lockedUntil *time.Time) error {
	sql, args, err := r.Builder().
		Update("users").
		Set("failed_login_attempts", attempts).
		Set("locked_until", lockedUntil).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update login state: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("user", userID.String())
	}
	return nil
}
