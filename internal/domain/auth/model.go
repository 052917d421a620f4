// Package auth provides users, roles and token-based authentication.
package auth

import (
	"context"
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
)

// Role defines a strict permission hierarchy: admin > staff > viewer.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleViewer Role = "viewer"
)

// Level returns the numeric rank of the role. Unknown roles rank zero.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleStaff:
		return 2
	case RoleViewer:
		return 1
	}
	return 0
}

// Allows reports whether the role covers the required role.
func (r Role) Allows(required Role) bool {
	return r.Level() >= required.Level()
}

// Valid reports whether r is a recognized role.
func (r Role) Valid() bool {
	return r.Level() > 0
}

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// User is an application account.
type User struct {
	ID                  id.ID      `db:"id" json:"id"`
	Name                string     `db:"name" json:"name"`
	Email               string     `db:"email" json:"email"`
	PasswordHash        string     `db:"password_hash" json:"-"`
	Phone               string     `db:"phone" json:"phone,omitempty"`
	Address             string     `db:"address" json:"address,omitempty"`
	Role                Role       `db:"role" json:"role"`
	Status              string     `db:"status" json:"status"`
	FailedLoginAttempts int        `db:"failed_login_attempts" json:"-"`
	LockedUntil         *time.Time `db:"locked_until" json:"-"`
	CreatedAt           time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updatedAt"`
}

// SetPassword hashes and stores the plaintext password.
func (u *User) SetPassword(plain string) error {
	if len(plain) < 8 {
		return apperror.NewValidation("password must be at least 8 characters").
			WithDetail("field", "password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternal(err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies the plaintext password against the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// Locked reports whether the account is currently locked out.
func (u *User) Locked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// Validate implements domain.Validatable.
func (u *User) Validate(ctx context.Context) error {
	if u.Name == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if u.Email == "" {
		return apperror.NewValidation("email is required").WithDetail("field", "email")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return apperror.NewValidation("email is not a valid address").
			WithDetail("field", "email").WithDetail("value", u.Email)
	}
	if u.Role == "" {
		u.Role = RoleViewer
	}
	if !u.Role.Valid() {
		return apperror.NewValidation("role must be admin, staff or viewer").
			WithDetail("field", "role").WithDetail("value", string(u.Role))
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	if u.Status != StatusActive && u.Status != StatusInactive {
		return apperror.NewValidation("status must be Active or Inactive").
			WithDetail("field", "status").WithDetail("value", u.Status)
	}
	return nil
}
