package auth

import (
	"context"
	"time"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain"
	"stockroom/pkg/logger"
)

// Repository persists users.
type Repository interface {
	domain.CatalogRepository[*User]
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateLoginState(ctx context.Context, userID id.ID, attempts int, lockedUntil *time.Time) error
}

// Session is the result of a successful login.
type Session struct {
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service provides authentication and user management.
type Service struct {
	*domain.CatalogService[*User]
	repo        Repository
	tx          domain.TxRunner
	jwt         *JWTService
	maxAttempts int
	lockFor     time.Duration
}

type ServiceConfig struct {
	Repo             Repository
	TxRunner         domain.TxRunner
	JWT              *JWTService
	MaxLoginAttempts int
	LockDuration     time.Duration
}

func NewService(cfg ServiceConfig) *Service {
	if cfg.MaxLoginAttempts <= 0 {
		cfg.MaxLoginAttempts = 5
	}
	if cfg.LockDuration <= 0 {
		cfg.LockDuration = 15 * time.Minute
	}
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*User]{
			Repo:       cfg.Repo,
			TxRunner:   cfg.TxRunner,
			EntityName: "user",
		}),
		repo:        cfg.Repo,
		tx:          cfg.TxRunner,
		jwt:         cfg.JWT,
		maxAttempts: cfg.MaxLoginAttempts,
		lockFor:     cfg.LockDuration,
	}
}

// invalidCredentials is deliberately generic: the response must not
// reveal whether the email exists.
func invalidCredentials() error {
	return apperror.NewUnauthorized("invalid email or password")
}

// Login verifies credentials and issues an access token. Repeated
// failures lock the account for a fixed window.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, invalidCredentials()
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, invalidCredentials()
		}
		return nil, apperror.NewInternal(err)
	}

	now := time.Now().UTC()
	if user.Locked(now) {
		return nil, apperror.NewUnauthorized("account temporarily locked").
			WithDetail("lockedUntil", user.LockedUntil.Format(time.RFC3339))
	}
	if user.Status != StatusActive {
		return nil, invalidCredentials()
	}

	if !user.CheckPassword(password) {
		attempts := user.FailedLoginAttempts + 1
		var lockedUntil *time.Time
		if attempts >= s.maxAttempts {
			until := now.Add(s.lockFor)
			lockedUntil = &until
			attempts = 0
			logger.Warn(ctx, "account locked after repeated login failures", "email", email)
		}
		if err := s.repo.UpdateLoginState(ctx, user.ID, attempts, lockedUntil); err != nil {
			logger.Error(ctx, "failed to record login attempt", "error", err)
		}
		return nil, invalidCredentials()
	}

	if user.FailedLoginAttempts != 0 || user.LockedUntil != nil {
		if err := s.repo.UpdateLoginState(ctx, user.ID, 0, nil); err != nil {
			logger.Error(ctx, "failed to reset login state", "error", err)
		}
	}

	token, expiresAt, err := s.jwt.Generate(user)
	if err != nil {
		return nil, err
	}

	return &Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// CreateUser hashes the plaintext password and stores the user.
func (s *Service) CreateUser(ctx context.Context, user *User, password string) error {
	if id.IsNil(user.ID) {
		user.ID = id.New()
	}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	return s.Create(ctx, user)
}

// ChangePassword replaces the user's password.
func (s *Service) ChangePassword(ctx context.Context, userID id.ID, password string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	return s.Update(ctx, user)
}
