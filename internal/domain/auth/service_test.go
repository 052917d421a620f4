package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain"
)

type fakeUserRepo struct {
	byEmail map[string]*User
}

func newFakeUserRepo(users ...*User) *fakeUserRepo {
	r := &fakeUserRepo{byEmail: make(map[string]*User)}
	for _, u := range users {
		r.byEmail[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u *User) error {
	if _, exists := r.byEmail[u.Email]; exists {
		return apperror.NewDuplicate("user", "email", u.Email)
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID id.ID) (*User, error) {
	for _, u := range r.byEmail {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", userID.String())
}

func (r *fakeUserRepo) Update(ctx context.Context, u *User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, userID id.ID) error { return nil }

func (r *fakeUserRepo) List(ctx context.Context, q domain.ListQuery) (domain.ListResult[*User], error) {
	return domain.ListResult[*User]{Items: []*User{}, Page: q.Page, Limit: q.Limit}, nil
}

func (r *fakeUserRepo) Exists(ctx context.Context, userID id.ID) (bool, error) { return false, nil }

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, apperror.NewNotFound("user", email)
	}
	return u, nil
}

func (r *fakeUserRepo) UpdateLoginState(ctx context.Context, userID id.ID, attempts int, lockedUntil *time.Time) error {
	for _, u := range r.byEmail {
		if u.ID == userID {
			u.FailedLoginAttempts = attempts
			u.LockedUntil = lockedUntil
			return nil
		}
	}
	return apperror.NewNotFound("user", userID.String())
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func activeUser(t *testing.T, email, password string) *User {
	t.Helper()
	u := &User{
		ID:     id.New(),
		Name:   "Test User",
		Email:  email,
		Role:   RoleStaff,
		Status: StatusActive,
	}
	require.NoError(t, u.SetPassword(password))
	return u
}

func newService(t *testing.T, users ...*User) (*Service, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo(users...)
	svc := NewService(ServiceConfig{
		Repo:             repo,
		TxRunner:         passthroughTx{},
		JWT:              NewJWTService("test-secret", time.Hour),
		MaxLoginAttempts: 3,
		LockDuration:     10 * time.Minute,
	})
	return svc, repo
}

func TestLoginSuccess(t *testing.T) {
	u := activeUser(t, "jo@example.com", "password123")
	svc, _ := newService(t, u)

	session, err := svc.Login(context.Background(), "jo@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, u.ID, session.User.ID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	u := activeUser(t, "jo@example.com", "password123")
	inactive := activeUser(t, "old@example.com", "password123")
	inactive.Status = StatusInactive
	svc, _ := newService(t, u, inactive)

	_, badPassword := svc.Login(context.Background(), "jo@example.com", "wrong")
	_, noSuchUser := svc.Login(context.Background(), "nobody@example.com", "wrong")
	_, inactiveErr := svc.Login(context.Background(), "old@example.com", "password123")

	require.Error(t, badPassword)
	assert.Equal(t, badPassword.Error(), noSuchUser.Error())
	assert.Equal(t, badPassword.Error(), inactiveErr.Error())
}

func TestLoginLockout(t *testing.T) {
	u := activeUser(t, "jo@example.com", "password123")
	svc, _ := newService(t, u)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, "jo@example.com", "wrong")
		require.Error(t, err)
	}

	require.NotNil(t, u.LockedUntil, "third failure locks the account")

	// Even the right password is refused while locked.
	_, err := svc.Login(ctx, "jo@example.com", "password123")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
	assert.Contains(t, appErr.Details, "lockedUntil")
}

func TestLoginResetsFailureStateOnSuccess(t *testing.T) {
	u := activeUser(t, "jo@example.com", "password123")
	svc, _ := newService(t, u)
	ctx := context.Background()

	_, err := svc.Login(ctx, "jo@example.com", "wrong")
	require.Error(t, err)
	require.Equal(t, 1, u.FailedLoginAttempts)

	_, err = svc.Login(ctx, "jo@example.com", "password123")
	require.NoError(t, err)
	assert.Zero(t, u.FailedLoginAttempts)
	assert.Nil(t, u.LockedUntil)
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, repo := newService(t)

	u := &User{Name: "New User", Email: "new@example.com", Role: RoleViewer}
	require.NoError(t, svc.CreateUser(context.Background(), u, "password123"))

	stored := repo.byEmail["new@example.com"]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.True(t, stored.CheckPassword("password123"))
}

func TestChangePassword(t *testing.T) {
	u := activeUser(t, "jo@example.com", "password123")
	svc, _ := newService(t, u)

	require.NoError(t, svc.ChangePassword(context.Background(), u.ID, "newpassword9"))
	assert.True(t, u.CheckPassword("newpassword9"))
	assert.False(t, u.CheckPassword("password123"))
}
