package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/core/id"
)

func testUser() *User {
	return &User{
		ID:    id.New(),
		Name:  "Jo Smith",
		Email: "jo@example.com",
		Role:  RoleStaff,
	}
}

func TestGenerateAndParse(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	u := testUser()

	token, expiresAt, err := svc.Generate(u)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, string(RoleStaff), claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret-a", time.Hour).Generate(testUser())
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)
	token, _, err := svc.Generate(testUser())
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	_, err := svc.Parse("not.a.token")
	assert.Error(t, err)
}

func TestRoleHierarchy(t *testing.T) {
	assert.True(t, RoleAdmin.Allows(RoleViewer))
	assert.True(t, RoleAdmin.Allows(RoleAdmin))
	assert.True(t, RoleStaff.Allows(RoleViewer))
	assert.False(t, RoleStaff.Allows(RoleAdmin))
	assert.False(t, RoleViewer.Allows(RoleStaff))
}

func TestPasswordRoundtrip(t *testing.T) {
	u := &User{}

	require.NoError(t, u.SetPassword("correct horse"))
	assert.NotEqual(t, "correct horse", u.PasswordHash)
	assert.True(t, u.CheckPassword("correct horse"))
	assert.False(t, u.CheckPassword("wrong horse"))

	assert.Error(t, u.SetPassword("short"))
}
