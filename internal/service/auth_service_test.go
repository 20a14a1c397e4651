package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hecho/catalog_api/internal/models"
	"github.com/hecho/catalog_api/internal/utils"
)

type stubAdminUserStore struct {
	users map[string]*models.AdminUser
}

func (s *stubAdminUserStore) GetByEmail(email string) (*models.AdminUser, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

func newAuthFixture(t *testing.T, password string, active bool) *AuthService {
	t.Helper()
	utils.SetJWTSecret("test-secret")
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return NewAuthService(&stubAdminUserStore{users: map[string]*models.AdminUser{
		"admin@hecho.com": {ID: "u1", Email: "admin@hecho.com", Name: "Admin", PasswordHash: hash, IsActive: active},
	}})
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	svc := newAuthFixture(t, "correct-horse", true)

	token, user, err := svc.Login("admin@hecho.com", "correct-horse")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u1", user.ID)

	claims, err := utils.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin@hecho.com", claims.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newAuthFixture(t, "correct-horse", true)

	_, _, err := svc.Login("admin@hecho.com", "wrong")
	assert.Equal(t, utils.ErrInvalidCredentials, err)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc := newAuthFixture(t, "correct-horse", true)

	_, _, err := svc.Login("nobody@hecho.com", "correct-horse")
	assert.Equal(t, utils.ErrInvalidCredentials, err)
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	svc := newAuthFixture(t, "correct-horse", false)

	_, _, err := svc.Login("admin@hecho.com", "correct-horse")
	assert.Equal(t, utils.ErrInvalidCredentials, err)
}
