package service

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/hecho/catalog_api/internal/models"
	"github.com/hecho/catalog_api/internal/utils"
)

// AdminUserStore fetches admin accounts for authentication.
type AdminUserStore interface {
	GetByEmail(email string) (*models.AdminUser, error)
}

// AuthService authenticates admin users and issues session tokens.
type AuthService struct {
	users AdminUserStore
}

// NewAuthService creates an AuthService.
func NewAuthService(users AdminUserStore) *AuthService {
	return &AuthService{users: users}
}

// Login verifies the credentials and returns a signed session token plus the
// authenticated user. Unknown emails, wrong passwords and deactivated
// accounts all return ErrInvalidCredentials so the response does not reveal
// which part failed.
func (s *AuthService) Login(email, password string) (string, *models.AdminUser, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		log.Warn().Str("email", email).Msg("Login attempt for unknown email")
		return "", nil, utils.ErrInvalidCredentials
	}
	if !user.IsActive {
		log.Warn().Str("email", email).Msg("Login attempt for deactivated account")
		return "", nil, utils.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
