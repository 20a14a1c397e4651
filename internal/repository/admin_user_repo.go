package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/hecho/catalog_api/internal/models"
)

// AdminUserRepository handles data access for admin users.
type AdminUserRepository struct {
	db *sqlx.DB
}

// NewAdminUserRepository creates a new AdminUserRepository.
func NewAdminUserRepository(db *sqlx.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// GetByEmail returns an admin user by email.
func (r *AdminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Get(&user, `
        SELECT id, email, password_hash, name, is_active, created_at, updated_at
        FROM admin_users
        WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new admin user.
func (r *AdminUserRepository) Create(user *models.AdminUser) error {
	const q = `
        INSERT INTO admin_users (email, password_hash, name, is_active)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(q, user.Email, user.PasswordHash, user.Name, user.IsActive).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}
