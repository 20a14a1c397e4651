package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/hecho/catalog_api/internal/models"
)

// BrandRepository handles data access for brands.
type BrandRepository struct {
	db *sqlx.DB
}

// NewBrandRepository creates a new BrandRepository.
func NewBrandRepository(db *sqlx.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// ListActive returns active brands ordered for display.
func (r *BrandRepository) ListActive() ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Select(&brands, `
        SELECT * FROM brands
        WHERE is_active = true
        ORDER BY display_order, name`)
	return brands, err
}

// ListAll returns every brand including inactive ones, for the admin panel.
func (r *BrandRepository) ListAll() ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Select(&brands, `SELECT * FROM brands ORDER BY display_order, name`)
	return brands, err
}

// GetByID returns a single brand by id.
func (r *BrandRepository) GetByID(id string) (*models.Brand, error) {
	var b models.Brand
	if err := r.db.Get(&b, `SELECT * FROM brands WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create creates a new brand.
func (r *BrandRepository) Create(b *models.Brand) error {
	const q = `
        INSERT INTO brands (name, logo_url, category, description, website_url, display_order, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(q,
		b.Name, b.LogoURL, b.Category, b.Description, b.WebsiteURL, b.DisplayOrder, b.IsActive,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// Update updates an existing brand.
func (r *BrandRepository) Update(b *models.Brand) error {
	const q = `
        UPDATE brands
        SET name = $1, logo_url = $2, category = $3, description = $4, website_url = $5,
            display_order = $6, is_active = $7, updated_at = NOW()
        WHERE id = $8
        RETURNING updated_at`
	return r.db.QueryRowx(q,
		b.Name, b.LogoURL, b.Category, b.Description, b.WebsiteURL, b.DisplayOrder, b.IsActive, b.ID,
	).Scan(&b.UpdatedAt)
}

// Deactivate soft-deletes a brand by clearing its active flag.
func (r *BrandRepository) Deactivate(id string) error {
	res, err := r.db.Exec(`UPDATE brands SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
