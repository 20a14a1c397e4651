package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/hecho/catalog_api/internal/models"
)

// CategoryRepository handles data access for categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// ListActive returns active categories ordered for display.
func (r *CategoryRepository) ListActive() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Select(&categories, `
        SELECT * FROM categories
        WHERE is_active = true
        ORDER BY display_order, name`)
	return categories, err
}

// ListAll returns every category including inactive ones, for the admin panel.
func (r *CategoryRepository) ListAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Select(&categories, `SELECT * FROM categories ORDER BY display_order, name`)
	return categories, err
}

// GetByID returns a single category by id.
func (r *CategoryRepository) GetByID(id string) (*models.Category, error) {
	var c models.Category
	if err := r.db.Get(&c, `SELECT * FROM categories WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create creates a new category.
func (r *CategoryRepository) Create(c *models.Category) error {
	const q = `
        INSERT INTO categories (name, title_pt, title_es, description_pt, description_es,
            image_url, icon_name, items_pt, items_es, display_order, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(q,
		c.Name, c.TitlePT, c.TitleES, c.DescriptionPT, c.DescriptionES,
		c.ImageURL, c.IconName, c.ItemsPT, c.ItemsES, c.DisplayOrder, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Update updates an existing category.
func (r *CategoryRepository) Update(c *models.Category) error {
	const q = `
        UPDATE categories
        SET name = $1, title_pt = $2, title_es = $3, description_pt = $4, description_es = $5,
            image_url = $6, icon_name = $7, items_pt = $8, items_es = $9,
            display_order = $10, is_active = $11, updated_at = NOW()
        WHERE id = $12
        RETURNING updated_at`
	return r.db.QueryRowx(q,
		c.Name, c.TitlePT, c.TitleES, c.DescriptionPT, c.DescriptionES,
		c.ImageURL, c.IconName, c.ItemsPT, c.ItemsES, c.DisplayOrder, c.IsActive, c.ID,
	).Scan(&c.UpdatedAt)
}

// Deactivate soft-deletes a category by clearing its active flag.
func (r *CategoryRepository) Deactivate(id string) error {
	res, err := r.db.Exec(`UPDATE categories SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
