package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/hecho/catalog_api/internal/models"
)

// TestimonialRepository handles data access for testimonials.
type TestimonialRepository struct {
	db *sqlx.DB
}

// NewTestimonialRepository creates a new TestimonialRepository.
func NewTestimonialRepository(db *sqlx.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

// ListActive returns active testimonials in display order.
func (r *TestimonialRepository) ListActive() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Select(&testimonials, `
        SELECT * FROM testimonials
        WHERE is_active = true
        ORDER BY display_order`)
	return testimonials, err
}

// ListAll returns every testimonial including inactive ones, for the admin panel.
func (r *TestimonialRepository) ListAll() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := r.db.Select(&testimonials, `SELECT * FROM testimonials ORDER BY display_order`)
	return testimonials, err
}

// GetByID returns a single testimonial by id.
func (r *TestimonialRepository) GetByID(id string) (*models.Testimonial, error) {
	var t models.Testimonial
	if err := r.db.Get(&t, `SELECT * FROM testimonials WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create creates a new testimonial.
func (r *TestimonialRepository) Create(t *models.Testimonial) error {
	const q = `
        INSERT INTO testimonials (name, role, content_pt, content_es, rating, display_order, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(q,
		t.Name, t.Role, t.ContentPT, t.ContentES, t.Rating, t.DisplayOrder, t.IsActive,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update updates an existing testimonial.
func (r *TestimonialRepository) Update(t *models.Testimonial) error {
	const q = `
        UPDATE testimonials
        SET name = $1, role = $2, content_pt = $3, content_es = $4, rating = $5,
            display_order = $6, is_active = $7, updated_at = NOW()
        WHERE id = $8
        RETURNING updated_at`
	return r.db.QueryRowx(q,
		t.Name, t.Role, t.ContentPT, t.ContentES, t.Rating, t.DisplayOrder, t.IsActive, t.ID,
	).Scan(&t.UpdatedAt)
}

// Delete removes a testimonial by id.
func (r *TestimonialRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
