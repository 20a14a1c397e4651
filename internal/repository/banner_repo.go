package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/hecho/catalog_api/internal/models"
)

// BannerRepository handles data access for hero banners.
type BannerRepository struct {
	db *sqlx.DB
}

// NewBannerRepository creates a new BannerRepository.
func NewBannerRepository(db *sqlx.DB) *BannerRepository {
	return &BannerRepository{db: db}
}

// ListActive returns active banners in display order.
func (r *BannerRepository) ListActive() ([]models.HeroBanner, error) {
	var banners []models.HeroBanner
	err := r.db.Select(&banners, `
        SELECT * FROM hero_banners
        WHERE is_active = true
        ORDER BY display_order`)
	return banners, err
}

// ListAll returns every banner including inactive ones, for the admin panel.
func (r *BannerRepository) ListAll() ([]models.HeroBanner, error) {
	var banners []models.HeroBanner
	err := r.db.Select(&banners, `SELECT * FROM hero_banners ORDER BY display_order`)
	return banners, err
}

// GetByID returns a single banner by id.
func (r *BannerRepository) GetByID(id string) (*models.HeroBanner, error) {
	var b models.HeroBanner
	if err := r.db.Get(&b, `SELECT * FROM hero_banners WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &b, nil
}

// Create creates a new banner.
func (r *BannerRepository) Create(b *models.HeroBanner) error {
	const q = `
        INSERT INTO hero_banners (title_pt, title_es, subtitle_pt, subtitle_es,
            highlight_pt, highlight_es, cta_text_pt, cta_text_es, cta_action,
            image_url, mobile_image_url, display_order, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(q,
		b.TitlePT, b.TitleES, b.SubtitlePT, b.SubtitleES,
		b.HighlightPT, b.HighlightES, b.CTATextPT, b.CTATextES, b.CTAAction,
		b.ImageURL, b.MobileImageURL, b.DisplayOrder, b.IsActive,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

// Update updates an existing banner.
func (r *BannerRepository) Update(b *models.HeroBanner) error {
	const q = `
        UPDATE hero_banners
        SET title_pt = $1, title_es = $2, subtitle_pt = $3, subtitle_es = $4,
            highlight_pt = $5, highlight_es = $6, cta_text_pt = $7, cta_text_es = $8,
            cta_action = $9, image_url = $10, mobile_image_url = $11,
            display_order = $12, is_active = $13, updated_at = NOW()
        WHERE id = $14
        RETURNING updated_at`
	return r.db.QueryRowx(q,
		b.TitlePT, b.TitleES, b.SubtitlePT, b.SubtitleES,
		b.HighlightPT, b.HighlightES, b.CTATextPT, b.CTATextES, b.CTAAction,
		b.ImageURL, b.MobileImageURL, b.DisplayOrder, b.IsActive, b.ID,
	).Scan(&b.UpdatedAt)
}

// Deactivate soft-deletes a banner by clearing its active flag.
func (r *BannerRepository) Deactivate(id string) error {
	res, err := r.db.Exec(`UPDATE hero_banners SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
