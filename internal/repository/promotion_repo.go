package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hecho/catalog_api/internal/models"
)

// PromotionRepository handles data access for promotions.
type PromotionRepository struct {
	db *sqlx.DB
}

// NewPromotionRepository creates a new PromotionRepository.
func NewPromotionRepository(db *sqlx.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

// ActiveProductIDs returns which of the given product ids currently have an
// active promotion. The lookup is scoped to the supplied ids (one result page)
// to bound cost.
func (r *PromotionRepository) ActiveProductIDs(productIDs []string) (map[string]bool, error) {
	if len(productIDs) == 0 {
		return map[string]bool{}, nil
	}
	const q = `
        SELECT DISTINCT product_id FROM promotions
        WHERE is_active = true
          AND starts_at <= NOW()
          AND (ends_at IS NULL OR ends_at > NOW())
          AND product_id = ANY($1)`
	var ids []string
	if err := r.db.Select(&ids, q, pq.Array(productIDs)); err != nil {
		return nil, err
	}
	active := make(map[string]bool, len(ids))
	for _, id := range ids {
		active[id] = true
	}
	return active, nil
}

// ListActiveProducts returns products with a currently active promotion,
// most recent promotion first, up to limit.
func (r *PromotionRepository) ListActiveProducts(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 6
	}
	const q = `
        SELECT p.*, COALESCE(c.name, '') AS category_name
        FROM promotions pr
        JOIN products p ON p.id = pr.product_id
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE pr.is_active = true
          AND pr.starts_at <= NOW()
          AND (pr.ends_at IS NULL OR pr.ends_at > NOW())
        ORDER BY pr.starts_at DESC
        LIMIT $1`
	var products []models.Product
	if err := r.db.Select(&products, q, limit); err != nil {
		return nil, err
	}
	for i := range products {
		products[i].IsPromotion = true
	}
	return products, nil
}

// List returns all promotions, newest first.
func (r *PromotionRepository) List() ([]models.Promotion, error) {
	var promos []models.Promotion
	err := r.db.Select(&promos, `SELECT * FROM promotions ORDER BY created_at DESC`)
	return promos, err
}

// GetByID returns a single promotion by id.
func (r *PromotionRepository) GetByID(id string) (*models.Promotion, error) {
	var p models.Promotion
	if err := r.db.Get(&p, `SELECT * FROM promotions WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create creates a new promotion.
func (r *PromotionRepository) Create(p *models.Promotion) error {
	const q = `
        INSERT INTO promotions (product_id, label_pt, label_es, starts_at, ends_at, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(q, p.ProductID, p.LabelPT, p.LabelES, p.StartsAt, p.EndsAt, p.IsActive).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update updates an existing promotion.
func (r *PromotionRepository) Update(p *models.Promotion) error {
	const q = `
        UPDATE promotions
        SET product_id = $1, label_pt = $2, label_es = $3, starts_at = $4, ends_at = $5,
            is_active = $6, updated_at = NOW()
        WHERE id = $7
        RETURNING updated_at`
	return r.db.QueryRowx(q, p.ProductID, p.LabelPT, p.LabelES, p.StartsAt, p.EndsAt, p.IsActive, p.ID).
		Scan(&p.UpdatedAt)
}

// Delete removes a promotion by id.
func (r *PromotionRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
