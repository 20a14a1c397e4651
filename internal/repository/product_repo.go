package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hecho/catalog_api/internal/models"
	"github.com/hecho/catalog_api/internal/utils"
)

// CatalogFilter holds the public catalog query parameters.
type CatalogFilter struct {
	Page     int
	PageSize int
	Category string // "all", "uncategorized", or a category id
	Search   string
}

// CatalogResult is one page of catalog rows plus the exact filtered total.
type CatalogResult struct {
	Products []models.Product
	Total    int
}

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// searchClause appends the free-text search condition to a WHERE clause.
// The raw term matches name/info/code/barcode by case-insensitive substring;
// when stripping punctuation from the term leaves something, that stripped
// form is OR'd in against the code so "F232" still finds "Cód. F232".
func searchClause(where string, args []interface{}, argIdx int, search string) (string, []interface{}, int) {
	if search == "" {
		return where, args, argIdx
	}
	stripped := utils.StripNonAlphanumeric(search)
	cond := fmt.Sprintf(
		"(p.nome ILIKE $%d OR p.info ILIKE $%d OR p.codigo ILIKE $%d OR p.codigo_barra ILIKE $%d",
		argIdx, argIdx, argIdx, argIdx)
	args = append(args, "%"+search+"%")
	argIdx++
	if stripped != "" {
		cond += fmt.Sprintf(" OR p.codigo ILIKE $%d", argIdx)
		args = append(args, "%"+stripped+"%")
		argIdx++
	}
	cond += ")"
	return where + " AND " + cond, args, argIdx
}

// ListCatalog returns one page of products matching the filter along with the
// exact total count. Results are ordered most-recent-first; the page window is
// [(page-1)*size, page*size-1]. Category "all" applies no constraint and
// "uncategorized" selects rows without a category reference.
func (r *ProductRepository) ListCatalog(filter CatalogFilter) (*CatalogResult, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}
	offset := (filter.Page - 1) * filter.PageSize

	where := "WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	where, args, argIdx = searchClause(where, args, argIdx, filter.Search)

	switch filter.Category {
	case "", models.FacetAll:
		// no category constraint
	case models.FacetUncategorized:
		where += " AND p.category_id IS NULL"
	default:
		where += fmt.Sprintf(" AND p.category_id = $%d", argIdx)
		args = append(args, filter.Category)
		argIdx++
	}

	countQuery := `SELECT COUNT(1) FROM products p ` + where
	var total int
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, err
	}

	listQuery := fmt.Sprintf(`
        SELECT p.*, COALESCE(c.name, '') AS category_name
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        %s
        ORDER BY p.created_at DESC
        LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, filter.PageSize, offset)

	var products []models.Product
	if err := r.db.Select(&products, listQuery, args...); err != nil {
		return nil, err
	}

	return &CatalogResult{Products: products, Total: total}, nil
}

// CountByCategory returns per-category product counts consistent with the
// given search term, ignoring any category filter. Rows without a category
// are counted under the empty-string key (the uncategorized bucket).
func (r *ProductRepository) CountByCategory(search string) (map[string]int, error) {
	where := "WHERE 1=1"
	args := []interface{}{}
	argIdx := 1
	where, args, _ = searchClause(where, args, argIdx, search)

	query := `
        SELECT COALESCE(p.category_id::text, '') AS category_id, COUNT(1) AS cnt
        FROM products p ` + where + `
        GROUP BY COALESCE(p.category_id::text, '')`

	rows, err := r.db.Queryx(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var categoryID string
		var cnt int
		if err := rows.Scan(&categoryID, &cnt); err != nil {
			return nil, err
		}
		counts[categoryID] = cnt
	}
	return counts, rows.Err()
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	const q = `
        SELECT p.*, COALESCE(c.name, '') AS category_name
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.id = $1 LIMIT 1`
	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return &p, nil
}

// Create creates a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	const q = `
        INSERT INTO products (codigo, nome, info, descripcion, quantidade, codigo_barra, category_id, image_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(q,
		product.Code,
		product.Name,
		product.Info,
		product.LongDesc,
		product.Quantity,
		product.Barcode,
		product.CategoryID,
		product.ImageURL,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// Update updates an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	const q = `
        UPDATE products
        SET codigo = $1, nome = $2, info = $3, descripcion = $4, quantidade = $5,
            codigo_barra = $6, category_id = $7, image_url = $8, updated_at = NOW()
        WHERE id = $9
        RETURNING updated_at`
	return r.db.QueryRowx(q,
		product.Code,
		product.Name,
		product.Info,
		product.LongDesc,
		product.Quantity,
		product.Barcode,
		product.CategoryID,
		product.ImageURL,
		product.ID,
	).Scan(&product.UpdatedAt)
}

// Delete removes a product by id. Products are hard-deleted.
func (r *ProductRepository) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
