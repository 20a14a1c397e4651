package models

import "time"

// Product represents one catalog item as stored. CategoryName is denormalized
// from the categories table at query time; IsPromotion is derived from the
// active promotions referencing the product.
type Product struct {
	ID         string    `db:"id" json:"id"`
	Code       string    `db:"codigo" json:"code"`
	Name       string    `db:"nome" json:"name"`
	Info       string    `db:"info" json:"info"`
	LongDesc   string    `db:"descripcion" json:"description,omitempty"`
	Quantity   string    `db:"quantidade" json:"quantity"`
	Barcode    string    `db:"codigo_barra" json:"barcode"`
	CategoryID *string   `db:"category_id" json:"categoryId,omitempty"`
	ImageURL   *string   `db:"image_url" json:"-"`
	CreatedAt  time.Time `db:"created_at" json:"-"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`

	// Populated via join / second query, not stored on the row.
	CategoryName string `db:"category_name" json:"categoryName"`
	IsPromotion  bool   `db:"-" json:"isPromotion"`
}

// ProductGroup aggregates products sharing a display name into one card with
// expandable variations. It is derived per result page, never persisted.
type ProductGroup struct {
	Name            string    `json:"name"`
	Variations      []Product `json:"variations"`
	TotalVariations int       `json:"totalVariations"`
}

// Expandable reports whether the group should render an expansion affordance.
func (g *ProductGroup) Expandable() bool {
	return g.TotalVariations > 1
}

// CategoryFacet is a sidebar entry: a category plus how many products match
// the active search term within it. The synthetic ids "all" and
// "uncategorized" aggregate the total and the NULL-category bucket.
type CategoryFacet struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Synthetic facet ids.
const (
	FacetAll           = "all"
	FacetUncategorized = "uncategorized"
)
