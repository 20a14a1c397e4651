package models

import "time"

// Brand is a supplier brand shown on the storefront. Brands are soft-deleted
// via is_active.
type Brand struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	LogoURL      string    `db:"logo_url" json:"logoUrl"`
	Category     string    `db:"category" json:"category"`
	Description  string    `db:"description" json:"description"`
	WebsiteURL   string    `db:"website_url" json:"websiteUrl"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
