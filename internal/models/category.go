package models

import (
	"time"

	"github.com/lib/pq"
)

// Category is an admin-managed product category with bilingual copy.
type Category struct {
	ID            string         `db:"id" json:"id"`
	Name          string         `db:"name" json:"name"`
	TitlePT       string         `db:"title_pt" json:"titlePt"`
	TitleES       string         `db:"title_es" json:"titleEs"`
	DescriptionPT string         `db:"description_pt" json:"descriptionPt"`
	DescriptionES string         `db:"description_es" json:"descriptionEs"`
	ImageURL      string         `db:"image_url" json:"imageUrl"`
	IconName      string         `db:"icon_name" json:"iconName"`
	ItemsPT       pq.StringArray `db:"items_pt" json:"itemsPt"`
	ItemsES       pq.StringArray `db:"items_es" json:"itemsEs"`
	DisplayOrder  int            `db:"display_order" json:"displayOrder"`
	IsActive      bool           `db:"is_active" json:"isActive"`
	CreatedAt     time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updatedAt"`
}

// IconNames is the closed set of icon identifiers the storefront can render.
// Unknown names are rejected at data-entry time instead of silently falling
// back to a default icon.
var IconNames = map[string]bool{
	"package":  true,
	"hammer":   true,
	"zap":      true,
	"droplet":  true,
	"bag":      true,
	"wrench":   true,
	"brush":    true,
	"shovel":   true,
	"pet":      true,
	"phone":    true,
	"cart":     true,
	"fish":     true,
	"grid":     true,
	"layers":   true,
}
