package models

import "time"

// Promotion marks a product as being on promotion during a time window.
// A product counts as promoted while at least one active promotion row
// references it and the current time falls inside the window.
type Promotion struct {
	ID        string     `db:"id" json:"id"`
	ProductID string     `db:"product_id" json:"productId"`
	LabelPT   string     `db:"label_pt" json:"labelPt"`
	LabelES   string     `db:"label_es" json:"labelEs"`
	StartsAt  time.Time  `db:"starts_at" json:"startsAt"`
	EndsAt    *time.Time `db:"ends_at" json:"endsAt,omitempty"`
	IsActive  bool       `db:"is_active" json:"isActive"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}
