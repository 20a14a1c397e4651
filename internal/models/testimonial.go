package models

import "time"

// Testimonial is a customer quote with bilingual content.
type Testimonial struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Role         string    `db:"role" json:"role"`
	ContentPT    string    `db:"content_pt" json:"contentPt"`
	ContentES    string    `db:"content_es" json:"contentEs"`
	Rating       int       `db:"rating" json:"rating"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
