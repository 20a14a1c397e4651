package models

import "time"

// HeroBanner is a rotating home-page banner with bilingual copy.
type HeroBanner struct {
	ID             string    `db:"id" json:"id"`
	TitlePT        string    `db:"title_pt" json:"titlePt"`
	TitleES        string    `db:"title_es" json:"titleEs"`
	SubtitlePT     string    `db:"subtitle_pt" json:"subtitlePt"`
	SubtitleES     string    `db:"subtitle_es" json:"subtitleEs"`
	HighlightPT    string    `db:"highlight_pt" json:"highlightPt"`
	HighlightES    string    `db:"highlight_es" json:"highlightEs"`
	CTATextPT      string    `db:"cta_text_pt" json:"ctaTextPt"`
	CTATextES      string    `db:"cta_text_es" json:"ctaTextEs"`
	CTAAction      string    `db:"cta_action" json:"ctaAction"`
	ImageURL       string    `db:"image_url" json:"imageUrl"`
	MobileImageURL string    `db:"mobile_image_url" json:"mobileImageUrl"`
	IsActive       bool      `db:"is_active" json:"isActive"`
	DisplayOrder   int       `db:"display_order" json:"displayOrder"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}
