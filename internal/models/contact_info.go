package models

import "time"

// ContactInfo holds the store's contact card. Only one row is active at a
// time; the public endpoint serves that row.
type ContactInfo struct {
	ID                 string    `db:"id" json:"id"`
	CompanyName        string    `db:"company_name" json:"companyName"`
	AddressStreetPT    string    `db:"address_street_pt" json:"addressStreetPt"`
	AddressStreetES    string    `db:"address_street_es" json:"addressStreetEs"`
	AddressDistrictPT  string    `db:"address_district_pt" json:"addressDistrictPt"`
	AddressDistrictES  string    `db:"address_district_es" json:"addressDistrictEs"`
	AddressCity        string    `db:"address_city" json:"addressCity"`
	AddressState       string    `db:"address_state" json:"addressState"`
	AddressZipcode     string    `db:"address_zipcode" json:"addressZipcode"`
	PhonePrimary       string    `db:"phone_primary" json:"phonePrimary"`
	PhoneSecondary     string    `db:"phone_secondary" json:"phoneSecondary"`
	PhoneWhatsapp      string    `db:"phone_whatsapp" json:"phoneWhatsapp"`
	EmailContact       string    `db:"email_contact" json:"emailContact"`
	EmailSales         string    `db:"email_sales" json:"emailSales"`
	EmailSupport       string    `db:"email_support" json:"emailSupport"`
	ScheduleWeekdaysPT string    `db:"schedule_weekdays_pt" json:"scheduleWeekdaysPt"`
	ScheduleWeekdaysES string    `db:"schedule_weekdays_es" json:"scheduleWeekdaysEs"`
	ScheduleSaturdayPT string    `db:"schedule_saturday_pt" json:"scheduleSaturdayPt"`
	ScheduleSaturdayES string    `db:"schedule_saturday_es" json:"scheduleSaturdayEs"`
	ScheduleSundayPT   string    `db:"schedule_sunday_pt" json:"scheduleSundayPt"`
	ScheduleSundayES   string    `db:"schedule_sunday_es" json:"scheduleSundayEs"`
	GoogleMapsURL      string    `db:"google_maps_url" json:"googleMapsUrl"`
	GoogleMapsEmbedURL string    `db:"google_maps_embed_url" json:"googleMapsEmbedUrl"`
	IsActive           bool      `db:"is_active" json:"isActive"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time `db:"updated_at" json:"updatedAt"`
}
