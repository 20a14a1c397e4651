package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/hecho/catalog_api/internal/models"
)

// ContactRepository handles data access for the contact info record.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// GetActive returns the currently active contact record.
func (r *ContactRepository) GetActive() (*models.ContactInfo, error) {
	var c models.ContactInfo
	err := r.db.Get(&c, `
        SELECT * FROM contact_info
        WHERE is_active = true
        ORDER BY updated_at DESC
        LIMIT 1`)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID returns a contact record by id.
func (r *ContactRepository) GetByID(id string) (*models.ContactInfo, error) {
	var c models.ContactInfo
	if err := r.db.Get(&c, `SELECT * FROM contact_info WHERE id = $1`, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// Upsert saves the contact record, inserting when no id is set. Activating a
// record deactivates every other one so a single row stays active.
func (r *ContactRepository) Upsert(c *models.ContactInfo) error {
	if c.ID == "" {
		const ins = `
            INSERT INTO contact_info (company_name,
                address_street_pt, address_street_es, address_district_pt, address_district_es,
                address_city, address_state, address_zipcode,
                phone_primary, phone_secondary, phone_whatsapp,
                email_contact, email_sales, email_support,
                schedule_weekdays_pt, schedule_weekdays_es,
                schedule_saturday_pt, schedule_saturday_es,
                schedule_sunday_pt, schedule_sunday_es,
                google_maps_url, google_maps_embed_url, is_active)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
                $15, $16, $17, $18, $19, $20, $21, $22, $23)
            RETURNING id, created_at, updated_at`
		if err := r.db.QueryRowx(ins,
			c.CompanyName,
			c.AddressStreetPT, c.AddressStreetES, c.AddressDistrictPT, c.AddressDistrictES,
			c.AddressCity, c.AddressState, c.AddressZipcode,
			c.PhonePrimary, c.PhoneSecondary, c.PhoneWhatsapp,
			c.EmailContact, c.EmailSales, c.EmailSupport,
			c.ScheduleWeekdaysPT, c.ScheduleWeekdaysES,
			c.ScheduleSaturdayPT, c.ScheduleSaturdayES,
			c.ScheduleSundayPT, c.ScheduleSundayES,
			c.GoogleMapsURL, c.GoogleMapsEmbedURL, c.IsActive,
		).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return err
		}
	} else {
		const upd = `
            UPDATE contact_info
            SET company_name = $1,
                address_street_pt = $2, address_street_es = $3,
                address_district_pt = $4, address_district_es = $5,
                address_city = $6, address_state = $7, address_zipcode = $8,
                phone_primary = $9, phone_secondary = $10, phone_whatsapp = $11,
                email_contact = $12, email_sales = $13, email_support = $14,
                schedule_weekdays_pt = $15, schedule_weekdays_es = $16,
                schedule_saturday_pt = $17, schedule_saturday_es = $18,
                schedule_sunday_pt = $19, schedule_sunday_es = $20,
                google_maps_url = $21, google_maps_embed_url = $22, is_active = $23,
                updated_at = NOW()
            WHERE id = $24
            RETURNING updated_at`
		if err := r.db.QueryRowx(upd,
			c.CompanyName,
			c.AddressStreetPT, c.AddressStreetES, c.AddressDistrictPT, c.AddressDistrictES,
			c.AddressCity, c.AddressState, c.AddressZipcode,
			c.PhonePrimary, c.PhoneSecondary, c.PhoneWhatsapp,
			c.EmailContact, c.EmailSales, c.EmailSupport,
			c.ScheduleWeekdaysPT, c.ScheduleWeekdaysES,
			c.ScheduleSaturdayPT, c.ScheduleSaturdayES,
			c.ScheduleSundayPT, c.ScheduleSundayES,
			c.GoogleMapsURL, c.GoogleMapsEmbedURL, c.IsActive, c.ID,
		).Scan(&c.UpdatedAt); err != nil {
			return err
		}
	}

	if c.IsActive {
		_, err := r.db.Exec(`UPDATE contact_info SET is_active = false, updated_at = NOW() WHERE id != $1 AND is_active = true`, c.ID)
		return err
	}
	return nil
}
