package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/hecho/catalog_api/internal/i18n"
	"github.com/hecho/catalog_api/internal/models"
)

// BrandStore lists active brands.
type BrandStore interface {
	ListActive() ([]models.Brand, error)
}

// BannerStore lists active hero banners.
type BannerStore interface {
	ListActive() ([]models.HeroBanner, error)
}

// TestimonialStore lists active testimonials.
type TestimonialStore interface {
	ListActive() ([]models.Testimonial, error)
}

// ContactStore fetches the active contact record.
type ContactStore interface {
	GetActive() (*models.ContactInfo, error)
}

// BannerView is a hero banner collapsed to the active locale.
type BannerView struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	Highlight      string `json:"highlight"`
	CTAText        string `json:"ctaText"`
	CTAAction      string `json:"ctaAction"`
	ImageURL       string `json:"imageUrl"`
	MobileImageURL string `json:"mobileImageUrl"`
}

// TestimonialView is a testimonial collapsed to the active locale.
type TestimonialView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// CategoryView is a category collapsed to the active locale, for the
// home-page sections rather than the catalog sidebar.
type CategoryView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	IconName    string   `json:"iconName"`
	Items       []string `json:"items"`
}

// ContactView is the contact card collapsed to the active locale.
type ContactView struct {
	CompanyName        string `json:"companyName"`
	AddressStreet      string `json:"addressStreet"`
	AddressDistrict    string `json:"addressDistrict"`
	AddressCity        string `json:"addressCity"`
	AddressState       string `json:"addressState"`
	AddressZipcode     string `json:"addressZipcode"`
	PhonePrimary       string `json:"phonePrimary"`
	PhoneSecondary     string `json:"phoneSecondary,omitempty"`
	PhoneWhatsapp      string `json:"phoneWhatsapp,omitempty"`
	EmailContact       string `json:"emailContact"`
	EmailSales         string `json:"emailSales,omitempty"`
	EmailSupport       string `json:"emailSupport,omitempty"`
	ScheduleWeekdays   string `json:"scheduleWeekdays"`
	ScheduleSaturday   string `json:"scheduleSaturday"`
	ScheduleSunday     string `json:"scheduleSunday"`
	GoogleMapsURL      string `json:"googleMapsUrl,omitempty"`
	GoogleMapsEmbedURL string `json:"googleMapsEmbedUrl,omitempty"`
}

// ContentService serves the storefront's non-catalog content: brands,
// banners, testimonials, categories and the contact card. Every read
// degrades gracefully so the public site keeps rendering when the database
// is down.
type ContentService struct {
	brands       BrandStore
	banners      BannerStore
	testimonials TestimonialStore
	categories   CategoryLister
	contact      ContactStore
}

// NewContentService creates a ContentService.
func NewContentService(brands BrandStore, banners BannerStore, testimonials TestimonialStore, categories CategoryLister, contact ContactStore) *ContentService {
	return &ContentService{
		brands:       brands,
		banners:      banners,
		testimonials: testimonials,
		categories:   categories,
		contact:      contact,
	}
}

// Brands returns active brands in display order, or an empty list on failure.
// Brand copy is not localized.
func (s *ContentService) Brands(ctx context.Context) []models.Brand {
	brands, err := s.brands.ListActive()
	if err != nil {
		log.Error().Err(err).Msg("Brands query failed")
		return []models.Brand{}
	}
	return brands
}

// Banners returns active hero banners collapsed to the locale, or an empty
// list on failure (the storefront renders its static hero instead).
func (s *ContentService) Banners(ctx context.Context, tr *i18n.Translator) []BannerView {
	banners, err := s.banners.ListActive()
	if err != nil {
		log.Error().Err(err).Msg("Banners query failed")
		return []BannerView{}
	}
	views := make([]BannerView, len(banners))
	for i, b := range banners {
		views[i] = BannerView{
			ID:             b.ID,
			Title:          tr.Pick(b.TitlePT, b.TitleES),
			Subtitle:       tr.Pick(b.SubtitlePT, b.SubtitleES),
			Highlight:      tr.Pick(b.HighlightPT, b.HighlightES),
			CTAText:        tr.Pick(b.CTATextPT, b.CTATextES),
			CTAAction:      b.CTAAction,
			ImageURL:       b.ImageURL,
			MobileImageURL: b.MobileImageURL,
		}
	}
	return views
}

// Testimonials returns active testimonials collapsed to the locale. On
// failure the built-in quotes are served so the section never renders empty.
func (s *ContentService) Testimonials(ctx context.Context, tr *i18n.Translator) []TestimonialView {
	testimonials, err := s.testimonials.ListActive()
	if err != nil {
		log.Error().Err(err).Msg("Testimonials query failed, serving defaults")
		return defaultTestimonials(tr)
	}
	views := make([]TestimonialView, len(testimonials))
	for i, t := range testimonials {
		views[i] = TestimonialView{
			ID:      t.ID,
			Name:    t.Name,
			Role:    t.Role,
			Content: tr.Pick(t.ContentPT, t.ContentES),
			Rating:  t.Rating,
		}
	}
	return views
}

// Categories returns active categories collapsed to the locale, or minimal
// entries derived from the embedded dataset on failure.
func (s *ContentService) Categories(ctx context.Context, tr *i18n.Translator) []CategoryView {
	categories, err := s.categories.ListActive()
	if err != nil {
		log.Error().Err(err).Msg("Categories query failed, serving embedded dataset")
		categories = fallbackCategories()
	}
	views := make([]CategoryView, len(categories))
	for i, c := range categories {
		views[i] = CategoryView{
			ID:          c.ID,
			Name:        c.Name,
			Title:       tr.Pick(c.TitlePT, c.TitleES),
			Description: tr.Pick(c.DescriptionPT, c.DescriptionES),
			ImageURL:    c.ImageURL,
			IconName:    c.IconName,
			Items:       tr.PickList(c.ItemsPT, c.ItemsES),
		}
	}
	return views
}

// Contact returns the active contact card collapsed to the locale. On failure
// the built-in card is served.
func (s *ContentService) Contact(ctx context.Context, tr *i18n.Translator) *ContactView {
	c, err := s.contact.GetActive()
	if err != nil {
		log.Error().Err(err).Msg("Contact query failed, serving defaults")
		return defaultContact(tr)
	}
	return &ContactView{
		CompanyName:        c.CompanyName,
		AddressStreet:      tr.Pick(c.AddressStreetPT, c.AddressStreetES),
		AddressDistrict:    tr.Pick(c.AddressDistrictPT, c.AddressDistrictES),
		AddressCity:        c.AddressCity,
		AddressState:       c.AddressState,
		AddressZipcode:     c.AddressZipcode,
		PhonePrimary:       c.PhonePrimary,
		PhoneSecondary:     c.PhoneSecondary,
		PhoneWhatsapp:      c.PhoneWhatsapp,
		EmailContact:       c.EmailContact,
		EmailSales:         c.EmailSales,
		EmailSupport:       c.EmailSupport,
		ScheduleWeekdays:   tr.Pick(c.ScheduleWeekdaysPT, c.ScheduleWeekdaysES),
		ScheduleSaturday:   tr.Pick(c.ScheduleSaturdayPT, c.ScheduleSaturdayES),
		ScheduleSunday:     tr.Pick(c.ScheduleSundayPT, c.ScheduleSundayES),
		GoogleMapsURL:      c.GoogleMapsURL,
		GoogleMapsEmbedURL: c.GoogleMapsEmbedURL,
	}
}

// defaultTestimonials are the three quotes shipped with the site, used when
// the testimonials table cannot be read.
func defaultTestimonials(tr *i18n.Translator) []TestimonialView {
	quotes := []struct {
		name, role, pt, es string
	}{
		{
			name: "Carlos Mendoza",
			role: "Cliente mayorista",
			pt:   "Trabalho com a HECHO há anos. Variedade enorme e entrega sempre em dia.",
			es:   "Trabajo con HECHO hace años. Variedad enorme y entrega siempre puntual.",
		},
		{
			name: "María González",
			role: "Comerciante",
			pt:   "Atendimento excelente e preços competitivos para revenda.",
			es:   "Atención excelente y precios competitivos para reventa.",
		},
		{
			name: "João Batista",
			role: "Construtor",
			pt:   "Encontro tudo o que preciso para a obra em um só lugar.",
			es:   "Encuentro todo lo que necesito para la obra en un solo lugar.",
		},
	}
	views := make([]TestimonialView, len(quotes))
	for i, q := range quotes {
		views[i] = TestimonialView{
			ID:      "",
			Name:    q.name,
			Role:    q.role,
			Content: tr.Pick(q.pt, q.es),
			Rating:  5,
		}
	}
	return views
}

// defaultContact is the contact card shipped with the site, used when the
// contact_info table cannot be read.
func defaultContact(tr *i18n.Translator) *ContactView {
	return &ContactView{
		CompanyName:      "HECHO Importados",
		AddressStreet:    tr.Pick("Avenida Principal, 1234", "Avenida Principal, 1234"),
		AddressDistrict:  tr.Pick("Centro", "Centro"),
		AddressCity:      "Salto del Guairá",
		AddressState:     "Canindeyú",
		PhonePrimary:     "+595 46 242 000",
		EmailContact:     "contacto@hechoimportados.com",
		ScheduleWeekdays: tr.Pick("Segunda a sexta: 07:30 às 17:30", "Lunes a viernes: 07:30 a 17:30"),
		ScheduleSaturday: tr.Pick("Sábado: 07:30 às 12:00", "Sábado: 07:30 a 12:00"),
		ScheduleSunday:   tr.Pick("Domingo: fechado", "Domingo: cerrado"),
	}
}
