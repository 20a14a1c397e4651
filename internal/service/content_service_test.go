package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hecho/catalog_api/internal/i18n"
	"github.com/hecho/catalog_api/internal/models"
)

type stubBrandStore struct {
	brands []models.Brand
	err    error
}

func (s *stubBrandStore) ListActive() ([]models.Brand, error) { return s.brands, s.err }

type stubBannerStore struct {
	banners []models.HeroBanner
	err     error
}

func (s *stubBannerStore) ListActive() ([]models.HeroBanner, error) { return s.banners, s.err }

type stubTestimonialStore struct {
	testimonials []models.Testimonial
	err          error
}

func (s *stubTestimonialStore) ListActive() ([]models.Testimonial, error) {
	return s.testimonials, s.err
}

type stubContactStore struct {
	contact *models.ContactInfo
	err     error
}

func (s *stubContactStore) GetActive() (*models.ContactInfo, error) { return s.contact, s.err }

func newContentService(brands *stubBrandStore, banners *stubBannerStore, testimonials *stubTestimonialStore, contact *stubContactStore) *ContentService {
	if brands == nil {
		brands = &stubBrandStore{}
	}
	if banners == nil {
		banners = &stubBannerStore{}
	}
	if testimonials == nil {
		testimonials = &stubTestimonialStore{}
	}
	if contact == nil {
		contact = &stubContactStore{contact: &models.ContactInfo{CompanyName: "x"}}
	}
	return NewContentService(brands, banners, testimonials, &stubCategoryLister{}, contact)
}

func TestTestimonialsCollapseToLocale(t *testing.T) {
	store := &stubTestimonialStore{testimonials: []models.Testimonial{
		{ID: "t1", Name: "Carlos", ContentPT: "Ótimo", ContentES: "Excelente", Rating: 5},
	}}
	svc := newContentService(nil, nil, store, nil)

	pt := svc.Testimonials(context.Background(), i18n.New(i18n.LocalePT))
	es := svc.Testimonials(context.Background(), i18n.New(i18n.LocaleES))

	require.Len(t, pt, 1)
	assert.Equal(t, "Ótimo", pt[0].Content)
	assert.Equal(t, "Excelente", es[0].Content)
}

func TestTestimonialsFallBackOnError(t *testing.T) {
	svc := newContentService(nil, nil, &stubTestimonialStore{err: errors.New("down")}, nil)

	views := svc.Testimonials(context.Background(), i18n.New(i18n.LocaleES))

	require.Len(t, views, 3)
	for _, v := range views {
		assert.NotEmpty(t, v.Name)
		assert.NotEmpty(t, v.Content)
		assert.Equal(t, 5, v.Rating)
	}
}

func TestTestimonialsFallbackIsBilingual(t *testing.T) {
	svc := newContentService(nil, nil, &stubTestimonialStore{err: errors.New("down")}, nil)

	pt := svc.Testimonials(context.Background(), i18n.New(i18n.LocalePT))
	es := svc.Testimonials(context.Background(), i18n.New(i18n.LocaleES))

	assert.NotEqual(t, pt[0].Content, es[0].Content)
	assert.Equal(t, pt[0].Name, es[0].Name)
}

func TestBannersCollapseAndEmptyOnError(t *testing.T) {
	store := &stubBannerStore{banners: []models.HeroBanner{{
		ID: "b1", TitlePT: "Bem-vindo", TitleES: "Bienvenido", CTATextPT: "Ver catálogo", CTATextES: "Ver catálogo",
	}}}
	svc := newContentService(nil, store, nil, nil)

	views := svc.Banners(context.Background(), i18n.New(i18n.LocaleES))
	require.Len(t, views, 1)
	assert.Equal(t, "Bienvenido", views[0].Title)

	store.err = errors.New("down")
	assert.Empty(t, svc.Banners(context.Background(), i18n.New(i18n.LocaleES)))
}

func TestBannersPickFallsBackAcrossLanguages(t *testing.T) {
	store := &stubBannerStore{banners: []models.HeroBanner{{ID: "b1", TitlePT: "Só em português"}}}
	svc := newContentService(nil, store, nil, nil)

	views := svc.Banners(context.Background(), i18n.New(i18n.LocaleES))

	// Missing Spanish copy falls back to Portuguese instead of rendering blank.
	assert.Equal(t, "Só em português", views[0].Title)
}

func TestBrandsEmptyOnError(t *testing.T) {
	svc := newContentService(&stubBrandStore{err: errors.New("down")}, nil, nil, nil)
	assert.Empty(t, svc.Brands(context.Background()))
}

func TestContactCollapsesToLocale(t *testing.T) {
	store := &stubContactStore{contact: &models.ContactInfo{
		CompanyName:        "HECHO Importados",
		ScheduleWeekdaysPT: "Segunda a sexta",
		ScheduleWeekdaysES: "Lunes a viernes",
	}}
	svc := newContentService(nil, nil, nil, store)

	pt := svc.Contact(context.Background(), i18n.New(i18n.LocalePT))
	es := svc.Contact(context.Background(), i18n.New(i18n.LocaleES))

	assert.Equal(t, "Segunda a sexta", pt.ScheduleWeekdays)
	assert.Equal(t, "Lunes a viernes", es.ScheduleWeekdays)
}

func TestContactFallsBackOnError(t *testing.T) {
	svc := newContentService(nil, nil, nil, &stubContactStore{err: errors.New("down")})

	contact := svc.Contact(context.Background(), i18n.New(i18n.LocaleES))

	require.NotNil(t, contact)
	assert.Equal(t, "HECHO Importados", contact.CompanyName)
	assert.NotEmpty(t, contact.ScheduleWeekdays)
}
