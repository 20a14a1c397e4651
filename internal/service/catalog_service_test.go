package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hecho/catalog_api/internal/i18n"
	"github.com/hecho/catalog_api/internal/models"
	"github.com/hecho/catalog_api/internal/repository"
)

// ── In-memory store stubs ────────────────────────────────────────────────────

type stubProductStore struct {
	result *repository.CatalogResult
	counts map[string]int
	err    error
}

func (s *stubProductStore) ListCatalog(filter repository.CatalogFilter) (*repository.CatalogResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubProductStore) CountByCategory(search string) (map[string]int, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.counts, nil
}

type stubPromotionStore struct {
	active map[string]bool
	listed []models.Product
	err    error
}

func (s *stubPromotionStore) ActiveProductIDs(ids []string) (map[string]bool, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.active, nil
}

func (s *stubPromotionStore) ListActiveProducts(limit int) ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.listed, nil
}

type stubCategoryLister struct {
	categories []models.Category
	err        error
}

func (s *stubCategoryLister) ListActive() ([]models.Category, error) {
	return s.categories, s.err
}

type memFacetStore struct {
	entries map[string][]models.CategoryFacet
	miss    error
}

func newMemFacetStore() *memFacetStore {
	return &memFacetStore{entries: make(map[string][]models.CategoryFacet), miss: errors.New("miss")}
}

func (s *memFacetStore) Get(_ context.Context, locale, search string) ([]models.CategoryFacet, error) {
	if f, ok := s.entries[locale+"|"+search]; ok {
		return f, nil
	}
	return nil, s.miss
}

func (s *memFacetStore) Set(_ context.Context, locale, search string, facets []models.CategoryFacet) error {
	s.entries[locale+"|"+search] = facets
	return nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func catalogProducts() []models.Product {
	cat := "cat-1"
	return []models.Product{
		{ID: "p1", Code: "Cód. F232", Name: "DISCO DE CORTE", CategoryID: &cat, CategoryName: "Ferretería"},
		{ID: "p2", Code: "Cód. F233", Name: "DISCO DE CORTE", CategoryID: &cat, CategoryName: "Ferretería"},
		{ID: "p3", Code: "Cód. B186", Name: "COLADOR PLÁSTICO"},
	}
}

func TestListProductsGroupsAndMarksPromotions(t *testing.T) {
	products := &stubProductStore{result: &repository.CatalogResult{Products: catalogProducts(), Total: 120}}
	promotions := &stubPromotionStore{active: map[string]bool{"p2": true}}
	svc := NewCatalogService(products, promotions, &stubCategoryLister{}, nil, 50)

	page := svc.ListProducts(context.Background(), repository.CatalogFilter{Page: 1})

	assert.Equal(t, 3, page.Items)
	assert.Equal(t, 120, page.Total)
	assert.True(t, page.HasMore)
	require.Len(t, page.Groups, 2)

	disco := page.Groups[0]
	assert.Equal(t, "DISCO DE CORTE", disco.Name)
	assert.True(t, disco.Expandable)
	assert.False(t, disco.Variations[0].IsPromotion)
	assert.True(t, disco.Variations[1].IsPromotion)

	// Items without an image resolve to the placeholder.
	assert.Equal(t, PlaceholderImage, disco.Variations[0].Image)
}

func TestListProductsGroupSumEqualsItems(t *testing.T) {
	products := &stubProductStore{result: &repository.CatalogResult{Products: catalogProducts(), Total: 3}}
	svc := NewCatalogService(products, &stubPromotionStore{}, &stubCategoryLister{}, nil, 50)

	page := svc.ListProducts(context.Background(), repository.CatalogFilter{Page: 1})

	sum := 0
	for _, g := range page.Groups {
		sum += g.TotalVariations
	}
	assert.Equal(t, page.Items, sum)
	assert.False(t, page.HasMore)
}

func TestListProductsLastPageHasMoreFalse(t *testing.T) {
	products := &stubProductStore{result: &repository.CatalogResult{Products: catalogProducts(), Total: 53}}
	svc := NewCatalogService(products, &stubPromotionStore{}, &stubCategoryLister{}, nil, 50)

	page := svc.ListProducts(context.Background(), repository.CatalogFilter{Page: 2})

	// offset 50 + 3 items == 53 total
	assert.False(t, page.HasMore)
}

func TestListProductsFallsBackToEmbeddedDataset(t *testing.T) {
	products := &stubProductStore{err: errors.New("connection refused")}
	svc := NewCatalogService(products, &stubPromotionStore{err: errors.New("down")}, &stubCategoryLister{}, nil, 50)

	page := svc.ListProducts(context.Background(), repository.CatalogFilter{Page: 1, Search: "disco de corte"})

	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Groups, 1)
	assert.Equal(t, "DISCO DE CORTE", page.Groups[0].Name)
}

func TestListProductsPromotionFailureDoesNotFailPage(t *testing.T) {
	products := &stubProductStore{result: &repository.CatalogResult{Products: catalogProducts(), Total: 3}}
	promotions := &stubPromotionStore{err: errors.New("down")}
	svc := NewCatalogService(products, promotions, &stubCategoryLister{}, nil, 50)

	page := svc.ListProducts(context.Background(), repository.CatalogFilter{Page: 1})

	assert.Equal(t, 3, page.Items)
	for _, g := range page.Groups {
		for _, v := range g.Variations {
			assert.False(t, v.IsPromotion)
		}
	}
}

func TestCategoryFacetsOrderingAndSynthetics(t *testing.T) {
	products := &stubProductStore{counts: map[string]int{"cat-1": 7, "cat-2": 12, "": 3}}
	categories := &stubCategoryLister{categories: []models.Category{
		{ID: "cat-1", Name: "ferreteria", TitlePT: "Ferramentas", TitleES: "Herramientas"},
		{ID: "cat-2", Name: "hogar", TitlePT: "Casa", TitleES: "Hogar"},
		{ID: "cat-3", Name: "pesca", TitlePT: "Pesca", TitleES: "Pesca"},
	}}
	svc := NewCatalogService(products, &stubPromotionStore{}, categories, nil, 50)

	facets := svc.CategoryFacets(context.Background(), i18n.New(i18n.LocaleES), "")

	require.Len(t, facets, 5)
	assert.Equal(t, models.FacetAll, facets[0].ID)
	assert.Equal(t, 22, facets[0].Count)
	assert.Equal(t, "Todos los Productos", facets[0].DisplayName)

	// Rest sorted by descending count: hogar(12), ferreteria(7), uncategorized(3), pesca(0).
	assert.Equal(t, "cat-2", facets[1].ID)
	assert.Equal(t, "Hogar", facets[1].DisplayName)
	assert.Equal(t, "cat-1", facets[2].ID)
	assert.Equal(t, "Herramientas", facets[2].DisplayName)
	assert.Equal(t, models.FacetUncategorized, facets[3].ID)
	assert.Equal(t, "Sin Categoría", facets[3].DisplayName)
	assert.Equal(t, "cat-3", facets[4].ID)
	assert.Zero(t, facets[4].Count)
}

func TestCategoryFacetsOmitsEmptyUncategorized(t *testing.T) {
	products := &stubProductStore{counts: map[string]int{"cat-1": 5}}
	categories := &stubCategoryLister{categories: []models.Category{{ID: "cat-1", TitlePT: "Ferramentas"}}}
	svc := NewCatalogService(products, &stubPromotionStore{}, categories, nil, 50)

	facets := svc.CategoryFacets(context.Background(), i18n.New(i18n.LocalePT), "")

	for _, f := range facets {
		assert.NotEqual(t, models.FacetUncategorized, f.ID)
	}
}

func TestCategoryFacetsUsesCachePerLocale(t *testing.T) {
	products := &stubProductStore{counts: map[string]int{"cat-1": 5}}
	categories := &stubCategoryLister{categories: []models.Category{{ID: "cat-1", TitlePT: "Ferramentas", TitleES: "Herramientas"}}}
	store := newMemFacetStore()
	svc := NewCatalogService(products, &stubPromotionStore{}, categories, store, 50)

	first := svc.CategoryFacets(context.Background(), i18n.New(i18n.LocalePT), "martillo")
	assert.Len(t, store.entries, 1)

	// A different locale is a different cache entry.
	es := svc.CategoryFacets(context.Background(), i18n.New(i18n.LocaleES), "martillo")
	assert.Len(t, store.entries, 2)
	assert.NotEqual(t, first[1].DisplayName, es[1].DisplayName)

	// Cached reads survive the store going down.
	products.err = errors.New("down")
	second := svc.CategoryFacets(context.Background(), i18n.New(i18n.LocalePT), "martillo")
	assert.Equal(t, first, second)
}

func TestCategoryFacetsFallsBackToEmbeddedDataset(t *testing.T) {
	products := &stubProductStore{err: errors.New("connection refused")}
	svc := NewCatalogService(products, &stubPromotionStore{}, &stubCategoryLister{}, nil, 50)

	facets := svc.CategoryFacets(context.Background(), i18n.New(i18n.LocalePT), "")

	require.NotEmpty(t, facets)
	assert.Equal(t, models.FacetAll, facets[0].ID)
	assert.NotZero(t, facets[0].Count)
}

func TestFeaturedProductsDegradesToEmpty(t *testing.T) {
	svc := NewCatalogService(&stubProductStore{}, &stubPromotionStore{err: errors.New("down")}, &stubCategoryLister{}, nil, 50)

	assert.Empty(t, svc.FeaturedProducts(context.Background(), 6))
}

func TestFeaturedProductsResolvesImages(t *testing.T) {
	url := "https://cdn.example.com/p.jpg"
	promotions := &stubPromotionStore{listed: []models.Product{
		{ID: "p1", Name: "DISCO DE CORTE", ImageURL: &url, IsPromotion: true},
		{ID: "p2", Name: "MARTILLO"},
	}}
	svc := NewCatalogService(&stubProductStore{}, promotions, &stubCategoryLister{}, nil, 50)

	views := svc.FeaturedProducts(context.Background(), 6)

	require.Len(t, views, 2)
	assert.Equal(t, url, views[0].Image)
	assert.True(t, views[0].IsPromotion)
	assert.Equal(t, PlaceholderImage, views[1].Image)
}
