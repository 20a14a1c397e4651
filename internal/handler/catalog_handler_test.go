package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hecho/catalog_api/internal/middleware"
	"github.com/hecho/catalog_api/internal/models"
	"github.com/hecho/catalog_api/internal/repository"
	"github.com/hecho/catalog_api/internal/service"
	"github.com/hecho/catalog_api/internal/sse"
	"github.com/hecho/catalog_api/internal/utils"
)

type stubProductStore struct {
	result *repository.CatalogResult
}

func (s *stubProductStore) ListCatalog(filter repository.CatalogFilter) (*repository.CatalogResult, error) {
	return s.result, nil
}

func (s *stubProductStore) CountByCategory(search string) (map[string]int, error) {
	return map[string]int{}, nil
}

type stubPromotionStore struct{}

func (s *stubPromotionStore) ActiveProductIDs(ids []string) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (s *stubPromotionStore) ListActiveProducts(limit int) ([]models.Product, error) {
	return nil, nil
}

type stubCategoryLister struct {
	categories []models.Category
}

func (s *stubCategoryLister) ListActive() ([]models.Category, error) {
	return s.categories, nil
}

func newCatalogRouter(hub *sse.Hub) *gin.Engine {
	gin.SetMode(gin.TestMode)

	products := &stubProductStore{result: &repository.CatalogResult{
		Products: []models.Product{
			{ID: "p1", Code: "Cód. F232", Name: "DISCO DE CORTE"},
			{ID: "p2", Code: "Cód. F233", Name: "DISCO DE CORTE"},
		},
		Total: 2,
	}}
	categories := &stubCategoryLister{categories: []models.Category{
		{ID: "cat-1", Name: "ferreteria", TitlePT: "Ferramentas", TitleES: "Herramientas"},
	}}
	svc := service.NewCatalogService(products, &stubPromotionStore{}, categories, nil, 50)

	var notifier sse.ChangeNotifier = &sse.NopNotifier{}
	if hub != nil {
		notifier = sse.NewHubNotifier(hub)
	}
	h := NewCatalogHandler(svc, notifier)

	router := gin.New()
	router.Use(middleware.LocaleMiddleware())
	router.GET("/v1/catalog/products", h.GetProducts)
	router.GET("/v1/catalog/categories", h.GetCategories)
	router.POST("/v1/catalog/filter", h.Filter)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetProductsReturnsGroupedPage(t *testing.T) {
	router := newCatalogRouter(nil)

	w := doRequest(router, http.MethodGet, "/v1/catalog/products?page=1", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta.Pagination)
	assert.Equal(t, 2, resp.Meta.Pagination.TotalItems)
	assert.False(t, resp.Meta.Pagination.HasMore)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var page service.CatalogPage
	require.NoError(t, json.Unmarshal(data, &page))
	require.Len(t, page.Groups, 1)
	assert.Equal(t, "DISCO DE CORTE", page.Groups[0].Name)
	assert.Equal(t, 2, page.Groups[0].TotalVariations)
}

func TestGetProductsRejectsInvalidPage(t *testing.T) {
	router := newCatalogRouter(nil)

	for _, raw := range []string{"0", "-1", "abc"} {
		w := doRequest(router, http.MethodGet, "/v1/catalog/products?page="+raw, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "page=%s", raw)

		var resp utils.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "INVALID_PAGE", resp.Error.Code)
	}
}

func TestGetCategoriesHonorsLangParam(t *testing.T) {
	router := newCatalogRouter(nil)

	w := doRequest(router, http.MethodGet, "/v1/catalog/categories?lang=es", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var facets []models.CategoryFacet
	require.NoError(t, json.Unmarshal(data, &facets))
	require.NotEmpty(t, facets)
	assert.Equal(t, models.FacetAll, facets[0].ID)
	assert.Equal(t, "Todos los Productos", facets[0].DisplayName)
}

func TestFilterRequiresSearchTerm(t *testing.T) {
	router := newCatalogRouter(nil)

	w := doRequest(router, http.MethodPost, "/v1/catalog/filter", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFilterBroadcastsToConnectedClients(t *testing.T) {
	hub := sse.NewHub()
	client := hub.Register("test-client")
	defer hub.Unregister("test-client")

	router := newCatalogRouter(hub)

	w := doRequest(router, http.MethodPost, "/v1/catalog/filter", `{"searchTerm":"martillo"}`)
	require.Equal(t, http.StatusOK, w.Code)

	select {
	case raw := <-client.Events:
		var event sse.ChangeEvent
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, sse.EventCatalogFilter, event.Event)
		assert.Equal(t, "martillo", event.SearchTerm)
	default:
		t.Fatal("expected a broadcast event")
	}
}
