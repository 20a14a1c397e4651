package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hecho/catalog_api/internal/middleware"
	"github.com/hecho/catalog_api/internal/models"
	"github.com/hecho/catalog_api/internal/repository"
	"github.com/hecho/catalog_api/internal/service"
	"github.com/hecho/catalog_api/internal/sse"
	"github.com/hecho/catalog_api/internal/utils"
)

// CatalogHandler handles the public catalog endpoints.
type CatalogHandler struct {
	catalog  *service.CatalogService
	notifier sse.ChangeNotifier
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService, notifier sse.ChangeNotifier) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, notifier: notifier}
}

// GetProducts returns one grouped catalog page.
// GET /v1/catalog/products?page=&category=&search=&lang=
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.Error(c, 400, "INVALID_PAGE", "Page must be a positive integer")
			return
		}
		page = parsed
	}

	result := h.catalog.ListProducts(c.Request.Context(), repository.CatalogFilter{
		Page:     page,
		Category: c.DefaultQuery("category", models.FacetAll),
		Search:   c.Query("search"),
	})

	utils.SuccessWithPagination(c, 200, "Successfully retrieved products",
		result, result.Page, result.PageSize, result.Total)
}

// GetCategories returns the facet sidebar for the active search term.
// GET /v1/catalog/categories?search=&lang=
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	facets := h.catalog.CategoryFacets(c.Request.Context(), middleware.Translator(c), c.Query("search"))
	utils.Success(c, 200, "Successfully retrieved categories", facets)
}

// GetFeatured returns products with an active promotion.
// GET /v1/featured?limit=
func (h *CatalogHandler) GetFeatured(c *gin.Context) {
	limit := 6
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 50 {
			limit = parsed
		}
	}
	products := h.catalog.FeaturedProducts(c.Request.Context(), limit)
	utils.Success(c, 200, "Successfully retrieved featured products", products)
}

// Filter broadcasts a search term to every connected storefront so catalog
// views apply it. Used by the featured-products section's "view in catalog"
// action.
// POST /v1/catalog/filter
func (h *CatalogHandler) Filter(c *gin.Context) {
	var req struct {
		SearchTerm string `json:"searchTerm" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "searchTerm is required")
		return
	}
	h.notifier.NotifyCatalogFilter(req.SearchTerm)
	utils.Success(c, 200, "Filter broadcast", gin.H{"searchTerm": req.SearchTerm})
}
