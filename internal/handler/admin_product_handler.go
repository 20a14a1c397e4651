package handler

import (
	"database/sql"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hecho/catalog_api/internal/models"
	"github.com/hecho/catalog_api/internal/repository"
	"github.com/hecho/catalog_api/internal/sse"
	"github.com/hecho/catalog_api/internal/utils"
)

// CatalogRefresher is notified when catalog-affecting tables change so cached
// facets can be dropped and rewarmed.
type CatalogRefresher interface {
	RefreshFacets()
}

// AdminProductHandler handles the admin product CRUD.
type AdminProductHandler struct {
	repo      *repository.ProductRepository
	notifier  sse.ChangeNotifier
	refresher CatalogRefresher
}

// NewAdminProductHandler creates a new AdminProductHandler.
func NewAdminProductHandler(repo *repository.ProductRepository, notifier sse.ChangeNotifier, refresher CatalogRefresher) *AdminProductHandler {
	return &AdminProductHandler{repo: repo, notifier: notifier, refresher: refresher}
}

type productRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Info        string  `json:"info"`
	Description string  `json:"description"`
	Quantity    string  `json:"quantity"`
	Barcode     string  `json:"barcode"`
	CategoryID  *string `json:"categoryId"`
	ImageURL    *string `json:"imageUrl"`
}

func (r *productRequest) apply(p *models.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.Info = r.Info
	p.LongDesc = r.Description
	p.Quantity = r.Quantity
	p.Barcode = r.Barcode
	p.CategoryID = r.CategoryID
	p.ImageURL = r.ImageURL
}

// List returns a paginated product list with the same filters the public
// catalog supports.
// GET /v1/admin/products?page=&search=&category=
func (h *AdminProductHandler) List(c *gin.Context) {
	page := 1
	if raw := c.Query("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			page = parsed
		}
	}
	filter := repository.CatalogFilter{
		Page:     page,
		Category: c.DefaultQuery("category", models.FacetAll),
		Search:   c.Query("search"),
	}
	result, err := h.repo.ListCatalog(filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list products")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve products")
		return
	}
	utils.SuccessWithPagination(c, 200, "Successfully retrieved products",
		result.Products, filter.Page, 50, result.Total)
}

// Get returns a single product.
// GET /v1/admin/products/:id
func (h *AdminProductHandler) Get(c *gin.Context) {
	product, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Product not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get product")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}
	utils.Success(c, 200, "Successfully retrieved product", product)
}

// Create creates a product.
// POST /v1/admin/products
func (h *AdminProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Code and name are required")
		return
	}

	var product models.Product
	req.apply(&product)
	if err := h.repo.Create(&product); err != nil {
		log.Error().Err(err).Msg("Failed to create product")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create product")
		return
	}

	h.notifier.NotifyChange(sse.EventInsert, "products")
	h.refresher.RefreshFacets()
	utils.Success(c, 201, "Product created", product)
}

// Update replaces a product's fields.
// PUT /v1/admin/products/:id
func (h *AdminProductHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Code and name are required")
		return
	}

	product, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Product not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get product")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve product")
		return
	}

	req.apply(product)
	if err := h.repo.Update(product); err != nil {
		log.Error().Err(err).Msg("Failed to update product")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update product")
		return
	}

	h.notifier.NotifyChange(sse.EventUpdate, "products")
	h.refresher.RefreshFacets()
	utils.Success(c, 200, "Product updated", product)
}

// Delete removes a product.
// DELETE /v1/admin/products/:id
func (h *AdminProductHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Product not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete product")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete product")
		return
	}

	h.notifier.NotifyChange(sse.EventDelete, "products")
	h.refresher.RefreshFacets()
	utils.Success(c, 200, "Product deleted", nil)
}
