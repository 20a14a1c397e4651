package handler

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hecho/catalog_api/internal/models"
	"github.com/hecho/catalog_api/internal/repository"
	"github.com/hecho/catalog_api/internal/sse"
	"github.com/hecho/catalog_api/internal/utils"
)

// AdminBrandHandler handles the admin brand CRUD.
type AdminBrandHandler struct {
	repo     *repository.BrandRepository
	notifier sse.ChangeNotifier
}

// NewAdminBrandHandler creates a new AdminBrandHandler.
func NewAdminBrandHandler(repo *repository.BrandRepository, notifier sse.ChangeNotifier) *AdminBrandHandler {
	return &AdminBrandHandler{repo: repo, notifier: notifier}
}

type brandRequest struct {
	Name         string `json:"name" binding:"required"`
	LogoURL      string `json:"logoUrl"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	WebsiteURL   string `json:"websiteUrl"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

func (r *brandRequest) apply(b *models.Brand) {
	b.Name = r.Name
	b.LogoURL = r.LogoURL
	b.Category = r.Category
	b.Description = r.Description
	b.WebsiteURL = r.WebsiteURL
	b.DisplayOrder = r.DisplayOrder
	if r.IsActive != nil {
		b.IsActive = *r.IsActive
	}
}

// List returns every brand including inactive ones.
// GET /v1/admin/brands
func (h *AdminBrandHandler) List(c *gin.Context) {
	brands, err := h.repo.ListAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list brands")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve brands")
		return
	}
	utils.Success(c, 200, "Successfully retrieved brands", brands)
}

// Get returns a single brand.
// GET /v1/admin/brands/:id
func (h *AdminBrandHandler) Get(c *gin.Context) {
	brand, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Brand not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get brand")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve brand")
		return
	}
	utils.Success(c, 200, "Successfully retrieved brand", brand)
}

// Create creates a brand.
// POST /v1/admin/brands
func (h *AdminBrandHandler) Create(c *gin.Context) {
	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Name is required")
		return
	}

	brand := models.Brand{IsActive: true}
	req.apply(&brand)
	if err := h.repo.Create(&brand); err != nil {
		log.Error().Err(err).Msg("Failed to create brand")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create brand")
		return
	}

	h.notifier.NotifyChange(sse.EventInsert, "brands")
	utils.Success(c, 201, "Brand created", brand)
}

// Update replaces a brand's fields.
// PUT /v1/admin/brands/:id
func (h *AdminBrandHandler) Update(c *gin.Context) {
	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Name is required")
		return
	}

	brand, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Brand not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get brand")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve brand")
		return
	}

	req.apply(brand)
	if err := h.repo.Update(brand); err != nil {
		log.Error().Err(err).Msg("Failed to update brand")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update brand")
		return
	}

	h.notifier.NotifyChange(sse.EventUpdate, "brands")
	utils.Success(c, 200, "Brand updated", brand)
}

// Delete deactivates a brand.
// DELETE /v1/admin/brands/:id
func (h *AdminBrandHandler) Delete(c *gin.Context) {
	if err := h.repo.Deactivate(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Brand not found")
			return
		}
		log.Error().Err(err).Msg("Failed to deactivate brand")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete brand")
		return
	}

	h.notifier.NotifyChange(sse.EventDelete, "brands")
	utils.Success(c, 200, "Brand deleted", nil)
}
