package handler

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hecho/catalog_api/internal/models"
	"github.com/hecho/catalog_api/internal/repository"
	"github.com/hecho/catalog_api/internal/sse"
	"github.com/hecho/catalog_api/internal/utils"
)

// AdminPromotionHandler handles the admin promotion CRUD.
type AdminPromotionHandler struct {
	repo     *repository.PromotionRepository
	products *repository.ProductRepository
	notifier sse.ChangeNotifier
}

// NewAdminPromotionHandler creates a new AdminPromotionHandler.
func NewAdminPromotionHandler(repo *repository.PromotionRepository, products *repository.ProductRepository, notifier sse.ChangeNotifier) *AdminPromotionHandler {
	return &AdminPromotionHandler{repo: repo, products: products, notifier: notifier}
}

type promotionRequest struct {
	ProductID string     `json:"productId" binding:"required"`
	LabelPT   string     `json:"labelPt"`
	LabelES   string     `json:"labelEs"`
	StartsAt  *time.Time `json:"startsAt"`
	EndsAt    *time.Time `json:"endsAt"`
	IsActive  *bool      `json:"isActive"`
}

func (r *promotionRequest) apply(p *models.Promotion) {
	p.ProductID = r.ProductID
	p.LabelPT = r.LabelPT
	p.LabelES = r.LabelES
	if r.StartsAt != nil {
		p.StartsAt = *r.StartsAt
	}
	p.EndsAt = r.EndsAt
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
}

// List returns every promotion.
// GET /v1/admin/promotions
func (h *AdminPromotionHandler) List(c *gin.Context) {
	promotions, err := h.repo.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list promotions")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve promotions")
		return
	}
	utils.Success(c, 200, "Successfully retrieved promotions", promotions)
}

// Get returns a single promotion.
// GET /v1/admin/promotions/:id
func (h *AdminPromotionHandler) Get(c *gin.Context) {
	promotion, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Promotion not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get promotion")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve promotion")
		return
	}
	utils.Success(c, 200, "Successfully retrieved promotion", promotion)
}

// Create creates a promotion for an existing product. Omitting startsAt
// starts it immediately; omitting endsAt leaves it open-ended.
// POST /v1/admin/promotions
func (h *AdminPromotionHandler) Create(c *gin.Context) {
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "productId is required")
		return
	}

	if _, err := h.products.GetByID(req.ProductID); err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 400, "INVALID_REQUEST", "Referenced product does not exist")
			return
		}
		log.Error().Err(err).Msg("Failed to verify promotion product")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create promotion")
		return
	}

	promotion := models.Promotion{StartsAt: time.Now(), IsActive: true}
	req.apply(&promotion)
	if err := h.repo.Create(&promotion); err != nil {
		log.Error().Err(err).Msg("Failed to create promotion")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create promotion")
		return
	}

	h.notifier.NotifyChange(sse.EventInsert, "promotions")
	utils.Success(c, 201, "Promotion created", promotion)
}

// Update replaces a promotion's fields.
// PUT /v1/admin/promotions/:id
func (h *AdminPromotionHandler) Update(c *gin.Context) {
	var req promotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "productId is required")
		return
	}

	promotion, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Promotion not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get promotion")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve promotion")
		return
	}

	req.apply(promotion)
	if err := h.repo.Update(promotion); err != nil {
		log.Error().Err(err).Msg("Failed to update promotion")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update promotion")
		return
	}

	h.notifier.NotifyChange(sse.EventUpdate, "promotions")
	utils.Success(c, 200, "Promotion updated", promotion)
}

// Delete removes a promotion.
// DELETE /v1/admin/promotions/:id
func (h *AdminPromotionHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Promotion not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete promotion")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete promotion")
		return
	}

	h.notifier.NotifyChange(sse.EventDelete, "promotions")
	utils.Success(c, 200, "Promotion deleted", nil)
}
