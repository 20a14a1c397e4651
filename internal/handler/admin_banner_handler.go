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

// AdminBannerHandler handles the admin hero banner CRUD.
type AdminBannerHandler struct {
	repo     *repository.BannerRepository
	notifier sse.ChangeNotifier
}

// NewAdminBannerHandler creates a new AdminBannerHandler.
func NewAdminBannerHandler(repo *repository.BannerRepository, notifier sse.ChangeNotifier) *AdminBannerHandler {
	return &AdminBannerHandler{repo: repo, notifier: notifier}
}

type bannerRequest struct {
	TitlePT        string `json:"titlePt" binding:"required"`
	TitleES        string `json:"titleEs" binding:"required"`
	SubtitlePT     string `json:"subtitlePt"`
	SubtitleES     string `json:"subtitleEs"`
	HighlightPT    string `json:"highlightPt"`
	HighlightES    string `json:"highlightEs"`
	CTATextPT      string `json:"ctaTextPt"`
	CTATextES      string `json:"ctaTextEs"`
	CTAAction      string `json:"ctaAction"`
	ImageURL       string `json:"imageUrl"`
	MobileImageURL string `json:"mobileImageUrl"`
	DisplayOrder   int    `json:"displayOrder"`
	IsActive       *bool  `json:"isActive"`
}

func (r *bannerRequest) apply(b *models.HeroBanner) {
	b.TitlePT = r.TitlePT
	b.TitleES = r.TitleES
	b.SubtitlePT = r.SubtitlePT
	b.SubtitleES = r.SubtitleES
	b.HighlightPT = r.HighlightPT
	b.HighlightES = r.HighlightES
	b.CTATextPT = r.CTATextPT
	b.CTATextES = r.CTATextES
	b.CTAAction = r.CTAAction
	b.ImageURL = r.ImageURL
	b.MobileImageURL = r.MobileImageURL
	b.DisplayOrder = r.DisplayOrder
	if r.IsActive != nil {
		b.IsActive = *r.IsActive
	}
}

// List returns every banner including inactive ones.
// GET /v1/admin/banners
func (h *AdminBannerHandler) List(c *gin.Context) {
	banners, err := h.repo.ListAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list banners")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve banners")
		return
	}
	utils.Success(c, 200, "Successfully retrieved banners", banners)
}

// Get returns a single banner.
// GET /v1/admin/banners/:id
func (h *AdminBannerHandler) Get(c *gin.Context) {
	banner, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Banner not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get banner")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve banner")
		return
	}
	utils.Success(c, 200, "Successfully retrieved banner", banner)
}

// Create creates a banner.
// POST /v1/admin/banners
func (h *AdminBannerHandler) Create(c *gin.Context) {
	var req bannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Titles are required")
		return
	}

	banner := models.HeroBanner{IsActive: true}
	req.apply(&banner)
	if err := h.repo.Create(&banner); err != nil {
		log.Error().Err(err).Msg("Failed to create banner")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create banner")
		return
	}

	h.notifier.NotifyChange(sse.EventInsert, "hero_banners")
	utils.Success(c, 201, "Banner created", banner)
}

// Update replaces a banner's fields.
// PUT /v1/admin/banners/:id
func (h *AdminBannerHandler) Update(c *gin.Context) {
	var req bannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Titles are required")
		return
	}

	banner, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Banner not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get banner")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve banner")
		return
	}

	req.apply(banner)
	if err := h.repo.Update(banner); err != nil {
		log.Error().Err(err).Msg("Failed to update banner")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update banner")
		return
	}

	h.notifier.NotifyChange(sse.EventUpdate, "hero_banners")
	utils.Success(c, 200, "Banner updated", banner)
}

// Delete deactivates a banner.
// DELETE /v1/admin/banners/:id
func (h *AdminBannerHandler) Delete(c *gin.Context) {
	if err := h.repo.Deactivate(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Banner not found")
			return
		}
		log.Error().Err(err).Msg("Failed to deactivate banner")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete banner")
		return
	}

	h.notifier.NotifyChange(sse.EventDelete, "hero_banners")
	utils.Success(c, 200, "Banner deleted", nil)
}
