package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hecho/catalog_api/internal/middleware"
	"github.com/hecho/catalog_api/internal/service"
	"github.com/hecho/catalog_api/internal/utils"
)

// ContentHandler handles the public storefront content endpoints.
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// GetBrands returns active brands.
// GET /v1/brands
func (h *ContentHandler) GetBrands(c *gin.Context) {
	brands := h.content.Brands(c.Request.Context())
	utils.Success(c, 200, "Successfully retrieved brands", brands)
}

// GetBanners returns active hero banners in the request language.
// GET /v1/banners?lang=
func (h *ContentHandler) GetBanners(c *gin.Context) {
	banners := h.content.Banners(c.Request.Context(), middleware.Translator(c))
	utils.Success(c, 200, "Successfully retrieved banners", banners)
}

// GetTestimonials returns active testimonials in the request language.
// GET /v1/testimonials?lang=
func (h *ContentHandler) GetTestimonials(c *gin.Context) {
	testimonials := h.content.Testimonials(c.Request.Context(), middleware.Translator(c))
	utils.Success(c, 200, "Successfully retrieved testimonials", testimonials)
}

// GetCategories returns active categories in the request language, for the
// home-page sections.
// GET /v1/categories?lang=
func (h *ContentHandler) GetCategories(c *gin.Context) {
	categories := h.content.Categories(c.Request.Context(), middleware.Translator(c))
	utils.Success(c, 200, "Successfully retrieved categories", categories)
}

// GetContact returns the active contact card in the request language.
// GET /v1/contact?lang=
func (h *ContentHandler) GetContact(c *gin.Context) {
	contact := h.content.Contact(c.Request.Context(), middleware.Translator(c))
	utils.Success(c, 200, "Successfully retrieved contact info", contact)
}
