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

// AdminTestimonialHandler handles the admin testimonial CRUD.
type AdminTestimonialHandler struct {
	repo     *repository.TestimonialRepository
	notifier sse.ChangeNotifier
}

// NewAdminTestimonialHandler creates a new AdminTestimonialHandler.
func NewAdminTestimonialHandler(repo *repository.TestimonialRepository, notifier sse.ChangeNotifier) *AdminTestimonialHandler {
	return &AdminTestimonialHandler{repo: repo, notifier: notifier}
}

type testimonialRequest struct {
	Name         string `json:"name" binding:"required"`
	Role         string `json:"role"`
	ContentPT    string `json:"contentPt" binding:"required"`
	ContentES    string `json:"contentEs" binding:"required"`
	Rating       int    `json:"rating" binding:"min=1,max=5"`
	DisplayOrder int    `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

func (r *testimonialRequest) apply(t *models.Testimonial) {
	t.Name = r.Name
	t.Role = r.Role
	t.ContentPT = r.ContentPT
	t.ContentES = r.ContentES
	t.Rating = r.Rating
	t.DisplayOrder = r.DisplayOrder
	if r.IsActive != nil {
		t.IsActive = *r.IsActive
	}
}

// List returns every testimonial including inactive ones.
// GET /v1/admin/testimonials
func (h *AdminTestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.repo.ListAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list testimonials")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve testimonials")
		return
	}
	utils.Success(c, 200, "Successfully retrieved testimonials", testimonials)
}

// Get returns a single testimonial.
// GET /v1/admin/testimonials/:id
func (h *AdminTestimonialHandler) Get(c *gin.Context) {
	testimonial, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Testimonial not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get testimonial")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve testimonial")
		return
	}
	utils.Success(c, 200, "Successfully retrieved testimonial", testimonial)
}

// Create creates a testimonial.
// POST /v1/admin/testimonials
func (h *AdminTestimonialHandler) Create(c *gin.Context) {
	var req testimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Name, both contents and a 1-5 rating are required")
		return
	}

	testimonial := models.Testimonial{IsActive: true}
	req.apply(&testimonial)
	if err := h.repo.Create(&testimonial); err != nil {
		log.Error().Err(err).Msg("Failed to create testimonial")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create testimonial")
		return
	}

	h.notifier.NotifyChange(sse.EventInsert, "testimonials")
	utils.Success(c, 201, "Testimonial created", testimonial)
}

// Update replaces a testimonial's fields.
// PUT /v1/admin/testimonials/:id
func (h *AdminTestimonialHandler) Update(c *gin.Context) {
	var req testimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Name, both contents and a 1-5 rating are required")
		return
	}

	testimonial, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Testimonial not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get testimonial")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve testimonial")
		return
	}

	req.apply(testimonial)
	if err := h.repo.Update(testimonial); err != nil {
		log.Error().Err(err).Msg("Failed to update testimonial")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update testimonial")
		return
	}

	h.notifier.NotifyChange(sse.EventUpdate, "testimonials")
	utils.Success(c, 200, "Testimonial updated", testimonial)
}

// Delete removes a testimonial.
// DELETE /v1/admin/testimonials/:id
func (h *AdminTestimonialHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Testimonial not found")
			return
		}
		log.Error().Err(err).Msg("Failed to delete testimonial")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete testimonial")
		return
	}

	h.notifier.NotifyChange(sse.EventDelete, "testimonials")
	utils.Success(c, 200, "Testimonial deleted", nil)
}
