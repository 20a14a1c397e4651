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

// AdminContactHandler handles the admin contact card.
type AdminContactHandler struct {
	repo     *repository.ContactRepository
	notifier sse.ChangeNotifier
}

// NewAdminContactHandler creates a new AdminContactHandler.
func NewAdminContactHandler(repo *repository.ContactRepository, notifier sse.ChangeNotifier) *AdminContactHandler {
	return &AdminContactHandler{repo: repo, notifier: notifier}
}

// Get returns the active contact record with both language variants, for
// editing.
// GET /v1/admin/contact
func (h *AdminContactHandler) Get(c *gin.Context) {
	contact, err := h.repo.GetActive()
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "No contact record configured")
			return
		}
		log.Error().Err(err).Msg("Failed to get contact record")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve contact info")
		return
	}
	utils.Success(c, 200, "Successfully retrieved contact info", contact)
}

// Save upserts the contact record. Activating a record deactivates every
// other one.
// PUT /v1/admin/contact
func (h *AdminContactHandler) Save(c *gin.Context) {
	var contact models.ContactInfo
	if err := c.ShouldBindJSON(&contact); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid contact payload")
		return
	}
	if contact.CompanyName == "" {
		utils.Error(c, 400, "INVALID_REQUEST", "Company name is required")
		return
	}

	if err := h.repo.Upsert(&contact); err != nil {
		log.Error().Err(err).Msg("Failed to save contact record")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to save contact info")
		return
	}

	h.notifier.NotifyChange(sse.EventUpdate, "contact_info")
	utils.Success(c, 200, "Contact info saved", contact)
}
