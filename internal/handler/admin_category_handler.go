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

// AdminCategoryHandler handles the admin category CRUD.
type AdminCategoryHandler struct {
	repo      *repository.CategoryRepository
	notifier  sse.ChangeNotifier
	refresher CatalogRefresher
}

// NewAdminCategoryHandler creates a new AdminCategoryHandler.
func NewAdminCategoryHandler(repo *repository.CategoryRepository, notifier sse.ChangeNotifier, refresher CatalogRefresher) *AdminCategoryHandler {
	return &AdminCategoryHandler{repo: repo, notifier: notifier, refresher: refresher}
}

type categoryRequest struct {
	Name          string   `json:"name" binding:"required"`
	TitlePT       string   `json:"titlePt" binding:"required"`
	TitleES       string   `json:"titleEs" binding:"required"`
	DescriptionPT string   `json:"descriptionPt"`
	DescriptionES string   `json:"descriptionEs"`
	ImageURL      string   `json:"imageUrl"`
	IconName      string   `json:"iconName" binding:"required"`
	ItemsPT       []string `json:"itemsPt"`
	ItemsES       []string `json:"itemsEs"`
	DisplayOrder  int      `json:"displayOrder"`
	IsActive      *bool    `json:"isActive"`
}

func (r *categoryRequest) apply(cat *models.Category) {
	cat.Name = r.Name
	cat.TitlePT = r.TitlePT
	cat.TitleES = r.TitleES
	cat.DescriptionPT = r.DescriptionPT
	cat.DescriptionES = r.DescriptionES
	cat.ImageURL = r.ImageURL
	cat.IconName = r.IconName
	cat.ItemsPT = r.ItemsPT
	cat.ItemsES = r.ItemsES
	cat.DisplayOrder = r.DisplayOrder
	if r.IsActive != nil {
		cat.IsActive = *r.IsActive
	}
}

// List returns every category including inactive ones.
// GET /v1/admin/categories
func (h *AdminCategoryHandler) List(c *gin.Context) {
	categories, err := h.repo.ListAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve categories")
		return
	}
	utils.Success(c, 200, "Successfully retrieved categories", categories)
}

// Get returns a single category.
// GET /v1/admin/categories/:id
func (h *AdminCategoryHandler) Get(c *gin.Context) {
	category, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Category not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get category")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve category")
		return
	}
	utils.Success(c, 200, "Successfully retrieved category", category)
}

// Create creates a category. The icon name must be one the storefront can
// render.
// POST /v1/admin/categories
func (h *AdminCategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Name, titles and icon name are required")
		return
	}
	if !models.IconNames[req.IconName] {
		utils.Error(c, 400, "INVALID_ICON_NAME", "Unknown icon name")
		return
	}

	category := models.Category{IsActive: true}
	req.apply(&category)
	if err := h.repo.Create(&category); err != nil {
		log.Error().Err(err).Msg("Failed to create category")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to create category")
		return
	}

	h.notifier.NotifyChange(sse.EventInsert, "categories")
	h.refresher.RefreshFacets()
	utils.Success(c, 201, "Category created", category)
}

// Update replaces a category's fields.
// PUT /v1/admin/categories/:id
func (h *AdminCategoryHandler) Update(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Name, titles and icon name are required")
		return
	}
	if !models.IconNames[req.IconName] {
		utils.Error(c, 400, "INVALID_ICON_NAME", "Unknown icon name")
		return
	}

	category, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Category not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get category")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to retrieve category")
		return
	}

	req.apply(category)
	if err := h.repo.Update(category); err != nil {
		log.Error().Err(err).Msg("Failed to update category")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to update category")
		return
	}

	h.notifier.NotifyChange(sse.EventUpdate, "categories")
	h.refresher.RefreshFacets()
	utils.Success(c, 200, "Category updated", category)
}

// Delete deactivates a category. Products keep their reference; the catalog
// simply stops offering the category as a filter.
// DELETE /v1/admin/categories/:id
func (h *AdminCategoryHandler) Delete(c *gin.Context) {
	if err := h.repo.Deactivate(c.Param("id")); err != nil {
		if err == sql.ErrNoRows {
			utils.Error(c, 404, "NOT_FOUND", "Category not found")
			return
		}
		log.Error().Err(err).Msg("Failed to deactivate category")
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to delete category")
		return
	}

	h.notifier.NotifyChange(sse.EventDelete, "categories")
	h.refresher.RefreshFacets()
	utils.Success(c, 200, "Category deleted", nil)
}
