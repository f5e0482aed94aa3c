package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/storefront/internal/app/service"
	apperrors "github.com/ikkim/storefront/internal/errors"
	"github.com/ikkim/storefront/internal/middleware"
	"github.com/ikkim/storefront/internal/storage"
)

type StorefrontController struct {
	storefrontService service.StorefrontService
	assets            storage.AssetResolver
}

func NewStorefrontController(storefrontService service.StorefrontService, assets storage.AssetResolver) *StorefrontController {
	return &StorefrontController{
		storefrontService: storefrontService,
		assets:            assets,
	}
}

type SelectCategoryRequest struct {
	Category string `json:"category"`
}

// StorefrontEntry is a catalog entry with its image resolved
type StorefrontEntry struct {
	ProductResponse
	Favorite bool `json:"favorite"`
}

// GetStorefront renders the catalog page and consumes the pending notification
// GET /api/v1/storefront
func (ctrl *StorefrontController) GetStorefront(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	page, err := ctrl.storefrontService.Page(c.Request.Context(), sessionID)
	if err != nil {
		log.Error("Failed to render storefront", err, map[string]interface{}{
			"session_id": sessionID,
		})
		apperrors.SessionStoreError(c)
		return
	}

	ctrl.respond(c, page)
}

// SelectCategory changes the category filter; an empty category selects "All"
// PUT /api/v1/storefront/category
func (ctrl *StorefrontController) SelectCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req SelectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid select category request", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request data")
		return
	}

	page, err := ctrl.storefrontService.SelectCategory(c.Request.Context(), sessionID, req.Category)
	if err != nil {
		log.Error("Failed to select category", err, map[string]interface{}{
			"session_id": sessionID,
			"category":   req.Category,
		})
		apperrors.SessionStoreError(c)
		return
	}

	ctrl.respond(c, page)
}

func (ctrl *StorefrontController) respond(c *gin.Context, page *service.StorefrontPage) {
	entries := make([]StorefrontEntry, 0, len(page.Products))
	for _, p := range page.Products {
		entries = append(entries, StorefrontEntry{
			ProductResponse: toProductResponse(c.Request.Context(), ctrl.assets, p.Product),
			Favorite:        p.Favorite,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":        page.Categories,
		"selected_category": page.SelectedCategory,
		"products":          entries,
		"cart":              page.Cart,
		"notification":      page.Notification,
	})
}
