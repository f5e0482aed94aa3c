package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/storefront/internal/app/service"
	apperrors "github.com/ikkim/storefront/internal/errors"
	"github.com/ikkim/storefront/internal/middleware"
	"github.com/ikkim/storefront/internal/storage"
)

type FavoriteController struct {
	favoriteService service.FavoriteService
	assets          storage.AssetResolver
}

func NewFavoriteController(favoriteService service.FavoriteService, assets storage.AssetResolver) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
		assets:          assets,
	}
}

// GetFavorites returns the session's favorite products
// GET /api/v1/favorites
func (ctrl *FavoriteController) GetFavorites(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	products, err := ctrl.favoriteService.List(c.Request.Context(), sessionID)
	if err != nil {
		log.Error("Failed to fetch favorites", err, map[string]interface{}{
			"session_id": sessionID,
		})
		apperrors.SessionStoreError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favorites": toProductResponses(c.Request.Context(), ctrl.assets, products),
		"count":     len(products),
	})
}

// ToggleFavorite flips the favorite mark of a product
// POST /api/v1/favorites/:product_id/toggle
func (ctrl *FavoriteController) ToggleFavorite(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, ok := requireSession(c)
	if !ok {
		return
	}
	productID := c.Param("product_id")

	favorite, err := ctrl.favoriteService.Toggle(c.Request.Context(), sessionID, productID)
	if err != nil {
		log.Error("Failed to toggle favorite", err, map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
		})
		apperrors.SessionStoreError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product_id": productID,
		"favorite":   favorite,
	})
}
