package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/storefront/internal/app/model"
	apperrors "github.com/ikkim/storefront/internal/errors"
	"github.com/ikkim/storefront/internal/middleware"
	"github.com/ikkim/storefront/internal/storage"
)

var errNoSession = errors.New("session middleware not installed")

// requireSession returns the request's session ID or writes the error response
func requireSession(c *gin.Context) (string, bool) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		middleware.GetLoggerFromContext(c).Error("Request reached handler without a session", errNoSession, map[string]interface{}{
			"path": c.FullPath(),
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.SessionMissing, "No storefront session on request")
		return "", false
	}
	return sessionID, true
}

// ProductResponse is a product with its image resolved to a fetchable URL
type ProductResponse struct {
	model.Product
	ImageURL string `json:"image_url"`
	Discount int    `json:"discount_percent,omitempty"`
}

func toProductResponse(ctx context.Context, assets storage.AssetResolver, p model.Product) ProductResponse {
	return ProductResponse{
		Product:  p,
		ImageURL: assets.URL(ctx, p.Image),
		Discount: p.DiscountPercent(),
	}
}

func toProductResponses(ctx context.Context, assets storage.AssetResolver, products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(ctx, assets, p))
	}
	return out
}
