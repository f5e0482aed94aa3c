package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/storefront/internal/app/model"
	"github.com/ikkim/storefront/internal/app/service"
	apperrors "github.com/ikkim/storefront/internal/errors"
	"github.com/ikkim/storefront/internal/middleware"
	"github.com/ikkim/storefront/internal/storage"
)

type ProductController struct {
	catalogService service.CatalogService
	assets         storage.AssetResolver
}

func NewProductController(catalogService service.CatalogService, assets storage.AssetResolver) *ProductController {
	return &ProductController{
		catalogService: catalogService,
		assets:         assets,
	}
}

// GetCategories returns the category tabs, "All" first
// GET /api/v1/categories
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	categories := ctrl.catalogService.Categories()

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetProducts returns the catalog filtered by the category query parameter
// GET /api/v1/products?category=
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	category := c.DefaultQuery("category", model.CategoryAll)
	products := toProductResponses(c.Request.Context(), ctrl.assets, ctrl.catalogService.ListProducts(category))

	log.Info("Products fetched successfully", map[string]interface{}{
		"category": category,
		"count":    len(products),
	})

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"products": products,
		"count":    len(products),
	})
}

// GetProductByID returns a single product
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	product, err := ctrl.catalogService.GetProduct(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			apperrors.NotFound(c, apperrors.ResourceNotFound, "Product not found")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": toProductResponse(c.Request.Context(), ctrl.assets, *product),
	})
}
