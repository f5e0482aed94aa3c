package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/storefront/internal/app/service"
	apperrors "github.com/ikkim/storefront/internal/errors"
	"github.com/ikkim/storefront/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CartController struct {
	cartService   service.CartService
	exportService service.ExportService
}

func NewCartController(cartService service.CartService, exportService service.ExportService) *CartController {
	return &CartController{
		cartService:   cartService,
		exportService: exportService,
	}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// Quantity is a pointer so an explicit 0 (remove) is told apart from a missing field
type UpdateCartRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the session's cart sidebar
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	cart, err := ctrl.cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		log.Error("Failed to fetch cart", err, map[string]interface{}{
			"session_id": sessionID,
		})
		apperrors.SessionStoreError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart": cart,
	})
}

// GetCartCount returns the badge count
// GET /api/v1/cart/count
func (ctrl *CartController) GetCartCount(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	count, err := ctrl.cartService.TotalCount(c.Request.Context(), sessionID)
	if err != nil {
		log.Error("Failed to count cart items", err, map[string]interface{}{
			"session_id": sessionID,
		})
		apperrors.SessionStoreError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": count,
	})
}

// AddToCart adds one unit of a product and returns the add-to-cart notification.
// Unknown products leave the cart unchanged and carry no notification.
// POST /api/v1/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "product_id is required")
		return
	}

	cart, notification, err := ctrl.cartService.AddItem(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"session_id": sessionID,
			"product_id": req.ProductID,
		})
		apperrors.SessionStoreError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":         cart,
		"notification": notification,
	})
}

// UpdateCartItem sets the quantity of a line; zero or less removes it
// PUT /api/v1/cart/:product_id
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, ok := requireSession(c)
	if !ok {
		return
	}
	productID := c.Param("product_id")

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update cart request", map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationRequired, "quantity is required")
		return
	}

	cart, err := ctrl.cartService.SetQuantity(c.Request.Context(), sessionID, productID, *req.Quantity)
	if err != nil {
		log.Error("Failed to update cart item", err, map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
		})
		apperrors.SessionStoreError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart": cart,
	})
}

// RemoveFromCart removes a line; absent lines are a no-op
// DELETE /api/v1/cart/:product_id
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, ok := requireSession(c)
	if !ok {
		return
	}
	productID := c.Param("product_id")

	cart, err := ctrl.cartService.RemoveItem(c.Request.Context(), sessionID, productID)
	if err != nil {
		log.Error("Failed to remove cart item", err, map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
		})
		apperrors.SessionStoreError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart": cart,
	})
}

// ClearCart empties the cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	cart, err := ctrl.cartService.ClearCart(c.Request.Context(), sessionID)
	if err != nil {
		log.Error("Failed to clear cart", err, map[string]interface{}{
			"session_id": sessionID,
		})
		apperrors.SessionStoreError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart": cart,
	})
}

// ExportCart downloads the cart as an xlsx workbook
// GET /api/v1/cart/export
func (ctrl *CartController) ExportCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, ok := requireSession(c)
	if !ok {
		return
	}

	buf, err := ctrl.exportService.ExportCart(c.Request.Context(), sessionID)
	if err != nil {
		log.Error("Failed to export cart", err, map[string]interface{}{
			"session_id": sessionID,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.InternalExportFailed, "Failed to export cart")
		return
	}

	filename := fmt.Sprintf("cart-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
