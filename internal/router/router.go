package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/storefront/config"
	"github.com/ikkim/storefront/internal/app/controller"
	"github.com/ikkim/storefront/internal/middleware"
	"github.com/ikkim/storefront/pkg/logger"
)

type Router struct {
	productController    *controller.ProductController
	storefrontController *controller.StorefrontController
	cartController       *controller.CartController
	favoriteController   *controller.FavoriteController
	sessionMiddleware    *middleware.SessionMiddleware
	rateLimiter          *middleware.RateLimiter
	config               *config.Config
}

// NewRouter wires the controllers; rateLimiter may be nil to disable limiting
func NewRouter(
	productController *controller.ProductController,
	storefrontController *controller.StorefrontController,
	cartController *controller.CartController,
	favoriteController *controller.FavoriteController,
	sessionMiddleware *middleware.SessionMiddleware,
	rateLimiter *middleware.RateLimiter,
	cfg *config.Config,
) *Router {
	return &Router{
		productController:    productController,
		storefrontController: storefrontController,
		cartController:       cartController,
		favoriteController:   favoriteController,
		sessionMiddleware:    sessionMiddleware,
		rateLimiter:          rateLimiter,
		config:               cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	// ClientIP falls back to the socket peer unless the request came through a trusted proxy
	if err := router.SetTrustedProxies(r.config.Server.TrustedProxies); err != nil {
		logger.Warn("Invalid TRUSTED_PROXIES, trusting no proxy", map[string]interface{}{
			"trusted_proxies": r.config.Server.TrustedProxies,
			"error":           err.Error(),
		})
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(r.config.CORS.AllowedOrigins))
	if r.rateLimiter != nil {
		router.Use(r.rateLimiter.Middleware())
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Storefront API is running",
		})
	})

	// Product images are served locally unless they come from a CDN or bucket
	if base := r.config.Assets.BaseURL; strings.HasPrefix(base, "/") && r.config.Assets.Bucket == "" {
		router.Static(base, "./assets")
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", r.productController.GetCategories)

		products := v1.Group("/products")
		{
			products.GET("", r.productController.GetProducts)
			products.GET("/:id", r.productController.GetProductByID)
		}

		session := v1.Group("")
		session.Use(r.sessionMiddleware.Attach())
		{
			storefront := session.Group("/storefront")
			{
				storefront.GET("", r.storefrontController.GetStorefront)
				storefront.PUT("/category", r.storefrontController.SelectCategory)
			}

			cart := session.Group("/cart")
			{
				cart.GET("", r.cartController.GetCart)
				cart.GET("/count", r.cartController.GetCartCount)
				cart.GET("/export", r.cartController.ExportCart)
				cart.POST("", r.cartController.AddToCart)
				cart.PUT("/:product_id", r.cartController.UpdateCartItem)
				cart.DELETE("/:product_id", r.cartController.RemoveFromCart)
				cart.DELETE("", r.cartController.ClearCart)
			}

			favorites := session.Group("/favorites")
			{
				favorites.GET("", r.favoriteController.GetFavorites)
				favorites.POST("/:product_id/toggle", r.favoriteController.ToggleFavorite)
			}
		}
	}

	return router
}
