package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/storefront/internal/app/repository"
	"github.com/ikkim/storefront/internal/app/service"
	"github.com/ikkim/storefront/internal/middleware"
	"github.com/ikkim/storefront/internal/storage"
	"github.com/stretchr/testify/require"
)

type testControllers struct {
	product    *ProductController
	cart       *CartController
	favorite   *FavoriteController
	storefront *StorefrontController
}

func setupControllerTest(t *testing.T) (*testControllers, *gin.Engine) {
	productRepo, err := repository.NewProductRepository()
	require.NoError(t, err)

	sessions := service.NewSessionManager(repository.NewMemorySessionRepository(time.Hour))
	catalog := service.NewCatalogService(productRepo)
	cart := service.NewCartService(sessions, productRepo)
	assets := storage.NewStaticAssetResolver("https://cdn.test/assets")

	controllers := &testControllers{
		product:    NewProductController(catalog, assets),
		cart:       NewCartController(cart, service.NewExportService(cart)),
		favorite:   NewFavoriteController(service.NewFavoriteService(sessions, productRepo), assets),
		storefront: NewStorefrontController(service.NewStorefrontService(sessions, catalog), assets),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()

	return controllers, router
}

// Helper function to set session ID in context
func withSession(sessionID string, handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.SessionIDKey, sessionID)
		handler(c)
	}
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}
