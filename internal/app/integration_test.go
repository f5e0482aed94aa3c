package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/storefront/config"
	"github.com/ikkim/storefront/internal/app/controller"
	"github.com/ikkim/storefront/internal/app/repository"
	"github.com/ikkim/storefront/internal/app/service"
	"github.com/ikkim/storefront/internal/middleware"
	"github.com/ikkim/storefront/internal/router"
	"github.com/ikkim/storefront/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Router   *gin.Engine
	Sessions repository.SessionRepository
}

func setupIntegrationTest(t *testing.T) *TestServer {
	cfg := &config.Config{
		Server:  config.ServerConfig{GinMode: gin.TestMode},
		Session: config.SessionConfig{TTL: time.Hour, Secret: "test-secret", CookieName: "storefront_session"},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"*"}},
		Assets:  config.AssetsConfig{BaseURL: "https://cdn.test"},
	}

	// Setup repositories
	productRepo, err := repository.NewProductRepository()
	require.NoError(t, err)
	sessionRepo := repository.NewMemorySessionRepository(cfg.Session.TTL)

	// Setup services
	sessions := service.NewSessionManager(sessionRepo)
	catalogService := service.NewCatalogService(productRepo)
	cartService := service.NewCartService(sessions, productRepo)
	assets := storage.NewStaticAssetResolver(cfg.Assets.BaseURL)

	r := router.NewRouter(
		controller.NewProductController(catalogService, assets),
		controller.NewStorefrontController(service.NewStorefrontService(sessions, catalogService), assets),
		controller.NewCartController(cartService, service.NewExportService(cartService)),
		controller.NewFavoriteController(service.NewFavoriteService(sessions, productRepo), assets),
		middleware.NewSessionMiddleware(cfg.Session, false),
		nil,
		cfg,
	)

	return &TestServer{
		Router:   r.Setup(),
		Sessions: sessionRepo,
	}
}

// client replays the session token the server hands out
type client struct {
	t      *testing.T
	server *TestServer
	token  string
}

func (c *client) do(method, path string, body interface{}) (int, map[string]interface{}) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(middleware.SessionTokenHeader, c.token)
	}

	w := httptest.NewRecorder()
	c.server.Router.ServeHTTP(w, req)
	if token := w.Header().Get(middleware.SessionTokenHeader); token != "" {
		c.token = token
	}

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	return w.Code, response
}

func cartCount(response map[string]interface{}) float64 {
	cart, _ := response["cart"].(map[string]interface{})
	count, _ := cart["count"].(float64)
	return count
}

func TestIntegration_Health(t *testing.T) {
	server := setupIntegrationTest(t)
	c := &client{t: t, server: server}

	code, response := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", response["status"])
	assert.Empty(t, c.token, "health must not start a session")
}

func TestIntegration_ShoppingFlow(t *testing.T) {
	server := setupIntegrationTest(t)
	shopper := &client{t: t, server: server}

	// 1. Browse a category
	code, response := shopper.do(http.MethodPut, "/api/v1/storefront/category", map[string]string{"category": "Electronics"})
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, shopper.token)
	assert.Len(t, response["products"], 2)

	// 2. Add the same product twice
	shopper.do(http.MethodPost, "/api/v1/cart", map[string]string{"product_id": "1"})
	code, response = shopper.do(http.MethodPost, "/api/v1/cart", map[string]string{"product_id": "1"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), cartCount(response))
	assert.NotNil(t, response["notification"])

	// 3. The notification shows once on the storefront
	_, response = shopper.do(http.MethodGet, "/api/v1/storefront", nil)
	assert.NotNil(t, response["notification"])
	assert.Equal(t, "Electronics", response["selected_category"])
	_, response = shopper.do(http.MethodGet, "/api/v1/storefront", nil)
	assert.Nil(t, response["notification"])

	// 4. Quantity 0 removes the line
	code, response = shopper.do(http.MethodPut, "/api/v1/cart/1", map[string]int{"quantity": 0})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), cartCount(response))

	count, err := server.Sessions.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIntegration_SessionsAreIsolated(t *testing.T) {
	server := setupIntegrationTest(t)
	alice := &client{t: t, server: server}
	bob := &client{t: t, server: server}

	alice.do(http.MethodPost, "/api/v1/cart", map[string]string{"product_id": "4"})
	alice.do(http.MethodPost, "/api/v1/favorites/4/toggle", nil)

	_, response := bob.do(http.MethodGet, "/api/v1/cart/count", nil)
	assert.Equal(t, float64(0), response["count"])
	_, response = bob.do(http.MethodGet, "/api/v1/favorites", nil)
	assert.Equal(t, float64(0), response["count"])

	_, response = alice.do(http.MethodGet, "/api/v1/cart/count", nil)
	assert.Equal(t, float64(1), response["count"])
	assert.NotEqual(t, alice.token, bob.token)
}

func TestIntegration_UnknownProductIsNoop(t *testing.T) {
	server := setupIntegrationTest(t)
	shopper := &client{t: t, server: server}

	code, response := shopper.do(http.MethodPost, "/api/v1/cart", map[string]string{"product_id": "nope"})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), cartCount(response))
	assert.Nil(t, response["notification"])

	code, response = shopper.do(http.MethodGet, "/api/v1/products/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "RESOURCE_NOT_FOUND", response["error"])
}
