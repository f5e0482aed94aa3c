package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductController_GetCategories(t *testing.T) {
	controllers, router := setupControllerTest(t)
	router.GET("/categories", controllers.product.GetCategories)

	w, response := doRequest(t, router, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"All", "Electronics", "Clothing", "Accessories", "Home"}, response["categories"])
}

func TestProductController_GetProducts(t *testing.T) {
	controllers, router := setupControllerTest(t)
	router.GET("/products", controllers.product.GetProducts)

	tests := []struct {
		name  string
		query string
		ids   []string
	}{
		{"default is all", "", []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"all", "?category=All", []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"exact category", "?category=Clothing", []string{"3", "4"}},
		{"case sensitive", "?category=clothing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, response := doRequest(t, router, http.MethodGet, "/products"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code)

			products := response["products"].([]interface{})
			ids := []string{}
			for _, p := range products {
				ids = append(ids, p.(map[string]interface{})["id"].(string))
			}
			assert.Equal(t, tt.ids, ids)
			assert.Equal(t, float64(len(tt.ids)), response["count"])
		})
	}
}

func TestProductController_GetProductByID(t *testing.T) {
	controllers, router := setupControllerTest(t)
	router.GET("/products/:id", controllers.product.GetProductByID)

	w, response := doRequest(t, router, http.MethodGet, "/products/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	product := response["product"].(map[string]interface{})
	assert.Equal(t, "Wireless Headphones", product["name"])
	assert.Equal(t, "https://cdn.test/assets/products/wireless-headphones.jpg", product["image_url"])
	assert.Equal(t, float64(31), product["discount_percent"])
}

func TestProductController_GetProductByID_NotFound(t *testing.T) {
	controllers, router := setupControllerTest(t)
	router.GET("/products/:id", controllers.product.GetProductByID)

	w, response := doRequest(t, router, http.MethodGet, "/products/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RESOURCE_NOT_FOUND", response["error"])
}
