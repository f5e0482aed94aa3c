package repository

import (
	"testing"

	"github.com/ikkim/storefront/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProductRepositoryTest(t *testing.T) ProductRepository {
	repo, err := NewProductRepository()
	require.NoError(t, err)
	return repo
}

func ids(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestProductRepository_FindAll(t *testing.T) {
	repo := setupProductRepositoryTest(t)

	products := repo.FindAll()
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, ids(products))
	assert.Equal(t, "Wireless Headphones", products[0].Name)
	assert.Equal(t, 129.99, products[0].OriginalPrice)
}

func TestProductRepository_FindAll_ReturnsCopy(t *testing.T) {
	repo := setupProductRepositoryTest(t)

	products := repo.FindAll()
	products[0].Name = "changed"

	p, err := repo.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Wireless Headphones", p.Name)
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	repo := setupProductRepositoryTest(t)

	p, err := repo.FindByID("999")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, p)
}

func TestProductRepository_FindByCategory(t *testing.T) {
	repo := setupProductRepositoryTest(t)

	assert.Equal(t, ids(repo.FindAll()), ids(repo.FindByCategory(model.CategoryAll)))
	assert.Equal(t, []string{"3", "4"}, ids(repo.FindByCategory("Clothing")))
	assert.Empty(t, repo.FindByCategory("clothing"))
	assert.Empty(t, repo.FindByCategory("Garden"))
}

func TestProductRepository_Categories(t *testing.T) {
	repo := setupProductRepositoryTest(t)

	assert.Equal(t, []string{"Electronics", "Clothing", "Accessories", "Home"}, repo.Categories())
}

func TestNewProductRepositoryFromYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "malformed", yaml: "products: ["},
		{name: "missing id", yaml: "products:\n  - name: A\n    category: Home\n"},
		{name: "duplicate id", yaml: "products:\n  - id: \"1\"\n    category: Home\n  - id: \"1\"\n    category: Home\n"},
		{name: "reserved category", yaml: "products:\n  - id: \"1\"\n    category: All\n"},
		{name: "negative price", yaml: "products:\n  - id: \"1\"\n    category: Home\n    price: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProductRepositoryFromYAML([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
