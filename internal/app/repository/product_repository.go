package repository

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/ikkim/storefront/internal/app/model"
	"github.com/ikkim/storefront/pkg/logger"
	"gopkg.in/yaml.v3"
)

var ErrProductNotFound = errors.New("product not found")

//go:embed catalog.yaml
var mockCatalog []byte

// ProductRepository serves the static mock catalog. Results are copies;
// the catalog itself never changes after construction.
type ProductRepository interface {
	FindAll() []model.Product
	FindByID(id string) (*model.Product, error)
	FindByCategory(category string) []model.Product
	Categories() []string
}

type productRepository struct {
	products   []model.Product
	byID       map[string]int
	categories []string
}

type catalogFile struct {
	Products []model.Product `yaml:"products"`
}

// NewProductRepository loads the embedded mock catalog
func NewProductRepository() (ProductRepository, error) {
	return NewProductRepositoryFromYAML(mockCatalog)
}

// NewProductRepositoryFromYAML builds a catalog from a YAML document with a top-level products list
func NewProductRepositoryFromYAML(data []byte) (ProductRepository, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return newProductRepository(file.Products)
}

func newProductRepository(products []model.Product) (*productRepository, error) {
	r := &productRepository{
		products: make([]model.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	seenCategory := make(map[string]bool)

	for i, p := range products {
		switch {
		case p.ID == "":
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		case p.Category == "" || p.Category == model.CategoryAll:
			return nil, fmt.Errorf("product %s has invalid category %q", p.ID, p.Category)
		case p.Price < 0:
			return nil, fmt.Errorf("product %s has negative price", p.ID)
		}
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %s", p.ID)
		}
		r.byID[p.ID] = len(r.products)
		r.products = append(r.products, p)
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			r.categories = append(r.categories, p.Category)
		}
	}

	logger.Debug("Mock catalog loaded", map[string]interface{}{
		"products":   len(r.products),
		"categories": r.categories,
	})
	return r, nil
}

func (r *productRepository) FindAll() []model.Product {
	products := make([]model.Product, len(r.products))
	copy(products, r.products)
	return products
}

func (r *productRepository) FindByID(id string) (*model.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	product := r.products[i]
	return &product, nil
}

// FindByCategory filters in catalog order; CategoryAll returns everything
func (r *productRepository) FindByCategory(category string) []model.Product {
	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.InCategory(category) {
			products = append(products, p)
		}
	}
	return products
}

// Categories returns the distinct categories in first-seen order
func (r *productRepository) Categories() []string {
	categories := make([]string, len(r.categories))
	copy(categories, r.categories)
	return categories
}
