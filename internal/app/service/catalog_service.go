package service

import (
	"errors"

	"github.com/ikkim/storefront/internal/app/model"
	"github.com/ikkim/storefront/internal/app/repository"
	"github.com/ikkim/storefront/pkg/logger"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

type CatalogService interface {
	ListProducts(category string) []model.Product
	Categories() []string
	GetProduct(id string) (*model.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

// ListProducts filters the mock catalog by exact category; "All" or "" returns every product
func (s *catalogService) ListProducts(category string) []model.Product {
	products := s.productRepo.FindByCategory(category)

	logger.Debug("Catalog filtered", map[string]interface{}{
		"category": category,
		"count":    len(products),
	})
	return products
}

// Categories lists "All" followed by the catalog's categories in display order
func (s *catalogService) Categories() []string {
	return append([]string{model.CategoryAll}, s.productRepo.Categories()...)
}

func (s *catalogService) GetProduct(id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}
