package service

import (
	"context"

	"github.com/ikkim/storefront/internal/app/model"
	"github.com/ikkim/storefront/internal/app/repository"
	"github.com/ikkim/storefront/pkg/logger"
)

type FavoriteService interface {
	Toggle(ctx context.Context, sessionID, productID string) (bool, error)
	List(ctx context.Context, sessionID string) ([]model.Product, error)
}

type favoriteService struct {
	sessions    *SessionManager
	productRepo repository.ProductRepository
}

func NewFavoriteService(sessions *SessionManager, productRepo repository.ProductRepository) FavoriteService {
	return &favoriteService{
		sessions:    sessions,
		productRepo: productRepo,
	}
}

// Toggle flips the favorite mark of productID and reports the new state.
// IDs outside the catalog are ignored and report false.
func (s *favoriteService) Toggle(ctx context.Context, sessionID, productID string) (bool, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		logger.Debug("Ignoring favorite toggle for unknown product", map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
		})
		return false, nil
	}

	favorite := false
	_, err := s.sessions.Update(ctx, sessionID, func(session *model.Session) error {
		favorite = session.Favorites.Toggle(productID)
		return nil
	})
	if err != nil {
		return false, err
	}

	logger.Debug("Favorite toggled", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
		"favorite":   favorite,
	})
	return favorite, nil
}

// List returns the favorited products in catalog order
func (s *favoriteService) List(ctx context.Context, sessionID string) ([]model.Product, error) {
	session, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products := []model.Product{}
	for _, p := range s.productRepo.FindAll() {
		if session.Favorites.Contains(p.ID) {
			products = append(products, p)
		}
	}
	return products, nil
}
