package service

import (
	"context"

	"github.com/ikkim/storefront/internal/app/model"
	"github.com/ikkim/storefront/pkg/logger"
)

// CatalogEntry is a product as shown on the catalog page
type CatalogEntry struct {
	model.Product
	Favorite bool `json:"favorite"`
}

// StorefrontPage is everything the container renders in one pass
type StorefrontPage struct {
	Categories       []string            `json:"categories"`
	SelectedCategory string              `json:"selected_category"`
	Products         []CatalogEntry      `json:"products"`
	Cart             *CartSummary        `json:"cart"`
	Notification     *model.Notification `json:"notification,omitempty"`
}

// StorefrontService is the catalog view of a session: category filter, favorites and the pending notification
type StorefrontService interface {
	Page(ctx context.Context, sessionID string) (*StorefrontPage, error)
	SelectCategory(ctx context.Context, sessionID, category string) (*StorefrontPage, error)
}

type storefrontService struct {
	sessions *SessionManager
	catalog  CatalogService
}

func NewStorefrontService(sessions *SessionManager, catalog CatalogService) StorefrontService {
	return &storefrontService{
		sessions: sessions,
		catalog:  catalog,
	}
}

// Page renders the session's storefront and consumes its pending notification
func (s *storefrontService) Page(ctx context.Context, sessionID string) (*StorefrontPage, error) {
	var notification *model.Notification
	session, err := s.sessions.Update(ctx, sessionID, func(session *model.Session) error {
		notification = session.TakeNotification()
		return nil
	})
	if err != nil {
		return nil, err
	}

	page := s.render(session)
	page.Notification = notification
	return page, nil
}

// SelectCategory stores the category filter; "" selects "All"
func (s *storefrontService) SelectCategory(ctx context.Context, sessionID, category string) (*StorefrontPage, error) {
	if category == "" {
		category = model.CategoryAll
	}

	session, err := s.sessions.Update(ctx, sessionID, func(session *model.Session) error {
		session.SelectedCategory = category
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Category selected", map[string]interface{}{
		"session_id": sessionID,
		"category":   category,
	})
	return s.render(session), nil
}

func (s *storefrontService) render(session *model.Session) *StorefrontPage {
	products := s.catalog.ListProducts(session.SelectedCategory)
	entries := make([]CatalogEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, CatalogEntry{
			Product:  p,
			Favorite: session.Favorites.Contains(p.ID),
		})
	}

	return &StorefrontPage{
		Categories:       s.catalog.Categories(),
		SelectedCategory: session.SelectedCategory,
		Products:         entries,
		Cart:             summarize(&session.Cart),
	}
}
