package service

import (
	"context"
	"errors"

	"github.com/ikkim/storefront/internal/app/model"
	"github.com/ikkim/storefront/internal/app/repository"
	"github.com/ikkim/storefront/pkg/logger"
)

// CartSummary is what the cart sidebar and the badge render from
type CartSummary struct {
	Items    []model.LineItem `json:"items"`
	Count    int              `json:"count"`
	Lines    int              `json:"lines"`
	Subtotal float64          `json:"subtotal"`
}

func summarize(cart *model.Cart) *CartSummary {
	return &CartSummary{
		Items:    cart.Items(),
		Count:    cart.TotalCount(),
		Lines:    cart.Len(),
		Subtotal: cart.Subtotal(),
	}
}

// CartService folds cart events into a session's cart.
// Product IDs that are not in the catalog or not in the cart are no-ops, never errors.
type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*CartSummary, error)
	TotalCount(ctx context.Context, sessionID string) (int, error)
	AddItem(ctx context.Context, sessionID, productID string) (*CartSummary, *model.Notification, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*CartSummary, error)
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*CartSummary, error)
	ClearCart(ctx context.Context, sessionID string) (*CartSummary, error)
}

type cartService struct {
	sessions    *SessionManager
	productRepo repository.ProductRepository
}

func NewCartService(sessions *SessionManager, productRepo repository.ProductRepository) CartService {
	return &cartService{
		sessions:    sessions,
		productRepo: productRepo,
	}
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*CartSummary, error) {
	session, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return summarize(&session.Cart), nil
}

func (s *cartService) TotalCount(ctx context.Context, sessionID string) (int, error) {
	session, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return session.Cart.TotalCount(), nil
}

// AddItem resolves productID in the catalog, adds it and raises the add-to-cart notification
func (s *cartService) AddItem(ctx context.Context, sessionID, productID string) (*CartSummary, *model.Notification, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if !errors.Is(err, repository.ErrProductNotFound) {
			return nil, nil, err
		}
		logger.Warn("Ignoring add to cart for unknown product", map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
		})
		summary, err := s.GetCart(ctx, sessionID)
		return summary, nil, err
	}

	var notification *model.Notification
	session, err := s.sessions.Update(ctx, sessionID, func(session *model.Session) error {
		session.Cart.AddItem(*product)
		session.NotifyAdded(*product, s.sessions.now())
		n := *session.Notification
		notification = &n
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	item, _ := session.Cart.Get(productID)
	logger.Info("Item added to cart", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
		"quantity":   item.Quantity,
		"count":      session.Cart.TotalCount(),
	})
	return summarize(&session.Cart), notification, nil
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID, productID string) (*CartSummary, error) {
	removed := false
	session, err := s.sessions.Update(ctx, sessionID, func(session *model.Session) error {
		removed = session.Cart.RemoveItem(productID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Cart item removal processed", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
		"removed":    removed,
	})
	return summarize(&session.Cart), nil
}

// SetQuantity overwrites a line's quantity; zero or less removes the line
func (s *cartService) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*CartSummary, error) {
	changed := false
	session, err := s.sessions.Update(ctx, sessionID, func(session *model.Session) error {
		changed = session.Cart.SetQuantity(productID, quantity)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Cart quantity update processed", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
		"quantity":   quantity,
		"changed":    changed,
	})
	return summarize(&session.Cart), nil
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) (*CartSummary, error) {
	session, err := s.sessions.Update(ctx, sessionID, func(session *model.Session) error {
		session.Cart.Clear()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Cart cleared", map[string]interface{}{
		"session_id": sessionID,
	})
	return summarize(&session.Cart), nil
}
