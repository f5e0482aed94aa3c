package model

import (
	"fmt"
	"time"
)

// Session is the UI state of one storefront session.
type Session struct {
	ID               string        `json:"id"`
	Cart             Cart          `json:"cart"`
	Favorites        FavoriteSet   `json:"favorites"`
	SelectedCategory string        `json:"selected_category"`
	Notification     *Notification `json:"notification,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:               id,
		SelectedCategory: CategoryAll,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// NotifyAdded raises the add-to-cart notification for product, replacing any pending one.
func (s *Session) NotifyAdded(product Product, now time.Time) {
	s.Notification = &Notification{
		Type:      NotificationCartAdded,
		Message:   fmt.Sprintf("%s added to cart", product.Name),
		ProductID: product.ID,
		CreatedAt: now,
	}
}

// TakeNotification returns the pending notification and clears it.
func (s *Session) TakeNotification() *Notification {
	n := s.Notification
	s.Notification = nil
	return n
}

// Clone returns a deep copy so stores never share mutable state with callers.
func (s *Session) Clone() *Session {
	clone := *s
	clone.Cart = s.Cart.Clone()
	clone.Favorites = s.Favorites.Clone()
	if s.Notification != nil {
		n := *s.Notification
		clone.Notification = &n
	}
	return &clone
}
