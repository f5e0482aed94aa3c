package model

import "time"

type NotificationType string

const (
	NotificationCartAdded NotificationType = "cart_added" // 장바구니 담기
)

// Notification is a transient message shown once after an add-to-cart.
type Notification struct {
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	ProductID string           `json:"product_id"`
	CreatedAt time.Time        `json:"created_at"`
}
