package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	NotificationOrder    = "ORDER"
	NotificationPayment  = "PAYMENT"
	NotificationCoupon   = "COUPON"
	NotificationWishlist = "WISHLIST"
	NotificationAdmin    = "ADMIN"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      string    `gorm:"size:30;not null" json:"type"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	Read      bool      `gorm:"default:false;index" json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
