package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WishlistItem tracks a product a user wants, plus the last price/stock the
// user was notified about so the watcher only fires on real changes.
type WishlistItem struct {
	ID                uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID            uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product" json:"user_id"`
	ProductID         uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product" json:"product_id"`
	LastKnownPrice    decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"last_known_price"`
	LastNotifiedPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"last_notified_price,omitempty"`
	LastNotifiedStock *int             `json:"last_notified_stock,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Product           *Product         `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User              User             `gorm:"foreignKey:UserID" json:"-"`
}
