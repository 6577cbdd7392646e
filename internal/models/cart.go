package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is created lazily on the first add-to-cart call and never deleted.
type Cart struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Items     []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

// CartItem rows are soft-deleted on removal so order history survives.
// Subtotal is quantity x variant price at last write.
type CartItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CartID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"cart_id"`
	VariantID uuid.UUID       `gorm:"type:uuid;not null;index" json:"variant_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	Status    EntityStatus    `gorm:"size:10;default:'active';index" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Variant   *Variant        `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
}
