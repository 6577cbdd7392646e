package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending             PaymentStatus = "PENDING"
	PaymentPendingConfirmation PaymentStatus = "PENDING_CONFIRMATION"
	PaymentCompleted           PaymentStatus = "COMPLETED"
)

const (
	PaymentMethodPaystack     = "PAYSTACK"
	PaymentMethodCard         = "CARD"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
)

type Order struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Status    OrderStatus     `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	AddressID *uuid.UUID      `gorm:"type:uuid" json:"address_id,omitempty"`
	CouponID  *uuid.UUID      `gorm:"type:uuid" json:"coupon_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	User      User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payment   *Payment        `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
}

// OrderItem freezes the unit price at order-creation time; later variant
// price changes do not affect it.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	VariantID uuid.UUID       `gorm:"type:uuid;not null;index" json:"variant_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Variant   *Variant        `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
}

type Payment struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Method    string          `gorm:"size:30;not null" json:"method"`
	Status    PaymentStatus   `gorm:"size:30;not null;default:'PENDING';index" json:"status"`
	Reference string          `gorm:"size:100;index" json:"reference"`
	Receipt   string          `gorm:"size:255" json:"receipt,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
