package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Category struct {
	ID        uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string       `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Status    EntityStatus `gorm:"size:10;default:'active';index" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Products  []Product    `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	Images      datatypes.JSON  `gorm:"type:jsonb;default:'[]'" json:"images"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	Status      EntityStatus    `gorm:"size:10;default:'active';index" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Category    *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Variants    []Variant       `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

// Variant is a purchasable SKU-level configuration of a product with its own
// price and stock. SKU is unique per product.
type Variant struct {
	ID         uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID  uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_variants_product_sku" json:"product_id"`
	SKU        string            `gorm:"size:100;not null;uniqueIndex:idx_variants_product_sku" json:"sku"`
	Attributes datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"attributes"`
	Stock      int               `gorm:"not null;default:0" json:"stock"`
	Price      decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"price"`
	Status     EntityStatus      `gorm:"size:10;default:'active';index" json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Product    *Product          `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
