package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Description string          `json:"description,omitempty"`
	Images      []string        `json:"images,omitempty"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description *string          `json:"description,omitempty"`
	Images      []string         `json:"images,omitempty"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
}

type UpsertVariantRequest struct {
	ProductID  uuid.UUID              `json:"product_id" validate:"required"`
	SKU        string                 `json:"sku" validate:"required,max=100"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	Stock      int                    `json:"stock" validate:"gte=0"`
	Price      decimal.Decimal        `json:"price" validate:"required"`
}

type BulkVariantEntry struct {
	SKU        string                 `json:"sku" validate:"required,max=100"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	Stock      int                    `json:"stock" validate:"gte=0"`
	Price      decimal.Decimal        `json:"price" validate:"required"`
}

type BulkUpsertVariantsRequest struct {
	ProductID uuid.UUID          `json:"product_id" validate:"required"`
	Variants  []BulkVariantEntry `json:"variants" validate:"required,min=1,dive"`
}
