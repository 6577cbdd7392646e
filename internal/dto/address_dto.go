package dto

import "github.com/shopnile/storefront-backend/internal/models"

type AddressRequest struct {
	Label     string `json:"label,omitempty" validate:"omitempty,max=100"`
	Street    string `json:"street" validate:"required,max=255"`
	City      string `json:"city" validate:"required,max=100"`
	State     string `json:"state" validate:"required,max=100"`
	Postal    string `json:"postal,omitempty" validate:"omitempty,max=20"`
	Country   string `json:"country" validate:"required,max=100"`
	IsDefault bool   `json:"is_default"`
}

type AddressWithDelivery struct {
	models.Address
	EstimatedDelivery string `json:"estimated_delivery"`
}
