package dto

import (
	"github.com/shopspring/decimal"

	"github.com/shopnile/storefront-backend/internal/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING DELIVERED CANCELLED"`
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	TotalPages    int                   `json:"total_pages"`
	CurrentPage   int                   `json:"current_page"`
	UnreadCount   int64                 `json:"unread_count"`
}

type DashboardOverview struct {
	TotalOrders     int64           `json:"total_orders"`
	PendingOrders   int64           `json:"pending_orders"`
	CompletedOrders int64           `json:"completed_orders"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	WishlistCount   int64           `json:"wishlist_count"`
}

type DashboardResponse struct {
	Overview      DashboardOverview     `json:"overview"`
	RecentOrders  []models.Order        `json:"recent_orders"`
	Wishlist      []models.WishlistItem `json:"wishlist"`
	Notifications []models.Notification `json:"notifications"`
	Addresses     []models.Address      `json:"addresses"`
}
