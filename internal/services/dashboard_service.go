package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/models"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// Overview aggregates the customer's account state for the dashboard page.
func (s *DashboardService) Overview(userID uuid.UUID) (*dto.DashboardResponse, error) {
	var overview dto.DashboardOverview

	if err := s.db.Model(&models.Order{}).
		Where("user_id = ?", userID).
		Count(&overview.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", userID, models.OrderPending).
		Count(&overview.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", userID, models.OrderDelivered).
		Count(&overview.CompletedOrders).Error; err != nil {
		return nil, err
	}

	var totalSpent decimal.NullDecimal
	if err := s.db.Model(&models.Order{}).
		Where("user_id = ? AND status = ?", userID, models.OrderDelivered).
		Select("SUM(total)").
		Scan(&totalSpent).Error; err != nil {
		return nil, err
	}
	if totalSpent.Valid {
		overview.TotalSpent = totalSpent.Decimal
	} else {
		overview.TotalSpent = decimal.Zero
	}

	if err := s.db.Model(&models.WishlistItem{}).
		Where("user_id = ?", userID).
		Count(&overview.WishlistCount).Error; err != nil {
		return nil, err
	}

	var recentOrders []models.Order
	if err := s.db.Where("user_id = ?", userID).
		Preload("Items.Product").
		Order("created_at DESC").
		Limit(5).
		Find(&recentOrders).Error; err != nil {
		return nil, err
	}

	var wishlist []models.WishlistItem
	if err := s.db.Where("user_id = ?", userID).
		Preload("Product").
		Limit(5).
		Find(&wishlist).Error; err != nil {
		return nil, err
	}

	var notifications []models.Notification
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(5).
		Find(&notifications).Error; err != nil {
		return nil, err
	}

	var addresses []models.Address
	if err := s.db.Where("user_id = ?", userID).
		Order("is_default DESC").
		Find(&addresses).Error; err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Overview:      overview,
		RecentOrders:  recentOrders,
		Wishlist:      wishlist,
		Notifications: notifications,
		Addresses:     addresses,
	}, nil
}
