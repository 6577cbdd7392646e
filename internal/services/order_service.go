package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopnile/storefront-backend/internal/models"
)

// OrderService is the admin-facing order management surface. Orders are
// created only by checkout; this service reads them and moves their status.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

func (s *OrderService) List(status models.OrderStatus) ([]models.Order, error) {
	query := s.db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Preload("Items.Product").
		Preload("Items.Variant").
		Preload("Payment").
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	err := query.Find(&orders).Error
	return orders, err
}

func (s *OrderService) Get(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := s.db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Preload("Items.Product").
		Preload("Items.Variant").
		Preload("Payment").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// ListForUser returns a customer's own orders, newest first.
func (s *OrderService) ListForUser(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("user_id = ?", userID).
		Preload("Items.Product").
		Preload("Payment").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) UpdateStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	result := s.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrOrderNotFound
	}
	return s.Get(id)
}
