package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopnile/storefront-backend/internal/models"
)

var (
	ErrWishlistDuplicate = errors.New("item already in wishlist")
	ErrWishlistNotFound  = errors.New("wishlist item not found")
)

type WishlistService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewWishlistService(db *gorm.DB, notifications *NotificationService) *WishlistService {
	return &WishlistService{db: db, notifications: notifications}
}

func (s *WishlistService) List(userID uuid.UUID) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := s.db.Where("user_id = ?", userID).
		Preload("Product").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// Add records the product with its current price as the baseline the
// watcher compares against.
func (s *WishlistService) Add(userID, productID uuid.UUID) (*models.WishlistItem, error) {
	var product models.Product
	if err := s.db.Scopes(models.Active).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var existing models.WishlistItem
	err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error
	if err == nil {
		return nil, ErrWishlistDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stock := product.Stock
	item := models.WishlistItem{
		ID:                uuid.New(),
		UserID:            userID,
		ProductID:         productID,
		LastKnownPrice:    product.Price,
		LastNotifiedStock: &stock, // baseline, so an in-stock add does not fire a restock alert
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	item.Product = &product
	return &item, nil
}

func (s *WishlistService) Remove(userID, productID uuid.UUID) error {
	result := s.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWishlistNotFound
	}
	return nil
}

// StartWatcher runs a periodic check of every wishlisted product for price
// drops and restocks, notifying only on changes since the last notification.
func (s *WishlistService) StartWatcher(interval time.Duration, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.checkUpdates()
			case <-done:
				return
			}
		}
	}()
}

func (s *WishlistService) checkUpdates() {
	var entries []models.WishlistItem
	if err := s.db.Preload("Product").Find(&entries).Error; err != nil {
		slog.Error("wishlist watcher failed to load entries", "error", err)
		return
	}

	for _, entry := range entries {
		if entry.Product == nil {
			continue
		}
		product := entry.Product

		notify := false
		message := ""

		baseline := entry.LastKnownPrice
		if entry.LastNotifiedPrice != nil {
			baseline = *entry.LastNotifiedPrice
		}
		if product.Price.LessThan(baseline) {
			notify = true
			message += fmt.Sprintf("Price dropped! %s is now %s (was %s). ",
				product.Name, product.Price.StringFixed(2), baseline.StringFixed(2))
			price := product.Price
			if err := s.db.Model(&entry).Updates(map[string]interface{}{
				"last_notified_price": price,
				"last_known_price":    price,
			}).Error; err != nil {
				slog.Error("wishlist watcher failed to update price state", "error", err, "wishlist_id", entry.ID.String())
			}
		}

		if product.Stock > 0 && (entry.LastNotifiedStock == nil || *entry.LastNotifiedStock == 0) {
			notify = true
			message += fmt.Sprintf("%s is back in stock!", product.Name)
			if err := s.db.Model(&entry).Update("last_notified_stock", product.Stock).Error; err != nil {
				slog.Error("wishlist watcher failed to update stock state", "error", err, "wishlist_id", entry.ID.String())
			}
		}

		if notify {
			s.notifications.Notify(entry.UserID, models.NotificationWishlist, "Wishlist Update", message)
		}
	}
}
