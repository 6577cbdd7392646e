package services

import (
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

// Notify creates a notification row. Failures are logged, never propagated:
// a missed notification must not fail the operation that triggered it.
func (s *NotificationService) Notify(userID uuid.UUID, kind, title, message string) {
	n := models.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
	}
	if err := s.db.Create(&n).Error; err != nil {
		slog.Error("failed to create notification", "error", err, "user_id", userID.String(), "type", kind)
	}
}

// NotifyAdmins fans a notification out to every admin account.
func (s *NotificationService) NotifyAdmins(title, message string) {
	var admins []models.User
	if err := s.db.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err != nil {
		slog.Error("failed to load admin users for notification", "error", err)
		return
	}
	for _, admin := range admins {
		s.Notify(admin.ID, models.NotificationAdmin, title, message)
	}
}

func (s *NotificationService) List(userID uuid.UUID, page, limit int) (*dto.NotificationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var notifications []models.Notification
	var total, unread int64

	if err := s.db.Model(&models.Notification{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Count(&unread).Error; err != nil {
		return nil, err
	}

	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		TotalPages:    int(math.Ceil(float64(total) / float64(limit))),
		CurrentPage:   page,
		UnreadCount:   unread,
	}, nil
}

func (s *NotificationService) MarkRead(userID, id uuid.UUID) error {
	result := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	return s.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = false", userID).
		Update("read", true).Error
}
