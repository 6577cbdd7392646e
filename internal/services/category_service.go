package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopnile/storefront-backend/internal/models"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) Create(name string) (*models.Category, error) {
	category := models.Category{
		ID:     uuid.New(),
		Name:   name,
		Status: models.StatusActive,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Scopes(models.Active).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(models.Active)
		}).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (s *CategoryService) SoftDelete(id uuid.UUID) error {
	return s.setStatus(id, models.StatusDeleted)
}

func (s *CategoryService) Restore(id uuid.UUID) error {
	return s.setStatus(id, models.StatusActive)
}

func (s *CategoryService) setStatus(id uuid.UUID, status models.EntityStatus) error {
	result := s.db.Model(&models.Category{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// HardDelete removes a category together with its products and their
// variants; the whole removal applies atomically or not at all.
func (s *CategoryService) HardDelete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}

		var productIDs []uuid.UUID
		if err := tx.Model(&models.Product{}).
			Where("category_id = ?", id).
			Pluck("id", &productIDs).Error; err != nil {
			return err
		}

		if len(productIDs) > 0 {
			if err := tx.Where("product_id IN ?", productIDs).Delete(&models.Variant{}).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&category).Error
	})
}
