package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductDeleted  = errors.New("product is deleted and cannot be updated")
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) Create(req *dto.CreateProductRequest) (*models.Product, error) {
	images, err := marshalImages(req.Images)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Description: req.Description,
		Images:      images,
		Stock:       req.Stock,
		Status:      models.StatusActive,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *ProductService) List() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Scopes(models.Active).
		Preload("Category").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(models.Active)
		}).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (s *ProductService) Get(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.
		Preload("Category").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(models.Active)
		}).
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Update(id uuid.UUID, req *dto.UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if product.Status == models.StatusDeleted {
		return nil, ErrProductDeleted
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Images != nil {
		images, err := marshalImages(req.Images)
		if err != nil {
			return nil, err
		}
		updates["images"] = images
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	if err := s.db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) SoftDelete(id uuid.UUID) error {
	return s.setStatus(id, models.StatusDeleted)
}

func (s *ProductService) Recover(id uuid.UUID) error {
	return s.setStatus(id, models.StatusActive)
}

func (s *ProductService) setStatus(id uuid.UUID, status models.EntityStatus) error {
	result := s.db.Model(&models.Product{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// HardDelete removes the product and its variants permanently.
func (s *ProductService) HardDelete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Variant{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}

func marshalImages(images []string) (datatypes.JSON, error) {
	if images == nil {
		images = []string{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode images: %w", err)
	}
	return datatypes.JSON(b), nil
}
