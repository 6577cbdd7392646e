package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/models"
)

type VariantService struct {
	db *gorm.DB
}

func NewVariantService(db *gorm.DB) *VariantService {
	return &VariantService{db: db}
}

// Upsert creates the variant or, when the (product, sku) pair already
// exists, updates its attributes, stock and price in place.
func (s *VariantService) Upsert(req *dto.UpsertVariantRequest) (*models.Variant, error) {
	variant := models.Variant{
		ID:         uuid.New(),
		ProductID:  req.ProductID,
		SKU:        req.SKU,
		Attributes: datatypes.JSONMap(req.Attributes),
		Stock:      req.Stock,
		Price:      req.Price,
		Status:     models.StatusActive,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}, {Name: "sku"}},
		DoUpdates: clause.AssignmentColumns([]string{"attributes", "stock", "price", "updated_at"}),
	}).Create(&variant).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert variant: %w", err)
	}

	// Re-read so the caller sees the surviving row, not the candidate.
	var saved models.Variant
	if err := s.db.Where("product_id = ? AND sku = ?", req.ProductID, req.SKU).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// BulkUpsert applies a batch of variant upserts for one product atomically.
func (s *VariantService) BulkUpsert(req *dto.BulkUpsertVariantsRequest) ([]models.Variant, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range req.Variants {
			variant := models.Variant{
				ID:         uuid.New(),
				ProductID:  req.ProductID,
				SKU:        entry.SKU,
				Attributes: datatypes.JSONMap(entry.Attributes),
				Stock:      entry.Stock,
				Price:      entry.Price,
				Status:     models.StatusActive,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "product_id"}, {Name: "sku"}},
				DoUpdates: clause.AssignmentColumns([]string{"attributes", "stock", "price", "updated_at"}),
			}).Create(&variant).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to bulk upsert variants: %w", err)
	}

	var saved []models.Variant
	if err := s.db.Where("product_id = ?", req.ProductID).Find(&saved).Error; err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *VariantService) ListByProduct(productID uuid.UUID) ([]models.Variant, error) {
	var variants []models.Variant
	err := s.db.Scopes(models.Active).
		Where("product_id = ?", productID).
		Order("sku ASC").
		Find(&variants).Error
	return variants, err
}

func (s *VariantService) Get(id uuid.UUID) (*models.Variant, error) {
	var variant models.Variant
	err := s.db.First(&variant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, err
	}
	if variant.Status == models.StatusDeleted {
		return nil, ErrVariantNotFound
	}
	return &variant, nil
}

func (s *VariantService) SoftDelete(id uuid.UUID) error {
	result := s.db.Model(&models.Variant{}).Where("id = ?", id).Update("status", models.StatusDeleted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrVariantNotFound
	}
	return nil
}
