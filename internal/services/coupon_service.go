package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/models"
)

type CouponService struct {
	db *gorm.DB
}

func NewCouponService(db *gorm.DB) *CouponService {
	return &CouponService{db: db}
}

// GenerateCouponParams describes a coupon to mint, either by an admin or by
// the loyalty auto-issue path.
type GenerateCouponParams struct {
	Prefix       string
	DiscountType models.DiscountType
	Value        decimal.Decimal
	UsageLimit   *int
	PerUserLimit *int
	ExpiresIn    time.Duration
	MinOrders    int
	ProductLimit *int
	Categories   []uuid.UUID
	Products     []uuid.UUID
}

// Generate creates a coupon with a random code and its category/product
// scoping rows in one transaction.
func (s *CouponService) Generate(p GenerateCouponParams) (*models.Coupon, error) {
	prefix := p.Prefix
	if prefix == "" {
		prefix = "GEN"
	}
	if p.ExpiresIn <= 0 {
		p.ExpiresIn = 30 * 24 * time.Hour
	}

	suffix, err := randomCode(6)
	if err != nil {
		return nil, fmt.Errorf("failed to generate coupon code: %w", err)
	}

	coupon := models.Coupon{
		ID:           uuid.New(),
		Code:         prefix + "-" + suffix,
		DiscountType: p.DiscountType,
		Value:        p.Value,
		UsageLimit:   p.UsageLimit,
		PerUserLimit: p.PerUserLimit,
		MinOrders:    p.MinOrders,
		ProductLimit: p.ProductLimit,
		ExpiresAt:    time.Now().Add(p.ExpiresIn),
		IsActive:     true,
		Status:       models.StatusActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&coupon).Error; err != nil {
			return err
		}
		for _, catID := range p.Categories {
			if err := tx.Create(&models.CouponCategory{ID: uuid.New(), CouponID: coupon.ID, CategoryID: catID}).Error; err != nil {
				return err
			}
		}
		for _, prodID := range p.Products {
			if err := tx.Create(&models.CouponProduct{ID: uuid.New(), CouponID: coupon.ID, ProductID: prodID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}

	return &coupon, nil
}

func (s *CouponService) List() ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := s.db.Scopes(models.Active).
		Preload("Categories.Category").
		Preload("Products.Product").
		Preload("Redemptions").
		Order("created_at DESC").
		Find(&coupons).Error
	return coupons, err
}

func (s *CouponService) Get(id uuid.UUID) (*models.Coupon, error) {
	var coupon models.Coupon
	err := s.db.
		Preload("Categories.Category").
		Preload("Products.Product").
		Preload("Redemptions").
		First(&coupon, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return &coupon, nil
}

// SoftDelete deactivates a coupon and marks it deleted; the row and its
// redemption history survive.
func (s *CouponService) SoftDelete(id uuid.UUID) error {
	result := s.db.Model(&models.Coupon{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "status": models.StatusDeleted})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCouponNotFound
	}
	return nil
}

func (s *CouponService) Restore(id uuid.UUID) error {
	result := s.db.Model(&models.Coupon{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": true, "status": models.StatusActive})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCouponNotFound
	}
	return nil
}

// PreviewDiscount does the discount arithmetic for the cart page before
// checkout. It only checks that the coupon exists, is active and unexpired;
// usage and per-user limits are enforced at checkout, not here, so the
// preview can show a discount that the final checkout still rejects.
func (s *CouponService) PreviewDiscount(code string, items []dto.PreviewCartItem) (decimal.Decimal, error) {
	var coupon models.Coupon
	err := s.db.Scopes(models.Active).
		Where("code = ? AND is_active = true AND expires_at > ?", code, time.Now()).
		First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, ErrCouponNotFound
		}
		return decimal.Zero, err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return RawDiscount(&coupon, subtotal), nil
}

// ValidateAndApply enforces the full rule sequence and records the
// redemption. It must run inside the caller's transaction: the coupon row is
// locked so the count-then-insert pair cannot race with a concurrent
// redemption at the limit boundary.
func (s *CouponService) ValidateAndApply(tx *gorm.DB, code string, userID, orderID uuid.UUID, lineCount int, total decimal.Decimal) (discount, newTotal decimal.Decimal, couponID uuid.UUID, err error) {
	var coupon models.Coupon
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("code = ?", code).
		First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, total, uuid.Nil, ErrCouponNotFound
		}
		return decimal.Zero, total, uuid.Nil, err
	}

	var counts RedemptionCounts
	if err = tx.Model(&models.CouponRedemption{}).
		Where("coupon_id = ?", coupon.ID).
		Count(&counts.Total).Error; err != nil {
		return decimal.Zero, total, uuid.Nil, err
	}
	if err = tx.Model(&models.CouponRedemption{}).
		Where("coupon_id = ? AND user_id = ?", coupon.ID, userID).
		Count(&counts.ByUser).Error; err != nil {
		return decimal.Zero, total, uuid.Nil, err
	}

	discount, newTotal, err = EvaluateCoupon(&coupon, counts, lineCount, total, time.Now())
	if err != nil {
		return decimal.Zero, total, uuid.Nil, err
	}

	redemption := models.CouponRedemption{
		ID:       uuid.New(),
		CouponID: coupon.ID,
		UserID:   userID,
		OrderID:  orderID,
	}
	if err = tx.Create(&redemption).Error; err != nil {
		return decimal.Zero, total, uuid.Nil, fmt.Errorf("failed to record redemption: %w", err)
	}

	return discount, newTotal, coupon.ID, nil
}

const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randomCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	var b strings.Builder
	for _, c := range buf {
		b.WriteByte(codeCharset[int(c)%len(codeCharset)])
	}
	return b.String(), nil
}
