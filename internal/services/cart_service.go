package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopnile/storefront-backend/internal/config"
	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/models"
)

var (
	ErrVariantNotFound  = errors.New("variant not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

type CartService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewCartService(db *gorm.DB, cfg *config.Config) *CartService {
	return &CartService{db: db, cfg: cfg}
}

// GetCart returns the user's active cart items joined to variant and product,
// plus computed totals. A user without a cart row gets an empty result, not
// an error.
func (s *CartService) GetCart(userID uuid.UUID) (*dto.CartResponse, error) {
	var cart models.Cart
	err := s.db.Where("user_id = ?", userID).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(models.Active)
		}).
		Preload("Items.Variant.Product").
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.CartResponse{
				Items:  []models.CartItem{},
				Totals: ComputeTotals(decimal.Zero, decimal.Zero, s.cfg),
			}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	subtotal := decimal.Zero
	for _, item := range cart.Items {
		if item.Variant != nil {
			subtotal = subtotal.Add(item.Variant.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	return &dto.CartResponse{
		Items:  cart.Items,
		Totals: ComputeTotals(subtotal, decimal.Zero, s.cfg),
	}, nil
}

// ComputeTotals applies the flat pricing rules: tax is a percentage of the
// subtotal, shipping is free above the configured cutoff. The grand total is
// not clamped to zero here.
func ComputeTotals(subtotal, discount decimal.Decimal, cfg *config.Config) dto.CartTotals {
	tax := subtotal.Mul(cfg.TaxRate).Div(decimal.NewFromInt(100)).Round(2)

	shipping := decimal.Zero
	if subtotal.IsPositive() && subtotal.LessThan(cfg.FreeShippingThreshold) {
		shipping = cfg.ShippingFee
	}

	return dto.CartTotals{
		Subtotal:   subtotal,
		Tax:        tax,
		Shipping:   shipping,
		Discount:   discount,
		GrandTotal: subtotal.Add(tax).Add(shipping).Sub(discount),
	}
}

// AddItem creates the cart lazily on first use and merges quantity when the
// variant is already in the cart.
func (s *CartService) AddItem(userID, variantID uuid.UUID, quantity int) (*models.CartItem, error) {
	var variant models.Variant
	if err := s.db.Scopes(models.Active).First(&variant, "id = ?", variantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariantNotFound
		}
		return nil, err
	}

	var item models.CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			cart = models.Cart{ID: uuid.New(), UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		}

		var existing models.CartItem
		err := tx.Scopes(models.Active).
			Where("cart_id = ? AND variant_id = ?", cart.ID, variantID).
			First(&existing).Error
		switch {
		case err == nil:
			newQty := existing.Quantity + quantity
			if err := tx.Model(&existing).Updates(map[string]interface{}{
				"quantity": newQty,
				"subtotal": variant.Price.Mul(decimal.NewFromInt(int64(newQty))),
			}).Error; err != nil {
				return err
			}
			item = existing
			item.Quantity = newQty
			item.Subtotal = variant.Price.Mul(decimal.NewFromInt(int64(newQty)))
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				ID:        uuid.New(),
				CartID:    cart.ID,
				VariantID: variantID,
				Quantity:  quantity,
				Subtotal:  variant.Price.Mul(decimal.NewFromInt(int64(quantity))),
				Status:    models.StatusActive,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	item.Variant = &variant
	return &item, nil
}

func (s *CartService) UpdateItem(userID, itemID uuid.UUID, quantity int) (*models.CartItem, error) {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}

	subtotal := item.Variant.Price.Mul(decimal.NewFromInt(int64(quantity)))
	if err := s.db.Model(item).Updates(map[string]interface{}{
		"quantity": quantity,
		"subtotal": subtotal,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	item.Quantity = quantity
	item.Subtotal = subtotal
	return item, nil
}

// RemoveItem soft-deletes the row so order history survives.
func (s *CartService) RemoveItem(userID, itemID uuid.UUID) error {
	item, err := s.ownedItem(userID, itemID)
	if err != nil {
		return err
	}
	return s.db.Model(item).Update("status", models.StatusDeleted).Error
}

func (s *CartService) Clear(userID uuid.UUID) error {
	var cart models.Cart
	if err := s.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.db.Model(&models.CartItem{}).
		Where("cart_id = ? AND status = ?", cart.ID, models.StatusActive).
		Update("status", models.StatusDeleted).Error
}

func (s *CartService) ownedItem(userID, itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.Scopes(models.Active).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		Preload("Variant").
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	return &item, nil
}
