package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shopnile/storefront-backend/internal/dto"
	"github.com/shopnile/storefront-backend/internal/models"
)

var ErrAddressNotFound = errors.New("address not found")

type AddressService struct {
	db *gorm.DB
}

func NewAddressService(db *gorm.DB) *AddressService {
	return &AddressService{db: db}
}

func (s *AddressService) List(userID uuid.UUID) ([]models.Address, error) {
	var addresses []models.Address
	err := s.db.Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addresses).Error
	return addresses, err
}

func (s *AddressService) ListWithDelivery(userID uuid.UUID) ([]dto.AddressWithDelivery, error) {
	addresses, err := s.List(userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AddressWithDelivery, len(addresses))
	for i, addr := range addresses {
		out[i] = dto.AddressWithDelivery{
			Address:           addr,
			EstimatedDelivery: estimateDelivery(addr.State),
		}
	}
	return out, nil
}

func estimateDelivery(state string) string {
	switch strings.ToLower(state) {
	case "lagos":
		return "1-2 days"
	case "abuja":
		return "2-3 days"
	default:
		return "3-7 days"
	}
}

// Create inserts the address; when it is marked default, the other defaults
// are cleared in the same transaction so the user never ends up with zero or
// two defaults.
func (s *AddressService) Create(userID uuid.UUID, req *dto.AddressRequest) (*models.Address, error) {
	address := models.Address{
		ID:        uuid.New(),
		UserID:    userID,
		Label:     req.Label,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Postal:    req.Postal,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (s *AddressService) Update(userID, id uuid.UUID, req *dto.AddressRequest) (*models.Address, error) {
	var address models.Address
	if err := s.db.First(&address, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := tx.Model(&models.Address{}).
				Where("user_id = ? AND id <> ?", userID, id).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(&address).Updates(map[string]interface{}{
			"label":      req.Label,
			"street":     req.Street,
			"city":       req.City,
			"state":      req.State,
			"postal":     req.Postal,
			"country":    req.Country,
			"is_default": req.IsDefault,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.First(&address, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (s *AddressService) Delete(userID, id uuid.UUID) error {
	result := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAddressNotFound
	}
	return nil
}
