package repository

import (
	"errors"

	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"gorm.io/gorm"
)

// ShopRepository creator shop item data access
type ShopRepository interface {
	Create(item *domain.ShopItem) error
	FindByCreator(creatorID uint64) ([]domain.ShopItem, error)
	Delete(id, creatorID uint64) error
}

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new ShopRepository
func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Create(item *domain.ShopItem) error {
	err := r.db.Create(item).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrAlreadyApplied
	}
	return err
}

func (r *shopRepository) FindByCreator(creatorID uint64) ([]domain.ShopItem, error) {
	var items []domain.ShopItem
	err := r.db.
		Where("creator_id = ?", creatorID).
		Preload("Campaign").
		Preload("Campaign.Product").
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *shopRepository) Delete(id, creatorID uint64) error {
	result := r.db.
		Where("id = ? AND creator_id = ?", id, creatorID).
		Delete(&domain.ShopItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}
