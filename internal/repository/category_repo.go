package repository

import (
	"github.com/adbridge/adbridge-backend/internal/domain"
	"gorm.io/gorm"
)

// CategoryRepository product category data access
type CategoryRepository interface {
	FindAll() ([]domain.ProductCategory, error)
	FindChildIDs(parentID uint64) ([]uint64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindAll() ([]domain.ProductCategory, error) {
	var rows []domain.ProductCategory
	err := r.db.Order("depth ASC, id ASC").Find(&rows).Error
	return rows, err
}

func (r *categoryRepository) FindChildIDs(parentID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&domain.ProductCategory{}).
		Where("parent_id = ?", parentID).
		Pluck("id", &ids).Error
	return ids, err
}
