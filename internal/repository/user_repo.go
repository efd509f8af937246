package repository

import (
	"errors"

	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository user and role-detail data access
type UserRepository interface {
	FindByID(id uint64) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	Create(user *domain.User) error
	UpsertCreatorDetail(detail *domain.CreatorDetail) error
	UpsertAdvertiserDetail(detail *domain.AdvertiserDetail) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uint64) (*domain.User, error) {
	var user domain.User
	err := r.db.
		Preload("CreatorDetail").
		Preload("AdvertiserDetail").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.
		Preload("CreatorDetail").
		Preload("AdvertiserDetail").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts the user and its role detail in one transaction
func (r *userRepository) Create(user *domain.User) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		detailCreator := user.CreatorDetail
		detailAdvertiser := user.AdvertiserDetail
		user.CreatorDetail = nil
		user.AdvertiserDetail = nil

		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if detailCreator != nil {
			detailCreator.UserID = user.ID
			if err := tx.Create(detailCreator).Error; err != nil {
				return err
			}
			user.CreatorDetail = detailCreator
		}
		if detailAdvertiser != nil {
			detailAdvertiser.UserID = user.ID
			if err := tx.Create(detailAdvertiser).Error; err != nil {
				return err
			}
			user.AdvertiserDetail = detailAdvertiser
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrUserAlreadyExists
	}
	return err
}

func (r *userRepository) UpsertCreatorDetail(detail *domain.CreatorDetail) error {
	return r.db.Save(detail).Error
}

func (r *userRepository) UpsertAdvertiserDetail(detail *domain.AdvertiserDetail) error {
	return r.db.Save(detail).Error
}
