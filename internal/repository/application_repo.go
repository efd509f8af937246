package repository

import (
	"errors"

	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"gorm.io/gorm"
)

// ApplicationRepository campaign application data access
type ApplicationRepository interface {
	Create(app *domain.Application) error
	FindByID(id uint64) (*domain.Application, error)
	UpdateStatus(id uint64, status domain.ApplicationStatus) error
	FindPendingByAdvertiser(advertiserID uint64) ([]domain.Application, error)
	FindDecidedByCampaign(campaignID uint64) ([]domain.Application, error)
	FindApprovedByCreator(creatorID uint64) ([]domain.Application, error)
	CountApproved(campaignIDs []uint64) (int64, error)
	ExistsApproved(campaignID, creatorID uint64) (bool, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts an application. The (campaign_id, creator_id) unique index
// turns a second application into ErrAlreadyApplied.
func (r *applicationRepository) Create(app *domain.Application) error {
	err := r.db.Create(app).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrAlreadyApplied
	}
	return err
}

func (r *applicationRepository) FindByID(id uint64) (*domain.Application, error) {
	var app domain.Application
	err := r.db.
		Preload("Campaign").
		Where("id = ?", id).
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) UpdateStatus(id uint64, status domain.ApplicationStatus) error {
	result := r.db.Model(&domain.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.ErrApplicationNotFound
	}
	return nil
}

// FindPendingByAdvertiser lists pending applications across every campaign
// the advertiser owns, newest first.
func (r *applicationRepository) FindPendingByAdvertiser(advertiserID uint64) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.
		Joins("JOIN campaigns ON campaigns.id = campaign_applications.campaign_id").
		Where("campaign_applications.status = ? AND campaigns.advertiser_id = ?",
			domain.ApplicationPending, advertiserID).
		Preload("Campaign").
		Preload("Campaign.Product").
		Preload("Creator").
		Preload("Creator.CreatorDetail").
		Order("campaign_applications.created_at DESC").
		Find(&apps).Error
	return apps, err
}

// FindDecidedByCampaign lists approved and rejected applications for a
// campaign (the advertiser's creator-management view).
func (r *applicationRepository) FindDecidedByCampaign(campaignID uint64) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.
		Where("campaign_id = ? AND status IN ?", campaignID,
			[]domain.ApplicationStatus{domain.ApplicationApproved, domain.ApplicationRejected}).
		Preload("Creator").
		Preload("Creator.CreatorDetail").
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindApprovedByCreator(creatorID uint64) ([]domain.Application, error) {
	var apps []domain.Application
	err := r.db.
		Where("creator_id = ? AND status = ?", creatorID, domain.ApplicationApproved).
		Preload("Campaign").
		Preload("Campaign.Product").
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) CountApproved(campaignIDs []uint64) (int64, error) {
	if len(campaignIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&domain.Application{}).
		Where("campaign_id IN ? AND status = ?", campaignIDs, domain.ApplicationApproved).
		Count(&count).Error
	return count, err
}

func (r *applicationRepository) ExistsApproved(campaignID, creatorID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Application{}).
		Where("campaign_id = ? AND creator_id = ? AND status = ?",
			campaignID, creatorID, domain.ApplicationApproved).
		Count(&count).Error
	return count > 0, err
}
