package repository

import (
	"errors"

	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"gorm.io/gorm"
)

// CampaignFilter narrows the public campaign listing
type CampaignFilter struct {
	Keyword     string
	CategoryIDs []uint64
	Page        int
	Limit       int
}

// Destination is the resolved redirect target for a campaign
type Destination struct {
	CampaignID uint64
	TargetURL  string
}

// CampaignRepository campaign and product data access
type CampaignRepository interface {
	CreateWithProduct(campaign *domain.Campaign, product *domain.Product) error
	FindByID(id uint64) (*domain.Campaign, error)
	FindActiveByID(id uint64) (*domain.Campaign, error)
	FindActive(filter CampaignFilter) ([]domain.Campaign, int64, error)
	FindByAdvertiser(advertiserID uint64) ([]domain.Campaign, error)
	FindOwnedIDs(advertiserID uint64) ([]uint64, error)
	Update(campaign *domain.Campaign) error
	ResolveDestination(campaignID uint64) (*Destination, error)
}

type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new CampaignRepository
func NewCampaignRepository(db *gorm.DB) CampaignRepository {
	return &campaignRepository{db: db}
}

// CreateWithProduct inserts the product and its campaign in one transaction
func (r *campaignRepository) CreateWithProduct(campaign *domain.Campaign, product *domain.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		campaign.ProductID = product.ID
		if err := tx.Create(campaign).Error; err != nil {
			return err
		}
		campaign.Product = product
		return nil
	})
}

func (r *campaignRepository) FindByID(id uint64) (*domain.Campaign, error) {
	var campaign domain.Campaign
	err := r.db.
		Preload("Product").
		Preload("Product.Category").
		Where("id = ?", id).
		First(&campaign).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// FindActiveByID is FindByID restricted to active campaigns (creator view)
func (r *campaignRepository) FindActiveByID(id uint64) (*domain.Campaign, error) {
	var campaign domain.Campaign
	err := r.db.
		Preload("Product").
		Preload("Product.Category").
		Where("id = ? AND status = ?", id, domain.CampaignActive).
		First(&campaign).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepository) FindActive(filter CampaignFilter) ([]domain.Campaign, int64, error) {
	query := r.db.Model(&domain.Campaign{}).
		Where("campaigns.status = ?", domain.CampaignActive)

	// Keyword and category filters apply to the joined product
	if filter.Keyword != "" || len(filter.CategoryIDs) > 0 {
		query = query.Joins("JOIN products ON products.id = campaigns.product_id")
		if filter.Keyword != "" {
			query = query.Where("products.name LIKE ?", "%"+filter.Keyword+"%")
		}
		if len(filter.CategoryIDs) > 0 {
			query = query.Where("products.category_id IN ?", filter.CategoryIDs)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var campaigns []domain.Campaign
	err := query.
		Preload("Product").
		Preload("Product.Category").
		Order("campaigns.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&campaigns).Error
	return campaigns, total, err
}

func (r *campaignRepository) FindByAdvertiser(advertiserID uint64) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	err := r.db.
		Preload("Product").
		Where("advertiser_id = ?", advertiserID).
		Order("created_at DESC").
		Find(&campaigns).Error
	return campaigns, err
}

func (r *campaignRepository) FindOwnedIDs(advertiserID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.Model(&domain.Campaign{}).
		Where("advertiser_id = ?", advertiserID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *campaignRepository) Update(campaign *domain.Campaign) error {
	return r.db.Save(campaign).Error
}

// ResolveDestination looks up the campaign's product destination URL with a
// single join. This is the tracking endpoint's hot path: no preloads, no
// full row materialization.
func (r *campaignRepository) ResolveDestination(campaignID uint64) (*Destination, error) {
	var dest Destination
	err := r.db.Table("campaigns").
		Select("campaigns.id AS campaign_id, products.target_url").
		Joins("JOIN products ON products.id = campaigns.product_id").
		Where("campaigns.id = ?", campaignID).
		Take(&dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dest, nil
}
