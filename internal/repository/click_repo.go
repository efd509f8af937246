package repository

import (
	"github.com/adbridge/adbridge-backend/internal/domain"
	"gorm.io/gorm"
)

// ClickRepository append-only click attribution storage. Clicks are never
// updated or deleted; all aggregates are derived by counting rows.
type ClickRepository interface {
	Create(click *domain.Click) error
	CountByCampaign(campaignID uint64) (int64, error)
	CountByCampaigns(campaignIDs []uint64) (map[uint64]int64, error)
	CountByCampaignPerCreator(campaignID uint64) (map[uint64]int64, error)
	CountByCreatorPerCampaign(creatorID uint64) (map[uint64]int64, error)
}

type clickRepository struct {
	db *gorm.DB
}

// NewClickRepository creates a new ClickRepository
func NewClickRepository(db *gorm.DB) ClickRepository {
	return &clickRepository{db: db}
}

func (r *clickRepository) Create(click *domain.Click) error {
	return r.db.Create(click).Error
}

func (r *clickRepository) CountByCampaign(campaignID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Click{}).
		Where("campaign_id = ?", campaignID).
		Count(&count).Error
	return count, err
}

type countRow struct {
	Key   uint64 `gorm:"column:k"`
	Count int64  `gorm:"column:cnt"`
}

// CountByCampaigns returns click counts keyed by campaign ID
func (r *clickRepository) CountByCampaigns(campaignIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return counts, nil
	}
	var rows []countRow
	err := r.db.Model(&domain.Click{}).
		Select("campaign_id AS k, COUNT(*) AS cnt").
		Where("campaign_id IN ?", campaignIDs).
		Group("campaign_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// CountByCampaignPerCreator returns click counts keyed by creator ID for
// one campaign (advertiser's creator-management view)
func (r *clickRepository) CountByCampaignPerCreator(campaignID uint64) (map[uint64]int64, error) {
	var rows []countRow
	err := r.db.Model(&domain.Click{}).
		Select("creator_id AS k, COUNT(*) AS cnt").
		Where("campaign_id = ?", campaignID).
		Group("creator_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// CountByCreatorPerCampaign returns click counts keyed by campaign ID for
// one creator (creator dashboard)
func (r *clickRepository) CountByCreatorPerCampaign(creatorID uint64) (map[uint64]int64, error) {
	var rows []countRow
	err := r.db.Model(&domain.Click{}).
		Select("campaign_id AS k, COUNT(*) AS cnt").
		Where("creator_id = ?", creatorID).
		Group("campaign_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}
