package service

import (
	"testing"

	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"github.com/adbridge/adbridge-backend/internal/repository"
	"github.com/stretchr/testify/assert"
)

type statsCampaignRepo struct {
	repository.CampaignRepository
	campaign *domain.Campaign
}

func (s *statsCampaignRepo) FindByID(id uint64) (*domain.Campaign, error) {
	if s.campaign == nil || s.campaign.ID != id {
		return nil, common.ErrCampaignNotFound
	}
	return s.campaign, nil
}

type statsClickRepo struct {
	repository.ClickRepository
	count int64
}

func (s *statsClickRepo) CountByCampaign(campaignID uint64) (int64, error) {
	return s.count, nil
}

func TestCampaignStatsCPCSpend(t *testing.T) {
	amount := 500.0
	svc := NewStatsService(
		&statsCampaignRepo{campaign: &domain.Campaign{ID: 1, AdvertiserID: 7, RewardType: domain.RewardCPC, RewardAmount: &amount}},
		nil,
		&statsClickRepo{count: 3},
	)

	stats, err := svc.CampaignStats(7, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalClicks)
	assert.Equal(t, 1500.0, stats.EstimatedSpend)
}

func TestCampaignStatsCPSSpendIsZero(t *testing.T) {
	amount := 500.0
	svc := NewStatsService(
		&statsCampaignRepo{campaign: &domain.Campaign{ID: 1, AdvertiserID: 7, RewardType: domain.RewardCPS, RewardAmount: &amount}},
		nil,
		&statsClickRepo{count: 10},
	)

	stats, err := svc.CampaignStats(7, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalClicks)
	assert.Zero(t, stats.EstimatedSpend)
}

func TestCampaignStatsForeignAdvertiser(t *testing.T) {
	amount := 500.0
	svc := NewStatsService(
		&statsCampaignRepo{campaign: &domain.Campaign{ID: 1, AdvertiserID: 7, RewardType: domain.RewardCPC, RewardAmount: &amount}},
		nil,
		&statsClickRepo{},
	)

	_, err := svc.CampaignStats(8, 1)
	assert.ErrorIs(t, err, common.ErrForbidden)
}
