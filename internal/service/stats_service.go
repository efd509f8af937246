package service

import (
	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"github.com/adbridge/adbridge-backend/internal/repository"
)

// StatsService computes dashboard aggregates on demand. No materialized
// counters exist anywhere: every figure is a COUNT over the clicks and
// applications tables, so totals can never drift.
type StatsService struct {
	campaignRepo repository.CampaignRepository
	appRepo      repository.ApplicationRepository
	clickRepo    repository.ClickRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(
	campaignRepo repository.CampaignRepository,
	appRepo repository.ApplicationRepository,
	clickRepo repository.ClickRepository,
) *StatsService {
	return &StatsService{
		campaignRepo: campaignRepo,
		appRepo:      appRepo,
		clickRepo:    clickRepo,
	}
}

// CampaignStats returns click totals and estimated spend for one owned
// campaign. Spend is clicks x reward_amount for cpc; cps campaigns report 0
// since sale tracking is not implemented.
func (s *StatsService) CampaignStats(advertiserID, campaignID uint64) (*domain.CampaignStatsResponse, error) {
	campaign, err := s.campaignRepo.FindByID(campaignID)
	if err != nil {
		return nil, err
	}
	if campaign.AdvertiserID != advertiserID {
		return nil, common.ErrForbidden
	}

	clicks, err := s.clickRepo.CountByCampaign(campaignID)
	if err != nil {
		return nil, err
	}

	var spend float64
	if campaign.RewardType == domain.RewardCPC && campaign.RewardAmount != nil {
		spend = float64(clicks) * *campaign.RewardAmount
	}

	return &domain.CampaignStatsResponse{
		TotalClicks:    clicks,
		EstimatedSpend: spend,
	}, nil
}

// DashboardStats rolls up totals over every campaign the advertiser owns
func (s *StatsService) DashboardStats(advertiserID uint64) (*domain.DashboardStatsResponse, error) {
	campaignIDs, err := s.campaignRepo.FindOwnedIDs(advertiserID)
	if err != nil {
		return nil, err
	}

	clickCounts, err := s.clickRepo.CountByCampaigns(campaignIDs)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, n := range clickCounts {
		total += n
	}

	activeCreators, err := s.appRepo.CountApproved(campaignIDs)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStatsResponse{
		TotalClicks:         total,
		ClickCounts:         clickCounts,
		ActiveCreatorsCount: activeCreators,
	}, nil
}

// CampaignCreators lists a campaign's decided applications joined with
// creator profiles and per-creator click counts, plus the active count.
func (s *StatsService) CampaignCreators(advertiserID, campaignID uint64) ([]domain.CampaignCreatorResponse, int64, error) {
	campaign, err := s.campaignRepo.FindByID(campaignID)
	if err != nil {
		return nil, 0, err
	}
	if campaign.AdvertiserID != advertiserID {
		return nil, 0, common.ErrForbidden
	}

	apps, err := s.appRepo.FindDecidedByCampaign(campaignID)
	if err != nil {
		return nil, 0, err
	}
	clickCounts, err := s.clickRepo.CountByCampaignPerCreator(campaignID)
	if err != nil {
		return nil, 0, err
	}

	creators := make([]domain.CampaignCreatorResponse, 0, len(apps))
	var activeCount int64
	for _, app := range apps {
		row := domain.CampaignCreatorResponse{
			ApplicationID: app.ID,
			CreatorID:     app.CreatorID,
			Status:        app.Status,
			JoinedAt:      app.CreatedAt,
			Clicks:        clickCounts[app.CreatorID],
		}
		if app.Creator != nil {
			row.Email = app.Creator.Email
			if d := app.Creator.CreatorDetail; d != nil {
				row.Handle = d.Handle
				row.Bio = d.Bio
				row.ProfileImage = d.ProfileImageURL
				row.Followers = d.FollowersCount
				row.Channels = domain.CreatorChannels{
					Instagram: d.InstagramURL,
					Youtube:   d.YoutubeURL,
					Tiktok:    d.TiktokURL,
				}
			}
		}
		if row.Handle == "" {
			row.Handle = "Unknown"
		}
		if app.Status == domain.ApplicationApproved {
			activeCount++
		}
		creators = append(creators, row)
	}
	return creators, activeCount, nil
}

// CreatorClickCounts returns per-campaign click counts for one creator
func (s *StatsService) CreatorClickCounts(creatorID uint64) (map[uint64]int64, error) {
	return s.clickRepo.CountByCreatorPerCampaign(creatorID)
}
