package service

import (
	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"github.com/adbridge/adbridge-backend/internal/repository"
)

// ApplicationService owns the application lifecycle. Every new application
// starts as pending, enforced here and nowhere else.
type ApplicationService struct {
	appRepo      repository.ApplicationRepository
	campaignRepo repository.CampaignRepository
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(appRepo repository.ApplicationRepository, campaignRepo repository.CampaignRepository) *ApplicationService {
	return &ApplicationService{appRepo: appRepo, campaignRepo: campaignRepo}
}

// Apply submits a creator's application for an active campaign.
// Returns ErrAlreadyApplied when the (campaign, creator) pair exists.
func (s *ApplicationService) Apply(creatorID, campaignID uint64) (*domain.Application, error) {
	if _, err := s.campaignRepo.FindActiveByID(campaignID); err != nil {
		return nil, err
	}

	app := &domain.Application{
		CampaignID: campaignID,
		CreatorID:  creatorID,
		Status:     domain.ApplicationPending,
	}
	if err := s.appRepo.Create(app); err != nil {
		return nil, err
	}
	return app, nil
}

// Decide sets an application's status on behalf of the advertiser who owns
// the campaign. Approved and rejected stay mutable (suspend/restore).
func (s *ApplicationService) Decide(advertiserID, applicationID uint64, status domain.ApplicationStatus) error {
	if !status.Valid() {
		return common.ErrInvalidStatus
	}

	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		return err
	}
	if app.Campaign == nil || app.Campaign.AdvertiserID != advertiserID {
		return common.ErrForbidden
	}

	return s.appRepo.UpdateStatus(applicationID, status)
}

// PendingForAdvertiser lists pending applications across owned campaigns
func (s *ApplicationService) PendingForAdvertiser(advertiserID uint64) ([]domain.PendingApplicationResponse, error) {
	apps, err := s.appRepo.FindPendingByAdvertiser(advertiserID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PendingApplicationResponse, 0, len(apps))
	for _, app := range apps {
		row := domain.PendingApplicationResponse{
			ID:         app.ID,
			Status:     app.Status,
			CreatedAt:  app.CreatedAt,
			CampaignID: app.CampaignID,
		}
		if app.Campaign != nil && app.Campaign.Product != nil {
			row.ProductName = app.Campaign.Product.Name
		}
		if app.Creator != nil {
			row.CreatorEmail = app.Creator.Email
			if app.Creator.CreatorDetail != nil {
				row.Handle = app.Creator.CreatorDetail.Handle
			}
		}
		out = append(out, row)
	}
	return out, nil
}
