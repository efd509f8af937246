package service

import (
	"github.com/adbridge/adbridge-backend/internal/domain"
	"github.com/adbridge/adbridge-backend/internal/repository"
	"github.com/adbridge/adbridge-backend/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var clicksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "adbridge_clicks_total",
		Help: "Total tracked clicks by outcome",
	},
	[]string{"outcome"},
)

// TrackingService is the click-attribution core: resolve the campaign's
// destination, append one click row, hand back the redirect target.
type TrackingService struct {
	campaignRepo repository.CampaignRepository
	clickRepo    repository.ClickRepository
	fallbackURL  string
}

// NewTrackingService creates a TrackingService. fallbackURL is used when a
// campaign's product has no destination configured.
func NewTrackingService(campaignRepo repository.CampaignRepository, clickRepo repository.ClickRepository, fallbackURL string) *TrackingService {
	if fallbackURL == "" {
		fallbackURL = "/"
	}
	return &TrackingService{
		campaignRepo: campaignRepo,
		clickRepo:    clickRepo,
		fallbackURL:  fallbackURL,
	}
}

// Track attributes one click to (campaignID, creatorID) and returns the URL
// to redirect the visitor to.
//
// Resolution failures (unknown campaign, missing product) return an error
// before any write. An empty destination falls back to the site root so a
// misconfigured campaign never produces a dead link; the click is still
// logged. The click write itself is best-effort: on failure we log the
// error and redirect anyway.
func (s *TrackingService) Track(campaignID, creatorID uint64, ip, userAgent string) (string, error) {
	dest, err := s.campaignRepo.ResolveDestination(campaignID)
	if err != nil {
		clicksTotal.WithLabelValues("not_found").Inc()
		return "", err
	}

	targetURL := dest.TargetURL
	if targetURL == "" {
		targetURL = s.fallbackURL
	}

	click := &domain.Click{
		CampaignID: campaignID,
		CreatorID:  creatorID,
		IPAddress:  ip,
		UserAgent:  userAgent,
	}
	if err := s.clickRepo.Create(click); err != nil {
		clicksTotal.WithLabelValues("log_failed").Inc()
		logger.GetLogger().Error().
			Err(err).
			Uint64("campaign_id", campaignID).
			Uint64("creator_id", creatorID).
			Msg("click log insert failed, redirecting anyway")
		return targetURL, nil
	}

	clicksTotal.WithLabelValues("ok").Inc()
	return targetURL, nil
}
