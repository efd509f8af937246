package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"github.com/adbridge/adbridge-backend/internal/middleware"
	"github.com/adbridge/adbridge-backend/internal/repository"
	"github.com/adbridge/adbridge-backend/internal/service"
	"github.com/adbridge/adbridge-backend/pkg/cache"
	"github.com/gin-gonic/gin"
)

// AdvertiserHandler serves the advertiser console: campaign management,
// application decisions, and stats. Every route is behind RequireRole(advertiser)
// and every read is scoped to the authenticated advertiser's own rows.
type AdvertiserHandler struct {
	campaignRepo repository.CampaignRepository
	appService   *service.ApplicationService
	statsService *service.StatsService
	cacheService cache.Service
}

// NewAdvertiserHandler creates a new AdvertiserHandler
func NewAdvertiserHandler(
	campaignRepo repository.CampaignRepository,
	appService *service.ApplicationService,
	statsService *service.StatsService,
	cacheService cache.Service,
) *AdvertiserHandler {
	return &AdvertiserHandler{
		campaignRepo: campaignRepo,
		appService:   appService,
		statsService: statsService,
		cacheService: cacheService,
	}
}

// CreateCampaign handles POST /api/v1/advertiser/campaigns
//
// Creates the product and its campaign in one transaction. A campaign
// always references exactly one product, so the API takes both together.
func (h *AdvertiserHandler) CreateCampaign(c *gin.Context) {
	var req domain.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	advertiserID := middleware.GetUserID(c)
	product := &domain.Product{
		AdvertiserID: advertiserID,
		CategoryID:   req.CategoryID,
		Name:         req.ProductName,
		Price:        req.Price,
		Description:  req.ProductDescription,
		ImageURL:     req.ImageURL,
		TargetURL:    req.TargetURL,
	}
	amount := req.RewardAmount
	campaign := &domain.Campaign{
		AdvertiserID: advertiserID,
		RewardType:   req.RewardType,
		RewardAmount: &amount,
		Conditions:   domain.CampaignConditions{MinFollowers: req.MinFollowers},
		Status:       domain.CampaignActive,
	}

	if err := h.campaignRepo.CreateWithProduct(campaign, product); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create campaign", err)
		return
	}

	h.invalidateListCache(c)
	common.CreatedResponse(c, campaign.ToResponse(false))
}

// ListMyCampaigns handles GET /api/v1/advertiser/campaigns
func (h *AdvertiserHandler) ListMyCampaigns(c *gin.Context) {
	campaigns, err := h.campaignRepo.FindByAdvertiser(middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list campaigns", err)
		return
	}

	items := make([]*domain.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, campaigns[i].ToResponse(false))
	}
	common.SuccessResponse(c, items)
}

// GetMyCampaign handles GET /api/v1/advertiser/campaigns/:id
//
// Unlike the public detail route this returns inactive campaigns too,
// but only to their owner.
func (h *AdvertiserHandler) GetMyCampaign(c *gin.Context) {
	campaign, ok := h.ownedCampaign(c)
	if !ok {
		return
	}
	common.SuccessResponse(c, campaign.ToResponse(false))
}

// UpdateCampaign handles PATCH /api/v1/advertiser/campaigns/:id
func (h *AdvertiserHandler) UpdateCampaign(c *gin.Context) {
	campaign, ok := h.ownedCampaign(c)
	if !ok {
		return
	}

	var req domain.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	if req.RewardAmount != nil {
		if *req.RewardAmount <= 0 {
			common.ErrorResponse(c, http.StatusBadRequest, "Reward amount must be positive", nil)
			return
		}
		campaign.RewardAmount = req.RewardAmount
	}
	if req.MinFollowers != nil {
		campaign.Conditions.MinFollowers = *req.MinFollowers
	}
	if req.Status != nil {
		if *req.Status != domain.CampaignActive && *req.Status != domain.CampaignInactive {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid campaign status", nil)
			return
		}
		campaign.Status = *req.Status
	}

	if err := h.campaignRepo.Update(campaign); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update campaign", err)
		return
	}

	h.invalidateListCache(c)
	if h.cacheService != nil {
		_ = h.cacheService.InvalidateCampaign(c.Request.Context(), strconv.FormatUint(campaign.ID, 10))
	}
	common.SuccessResponse(c, campaign.ToResponse(false))
}

// GetCampaignStats handles GET /api/v1/advertiser/campaigns/:id/stats
func (h *AdvertiserHandler) GetCampaignStats(c *gin.Context) {
	campaignID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid campaign ID", err)
		return
	}

	stats, err := h.statsService.CampaignStats(middleware.GetUserID(c), campaignID)
	if err != nil {
		h.writeOwnershipError(c, err)
		return
	}
	common.SuccessResponse(c, stats)
}

// GetCampaignCreators handles GET /api/v1/advertiser/campaigns/:id/creators
func (h *AdvertiserHandler) GetCampaignCreators(c *gin.Context) {
	campaignID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid campaign ID", err)
		return
	}

	creators, activeCount, err := h.statsService.CampaignCreators(middleware.GetUserID(c), campaignID)
	if err != nil {
		h.writeOwnershipError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{
		"creators":     creators,
		"active_count": activeCount,
	})
}

// GetDashboardStats handles GET /api/v1/advertiser/dashboard/stats
func (h *AdvertiserHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.statsService.DashboardStats(middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute dashboard stats", err)
		return
	}
	common.SuccessResponse(c, stats)
}

// ListPendingApplications handles GET /api/v1/advertiser/applications/pending
func (h *AdvertiserHandler) ListPendingApplications(c *gin.Context) {
	apps, err := h.appService.PendingForAdvertiser(middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list applications", err)
		return
	}
	common.SuccessResponse(c, apps)
}

// DecideApplication handles PATCH /api/v1/advertiser/applications/:id
//
// Approves, rejects, or re-decides an application. Decisions stay mutable
// so an advertiser can suspend an approved creator or restore a rejected one.
func (h *AdvertiserHandler) DecideApplication(c *gin.Context) {
	applicationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid application ID", err)
		return
	}

	var req domain.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	err = h.appService.Decide(middleware.GetUserID(c), applicationID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidStatus):
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid application status", nil)
		case errors.Is(err, common.ErrApplicationNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Application not found", nil)
		case errors.Is(err, common.ErrForbidden):
			common.ErrorResponse(c, http.StatusForbidden, "Not your campaign", nil)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update application", err)
		}
		return
	}
	common.SuccessResponse(c, gin.H{"id": applicationID, "status": req.Status})
}

// ownedCampaign loads the :id campaign and verifies ownership
func (h *AdvertiserHandler) ownedCampaign(c *gin.Context) (*domain.Campaign, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid campaign ID", err)
		return nil, false
	}

	campaign, err := h.campaignRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, common.ErrCampaignNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Campaign not found", nil)
		} else {
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load campaign", err)
		}
		return nil, false
	}
	if campaign.AdvertiserID != middleware.GetUserID(c) {
		common.ErrorResponse(c, http.StatusForbidden, "Not your campaign", nil)
		return nil, false
	}
	return campaign, true
}

func (h *AdvertiserHandler) writeOwnershipError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrCampaignNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Campaign not found", nil)
	case errors.Is(err, common.ErrForbidden):
		common.ErrorResponse(c, http.StatusForbidden, "Not your campaign", nil)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute stats", err)
	}
}

func (h *AdvertiserHandler) invalidateListCache(c *gin.Context) {
	if h.cacheService != nil {
		_ = h.cacheService.InvalidateCampaignLists(c.Request.Context())
	}
}
