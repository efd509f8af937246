package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"github.com/adbridge/adbridge-backend/internal/middleware"
	"github.com/adbridge/adbridge-backend/internal/repository"
	"github.com/adbridge/adbridge-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreatorHandler serves the creator console: campaign applications, the
// approved-campaign list with click counts, and the personal shop page.
type CreatorHandler struct {
	appService   *service.ApplicationService
	statsService *service.StatsService
	appRepo      repository.ApplicationRepository
	shopRepo     repository.ShopRepository
}

// NewCreatorHandler creates a new CreatorHandler
func NewCreatorHandler(
	appService *service.ApplicationService,
	statsService *service.StatsService,
	appRepo repository.ApplicationRepository,
	shopRepo repository.ShopRepository,
) *CreatorHandler {
	return &CreatorHandler{
		appService:   appService,
		statsService: statsService,
		appRepo:      appRepo,
		shopRepo:     shopRepo,
	}
}

// Apply handles POST /api/v1/creator/campaigns/:id/apply
//
// A creator applies to a campaign at most once. A repeat submit returns
// 409 ALREADY_APPLIED, distinguishable from validation failures.
func (h *CreatorHandler) Apply(c *gin.Context) {
	campaignID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid campaign ID", err)
		return
	}

	app, err := h.appService.Apply(middleware.GetUserID(c), campaignID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrCampaignNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Campaign not found", nil)
		case errors.Is(err, common.ErrAlreadyApplied):
			common.ConflictResponse(c, "ALREADY_APPLIED", "You have already applied to this campaign")
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to apply", err)
		}
		return
	}
	common.CreatedResponse(c, gin.H{"id": app.ID, "status": app.Status})
}

// ListMyCampaigns handles GET /api/v1/creator/campaigns
//
// Approved campaigns only, each with the creator's click count and the
// tracking path to share.
func (h *CreatorHandler) ListMyCampaigns(c *gin.Context) {
	creatorID := middleware.GetUserID(c)

	apps, err := h.appRepo.FindApprovedByCreator(creatorID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list campaigns", err)
		return
	}
	clickCounts, err := h.statsService.CreatorClickCounts(creatorID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to count clicks", err)
		return
	}

	type myCampaignRow struct {
		ApplicationID uint64                   `json:"application_id"`
		Campaign      *domain.CampaignResponse `json:"campaign"`
		Clicks        int64                    `json:"clicks"`
		TrackingPath  string                   `json:"tracking_path"`
	}
	rows := make([]myCampaignRow, 0, len(apps))
	for _, app := range apps {
		row := myCampaignRow{
			ApplicationID: app.ID,
			Clicks:        clickCounts[app.CampaignID],
			TrackingPath:  fmt.Sprintf("/cl/%d/%d", app.CampaignID, creatorID),
		}
		if app.Campaign != nil {
			row.Campaign = app.Campaign.ToResponse(false)
		}
		rows = append(rows, row)
	}
	common.SuccessResponse(c, rows)
}

// ListShopItems handles GET /api/v1/creator/shop
func (h *CreatorHandler) ListShopItems(c *gin.Context) {
	creatorID := middleware.GetUserID(c)

	items, err := h.shopRepo.FindByCreator(creatorID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list shop items", err)
		return
	}

	rows := make([]domain.ShopItemResponse, 0, len(items))
	for _, item := range items {
		row := domain.ShopItemResponse{
			ID:           item.ID,
			CustomLink:   item.CustomLink,
			TrackingPath: fmt.Sprintf("/cl/%d/%d", item.CampaignID, creatorID),
		}
		if item.Campaign != nil {
			row.Campaign = item.Campaign.ToResponse(false)
		}
		rows = append(rows, row)
	}
	common.SuccessResponse(c, rows)
}

// AddShopItem handles POST /api/v1/creator/shop
//
// Only approved campaigns can be surfaced in a shop. The custom link slug
// is server-generated so shop URLs are not guessable from campaign IDs.
func (h *CreatorHandler) AddShopItem(c *gin.Context) {
	var req domain.AddShopItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	creatorID := middleware.GetUserID(c)
	approved, err := h.appRepo.ExistsApproved(req.CampaignID, creatorID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to check approval", err)
		return
	}
	if !approved {
		common.ErrorResponse(c, http.StatusForbidden, "Campaign is not approved for your shop", nil)
		return
	}

	item := &domain.ShopItem{
		CreatorID:  creatorID,
		CampaignID: req.CampaignID,
		CustomLink: strings.ReplaceAll(uuid.New().String(), "-", "")[:12],
	}
	if err := h.shopRepo.Create(item); err != nil {
		if errors.Is(err, common.ErrAlreadyApplied) {
			common.ConflictResponse(c, "ALREADY_IN_SHOP", "Campaign is already in your shop")
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to add shop item", err)
		return
	}
	common.CreatedResponse(c, gin.H{"id": item.ID, "custom_link": item.CustomLink})
}

// DeleteShopItem handles DELETE /api/v1/creator/shop/:id
func (h *CreatorHandler) DeleteShopItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid shop item ID", err)
		return
	}

	if err := h.shopRepo.Delete(id, middleware.GetUserID(c)); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Shop item not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete shop item", err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true})
}
