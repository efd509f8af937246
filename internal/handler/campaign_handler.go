package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/domain"
	"github.com/adbridge/adbridge-backend/internal/middleware"
	"github.com/adbridge/adbridge-backend/internal/repository"
	"github.com/adbridge/adbridge-backend/pkg/cache"
	"github.com/gin-gonic/gin"
)

// CampaignHandler serves the public campaign browse/detail endpoints and
// the category tree. All reads; reward amounts and prices are masked for
// anonymous callers.
type CampaignHandler struct {
	campaignRepo repository.CampaignRepository
	categoryRepo repository.CategoryRepository
	cacheService cache.Service
}

// NewCampaignHandler creates a new CampaignHandler
func NewCampaignHandler(
	campaignRepo repository.CampaignRepository,
	categoryRepo repository.CategoryRepository,
	cacheService cache.Service,
) *CampaignHandler {
	return &CampaignHandler{
		campaignRepo: campaignRepo,
		categoryRepo: categoryRepo,
		cacheService: cacheService,
	}
}

// ListCampaigns handles GET /api/v1/campaigns
//
// Query params: q (product name keyword), c1 (parent category id),
// c2 (child category id), page, limit. c2 wins over c1; c1 expands to its
// child categories.
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	page, limit := parsePagination(c)
	filter := repository.CampaignFilter{
		Keyword: c.Query("q"),
		Page:    page,
		Limit:   limit,
	}

	if c2 := c.Query("c2"); c2 != "" {
		id, err := strconv.ParseUint(c2, 10, 64)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid category ID", err)
			return
		}
		filter.CategoryIDs = []uint64{id}
	} else if c1 := c.Query("c1"); c1 != "" {
		id, err := strconv.ParseUint(c1, 10, 64)
		if err != nil {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid category ID", err)
			return
		}
		childIDs, err := h.categoryRepo.FindChildIDs(id)
		if err != nil {
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to resolve category", err)
			return
		}
		if len(childIDs) == 0 {
			common.SuccessWithMeta(c, []*domain.CampaignResponse{}, common.NewMeta(page, limit, 0))
			return
		}
		filter.CategoryIDs = childIDs
	}

	masked := !middleware.IsAuthenticated(c)

	// Only the unfiltered anonymous first page is cached.
	cacheable := h.cacheService != nil && masked &&
		filter.Keyword == "" && len(filter.CategoryIDs) == 0 && page == 1
	cacheKey := fmt.Sprintf("public:p1:l%d", limit)
	if cacheable {
		if cached, err := h.cacheService.GetCampaignList(c.Request.Context(), cacheKey); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json", cached)
			return
		}
	}

	campaigns, total, err := h.campaignRepo.FindActive(filter)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list campaigns", err)
		return
	}

	items := make([]*domain.CampaignResponse, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, campaigns[i].ToResponse(masked))
	}

	response := common.Response{
		Success: true,
		Data:    items,
		Meta:    common.NewMeta(page, limit, total),
	}
	if cacheable {
		_ = h.cacheService.SetCampaignList(c.Request.Context(), cacheKey, response)
		c.Header("X-Cache", "MISS")
	}
	c.JSON(http.StatusOK, response)
}

// GetCampaign handles GET /api/v1/campaigns/:id (creator/public view:
// active campaigns only)
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid campaign ID", err)
		return
	}

	masked := !middleware.IsAuthenticated(c)
	idStr := strconv.FormatUint(id, 10)

	// Only the anonymous (masked) view is cached; authenticated callers
	// see unmasked amounts and read from the DB.
	cacheable := h.cacheService != nil && masked
	if cacheable {
		if cached, err := h.cacheService.GetCampaign(c.Request.Context(), idStr); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json", cached)
			return
		}
	}

	campaign, err := h.campaignRepo.FindActiveByID(id)
	if err != nil {
		if errors.Is(err, common.ErrCampaignNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Campaign not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load campaign", err)
		return
	}

	response := common.Response{Success: true, Data: campaign.ToResponse(masked)}
	if cacheable {
		_ = h.cacheService.SetCampaign(c.Request.Context(), idStr, response)
		c.Header("X-Cache", "MISS")
	}
	c.JSON(http.StatusOK, response)
}

// ListCategories handles GET /api/v1/categories
func (h *CampaignHandler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cacheService != nil {
		if cached, err := h.cacheService.GetCategoryTree(ctx); err == nil {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json", cached)
			return
		}
	}

	rows, err := h.categoryRepo.FindAll()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load categories", err)
		return
	}
	tree := domain.BuildCategoryTree(rows)

	response := common.Response{Success: true, Data: tree}
	if h.cacheService != nil {
		_ = h.cacheService.SetCategoryTree(ctx, response)
		c.Header("X-Cache", "MISS")
	}
	c.JSON(http.StatusOK, response)
}

// parsePagination reads page/limit query params with sane bounds
func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
