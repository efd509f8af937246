package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adbridge/adbridge-backend/internal/common"
	"github.com/adbridge/adbridge-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// TrackingHandler serves the public tracking links creators share
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// Redirect handles GET /cl/:campaign_id/:creator_id
//
// Attributes one click to the (campaign, creator) pair and forwards the
// visitor to the advertiser's product page. Unknown campaigns return 404
// without writing anything. The click write is awaited before responding.
func (h *TrackingHandler) Redirect(c *gin.Context) {
	campaignID, err := strconv.ParseUint(c.Param("campaign_id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "Campaign not found", nil)
		return
	}
	creatorID, err := strconv.ParseUint(c.Param("creator_id"), 10, 64)
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "Campaign not found", nil)
		return
	}

	targetURL, err := h.trackingService.Track(campaignID, creatorID, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, common.ErrCampaignNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Campaign not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Tracking failed", err)
		return
	}

	c.Redirect(http.StatusFound, targetURL)
}
