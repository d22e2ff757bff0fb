package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dalevdmerwe/salon-booking/internal/analytics"
	"github.com/dalevdmerwe/salon-booking/internal/httperr"
	"github.com/dalevdmerwe/salon-booking/internal/httpresp"
	"github.com/dalevdmerwe/salon-booking/internal/models"
)

type AnalyticsHandler struct {
	db         *gorm.DB
	dispatcher *analytics.Dispatcher
	stats      *analytics.StatsService
}

func NewAnalyticsHandler(
	db *gorm.DB,
	dispatcher *analytics.Dispatcher,
	stats *analytics.StatsService,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		db:         db,
		dispatcher: dispatcher,
		stats:      stats,
	}
}

type TrackVisitRequest struct {
	PagePath  string `json:"page_path" binding:"required"`
	Referrer  string `json:"referrer"`
	SessionID string `json:"session_id"`
	VisitorID string `json:"visitor_id"`
}

// TrackVisit records one page view. Session and visitor ids are minted
// here when the client does not carry them yet; the client stores the
// returned pair (session for the tab lifetime, visitor persistently).
func (h *AnalyticsHandler) TrackVisit(c *gin.Context) {
	slug := c.Param("slug")

	var tenant models.Tenant
	if err := h.db.Where("slug = ?", slug).First(&tenant).Error; err != nil {
		httperr.NotFound(c, "tenant_not_found", "Salon not found.")
		return
	}

	var req TrackVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "page_path is required.")
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}
	if req.VisitorID == "" {
		req.VisitorID = uuid.NewString()
	}

	ua := c.Request.UserAgent()

	h.dispatcher.Dispatch(analytics.Visit{
		TenantID:   tenant.ID,
		PagePath:   req.PagePath,
		Referrer:   req.Referrer,
		UserAgent:  ua,
		SessionID:  req.SessionID,
		VisitorID:  req.VisitorID,
		DeviceType: analytics.DetectDeviceType(ua),
		Browser:    analytics.DetectBrowser(ua),
		OS:         analytics.DetectOS(ua),
	})

	httpresp.Accepted(c, gin.H{
		"session_id": req.SessionID,
		"visitor_id": req.VisitorID,
	})
}

func (h *AnalyticsHandler) VisitStats(c *gin.Context) {
	tenantID := c.Param("id")
	days := intQuery(c, "days", 30)

	stats, err := h.stats.GetVisitStats(c.Request.Context(), tenantID, days)
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Could not compute visit stats.")
		return
	}

	httpresp.OK(c, stats)
}

func (h *AnalyticsHandler) DailyVisits(c *gin.Context) {
	tenantID := c.Param("id")
	days := intQuery(c, "days", 30)

	daily, err := h.stats.GetDailyVisits(c.Request.Context(), tenantID, days)
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Could not compute daily visits.")
		return
	}

	httpresp.List(c, daily)
}

func intQuery(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}

	return n
}
