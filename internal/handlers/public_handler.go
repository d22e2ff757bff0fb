package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/httperr"
	"github.com/dalevdmerwe/salon-booking/internal/httpresp"
	"github.com/dalevdmerwe/salon-booking/internal/models"
	ucBooking "github.com/dalevdmerwe/salon-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db              *gorm.DB
	availabilityUC  *ucBooking.GetAvailability
	checkSlotUC     *ucBooking.CheckSlot
	createBookingUC *ucBooking.CreateBooking
	log             zerolog.Logger
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucBooking.GetAvailability,
	checkSlotUC *ucBooking.CheckSlot,
	createBookingUC *ucBooking.CreateBooking,
	log zerolog.Logger,
) *PublicHandler {
	return &PublicHandler{
		db:              db,
		availabilityUC:  availabilityUC,
		checkSlotUC:     checkSlotUC,
		createBookingUC: createBookingUC,
		log:             log.With().Str("handler", "public").Logger(),
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ServiceID     string `json:"service_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
	Notes         string `json:"notes"`
}

////////////////////////////////////////////////////////
// TENANTS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListTenants(c *gin.Context) {
	var tenants []models.Tenant
	if err := h.db.
		Where("is_active = true").
		Order("name ASC").
		Find(&tenants).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tenants", "Could not list salons.")
		return
	}

	httpresp.List(c, tenants)
}

func (h *PublicHandler) GetTenant(c *gin.Context) {
	tenant, ok := h.tenantFromSlug(c)
	if !ok {
		return
	}

	httpresp.OK(c, tenant)
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	tenant, ok := h.tenantFromSlug(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("tenant_id = ? AND is_active = true", tenant.ID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tenant":   tenant,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	tenant, ok := h.tenantFromSlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	serviceID := c.Query("service_id")
	if dateStr == "" || serviceID == "" {
		httperr.BadRequest(c, "missing_params", "Date and service are required.")
		return
	}
	if !isValidDate(dateStr) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	slots := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		TenantID:  tenant.ID,
		ServiceID: serviceID,
		Date:      dateStr,
	})

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

func (h *PublicHandler) CheckSlot(c *gin.Context) {
	tenant, ok := h.tenantFromSlug(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	timeStr := c.Query("time")
	serviceID := c.Query("service_id")
	if dateStr == "" || timeStr == "" || serviceID == "" {
		httperr.BadRequest(c, "missing_params", "Date, time and service are required.")
		return
	}
	if !isValidDate(dateStr) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	result, err := h.checkSlotUC.Execute(c.Request.Context(), domain.CandidateInput{
		TenantID:  tenant.ID,
		ServiceID: serviceID,
		Date:      dateStr,
		Time:      timeStr,
	})
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM.")
		return
	}

	httpresp.OK(c, result)
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	tenant, ok := h.tenantFromSlug(c)
	if !ok {
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	out, err := h.createBookingUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		TenantID:      tenant.ID,
		ServiceID:     req.ServiceID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, out)
}

////////////////////////////////////////////////////////
// HELPERS
////////////////////////////////////////////////////////

func (h *PublicHandler) tenantFromSlug(c *gin.Context) (*models.Tenant, bool) {
	slug := c.Param("slug")

	var tenant models.Tenant
	if err := h.db.
		Where("slug = ? AND is_active = true", slug).
		First(&tenant).Error; err != nil {
		httperr.NotFound(c, "tenant_not_found", "Salon not found.")
		return nil, false
	}

	return &tenant, true
}
