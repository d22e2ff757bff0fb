package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/httperr"
	"github.com/dalevdmerwe/salon-booking/internal/metrics"
	"github.com/dalevdmerwe/salon-booking/internal/models"
	"github.com/dalevdmerwe/salon-booking/internal/validators"
	"github.com/dalevdmerwe/salon-booking/internal/whatsapp"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateBookingInput struct {
	TenantID  string
	ServiceID string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

type CreateBookingOutput struct {
	Booking     *models.Booking `json:"booking"`
	WhatsAppURL string          `json:"whatsapp_url,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewCreateBooking(repo domain.Repository, log zerolog.Logger) *CreateBooking {
	return &CreateBooking{
		repo: repo,
		log:  log.With().Str("usecase", "create_booking").Logger(),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*CreateBookingOutput, error) {

	// --------------------------------------------------
	// Customer fields
	// --------------------------------------------------
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.CustomerPhone = strings.TrimSpace(in.CustomerPhone)
	if in.CustomerName == "" || in.CustomerPhone == "" {
		return nil, httperr.ErrBusiness("missing_customer_fields")
	}

	in.CustomerEmail = strings.TrimSpace(in.CustomerEmail)
	if in.CustomerEmail != "" && !validators.IsEmailShaped(in.CustomerEmail) {
		return nil, httperr.ErrBusiness("invalid_email")
	}

	// --------------------------------------------------
	// Date / time
	// --------------------------------------------------
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if _, err := domain.TimeToMinutes(in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// Tenant
	// --------------------------------------------------
	tenant, err := uc.repo.GetTenantByID(ctx, in.TenantID)
	if err != nil {
		return nil, httperr.ErrBusiness("tenant_not_found")
	}

	// --------------------------------------------------
	// Service (duration falls back to the default when the
	// lookup fails for any reason other than absence)
	// --------------------------------------------------
	duration := domain.DefaultDurationMinutes
	serviceName := "Service"

	service, err := uc.repo.GetService(ctx, in.TenantID, in.ServiceID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, httperr.ErrBusiness("service_not_found")
	case err != nil:
		uc.log.Warn().Err(err).
			Str("service_id", in.ServiceID).
			Msg("service lookup failed during submission, using default duration")
		metrics.IncAvailabilityFailOpen("service")
	default:
		if service.DurationMin > 0 {
			duration = service.DurationMin
		}
		serviceName = service.Name
	}

	// --------------------------------------------------
	// Persist; the repository re-checks the candidate slot
	// transactionally right before the insert
	// --------------------------------------------------
	b := &models.Booking{
		TenantID:      in.TenantID,
		ServiceID:     in.ServiceID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		BookingDate:   in.Date,
		BookingTime:   in.Time,
		Status:        string(domain.InitialStatus()),
		Notes:         in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b, duration); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			metrics.IncBookingConflict()
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	uc.log.Info().
		Str("booking_id", b.ID).
		Str("tenant_id", b.TenantID).
		Str("date", b.BookingDate).
		Str("time", b.BookingTime).
		Msg("booking created")

	// --------------------------------------------------
	// Notification deep link (advisory; never blocks)
	// --------------------------------------------------
	link := whatsapp.ConfirmationLink(whatsapp.BookingInfo{
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		TenantName:    tenant.Name,
		ServiceName:   serviceName,
		DurationMin:   duration,
		Price:         servicePrice(service),
		Date:          b.BookingDate,
		Time:          b.BookingTime,
	})

	return &CreateBookingOutput{
		Booking:     b,
		WhatsAppURL: link,
	}, nil
}

func servicePrice(s *models.Service) float64 {
	if s == nil {
		return 0
	}
	return s.Price
}
