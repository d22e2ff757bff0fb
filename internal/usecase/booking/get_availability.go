package booking

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/metrics"
)

type GetAvailability struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewGetAvailability(repo domain.Repository, log zerolog.Logger) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		log:  log.With().Str("usecase", "get_availability").Logger(),
	}
}

// Execute returns the full slot grid for the requested day. It never
// fails: when the service duration or the day's bookings cannot be
// fetched, the day is reported fully open so a backend hiccup cannot
// block the booking funnel. The pre-submit candidate check and the
// persistence-side conflict assertion remain as backstops.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) []domain.TimeSlot {

	service, err := uc.repo.GetService(ctx, in.TenantID, in.ServiceID)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("service_id", in.ServiceID).
			Msg("service fetch failed, reporting day open")
		metrics.IncAvailabilityFailOpen("service")

		return domain.ComputeDaySlots(nil, domain.DefaultDurationMinutes)
	}

	duration := service.DurationMin
	if duration <= 0 {
		duration = domain.DefaultDurationMinutes
	}

	existing, err := uc.repo.ListOccupyingBookings(ctx, in.TenantID, in.Date)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("tenant_id", in.TenantID).
			Str("date", in.Date).
			Msg("bookings fetch failed, reporting day open")
		metrics.IncAvailabilityFailOpen("bookings")

		return domain.ComputeDaySlots(nil, duration)
	}

	return domain.ComputeDaySlots(existing, duration)
}
