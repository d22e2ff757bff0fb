package booking

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/metrics"
)

type SlotCheckResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type CheckSlot struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewCheckSlot(repo domain.Repository, log zerolog.Logger) *CheckSlot {
	return &CheckSlot{
		repo: repo,
		log:  log.With().Str("usecase", "check_slot").Logger(),
	}
}

// Execute evaluates one explicit candidate time, failing open on fetch
// errors the same way day-level availability does. Only a malformed
// requested time is a hard error.
func (uc *CheckSlot) Execute(
	ctx context.Context,
	in domain.CandidateInput,
) (SlotCheckResult, error) {

	service, err := uc.repo.GetService(ctx, in.TenantID, in.ServiceID)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("service_id", in.ServiceID).
			Msg("service fetch failed, candidate treated as available")
		metrics.IncAvailabilityFailOpen("service")

		return SlotCheckResult{Available: true}, nil
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
			Msg("bookings fetch failed, candidate treated as available")
		metrics.IncAvailabilityFailOpen("bookings")

		return SlotCheckResult{Available: true}, nil
	}

	check, err := domain.CheckCandidate(existing, duration, in.Time)
	if err != nil {
		return SlotCheckResult{}, err
	}

	if check.Conflict != nil {
		return SlotCheckResult{
			Available: false,
			Reason:    ConflictReason(check.Conflict),
		}, nil
	}

	return SlotCheckResult{Available: true}, nil
}

// ConflictReason builds the advisory message shown next to a taken slot.
func ConflictReason(c *domain.ConflictInfo) string {
	return fmt.Sprintf(
		"This time slot conflicts with %s's %s appointment (ends at %s)",
		c.CustomerName, c.ServiceName, c.EndTime,
	)
}
