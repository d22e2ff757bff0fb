package booking

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/httperr"
	"github.com/dalevdmerwe/salon-booking/internal/metrics"
	"github.com/dalevdmerwe/salon-booking/internal/models"
)

type CompleteBooking struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewCompleteBooking(repo domain.Repository, log zerolog.Logger) *CompleteBooking {
	return &CompleteBooking{
		repo: repo,
		log:  log.With().Str("usecase", "complete_booking").Logger(),
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Complete(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingStatusChanged(b.Status)
	uc.log.Info().Str("booking_id", b.ID).Msg("booking completed")

	return b, nil
}
