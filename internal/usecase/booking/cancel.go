package booking

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/httperr"
	"github.com/dalevdmerwe/salon-booking/internal/metrics"
	"github.com/dalevdmerwe/salon-booking/internal/whatsapp"
)

type CancelBooking struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewCancelBooking(repo domain.Repository, log zerolog.Logger) *CancelBooking {
	return &CancelBooking{
		repo: repo,
		log:  log.With().Str("usecase", "cancel_booking").Logger(),
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID string,
) (*StatusChangeOutput, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// Build the link while the joined details still reflect the booking.
	var link string
	if details, derr := uc.repo.GetBookingDetails(ctx, b.ID); derr == nil {
		link = whatsapp.CancellationLink(whatsapp.InfoFromDetails(details))
	} else {
		uc.log.Warn().Err(derr).Str("booking_id", b.ID).Msg("booking details unavailable, skipping link")
	}

	if err := domain.Cancel(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingStatusChanged(b.Status)
	uc.log.Info().Str("booking_id", b.ID).Msg("booking cancelled")

	return &StatusChangeOutput{
		Booking:     b,
		WhatsAppURL: link,
	}, nil
}
