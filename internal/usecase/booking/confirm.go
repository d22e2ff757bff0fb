package booking

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/httperr"
	"github.com/dalevdmerwe/salon-booking/internal/metrics"
	"github.com/dalevdmerwe/salon-booking/internal/models"
	"github.com/dalevdmerwe/salon-booking/internal/whatsapp"
)

type ConfirmBooking struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewConfirmBooking(repo domain.Repository, log zerolog.Logger) *ConfirmBooking {
	return &ConfirmBooking{
		repo: repo,
		log:  log.With().Str("usecase", "confirm_booking").Logger(),
	}
}

type StatusChangeOutput struct {
	Booking     *models.Booking `json:"booking"`
	WhatsAppURL string          `json:"whatsapp_url,omitempty"`
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	bookingID string,
) (*StatusChangeOutput, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Confirm(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	metrics.IncBookingStatusChanged(b.Status)
	uc.log.Info().Str("booking_id", b.ID).Msg("booking confirmed")

	return &StatusChangeOutput{
		Booking:     b,
		WhatsAppURL: uc.notificationLink(ctx, b, whatsapp.ConfirmationLink),
	}, nil
}

// notificationLink builds the customer deep link from the joined
// booking details. Advisory: any failure just drops the link.
func (uc *ConfirmBooking) notificationLink(
	ctx context.Context,
	b *models.Booking,
	build func(whatsapp.BookingInfo) string,
) string {

	details, err := uc.repo.GetBookingDetails(ctx, b.ID)
	if err != nil {
		uc.log.Warn().Err(err).Str("booking_id", b.ID).Msg("booking details unavailable, skipping link")
		return ""
	}

	return build(whatsapp.InfoFromDetails(details))
}
