package booking

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/httperr"
)

type DeleteBooking struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewDeleteBooking(repo domain.Repository, log zerolog.Logger) *DeleteBooking {
	return &DeleteBooking{
		repo: repo,
		log:  log.With().Str("usecase", "delete_booking").Logger(),
	}
}

func (uc *DeleteBooking) Execute(ctx context.Context, bookingID string) error {
	if _, err := uc.repo.GetBooking(ctx, bookingID); err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	if err := uc.repo.DeleteBooking(ctx, bookingID); err != nil {
		return err
	}

	uc.log.Info().Str("booking_id", bookingID).Msg("booking deleted")
	return nil
}
