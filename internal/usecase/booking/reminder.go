package booking

import (
	"context"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/httperr"
	"github.com/dalevdmerwe/salon-booking/internal/whatsapp"
)

type GetReminderLink struct {
	repo domain.Repository
}

func NewGetReminderLink(repo domain.Repository) *GetReminderLink {
	return &GetReminderLink{repo: repo}
}

// Execute builds the reminder deep link for a booking. Only occupying
// bookings can be reminded about.
func (uc *GetReminderLink) Execute(
	ctx context.Context,
	bookingID string,
) (string, error) {

	details, err := uc.repo.GetBookingDetails(ctx, bookingID)
	if err != nil {
		return "", httperr.ErrBusiness("booking_not_found")
	}

	if !domain.Status(details.Status).Occupying() {
		return "", httperr.ErrBusiness("invalid_state")
	}

	return whatsapp.ReminderLink(whatsapp.InfoFromDetails(details)), nil
}
