package booking

import (
	"context"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/dto"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute lists a tenant's bookings with service and tenant details,
// optionally bounded to [from, to] (inclusive "YYYY-MM-DD" dates).
func (uc *ListBookings) Execute(
	ctx context.Context,
	tenantID string,
	from string,
	to string,
) ([]dto.BookingDetailsDTO, error) {

	if from != "" && to != "" {
		return uc.repo.ListBookingsForRange(ctx, tenantID, from, to)
	}

	return uc.repo.ListBookings(ctx, tenantID)
}
