package booking

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalevdmerwe/salon-booking/internal/dto"
	"github.com/dalevdmerwe/salon-booking/internal/httperr"
	"github.com/dalevdmerwe/salon-booking/internal/models"
)

func bookingInStatus(status string) *models.Booking {
	return &models.Booking{
		ID:            "b1",
		TenantID:      "t1",
		ServiceID:     "s1",
		CustomerName:  "Thandi",
		CustomerPhone: "27825550101",
		BookingDate:   "2026-09-01",
		BookingTime:   "10:00",
		Status:        status,
	}
}

func bookingDetails() *dto.BookingDetailsDTO {
	return &dto.BookingDetailsDTO{
		ID:            "b1",
		BookingDate:   "2026-09-01",
		BookingTime:   "10:00",
		CustomerName:  "Thandi",
		CustomerPhone: "27825550101",
		ServiceName:   "Cut & Style",
		ServicePrice:  350,
		ServiceDurMin: 45,
		TenantName:    "Glow Salon",
	}
}

func TestConfirmBooking(t *testing.T) {
	var updated *models.Booking
	repo := &mockRepo{
		getBooking: func(ctx context.Context, id string) (*models.Booking, error) {
			return bookingInStatus("pending"), nil
		},
		getBookingDetails: func(ctx context.Context, id string) (*dto.BookingDetailsDTO, error) {
			return bookingDetails(), nil
		},
		updateBooking: func(ctx context.Context, b *models.Booking) error {
			updated = b
			return nil
		},
	}

	uc := NewConfirmBooking(repo, zerolog.Nop())
	out, err := uc.Execute(context.Background(), "b1")

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "confirmed", updated.Status)
	assert.Equal(t, "confirmed", out.Booking.Status)
	assert.Contains(t, out.WhatsAppURL, "https://wa.me/27825550101")
}

func TestConfirmBooking_OnlyFromPending(t *testing.T) {
	for _, status := range []string{"confirmed", "cancelled", "completed"} {
		t.Run(status, func(t *testing.T) {
			repo := &mockRepo{
				getBooking: func(ctx context.Context, id string) (*models.Booking, error) {
					return bookingInStatus(status), nil
				},
				updateBooking: func(ctx context.Context, b *models.Booking) error {
					t.Fatal("rejected transition must not be persisted")
					return nil
				},
			}

			uc := NewConfirmBooking(repo, zerolog.Nop())
			_, err := uc.Execute(context.Background(), "b1")

			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		})
	}
}

func TestConfirmBooking_NotFound(t *testing.T) {
	uc := NewConfirmBooking(&mockRepo{}, zerolog.Nop())
	_, err := uc.Execute(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestConfirmBooking_LinkFailureIsAdvisory(t *testing.T) {
	repo := &mockRepo{
		getBooking: func(ctx context.Context, id string) (*models.Booking, error) {
			return bookingInStatus("pending"), nil
		},
		// getBookingDetails unset: details lookup fails.
	}

	uc := NewConfirmBooking(repo, zerolog.Nop())
	out, err := uc.Execute(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "confirmed", out.Booking.Status)
	assert.Empty(t, out.WhatsAppURL)
}

func TestCancelBooking(t *testing.T) {
	for _, status := range []string{"pending", "confirmed"} {
		t.Run(status, func(t *testing.T) {
			repo := &mockRepo{
				getBooking: func(ctx context.Context, id string) (*models.Booking, error) {
					return bookingInStatus(status), nil
				},
				getBookingDetails: func(ctx context.Context, id string) (*dto.BookingDetailsDTO, error) {
					return bookingDetails(), nil
				},
			}

			uc := NewCancelBooking(repo, zerolog.Nop())
			out, err := uc.Execute(context.Background(), "b1")

			require.NoError(t, err)
			assert.Equal(t, "cancelled", out.Booking.Status)
			assert.Contains(t, out.WhatsAppURL, "cancelled")
		})
	}
}

func TestCancelBooking_RejectsSettledStatuses(t *testing.T) {
	for _, status := range []string{"cancelled", "completed"} {
		t.Run(status, func(t *testing.T) {
			repo := &mockRepo{
				getBooking: func(ctx context.Context, id string) (*models.Booking, error) {
					return bookingInStatus(status), nil
				},
				getBookingDetails: func(ctx context.Context, id string) (*dto.BookingDetailsDTO, error) {
					return bookingDetails(), nil
				},
				updateBooking: func(ctx context.Context, b *models.Booking) error {
					t.Fatal("rejected transition must not be persisted")
					return nil
				},
			}

			uc := NewCancelBooking(repo, zerolog.Nop())
			_, err := uc.Execute(context.Background(), "b1")

			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		})
	}
}

func TestCompleteBooking(t *testing.T) {
	repo := &mockRepo{
		getBooking: func(ctx context.Context, id string) (*models.Booking, error) {
			return bookingInStatus("confirmed"), nil
		},
	}

	uc := NewCompleteBooking(repo, zerolog.Nop())
	b, err := uc.Execute(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "completed", b.Status)
}

func TestDeleteBooking(t *testing.T) {
	var deletedID string
	repo := &mockRepo{
		getBooking: func(ctx context.Context, id string) (*models.Booking, error) {
			return bookingInStatus("cancelled"), nil
		},
		deleteBooking: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}

	uc := NewDeleteBooking(repo, zerolog.Nop())
	require.NoError(t, uc.Execute(context.Background(), "b1"))
	assert.Equal(t, "b1", deletedID)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	uc := NewDeleteBooking(&mockRepo{}, zerolog.Nop())
	err := uc.Execute(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestListBookings_RangeDispatch(t *testing.T) {
	var rangeCalled, plainCalled bool
	repo := &mockRepo{
		listBookings: func(ctx context.Context, tenantID string) ([]dto.BookingDetailsDTO, error) {
			plainCalled = true
			return []dto.BookingDetailsDTO{*bookingDetails()}, nil
		},
		listBookingsForRange: func(ctx context.Context, tenantID, from, to string) ([]dto.BookingDetailsDTO, error) {
			rangeCalled = true
			assert.Equal(t, "2026-09-01", from)
			assert.Equal(t, "2026-09-30", to)
			return nil, nil
		},
	}

	uc := NewListBookings(repo)

	_, err := uc.Execute(context.Background(), "t1", "2026-09-01", "2026-09-30")
	require.NoError(t, err)
	assert.True(t, rangeCalled)
	assert.False(t, plainCalled)

	out, err := uc.Execute(context.Background(), "t1", "", "")
	require.NoError(t, err)
	assert.True(t, plainCalled)
	assert.Len(t, out, 1)
}
