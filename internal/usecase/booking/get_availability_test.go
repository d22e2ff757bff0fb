package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/models"
)

func TestGetAvailability(t *testing.T) {
	repo := &mockRepo{
		getService: func(ctx context.Context, tenantID, serviceID string) (*models.Service, error) {
			return &models.Service{ID: serviceID, TenantID: tenantID, DurationMin: 30}, nil
		},
		listOccupyingBookings: func(ctx context.Context, tenantID, date string) ([]domain.BookingRecord, error) {
			return []domain.BookingRecord{
				{StartTime: "10:00", ServiceDuration: 60, CustomerName: "Thandi", ServiceName: "Cut & Style"},
			}, nil
		},
	}

	uc := NewGetAvailability(repo, zerolog.Nop())
	slots := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  "t1",
		ServiceID: "s1",
		Date:      "2026-09-01",
	})

	require.Len(t, slots, 20)

	byTime := make(map[string]domain.TimeSlot, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s
	}

	assert.False(t, byTime["10:00"].Available)
	assert.False(t, byTime["10:30"].Available)
	assert.True(t, byTime["11:00"].Available)
	assert.True(t, byTime["09:30"].Available)
}

func TestGetAvailability_ServiceFetchFailsOpen(t *testing.T) {
	repo := &mockRepo{
		getService: func(ctx context.Context, tenantID, serviceID string) (*models.Service, error) {
			return nil, errors.New("upstream timeout")
		},
		listOccupyingBookings: func(ctx context.Context, tenantID, date string) ([]domain.BookingRecord, error) {
			t.Fatal("bookings must not be consulted after a service fetch error")
			return nil, nil
		},
	}

	uc := NewGetAvailability(repo, zerolog.Nop())
	slots := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  "t1",
		ServiceID: "s1",
		Date:      "2026-09-01",
	})

	require.Len(t, slots, 20)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGetAvailability_BookingsFetchFailsOpen(t *testing.T) {
	repo := &mockRepo{
		getService: func(ctx context.Context, tenantID, serviceID string) (*models.Service, error) {
			return &models.Service{ID: serviceID, DurationMin: 45}, nil
		},
		listOccupyingBookings: func(ctx context.Context, tenantID, date string) ([]domain.BookingRecord, error) {
			return nil, errors.New("connection refused")
		},
	}

	uc := NewGetAvailability(repo, zerolog.Nop())
	slots := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  "t1",
		ServiceID: "s1",
		Date:      "2026-09-01",
	})

	require.Len(t, slots, 20)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGetAvailability_ZeroDurationUsesDefault(t *testing.T) {
	repo := &mockRepo{
		getService: func(ctx context.Context, tenantID, serviceID string) (*models.Service, error) {
			return &models.Service{ID: serviceID, DurationMin: 0}, nil
		},
		listOccupyingBookings: func(ctx context.Context, tenantID, date string) ([]domain.BookingRecord, error) {
			return []domain.BookingRecord{
				{StartTime: "10:00", ServiceDuration: 30},
			}, nil
		},
	}

	uc := NewGetAvailability(repo, zerolog.Nop())
	slots := uc.Execute(context.Background(), domain.AvailabilityInput{
		TenantID:  "t1",
		ServiceID: "s1",
		Date:      "2026-09-01",
	})

	byTime := make(map[string]domain.TimeSlot, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s
	}

	// With the 60-minute default a 09:30 start reaches into 10:00.
	assert.False(t, byTime["09:30"].Available)
	assert.True(t, byTime["09:00"].Available)
}
