package booking

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/dto"
	"github.com/dalevdmerwe/salon-booking/internal/models"
)

// mockRepo implements domain.Repository from per-test function fields.
// Unset fields behave like an empty database.
type mockRepo struct {
	getTenantByID         func(ctx context.Context, id string) (*models.Tenant, error)
	getTenantBySlug       func(ctx context.Context, slug string) (*models.Tenant, error)
	getService            func(ctx context.Context, tenantID, serviceID string) (*models.Service, error)
	listOccupyingBookings func(ctx context.Context, tenantID, date string) ([]domain.BookingRecord, error)
	createBooking         func(ctx context.Context, b *models.Booking, durationMin int) error
	getBooking            func(ctx context.Context, id string) (*models.Booking, error)
	getBookingDetails     func(ctx context.Context, id string) (*dto.BookingDetailsDTO, error)
	updateBooking         func(ctx context.Context, b *models.Booking) error
	deleteBooking         func(ctx context.Context, id string) error
	listBookings          func(ctx context.Context, tenantID string) ([]dto.BookingDetailsDTO, error)
	listBookingsForRange  func(ctx context.Context, tenantID, from, to string) ([]dto.BookingDetailsDTO, error)
}

func (m *mockRepo) GetTenantByID(ctx context.Context, id string) (*models.Tenant, error) {
	if m.getTenantByID == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.getTenantByID(ctx, id)
}

func (m *mockRepo) GetTenantBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	if m.getTenantBySlug == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.getTenantBySlug(ctx, slug)
}

func (m *mockRepo) GetService(ctx context.Context, tenantID, serviceID string) (*models.Service, error) {
	if m.getService == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.getService(ctx, tenantID, serviceID)
}

func (m *mockRepo) ListOccupyingBookings(ctx context.Context, tenantID, date string) ([]domain.BookingRecord, error) {
	if m.listOccupyingBookings == nil {
		return nil, nil
	}
	return m.listOccupyingBookings(ctx, tenantID, date)
}

func (m *mockRepo) CreateBooking(ctx context.Context, b *models.Booking, durationMin int) error {
	if m.createBooking == nil {
		return nil
	}
	return m.createBooking(ctx, b, durationMin)
}

func (m *mockRepo) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	if m.getBooking == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.getBooking(ctx, id)
}

func (m *mockRepo) GetBookingDetails(ctx context.Context, id string) (*dto.BookingDetailsDTO, error) {
	if m.getBookingDetails == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.getBookingDetails(ctx, id)
}

func (m *mockRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	if m.updateBooking == nil {
		return nil
	}
	return m.updateBooking(ctx, b)
}

func (m *mockRepo) DeleteBooking(ctx context.Context, id string) error {
	if m.deleteBooking == nil {
		return nil
	}
	return m.deleteBooking(ctx, id)
}

func (m *mockRepo) ListBookings(ctx context.Context, tenantID string) ([]dto.BookingDetailsDTO, error) {
	if m.listBookings == nil {
		return nil, nil
	}
	return m.listBookings(ctx, tenantID)
}

func (m *mockRepo) ListBookingsForRange(ctx context.Context, tenantID, from, to string) ([]dto.BookingDetailsDTO, error) {
	if m.listBookingsForRange == nil {
		return nil, nil
	}
	return m.listBookingsForRange(ctx, tenantID, from, to)
}

var _ domain.Repository = (*mockRepo)(nil)
