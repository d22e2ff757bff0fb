package booking

import (
	"context"

	"github.com/dalevdmerwe/salon-booking/internal/dto"
	"github.com/dalevdmerwe/salon-booking/internal/models"
)

type Repository interface {
	// -------- Tenant --------
	GetTenantByID(
		ctx context.Context,
		id string,
	) (*models.Tenant, error)

	GetTenantBySlug(
		ctx context.Context,
		slug string,
	) (*models.Tenant, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		tenantID string,
		serviceID string,
	) (*models.Service, error)

	// -------- Availability --------

	// ListOccupyingBookings returns the bookings holding a time range on
	// the given date (status pending or confirmed), with the customer
	// name and the booked service's name and duration resolved.
	ListOccupyingBookings(
		ctx context.Context,
		tenantID string,
		date string,
	) ([]BookingRecord, error)

	// -------- Booking (create / conflict) --------

	// CreateBooking persists b after re-checking the candidate slot
	// against the day's occupying bookings inside one transaction.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
		durationMin int,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	GetBookingDetails(
		ctx context.Context,
		id string,
	) (*dto.BookingDetailsDTO, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id string,
	) error

	// -------- Booking (admin listing) --------
	ListBookings(
		ctx context.Context,
		tenantID string,
	) ([]dto.BookingDetailsDTO, error)

	ListBookingsForRange(
		ctx context.Context,
		tenantID string,
		from string,
		to string,
	) ([]dto.BookingDetailsDTO, error)
}
