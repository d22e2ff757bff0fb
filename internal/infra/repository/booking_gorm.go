package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/dalevdmerwe/salon-booking/internal/domain/booking"
	"github.com/dalevdmerwe/salon-booking/internal/dto"
	"github.com/dalevdmerwe/salon-booking/internal/httperr"
	"github.com/dalevdmerwe/salon-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Tenant
// --------------------------------------------------

func (r *BookingGormRepository) GetTenantByID(
	ctx context.Context,
	id string,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tenant).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *BookingGormRepository) GetTenantBySlug(
	ctx context.Context,
	slug string,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&tenant).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	tenantID string,
	serviceID string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", serviceID, tenantID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

// occupyingRecordRow carries the joined columns the engine needs.
type occupyingRecordRow struct {
	BookingTime     string
	CustomerName    string
	ServiceName     string
	ServiceDuration int
}

func (r *BookingGormRepository) ListOccupyingBookings(
	ctx context.Context,
	tenantID string,
	date string,
) ([]domain.BookingRecord, error) {

	rows, err := listOccupying(r.db.WithContext(ctx), tenantID, date, false)
	if err != nil {
		return nil, fmt.Errorf("list occupying bookings: %w", err)
	}
	return rows, nil
}

func listOccupying(
	tx *gorm.DB,
	tenantID string,
	date string,
	lock bool,
) ([]domain.BookingRecord, error) {

	q := tx.Model(&models.Booking{}).
		Select(
			"bookings.booking_time AS booking_time",
			"bookings.customer_name AS customer_name",
			"services.name AS service_name",
			"services.duration_min AS service_duration",
		).
		Joins("JOIN services ON services.id = bookings.service_id").
		Where(
			"bookings.tenant_id = ? AND bookings.booking_date = ? AND bookings.status IN ?",
			tenantID, date, domain.OccupyingStatuses(),
		).
		Order("bookings.booking_time ASC")

	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "bookings"}})
	}

	var rows []occupyingRecordRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]domain.BookingRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.BookingRecord{
			StartTime:       row.BookingTime,
			ServiceDuration: row.ServiceDuration,
			CustomerName:    row.CustomerName,
			ServiceName:     row.ServiceName,
		})
	}

	return records, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

// CreateBooking re-runs the candidate check against the day's occupying
// bookings, with their rows locked, inside one transaction. This is the
// persistence-side backstop for the check-then-act race between slots
// shown and booking submitted.
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
	durationMin int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := listOccupying(tx, b.TenantID, b.BookingDate, true)
		if err != nil {
			return fmt.Errorf("lock occupying bookings: %w", err)
		}

		check, err := domain.CheckCandidate(existing, durationMin, b.BookingTime)
		if err != nil {
			return err
		}
		if !check.Available {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Booking{}).Error
}

// --------------------------------------------------
// Booking (admin listing)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingDetails(
	ctx context.Context,
	id string,
) (*dto.BookingDetailsDTO, error) {

	var row dto.BookingDetailsDTO
	err := r.detailsQuery(ctx).
		Where("bookings.id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == "" {
		return nil, gorm.ErrRecordNotFound
	}

	return &row, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	tenantID string,
) ([]dto.BookingDetailsDTO, error) {

	var rows []dto.BookingDetailsDTO
	err := r.detailsQuery(ctx).
		Where("bookings.tenant_id = ?", tenantID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *BookingGormRepository) ListBookingsForRange(
	ctx context.Context,
	tenantID string,
	from string,
	to string,
) ([]dto.BookingDetailsDTO, error) {

	var rows []dto.BookingDetailsDTO
	err := r.detailsQuery(ctx).
		Where(
			"bookings.tenant_id = ? AND bookings.booking_date >= ? AND bookings.booking_date <= ?",
			tenantID, from, to,
		).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *BookingGormRepository) detailsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select(
			"bookings.id AS id",
			"bookings.booking_date AS booking_date",
			"bookings.booking_time AS booking_time",
			"bookings.status AS status",
			"bookings.customer_name AS customer_name",
			"bookings.customer_email AS customer_email",
			"bookings.customer_phone AS customer_phone",
			"bookings.notes AS notes",
			"bookings.created_at AS created_at",
			"services.name AS service_name",
			"services.price AS service_price",
			"services.duration_min AS service_dur_min",
			"tenants.name AS tenant_name",
			"tenants.phone AS tenant_phone",
		).
		Joins("JOIN services ON services.id = bookings.service_id").
		Joins("JOIN tenants ON tenants.id = bookings.tenant_id").
		Order("bookings.booking_date ASC, bookings.booking_time ASC")
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
