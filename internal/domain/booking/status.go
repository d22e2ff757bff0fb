package booking

import "github.com/dalevdmerwe/salon-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Occupying reports whether a booking in this status still holds its
// time range. Cancelled and completed bookings free their slot.
func (s Status) Occupying() bool {
	return s == StatusPending || s == StatusConfirmed
}

// OccupyingStatuses lists the statuses the repository must filter to
// when fetching a day's bookings for availability.
func OccupyingStatuses() []string {
	return []string{string(StatusPending), string(StatusConfirmed)}
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if !current.Occupying() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if !current.Occupying() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
