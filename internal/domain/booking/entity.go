package booking

import "github.com/dalevdmerwe/salon-booking/internal/models"

// ===============================
// Domain Actions
// ===============================

func Confirm(b *models.Booking) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	return nil
}

func Cancel(b *models.Booking) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	return nil
}

func Complete(b *models.Booking) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	return nil
}

// ===============================
// Inputs
// ===============================

type AvailabilityInput struct {
	TenantID  string
	ServiceID string
	Date      string // YYYY-MM-DD
}

type CandidateInput struct {
	TenantID  string
	ServiceID string
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
}
