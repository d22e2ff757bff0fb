package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dalevdmerwe/salon-booking/internal/httperr"
)

// All dates are plain "YYYY-MM-DD" strings in the salon's implicit
// local day; there is no per-tenant timezone handling.

func isValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}

// dateRangeFromQuery reads optional from/to query params, both
// "YYYY-MM-DD" or absent. Reports false after writing the error.
func dateRangeFromQuery(c *gin.Context) (string, string, bool) {
	from := c.Query("from")
	to := c.Query("to")

	if (from == "") != (to == "") {
		httperr.BadRequest(c, "invalid_range", "Both from and to are required for a range.")
		return "", "", false
	}
	if from != "" && (!isValidDate(from) || !isValidDate(to)) {
		httperr.BadRequest(c, "invalid_range", "Range dates must be YYYY-MM-DD.")
		return "", "", false
	}

	return from, to, true
}

// mapBookingErrors translates business error codes from the booking
// flow into HTTP responses.
func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_customer_fields"):
		httperr.BadRequest(c, "missing_customer_fields", "Name and phone are required.")
	case httperr.IsBusiness(err, "invalid_email"):
		httperr.BadRequest(c, "invalid_email", "Email address looks invalid.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM.")
	case httperr.IsBusiness(err, "tenant_not_found"):
		httperr.NotFound(c, "tenant_not_found", "Salon not found.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Unknown service.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "That time slot has just been taken.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.Conflict(c, "invalid_state", "Booking is not in a state that allows this change.")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	default:
		httperr.Internal(c, "booking_failed", "Could not process the booking.")
	}
}
