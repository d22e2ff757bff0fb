package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dalevdmerwe/salon-booking/internal/httperr"
	"github.com/dalevdmerwe/salon-booking/internal/httpresp"
	ucBooking "github.com/dalevdmerwe/salon-booking/internal/usecase/booking"
)

// Admin console over bookings: listing and status transitions.

type BookingHandler struct {
	listUC     *ucBooking.ListBookings
	confirmUC  *ucBooking.ConfirmBooking
	cancelUC   *ucBooking.CancelBooking
	completeUC *ucBooking.CompleteBooking
	deleteUC   *ucBooking.DeleteBooking
	reminderUC *ucBooking.GetReminderLink
}

func NewBookingHandler(
	listUC *ucBooking.ListBookings,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	deleteUC *ucBooking.DeleteBooking,
	reminderUC *ucBooking.GetReminderLink,
) *BookingHandler {
	return &BookingHandler{
		listUC:     listUC,
		confirmUC:  confirmUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		deleteUC:   deleteUC,
		reminderUC: reminderUC,
	}
}

func (h *BookingHandler) List(c *gin.Context) {
	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		httperr.BadRequest(c, "missing_tenant", "tenant_id is required.")
		return
	}

	from, to, ok := dateRangeFromQuery(c)
	if !ok {
		return
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), tenantID, from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not list bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	out, err := h.confirmUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	out, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	b, err := h.completeUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) ReminderLink(c *gin.Context) {
	link, err := h.reminderUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.OK(c, gin.H{"whatsapp_url": link})
}

func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
