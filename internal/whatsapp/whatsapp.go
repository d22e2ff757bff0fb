// Package whatsapp builds wa.me deep links with pre-filled booking
// messages. Pure formatting: the front-end decides when to open them.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dalevdmerwe/salon-booking/internal/dto"
)

// BookingInfo carries the fields the message templates render.
type BookingInfo struct {
	CustomerName  string
	CustomerPhone string
	TenantName    string
	ServiceName   string
	DurationMin   int
	Price         float64
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
}

func InfoFromDetails(d *dto.BookingDetailsDTO) BookingInfo {
	return BookingInfo{
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		TenantName:    d.TenantName,
		ServiceName:   d.ServiceName,
		DurationMin:   d.ServiceDurMin,
		Price:         d.ServicePrice,
		Date:          d.BookingDate,
		Time:          d.BookingTime,
	}
}

// ======================================================
// Links
// ======================================================

func ConfirmationLink(info BookingInfo) string {
	return Link(info.CustomerPhone, ConfirmationMessage(info))
}

func ReminderLink(info BookingInfo) string {
	return Link(info.CustomerPhone, ReminderMessage(info))
}

func CancellationLink(info BookingInfo) string {
	return Link(info.CustomerPhone, CancellationMessage(info))
}

// Link builds https://wa.me/<digits>?text=<encoded message>.
func Link(phone, message string) string {
	return fmt.Sprintf(
		"https://wa.me/%s?text=%s",
		CleanPhone(phone),
		url.QueryEscape(message),
	)
}

// CleanPhone strips everything but digits ("+27 82 555-0101" → "27825550101").
func CleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ======================================================
// Messages
// ======================================================

func ConfirmationMessage(info BookingInfo) string {
	return fmt.Sprintf(`Hi %s!

Your booking at *%s* has been confirmed!

*Date:* %s
*Time:* %s
*Service:* %s
*Duration:* %d minutes
*Price:* R%.0f

We look forward to seeing you!

If you need to reschedule or cancel, please let us know as soon as possible.

Thank you!`,
		info.CustomerName,
		info.TenantName,
		info.Date,
		info.Time,
		info.ServiceName,
		info.DurationMin,
		info.Price,
	)
}

func ReminderMessage(info BookingInfo) string {
	return fmt.Sprintf(`Hi %s!

This is a friendly reminder about your upcoming appointment at *%s*:

*Date:* %s
*Time:* %s
*Service:* %s
*Duration:* %d minutes

We look forward to seeing you soon!

If you need to reschedule, please let us know.`,
		info.CustomerName,
		info.TenantName,
		info.Date,
		info.Time,
		info.ServiceName,
		info.DurationMin,
	)
}

func CancellationMessage(info BookingInfo) string {
	return fmt.Sprintf(`Hi %s,

Your booking at *%s* has been cancelled:

*Date:* %s
*Time:* %s
*Service:* %s

If you'd like to reschedule, please let us know and we'll find a new time for you.

Thank you for your understanding.`,
		info.CustomerName,
		info.TenantName,
		info.Date,
		info.Time,
		info.ServiceName,
	)
}
