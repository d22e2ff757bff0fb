package dto

import "time"

// BookingDetailsDTO is a booking joined with its service and tenant,
// as rendered by the admin console and the WhatsApp templates.
type BookingDetailsDTO struct {
	ID            string    `json:"id"`
	BookingDate   string    `json:"booking_date"`
	BookingTime   string    `json:"booking_time"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	Notes         string    `json:"notes"`
	ServiceName   string    `json:"service_name"`
	ServicePrice  float64   `json:"service_price"`
	ServiceDurMin int       `json:"service_duration_min"`
	TenantName    string    `json:"tenant_name"`
	TenantPhone   string    `json:"tenant_phone"`
	CreatedAt     time.Time `json:"created_at"`
}
