package booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dalevdmerwe/salon-booking/internal/httperr"
)

// ===============================
// Slot grid
// ===============================

// The grid of candidate start times is fixed: 08:00 through 17:30 in
// 30-minute steps (20 slots). It is deliberately independent of the
// requested duration and of the tenant's configured business hours.
const (
	gridOpenHour    = 8
	gridCloseHour   = 18
	slotStepMinutes = 30
)

// DefaultDurationMinutes is assumed whenever a service's duration
// cannot be resolved. Booking must stay possible in that case.
const DefaultDurationMinutes = 60

// ===============================
// Types
// ===============================

// BookingRecord is one existing reservation occupying
// [StartTime, StartTime+ServiceDuration) on the day under evaluation.
// Callers pass only occupying bookings (pending or confirmed).
type BookingRecord struct {
	StartTime       string
	ServiceDuration int
	CustomerName    string
	ServiceName     string
}

// ConflictInfo describes the first existing booking found to overlap
// a candidate slot. Advisory only: with multiple overlaps, which one
// is reported depends on the order of the input list.
type ConflictInfo struct {
	CustomerName string `json:"customer_name"`
	ServiceName  string `json:"service_name"`
	EndTime      string `json:"end_time"`
}

type TimeSlot struct {
	Time      string        `json:"time"`
	Available bool          `json:"available"`
	Conflict  *ConflictInfo `json:"conflict,omitempty"`
}

type SlotCheck struct {
	Available bool          `json:"available"`
	Conflict  *ConflictInfo `json:"conflict,omitempty"`
}

// ===============================
// Engine
// ===============================

// ComputeDaySlots marks every grid slot available or not for a booking
// of requestedDuration minutes, given the day's occupying bookings.
// Pure and stateless: identical inputs yield identical output.
func ComputeDaySlots(existing []BookingRecord, requestedDuration int) []TimeSlot {
	if requestedDuration <= 0 {
		requestedDuration = DefaultDurationMinutes
	}

	grid := SlotGrid()
	slots := make([]TimeSlot, 0, len(grid))

	for _, start := range grid {
		startMin, _ := TimeToMinutes(start) // grid times are well-formed by construction
		conflict := findConflict(startMin, requestedDuration, existing)
		slots = append(slots, TimeSlot{
			Time:      start,
			Available: conflict == nil,
			Conflict:  conflict,
		})
	}

	return slots
}

// CheckCandidate evaluates one explicit start time, which need not lie
// on the grid. Used immediately before persisting a booking to narrow
// the window between slots shown and booking submitted.
func CheckCandidate(existing []BookingRecord, requestedDuration int, requestedStart string) (SlotCheck, error) {
	if requestedDuration <= 0 {
		return SlotCheck{}, httperr.ErrBusiness("invalid_duration")
	}

	startMin, err := TimeToMinutes(requestedStart)
	if err != nil {
		return SlotCheck{}, httperr.ErrBusiness("invalid_time")
	}

	conflict := findConflict(startMin, requestedDuration, existing)
	return SlotCheck{
		Available: conflict == nil,
		Conflict:  conflict,
	}, nil
}

// SlotGrid returns the fixed candidate start times.
func SlotGrid() []string {
	var grid []string
	for hour := gridOpenHour; hour < gridCloseHour; hour++ {
		for min := 0; min < 60; min += slotStepMinutes {
			grid = append(grid, MinutesToTime(hour*60+min))
		}
	}
	return grid
}

// findConflict returns the first existing booking overlapping
// [startMin, startMin+duration), or nil when the range is free.
// A record whose start time does not parse cannot occupy a slot.
func findConflict(startMin, duration int, existing []BookingRecord) *ConflictInfo {
	reqStart := startMin
	reqEnd := startMin + duration

	for _, b := range existing {
		bStart, err := TimeToMinutes(b.StartTime)
		if err != nil {
			continue
		}

		bDuration := b.ServiceDuration
		if bDuration <= 0 {
			bDuration = DefaultDurationMinutes
		}
		bEnd := bStart + bDuration

		if overlaps(reqStart, reqEnd, bStart, bEnd) {
			return &ConflictInfo{
				CustomerName: b.CustomerName,
				ServiceName:  b.ServiceName,
				EndTime:      MinutesToTime(bEnd),
			}
		}
	}

	return nil
}

// overlaps reports whether the half-open intervals [reqStart, reqEnd)
// and [bStart, bEnd) intersect. The three cases together are equivalent
// to reqStart < bEnd && bStart < reqEnd. Boundary touch is not a
// conflict, so back-to-back bookings are allowed.
func overlaps(reqStart, reqEnd, bStart, bEnd int) bool {
	if reqStart >= bStart && reqStart < bEnd {
		return true
	}
	if reqEnd > bStart && reqEnd <= bEnd {
		return true
	}
	if reqStart <= bStart && reqEnd >= bEnd {
		return true
	}
	return false
}

// ===============================
// Time helpers
// ===============================

// TimeToMinutes converts "HH:MM" to minutes since midnight.
func TimeToMinutes(t string) (int, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", t)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", t)
	}

	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("time %q out of range", t)
	}

	return hours*60 + mins, nil
}

// MinutesToTime converts minutes since midnight back to zero-padded "HH:MM".
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
