// Package availability holds the date-overlap rules for room bookings.
// Conflicts are computed against active stays only; a stay whose
// reservation has reached a terminal status no longer blocks the calendar.
package availability

import (
	"time"

	"grandromeo/shared/constant"
)

// Stay is the projection of a reservation onto one of its rooms: the
// reservation, the room, and the booked date range.
type Stay struct {
	ReservationID string  `db:"reservation_id"`
	RoomNumber    string  `db:"room_number"`
	CheckInDate   *string `db:"check_in_date"`
	CheckOutDate  *string `db:"check_out_date"`
}

// Overlaps reports whether two half-open date ranges [aIn, aOut) and
// [bIn, bOut) intersect. A checkout equal to another check-in is not a
// conflict, which permits same-day turnover.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// RoomAvailable reports whether roomNumber is free for the candidate
// range. An unset candidate date means the caller has not filtered by
// dates yet, so the room counts as available. Stays with unset dates
// never conflict for the same reason.
func RoomAvailable(roomNumber string, checkIn, checkOut time.Time, stays []Stay) bool {
	if checkIn.IsZero() || checkOut.IsZero() {
		return true
	}

	for _, stay := range stays {
		if stay.RoomNumber != roomNumber {
			continue
		}

		existingIn, ok := parseDate(stay.CheckInDate)
		if !ok {
			continue
		}

		existingOut, ok := parseDate(stay.CheckOutDate)
		if !ok {
			continue
		}

		if Overlaps(checkIn, checkOut, existingIn, existingOut) {
			return false
		}
	}

	return true
}

// FilterAvailable returns the subset of roomNumbers free for the candidate
// range, preserving order.
func FilterAvailable(roomNumbers []string, checkIn, checkOut time.Time, stays []Stay) []string {
	available := make([]string, 0, len(roomNumbers))

	for _, number := range roomNumbers {
		if RoomAvailable(number, checkIn, checkOut, stays) {
			available = append(available, number)
		}
	}

	return available
}

// ParseDate parses a calendar date in the wire format used by booking
// requests. The zero time means "unset".
func ParseDate(value string) (time.Time, error) {
	return time.Parse(constant.CalendarFormat, value)
}

func parseDate(value *string) (time.Time, bool) {
	if value == nil || *value == constant.Empty {
		return time.Time{}, false
	}

	t, err := time.Parse(constant.CalendarFormat, *value)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
