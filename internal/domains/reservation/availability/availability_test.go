package availability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"grandromeo/internal/domains/reservation/availability"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return t
}

func strPtr(value string) *string {
	return &value
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		aIn  string
		aOut string
		bIn  string
		bOut string
		want bool
	}{
		{
			name: "fully overlapping ranges",
			aIn:  "2025-03-10", aOut: "2025-03-15",
			bIn: "2025-03-10", bOut: "2025-03-15",
			want: true,
		},
		{
			name: "partial overlap at the front",
			aIn:  "2025-03-08", aOut: "2025-03-12",
			bIn: "2025-03-10", bOut: "2025-03-15",
			want: true,
		},
		{
			name: "candidate contained in existing",
			aIn:  "2025-03-11", aOut: "2025-03-13",
			bIn: "2025-03-10", bOut: "2025-03-15",
			want: true,
		},
		{
			name: "existing contained in candidate",
			aIn:  "2025-03-01", aOut: "2025-03-31",
			bIn: "2025-03-10", bOut: "2025-03-15",
			want: true,
		},
		{
			name: "checkout equals next check-in is not a conflict",
			aIn:  "2025-03-15", aOut: "2025-03-20",
			bIn: "2025-03-10", bOut: "2025-03-15",
			want: false,
		},
		{
			name: "check-in equals previous checkout is not a conflict",
			aIn:  "2025-03-05", aOut: "2025-03-10",
			bIn: "2025-03-10", bOut: "2025-03-15",
			want: false,
		},
		{
			name: "disjoint ranges",
			aIn:  "2025-04-01", aOut: "2025-04-05",
			bIn: "2025-03-10", bOut: "2025-03-15",
			want: false,
		},
		{
			name: "one night overlap",
			aIn:  "2025-03-14", aOut: "2025-03-16",
			bIn: "2025-03-10", bOut: "2025-03-15",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := availability.Overlaps(date(tt.aIn), date(tt.aOut), date(tt.bIn), date(tt.bOut))
			assert.Equal(t, tt.want, got)

			// The relation is symmetric.
			mirrored := availability.Overlaps(date(tt.bIn), date(tt.bOut), date(tt.aIn), date(tt.aOut))
			assert.Equal(t, tt.want, mirrored)
		})
	}
}

func TestRoomAvailable(t *testing.T) {
	stays := []availability.Stay{
		{
			ReservationID: "res-1",
			RoomNumber:    "101",
			CheckInDate:   strPtr("2025-03-10"),
			CheckOutDate:  strPtr("2025-03-15"),
		},
		{
			ReservationID: "res-2",
			RoomNumber:    "102",
			CheckInDate:   strPtr("2025-03-01"),
			CheckOutDate:  strPtr("2025-03-31"),
		},
		{
			ReservationID: "res-3",
			RoomNumber:    "103",
			CheckInDate:   nil,
			CheckOutDate:  nil,
		},
	}

	tests := []struct {
		name     string
		room     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{
			name: "conflicting stay blocks the room",
			room: "101", checkIn: "2025-03-12", checkOut: "2025-03-18",
			want: false,
		},
		{
			name: "same-day turnover is allowed",
			room: "101", checkIn: "2025-03-15", checkOut: "2025-03-20",
			want: true,
		},
		{
			name: "stay on another room does not block",
			room: "101", checkIn: "2025-03-02", checkOut: "2025-03-05",
			want: true,
		},
		{
			name: "room with no stays is free",
			room: "999", checkIn: "2025-03-10", checkOut: "2025-03-15",
			want: true,
		},
		{
			name: "stay with unset dates never conflicts",
			room: "103", checkIn: "2025-03-10", checkOut: "2025-03-15",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := availability.RoomAvailable(tt.room, date(tt.checkIn), date(tt.checkOut), stays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoomAvailable_UnsetCandidateDates(t *testing.T) {
	stays := []availability.Stay{
		{
			ReservationID: "res-1",
			RoomNumber:    "101",
			CheckInDate:   strPtr("2025-03-10"),
			CheckOutDate:  strPtr("2025-03-15"),
		},
	}

	assert.True(t, availability.RoomAvailable("101", time.Time{}, date("2025-03-12"), stays))
	assert.True(t, availability.RoomAvailable("101", date("2025-03-12"), time.Time{}, stays))
	assert.True(t, availability.RoomAvailable("101", time.Time{}, time.Time{}, stays))
}

func TestFilterAvailable(t *testing.T) {
	stays := []availability.Stay{
		{
			ReservationID: "res-1",
			RoomNumber:    "101",
			CheckInDate:   strPtr("2025-03-10"),
			CheckOutDate:  strPtr("2025-03-15"),
		},
		{
			ReservationID: "res-2",
			RoomNumber:    "103",
			CheckInDate:   strPtr("2025-03-12"),
			CheckOutDate:  strPtr("2025-03-14"),
		},
	}

	got := availability.FilterAvailable([]string{"101", "102", "103", "104"}, date("2025-03-11"), date("2025-03-13"), stays)
	assert.Equal(t, []string{"102", "104"}, got)
}
