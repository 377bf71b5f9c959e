package model

import "grandromeo/shared/model"

const (
	TableName  = "reservations"
	EntityName = "reservation"

	RoomsTableName = "reservation_rooms"
	StaffTableName = "reservation_staff"

	FieldReservationID   = "reservation_id"
	FieldGuestID         = "guest_id"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldCheckInTime     = "check_in_time"
	FieldCheckOutTime    = "check_out_time"
	FieldTotalGuests     = "total_guests"
	FieldSpecialRequests = "special_requests"
	FieldStatus          = "status"
	FieldIsWalkIn        = "is_walk_in"

	FieldRoomNumber = "room_number"
	FieldStaffID    = "staff_id"
)

const (
	StatusPendingPayment = "Pending Payment"
	StatusConfirmed      = "Confirmed"
	StatusReserved       = "Reserved"
	StatusCheckedIn      = "Checked-In"
	StatusCheckedOut     = "Checked-Out"
	StatusCancelled      = "Cancelled"
	StatusNoShow         = "No-Show"
	StatusRefunded       = "Refunded"
)

// TerminalStatuses are the states whose stays no longer block a room's
// calendar.
var TerminalStatuses = []string{
	StatusCheckedOut,
	StatusCancelled,
	StatusNoShow,
	StatusRefunded,
}

func IsTerminalStatus(status string) bool {
	for _, s := range TerminalStatuses {
		if s == status {
			return true
		}
	}

	return false
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPendingPayment, StatusConfirmed, StatusReserved,
		StatusCheckedIn, StatusCheckedOut, StatusCancelled,
		StatusNoShow, StatusRefunded:
		return true
	}

	return false
}

type Reservation struct {
	ReservationID   string  `db:"reservation_id"`
	GuestID         string  `db:"guest_id"`
	CheckInDate     *string `db:"check_in_date"`
	CheckOutDate    *string `db:"check_out_date"`
	CheckInTime     *string `db:"check_in_time"`
	CheckOutTime    *string `db:"check_out_time"`
	TotalGuests     int     `db:"total_guests"`
	SpecialRequests *string `db:"special_requests"`
	Status          string  `db:"status"`
	IsWalkIn        bool    `db:"is_walk_in"`
	model.Metadata
}

// ReservationRoom is a row of the reservation_rooms junction table.
type ReservationRoom struct {
	ReservationID string `db:"reservation_id"`
	RoomNumber    string `db:"room_number"`
}

// ReservationStaff is a row of the reservation_staff junction table.
type ReservationStaff struct {
	ReservationID string `db:"reservation_id"`
	StaffID       string `db:"staff_id"`
}
