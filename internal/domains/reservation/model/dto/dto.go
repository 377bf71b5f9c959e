package dto

import (
	"grandromeo/internal/domains/reservation/model"
	"grandromeo/shared"
	gDto "grandromeo/shared/dto"
	gModel "grandromeo/shared/model"
	"grandromeo/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	GuestID         string   `json:"guest_id"         validate:"required"`
	CheckInDate     *string  `json:"check_in_date"    validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    *string  `json:"check_out_date"   validate:"omitempty,datetime=2006-01-02"`
	TotalGuests     int      `json:"total_guests"     validate:"required,min=1"`
	SpecialRequests *string  `json:"special_requests" validate:"omitempty,max=500"`
	Status          string   `json:"status"           validate:"omitempty,oneof='Pending Payment' Reserved"`
	IsWalkIn        bool     `json:"is_walk_in"`
	RoomNumbers     []string `json:"room_numbers"     validate:"required,min=1,unique,dive,required"`
	StaffIDs        []string `json:"staff_ids"        validate:"omitempty,unique,dive,required"`
}

func (c *CreateReservationRequest) ToModel(user string) model.Reservation {
	status := model.StatusReserved
	if c.Status != "" {
		status = c.Status
	}

	return model.Reservation{
		ReservationID:   uuid.NewString(),
		GuestID:         c.GuestID,
		CheckInDate:     c.CheckInDate,
		CheckOutDate:    c.CheckOutDate,
		TotalGuests:     c.TotalGuests,
		SpecialRequests: c.SpecialRequests,
		Status:          status,
		IsWalkIn:        c.IsWalkIn,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateReservationRequest never carries a status: transitions go through
// the dedicated status endpoint so their room side effects cannot be
// skipped.
type UpdateReservationRequest struct {
	CheckInDate     *string  `db:"check_in_date"    json:"check_in_date"    validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate    *string  `db:"check_out_date"   json:"check_out_date"   validate:"omitempty,datetime=2006-01-02"`
	TotalGuests     *int     `db:"total_guests"     json:"total_guests"     validate:"omitempty,min=1"`
	SpecialRequests *string  `db:"special_requests" json:"special_requests" validate:"omitempty,max=500"`
	RoomNumbers     []string `json:"room_numbers"     validate:"omitempty,min=1,unique,dive,required"`
	StaffIDs        []string `json:"staff_ids"        validate:"omitempty,unique,dive,required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='Pending Payment' Confirmed Reserved Checked-In Checked-Out Cancelled No-Show Refunded"`
}

type ReservationResponse struct {
	ReservationID   string   `json:"reservation_id"`
	GuestID         string   `json:"guest_id"`
	CheckInDate     *string  `json:"check_in_date"`
	CheckOutDate    *string  `json:"check_out_date"`
	CheckInTime     *string  `json:"check_in_time"`
	CheckOutTime    *string  `json:"check_out_time"`
	TotalGuests     int      `json:"total_guests"`
	SpecialRequests *string  `json:"special_requests"`
	Status          string   `json:"status"`
	IsWalkIn        bool     `json:"is_walk_in"`
	RoomNumbers     []string `json:"room_numbers"`
	StaffIDs        []string `json:"staff_ids"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation, roomNumbers, staffIDs []string) {
	r.ReservationID = model.ReservationID
	r.GuestID = model.GuestID
	r.CheckInDate = model.CheckInDate
	r.CheckOutDate = model.CheckOutDate
	r.CheckInTime = model.CheckInTime
	r.CheckOutTime = model.CheckOutTime
	r.TotalGuests = model.TotalGuests
	r.SpecialRequests = model.SpecialRequests
	r.Status = model.Status
	r.IsWalkIn = model.IsWalkIn
	r.RoomNumbers = roomNumbers
	r.StaffIDs = staffIDs
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod, nil, nil)
	}
}

type AvailableRoomsResponse struct {
	RoomNumbers []string `json:"room_numbers"`
}
