package dto

import (
	"mime/multipart"

	"grandromeo/internal/domains/room/model"
	"grandromeo/shared"
	gDto "grandromeo/shared/dto"
	gModel "grandromeo/shared/model"
	"grandromeo/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber   string                `json:"room_number"    validate:"required,max=20"`
	RoomType     string                `json:"room_type"      validate:"required,oneof=Standard Deluxe Suite Presidential"`
	BedType      string                `json:"bed_type"       validate:"required,oneof=Single Twin Double Queen King"`
	Capacity     int                   `json:"capacity"       validate:"required,min=1"`
	DailyRate    float64               `json:"daily_rate"     validate:"required,gte=0"`
	Status       string                `json:"status"         validate:"omitempty,oneof=Available Occupied Reserved Maintenance"`
	Description  *string               `json:"description"    validate:"omitempty,max=500"`
	FloorNumber  *int                  `json:"floor_number"   validate:"omitempty,min=0"`
	RoomSizeSqft *int                  `json:"room_size_sqft" validate:"omitempty,min=0"`
	Image        *multipart.FileHeader `json:"image"          validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		RoomNumber:   c.RoomNumber,
		RoomType:     c.RoomType,
		BedType:      c.BedType,
		Capacity:     c.Capacity,
		DailyRate:    c.DailyRate,
		Status:       status,
		ImageURL:     imageURL,
		Description:  c.Description,
		FloorNumber:  c.FloorNumber,
		RoomSizeSqft: c.RoomSizeSqft,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateRoomRequest deliberately has no status field: room status is owned
// by the reservation lifecycle, except for the maintenance flag which has
// its own request below.
type UpdateRoomRequest struct {
	RoomType     string                `db:"room_type"      json:"room_type"      validate:"omitempty,oneof=Standard Deluxe Suite Presidential"`
	BedType      string                `db:"bed_type"       json:"bed_type"       validate:"omitempty,oneof=Single Twin Double Queen King"`
	Capacity     *int                  `db:"capacity"       json:"capacity"       validate:"omitempty,min=1"`
	DailyRate    *float64              `db:"daily_rate"     json:"daily_rate"     validate:"omitempty,gte=0"`
	Description  *string               `db:"description"    json:"description"    validate:"omitempty,max=500"`
	FloorNumber  *int                  `db:"floor_number"   json:"floor_number"   validate:"omitempty,min=0"`
	RoomSizeSqft *int                  `db:"room_size_sqft" json:"room_size_sqft" validate:"omitempty,min=0"`
	Image        *multipart.FileHeader `json:"image"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
}

type SetMaintenanceRequest struct {
	Maintenance bool `json:"maintenance"`
}

type RoomResponse struct {
	RoomNumber          string  `json:"room_number"`
	RoomType            string  `json:"room_type"`
	BedType             string  `json:"bed_type"`
	Capacity            int     `json:"capacity"`
	DailyRate           float64 `json:"daily_rate"`
	Status              string  `json:"status"`
	ImageURL            string  `json:"image_url"`
	Description         *string `json:"description"`
	FloorNumber         *int    `json:"floor_number"`
	RoomSizeSqft        *int    `json:"room_size_sqft"`
	LastMaintenanceDate *string `json:"last_maintenance_date"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.BedType = model.BedType
	r.Capacity = model.Capacity
	r.DailyRate = model.DailyRate
	r.Status = model.Status
	r.ImageURL = model.ImageURL
	r.Description = model.Description
	r.FloorNumber = model.FloorNumber
	r.RoomSizeSqft = model.RoomSizeSqft
	r.LastMaintenanceDate = model.LastMaintenanceDate
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
