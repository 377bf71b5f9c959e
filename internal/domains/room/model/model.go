package model

import "grandromeo/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldRoomNumber          = "room_number"
	FieldRoomType            = "room_type"
	FieldBedType             = "bed_type"
	FieldCapacity            = "capacity"
	FieldDailyRate           = "daily_rate"
	FieldStatus              = "status"
	FieldImageURL            = "image_url"
	FieldDescription         = "description"
	FieldFloorNumber         = "floor_number"
	FieldRoomSizeSqft        = "room_size_sqft"
	FieldLastMaintenanceDate = "last_maintenance_date"
)

// Room status is a coarse, manually-maintained flag. All writes to it go
// through the reservation lifecycle service, never through CRUD screens.
const (
	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusReserved    = "Reserved"
	StatusMaintenance = "Maintenance"
)

const (
	TypeStandard     = "Standard"
	TypeDeluxe       = "Deluxe"
	TypeSuite        = "Suite"
	TypePresidential = "Presidential"
)

type Room struct {
	RoomNumber          string   `db:"room_number"`
	RoomType            string   `db:"room_type"`
	BedType             string   `db:"bed_type"`
	Capacity            int      `db:"capacity"`
	DailyRate           float64  `db:"daily_rate"`
	Status              string   `db:"status"`
	ImageURL            string   `db:"image_url"`
	Description         *string  `db:"description"`
	FloorNumber         *int     `db:"floor_number"`
	RoomSizeSqft        *int     `db:"room_size_sqft"`
	LastMaintenanceDate *string  `db:"last_maintenance_date"`
	model.Metadata
}
