package model

import "grandromeo/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldGuestID       = "guest_id"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldEmail         = "email"
	FieldContactNumber = "contact_number"
	FieldStreet        = "street"
	FieldCity          = "city"
	FieldStateProvince = "state_province"
	FieldZipCode       = "zip_code"
	FieldCountry       = "country"
	FieldIsWalkIn      = "is_walk_in"
	FieldPreferences   = "preferences"
	FieldLoyaltyPoints = "loyalty_points"
	FieldVIPStatus     = "vip_status"
)

type Guest struct {
	GuestID       string  `db:"guest_id"`
	FirstName     string  `db:"first_name"`
	LastName      string  `db:"last_name"`
	Email         string  `db:"email"`
	ContactNumber *string `db:"contact_number"`
	Street        *string `db:"street"`
	City          *string `db:"city"`
	StateProvince *string `db:"state_province"`
	ZipCode       *string `db:"zip_code"`
	Country       *string `db:"country"`
	IsWalkIn      bool    `db:"is_walk_in"`
	Preferences   *string `db:"preferences"`
	LoyaltyPoints int     `db:"loyalty_points"`
	VIPStatus     bool    `db:"vip_status"`
	model.Metadata
}
