package model

import "grandromeo/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldFullName  = "full_name"
	FieldGuestID   = "guest_id"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

// User is a portal account. Guest accounts carry a GuestID linking them to
// their guest profile; staff accounts leave it nil.
type User struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	Role      string  `db:"role"`
	FullName  *string `db:"full_name"`
	GuestID   *string `db:"guest_id"`
	LastLogin *string `db:"last_login"`
	Active    bool    `db:"active"`
	model.Metadata
}
