package model

import "grandromeo/shared/model"

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldStaffID       = "staff_id"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldRole          = "role"
	FieldContactNumber = "contact_number"
	FieldHireDate      = "hire_date"
	FieldSalary        = "salary"
)

const (
	RoleManager      = "Manager"
	RoleReceptionist = "Receptionist"
	RoleHousekeeping = "Housekeeping"
	RoleConcierge    = "Concierge"
	RoleMaintenance  = "Maintenance"
	RoleFrontDesk    = "Front Desk"
)

// Staff are hotel employee records, not portal accounts. Accounts live in
// the users table.
type Staff struct {
	StaffID       string   `db:"staff_id"`
	FirstName     string   `db:"first_name"`
	LastName      string   `db:"last_name"`
	Role          string   `db:"role"`
	ContactNumber *string  `db:"contact_number"`
	HireDate      *string  `db:"hire_date"`
	Salary        *float64 `db:"salary"`
	model.Metadata
}
