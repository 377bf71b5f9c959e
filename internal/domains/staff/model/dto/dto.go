package dto

import (
	"grandromeo/internal/domains/staff/model"
	"grandromeo/shared"
	gDto "grandromeo/shared/dto"
	gModel "grandromeo/shared/model"
	"grandromeo/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	FirstName     string   `json:"first_name"     validate:"required,max=100"`
	LastName      string   `json:"last_name"      validate:"required,max=100"`
	Role          string   `json:"role"           validate:"required,oneof=Manager Receptionist Housekeeping Concierge Maintenance 'Front Desk'"`
	ContactNumber *string  `json:"contact_number" validate:"omitempty,max=30"`
	HireDate      *string  `json:"hire_date"      validate:"omitempty,datetime=2006-01-02"`
	Salary        *float64 `json:"salary"         validate:"omitempty,gte=0"`
}

func (c *CreateStaffRequest) ToModel(user string) model.Staff {
	return model.Staff{
		StaffID:       uuid.NewString(),
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Role:          c.Role,
		ContactNumber: c.ContactNumber,
		HireDate:      c.HireDate,
		Salary:        c.Salary,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStaffRequest struct {
	FirstName     string   `db:"first_name"     json:"first_name"     validate:"omitempty,max=100"`
	LastName      string   `db:"last_name"      json:"last_name"      validate:"omitempty,max=100"`
	Role          string   `db:"role"           json:"role"           validate:"omitempty,oneof=Manager Receptionist Housekeeping Concierge Maintenance 'Front Desk'"`
	ContactNumber *string  `db:"contact_number" json:"contact_number" validate:"omitempty,max=30"`
	HireDate      *string  `db:"hire_date"      json:"hire_date"      validate:"omitempty,datetime=2006-01-02"`
	Salary        *float64 `db:"salary"         json:"salary"         validate:"omitempty,gte=0"`
}

type StaffResponse struct {
	StaffID       string   `json:"staff_id"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Role          string   `json:"role"`
	ContactNumber *string  `json:"contact_number"`
	HireDate      *string  `json:"hire_date"`
	Salary        *float64 `json:"salary"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.StaffID = model.StaffID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Role = model.Role
	r.ContactNumber = model.ContactNumber
	r.HireDate = model.HireDate
	r.Salary = model.Salary
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
