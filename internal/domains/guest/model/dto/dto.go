package dto

import (
	"grandromeo/internal/domains/guest/model"
	"grandromeo/shared"
	gDto "grandromeo/shared/dto"
	gModel "grandromeo/shared/model"
	"grandromeo/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName     string  `json:"first_name"     validate:"required,max=100"`
	LastName      string  `json:"last_name"      validate:"required,max=100"`
	Email         string  `json:"email"          validate:"required,email"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,max=30"`
	Street        *string `json:"street"         validate:"omitempty,max=200"`
	City          *string `json:"city"           validate:"omitempty,max=100"`
	StateProvince *string `json:"state_province" validate:"omitempty,max=100"`
	ZipCode       *string `json:"zip_code"       validate:"omitempty,max=20"`
	Country       *string `json:"country"        validate:"omitempty,max=100"`
	IsWalkIn      bool    `json:"is_walk_in"`
	Preferences   *string `json:"preferences"    validate:"omitempty,max=500"`
	VIPStatus     bool    `json:"vip_status"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		GuestID:       uuid.NewString(),
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		ContactNumber: c.ContactNumber,
		Street:        c.Street,
		City:          c.City,
		StateProvince: c.StateProvince,
		ZipCode:       c.ZipCode,
		Country:       c.Country,
		IsWalkIn:      c.IsWalkIn,
		Preferences:   c.Preferences,
		VIPStatus:     c.VIPStatus,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName     string  `db:"first_name"     json:"first_name"     validate:"omitempty,max=100"`
	LastName      string  `db:"last_name"      json:"last_name"      validate:"omitempty,max=100"`
	Email         string  `db:"email"          json:"email"          validate:"omitempty,email"`
	ContactNumber *string `db:"contact_number" json:"contact_number" validate:"omitempty,max=30"`
	Street        *string `db:"street"         json:"street"         validate:"omitempty,max=200"`
	City          *string `db:"city"           json:"city"           validate:"omitempty,max=100"`
	StateProvince *string `db:"state_province" json:"state_province" validate:"omitempty,max=100"`
	ZipCode       *string `db:"zip_code"       json:"zip_code"       validate:"omitempty,max=20"`
	Country       *string `db:"country"        json:"country"        validate:"omitempty,max=100"`
	Preferences   *string `db:"preferences"    json:"preferences"    validate:"omitempty,max=500"`
	LoyaltyPoints *int    `db:"loyalty_points" json:"loyalty_points" validate:"omitempty,min=0"`
	VIPStatus     *bool   `db:"vip_status"     json:"vip_status"`
}

type GuestResponse struct {
	GuestID       string  `json:"guest_id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	ContactNumber *string `json:"contact_number"`
	Street        *string `json:"street"`
	City          *string `json:"city"`
	StateProvince *string `json:"state_province"`
	ZipCode       *string `json:"zip_code"`
	Country       *string `json:"country"`
	IsWalkIn      bool    `json:"is_walk_in"`
	Preferences   *string `json:"preferences"`
	LoyaltyPoints int     `json:"loyalty_points"`
	VIPStatus     bool    `json:"vip_status"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.GuestID = model.GuestID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.ContactNumber = model.ContactNumber
	r.Street = model.Street
	r.City = model.City
	r.StateProvince = model.StateProvince
	r.ZipCode = model.ZipCode
	r.Country = model.Country
	r.IsWalkIn = model.IsWalkIn
	r.Preferences = model.Preferences
	r.LoyaltyPoints = model.LoyaltyPoints
	r.VIPStatus = model.VIPStatus
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
