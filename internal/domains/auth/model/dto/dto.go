package dto

import (
	"time"

	"grandromeo/infras/jwt"
	guestModel "grandromeo/internal/domains/guest/model"
	userModel "grandromeo/internal/domains/user/model"
	"grandromeo/shared/constant"
	gModel "grandromeo/shared/model"
	"grandromeo/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email         string  `json:"email"          validate:"required,email"`
	Password      string  `json:"password"       validate:"required,min=8"`
	FirstName     string  `json:"first_name"     validate:"required,max=100"`
	LastName      string  `json:"last_name"      validate:"required,max=100"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,max=30"`
}

// ToGuestModel builds the guest profile created alongside the account.
func (r *RegisterRequest) ToGuestModel(username string) guestModel.Guest {
	return guestModel.Guest{
		GuestID:       uuid.NewString(),
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		ContactNumber: r.ContactNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

func (r *RegisterRequest) ToUserModel(username, hashedPassword, guestID string) userModel.User {
	fullName := r.FirstName + " " + r.LastName

	return userModel.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Role:     constant.RoleGuest,
		FullName: &fullName,
		GuestID:  &guestID,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"-"`
}
