package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"grandromeo/config"
	"grandromeo/infras/jwt"
	jwtMocks "grandromeo/infras/jwt/mocks"
	"grandromeo/infras/otel/mocks"
	"grandromeo/internal/domains/auth/model/dto"
	"grandromeo/internal/domains/auth/service"
	guestMocks "grandromeo/internal/domains/guest/mocks"
	guestModel "grandromeo/internal/domains/guest/model"
	userMocks "grandromeo/internal/domains/user/mocks"
	userModel "grandromeo/internal/domains/user/model"
	"grandromeo/shared/constant"
	"grandromeo/shared/failure"
	"grandromeo/shared/password"
)

type fixture struct {
	users  *userMocks.MockUser
	guests *guestMocks.MockGuest
	tokens *jwtMocks.MockJWT
	svc    service.Auth
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		users:  userMocks.NewMockUser(ctrl),
		guests: guestMocks.NewMockGuest(ctrl),
		tokens: jwtMocks.NewMockJWT(ctrl),
	}

	f.svc = service.New(f.users, f.guests, &config.Config{}, mocks.NewOtel(), f.tokens)

	return f
}

func strPtr(s string) *string {
	return &s
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Email:     "jamie@example.com",
		Password:  "correct-horse",
		FirstName: "Jamie",
		LastName:  "Doe",
	}

	t.Run("creates guest profile and account", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.guests.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest guestModel.Guest) error {
				assert.Equal(t, "jamie@example.com", guest.Email)
				assert.NotEmpty(t, guest.GuestID)

				return nil
			})
		f.users.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, constant.RoleGuest, user.Role)
				assert.True(t, user.Active)
				assert.NotNil(t, user.GuestID)
				assert.NoError(t, password.Verify("correct-horse", user.Password))

				return nil
			})

		err := f.svc.Register(context.Background(), req)

		assert.NoError(t, err)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Register(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.Hash("correct-horse")
	require.NoError(t, err)

	storedUser := userModel.User{
		ID:       "user-1",
		Email:    "jamie@example.com",
		Password: hashed,
		Role:     constant.RoleGuest,
		GuestID:  strPtr("guest-1"),
		Active:   true,
	}

	t.Run("issues a token pair and stamps last login", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser, nil)
		f.tokens.EXPECT().GenerateTokenPair("user-1", "jamie@example.com", constant.RoleGuest, "guest-1").
			Return(&jwt.TokenPair{
				AccessToken:  "access",
				RefreshToken: "refresh",
				ExpiresIn:    900,
			}, nil)
		f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Login(context.Background(), dto.LoginRequest{
			Email:    "jamie@example.com",
			Password: "correct-horse",
		})

		assert.NoError(t, err)
		assert.Equal(t, "access", res.AccessToken)
		assert.Equal(t, "refresh", res.RefreshToken)
		assert.Equal(t, int64(900), res.ExpiresIn)
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "correct-horse",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser, nil)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{
			Email:    "jamie@example.com",
			Password: "wrong",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("deactivated account is rejected", func(t *testing.T) {
		f := newFixture(t)

		inactive := storedUser
		inactive.Active = false

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)

		_, err := f.svc.Login(context.Background(), dto.LoginRequest{
			Email:    "jamie@example.com",
			Password: "correct-horse",
		})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("rotates the pair", func(t *testing.T) {
		f := newFixture(t)

		f.tokens.EXPECT().RefreshTokens("old-refresh").Return(&jwt.TokenPair{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			ExpiresIn:    900,
		}, nil)

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
		assert.Equal(t, "new-refresh", res.RefreshToken)
	})

	t.Run("invalid refresh token is unauthorized", func(t *testing.T) {
		f := newFixture(t)

		f.tokens.EXPECT().RefreshTokens("bad").Return(nil, errors.New("token expired"))

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashed, err := password.Hash("current-pass")
	require.NoError(t, err)

	storedUser := userModel.User{
		ID:       "user-1",
		Email:    "jamie@example.com",
		Password: hashed,
		Active:   true,
	}

	req := dto.ChangePasswordRequest{
		CurrentPassword: "current-pass",
		NewPassword:     "brand-new-pass",
	}

	t.Run("rehashes and stores the new password", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser, nil)
		f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				stored, ok := fields[userModel.FieldPassword].(string)
				assert.True(t, ok)
				assert.NoError(t, password.Verify("brand-new-pass", stored))

				return nil
			})

		err := f.svc.ChangePassword(context.Background(), req, "user-1")

		assert.NoError(t, err)
	})

	t.Run("wrong current password is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedUser, nil)

		err := f.svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "brand-new-pass",
		}, "user-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("missing user is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		err := f.svc.ChangePassword(context.Background(), req, "user-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
