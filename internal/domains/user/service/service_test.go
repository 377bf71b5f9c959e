package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"grandromeo/config"
	"grandromeo/infras/otel/mocks"
	userMocks "grandromeo/internal/domains/user/mocks"
	"grandromeo/internal/domains/user/model"
	"grandromeo/internal/domains/user/model/dto"
	"grandromeo/internal/domains/user/service"
	cacheMocks "grandromeo/shared/cache/mocks"
	"grandromeo/shared/constant"
	"grandromeo/shared/failure"
	"grandromeo/shared/password"
)

type fixture struct {
	repo  *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
	svc   service.User
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:  userMocks.NewMockUser(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	return f
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Email:    "staff@example.com",
		Password: "front-desk-pass",
		Role:     constant.RoleFrontDesk,
	}

	t.Run("stores a hashed password", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				assert.Equal(t, constant.RoleFrontDesk, user.Role)
				assert.NotEqual(t, "front-desk-pass", user.Password)
				assert.NoError(t, password.Verify("front-desk-pass", user.Password))

				return nil
			})

		err := f.svc.Create(testContext(), req)

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Create(testContext(), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{
			ID:    "user-1",
			Email: "staff@example.com",
		}, nil)

		res, err := f.svc.Get(testContext(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", res.ID)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("missing user is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := f.svc.Get(testContext(), "user-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_Update(t *testing.T) {
	active := false

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, &active, fields[model.FieldActive])

				return nil
			})

		err := f.svc.Update(testContext(), dto.UpdateUserRequest{Active: &active}, "user-1")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("missing user is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(testContext(), dto.UpdateUserRequest{Active: &active}, "user-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(testContext(), "user-1")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("missing user is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(testContext(), "user-1")

		assert.Error(t, err)
	})
}
