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
	guestMocks "grandromeo/internal/domains/guest/mocks"
	"grandromeo/internal/domains/guest/model"
	"grandromeo/internal/domains/guest/model/dto"
	"grandromeo/internal/domains/guest/service"
	cacheMocks "grandromeo/shared/cache/mocks"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/failure"
)

type fixture struct {
	repo  *guestMocks.MockGuest
	cache *cacheMocks.MockRedisCache
	svc   service.Guest
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:  guestMocks.NewMockGuest(ctrl),
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

func guestContext(guestID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "guest-user")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleGuest)

	return context.WithValue(ctx, constant.ContextKeyGuestID, guestID)
}

func TestGuestService_Create(t *testing.T) {
	req := dto.CreateGuestRequest{
		FirstName: "Jamie",
		LastName:  "Doe",
		Email:     "jamie@example.com",
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest model.Guest) error {
				assert.NotEmpty(t, guest.GuestID)
				assert.Equal(t, "jamie@example.com", guest.Email)

				return nil
			})

		res, err := f.svc.Create(testContext(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Jamie", res.FirstName)
		assert.NotEmpty(t, res.GuestID)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Create(testContext(), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestGuestService_Get(t *testing.T) {
	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{
			GuestID:   "guest-1",
			FirstName: "Jamie",
		}, nil)

		res, err := f.svc.Get(testContext(), "guest-1")

		assert.NoError(t, err)
		assert.Equal(t, "guest-1", res.GuestID)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("missing guest is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

		_, err := f.svc.Get(testContext(), "guest-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("guest reads own profile", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{
			GuestID:   "guest-1",
			FirstName: "Jamie",
		}, nil)

		res, err := f.svc.Get(guestContext("guest-1"), "guest-1")

		assert.NoError(t, err)
		assert.Equal(t, "guest-1", res.GuestID)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("guest cannot read another profile", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Get(guestContext("guest-2"), "guest-1")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestGuestService_GetAll(t *testing.T) {
	t.Run("returns guests with paging", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Guest{
			{GuestID: "guest-1"},
			{GuestID: "guest-2"},
		}, nil)

		res, err := f.svc.GetAll(testContext(), gDto.QueryParams{Limit: 2}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Guests, 2)
		assert.Equal(t, 4, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestGuestService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Update(testContext(), dto.UpdateGuestRequest{FirstName: "Jaime"}, "guest-1")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("missing guest is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(testContext(), dto.UpdateGuestRequest{FirstName: "Jaime"}, "guest-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("guest edits own profile", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Update(guestContext("guest-1"), dto.UpdateGuestRequest{FirstName: "Jaime"}, "guest-1")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("guest cannot edit another profile", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(guestContext("guest-2"), dto.UpdateGuestRequest{FirstName: "Jaime"}, "guest-1")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestGuestService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(testContext(), "guest-1")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("missing guest is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(testContext(), "guest-1")

		assert.Error(t, err)
	})
}
