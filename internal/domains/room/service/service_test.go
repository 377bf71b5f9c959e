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
	s3Mocks "grandromeo/infras/s3/mocks"
	roomMocks "grandromeo/internal/domains/room/mocks"
	"grandromeo/internal/domains/room/model"
	"grandromeo/internal/domains/room/model/dto"
	"grandromeo/internal/domains/room/service"
	cacheMocks "grandromeo/shared/cache/mocks"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/failure"
)

type fixture struct {
	repo  *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Room
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:  roomMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "test-bucket"

	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	return f
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		RoomNumber: "101",
		RoomType:   "Standard",
		BedType:    "Queen",
		Capacity:   2,
		DailyRate:  120,
	}

	t.Run("success defaults the status to available", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				assert.Equal(t, "101", room.RoomNumber)
				assert.Equal(t, model.StatusAvailable, room.Status)

				return nil
			})

		err := f.svc.Create(testContext(), req)

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("duplicate room number conflicts", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.svc.Create(testContext(), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{
			RoomNumber: "101",
			Status:     model.StatusAvailable,
		}, nil)

		res, err := f.svc.Get(testContext(), "101")

		assert.NoError(t, err)
		assert.Equal(t, "101", res.RoomNumber)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("missing room is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.Get(testContext(), "101")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomService_GetAll(t *testing.T) {
	t.Run("returns rooms with paging", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{
			{RoomNumber: "101"},
			{RoomNumber: "102"},
		}, nil)

		res, err := f.svc.GetAll(testContext(), gDto.QueryParams{Limit: 2}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Rooms, 2)
		assert.Equal(t, 5, res.TotalData)
		assert.Equal(t, 3, res.TotalPage)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestRoomService_SetMaintenance(t *testing.T) {
	t.Run("enabling maintenance stamps the date", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusMaintenance, fields[model.FieldStatus])
				assert.NotEmpty(t, fields[model.FieldLastMaintenanceDate])

				return nil
			})

		err := f.svc.SetMaintenance(testContext(), "101", true)

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("disabling maintenance returns the room to available", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusAvailable, fields[model.FieldStatus])
				assert.NotContains(t, fields, model.FieldLastMaintenanceDate)

				return nil
			})

		err := f.svc.SetMaintenance(testContext(), "101", false)

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("missing room is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.SetMaintenance(testContext(), "101", true)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("removes the stored image after deleting the row", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{
			RoomNumber: "101",
			ImageURL:   "https://test-bucket.example.com/room/object.png",
		}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.s3.EXPECT().GetObjectNameFromURL("test-bucket", "https://test-bucket.example.com/room/object.png").
			Return("object.png")
		f.s3.EXPECT().DeleteFile(gomock.Any(), "test-bucket", model.EntityName, "object.png").Return(nil)

		err := f.svc.Delete(testContext(), "101")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("missing room is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		err := f.svc.Delete(testContext(), "101")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
