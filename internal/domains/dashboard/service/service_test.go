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
	"grandromeo/internal/domains/dashboard/model/dto"
	"grandromeo/internal/domains/dashboard/service"
	guestMocks "grandromeo/internal/domains/guest/mocks"
	paymentMocks "grandromeo/internal/domains/payment/mocks"
	reservationMocks "grandromeo/internal/domains/reservation/mocks"
	roomMocks "grandromeo/internal/domains/room/mocks"
	cacheMocks "grandromeo/shared/cache/mocks"
)

func TestDashboardService_GetStats(t *testing.T) {
	newService := func(t *testing.T) (service.Dashboard, *guestMocks.MockGuest, *roomMocks.MockRoom, *reservationMocks.MockReservation, *paymentMocks.MockPayment, *cacheMocks.MockRedisCache) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		guests := guestMocks.NewMockGuest(ctrl)
		rooms := roomMocks.NewMockRoom(ctrl)
		reservations := reservationMocks.NewMockReservation(ctrl)
		payments := paymentMocks.NewMockPayment(ctrl)
		cache := cacheMocks.NewMockRedisCache(ctrl)

		svc := service.New(guests, rooms, reservations, payments, &config.Config{}, cache, mocks.NewOtel())

		return svc, guests, rooms, reservations, payments, cache
	}

	t.Run("aggregates counts and monthly revenue", func(t *testing.T) {
		svc, guests, rooms, reservations, payments, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		guests.EXPECT().Count(gomock.Any(), gomock.Any()).Return(25, nil)

		// Total, then available, then occupied.
		gomock.InOrder(
			rooms.EXPECT().Count(gomock.Any(), gomock.Any()).Return(10, nil),
			rooms.EXPECT().Count(gomock.Any(), gomock.Any()).Return(4, nil),
			rooms.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil),
		)

		// Active, then today's check-ins, then today's check-outs.
		gomock.InOrder(
			reservations.EXPECT().Count(gomock.Any(), gomock.Any()).Return(6, nil),
			reservations.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil),
			reservations.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil),
		)

		payments.EXPECT().SumPaidSince(gomock.Any(), gomock.Any()).Return(15230.75, nil)

		res, err := svc.GetStats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 25, res.TotalGuests)
		assert.Equal(t, 10, res.TotalRooms)
		assert.Equal(t, 4, res.AvailableRooms)
		assert.Equal(t, 3, res.OccupiedRooms)
		assert.Equal(t, 6, res.ActiveReservations)
		assert.Equal(t, 2, res.TodayCheckIns)
		assert.Equal(t, 1, res.TodayCheckOuts)
		assert.Equal(t, 15230.75, res.MonthlyRevenue)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("cache hit skips the repositories", func(t *testing.T) {
		svc, _, _, _, _, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.DashboardStatsResponse)
				assert.True(t, ok)
				res.TotalGuests = 25

				return nil
			})

		res, err := svc.GetStats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 25, res.TotalGuests)
	})

	t.Run("count error is surfaced", func(t *testing.T) {
		svc, guests, _, _, _, cache := newService(t)

		cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		guests.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := svc.GetStats(context.Background())

		assert.Error(t, err)
	})
}
