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
	paymentMocks "grandromeo/internal/domains/payment/mocks"
	"grandromeo/internal/domains/payment/model"
	"grandromeo/internal/domains/payment/model/dto"
	"grandromeo/internal/domains/payment/service"
	reservationMocks "grandromeo/internal/domains/reservation/mocks"
	cacheMocks "grandromeo/shared/cache/mocks"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/failure"
)

type fixture struct {
	repo         *paymentMocks.MockPayment
	reservations *reservationMocks.MockReservation
	cache        *cacheMocks.MockRedisCache
	svc          service.Payment
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:         paymentMocks.NewMockPayment(ctrl),
		reservations: reservationMocks.NewMockReservation(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.reservations, cfg, f.cache, mocks.NewOtel())

	return f
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestPaymentService_Create(t *testing.T) {
	req := dto.CreatePaymentRequest{
		ReservationID: "res-1",
		AmountPaid:    250.50,
		PaymentMethod: "Cash",
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.reservations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payment model.Payment) error {
				assert.NotEmpty(t, payment.PaymentID)
				assert.Equal(t, model.StatusCompleted, payment.PaymentStatus)
				assert.NotEmpty(t, payment.PaymentDate)

				return nil
			})

		res, err := f.svc.Create(testContext(), req)

		assert.NoError(t, err)
		assert.Equal(t, "res-1", res.ReservationID)
		assert.Equal(t, 250.50, res.AmountPaid)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("unknown reservation is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.reservations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(testContext(), req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("reservation lookup error is surfaced", func(t *testing.T) {
		f := newFixture(t)

		f.reservations.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))

		_, err := f.svc.Create(testContext(), req)

		assert.Error(t, err)
	})
}

func TestPaymentService_Get(t *testing.T) {
	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Payment{
			PaymentID:     "pay-1",
			ReservationID: "res-1",
			AmountPaid:    100,
		}, nil)

		res, err := f.svc.Get(testContext(), "pay-1")

		assert.NoError(t, err)
		assert.Equal(t, "pay-1", res.PaymentID)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.PaymentResponse)
				assert.True(t, ok)
				res.PaymentID = "pay-1"

				return nil
			})

		res, err := f.svc.Get(testContext(), "pay-1")

		assert.NoError(t, err)
		assert.Equal(t, "pay-1", res.PaymentID)
	})

	t.Run("missing payment is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)

		_, err := f.svc.Get(testContext(), "pay-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPaymentService_GetAll(t *testing.T) {
	t.Run("returns payments with paging", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Payment{
			{PaymentID: "pay-1"},
			{PaymentID: "pay-2"},
		}, nil)

		res, err := f.svc.GetAll(testContext(), gDto.QueryParams{Limit: 2}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Payments, 2)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestPaymentService_GetByReservation(t *testing.T) {
	t.Run("lists payments for a reservation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Payment{
			{PaymentID: "pay-1", ReservationID: "res-1"},
		}, nil)

		res, err := f.svc.GetByReservation(testContext(), "res-1")

		assert.NoError(t, err)
		assert.Len(t, res.Payments, 1)
		assert.Equal(t, 1, res.TotalData)
	})
}

func TestPaymentService_Update(t *testing.T) {
	amount := 300.0

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Update(testContext(), dto.UpdatePaymentRequest{AmountPaid: &amount}, "pay-1")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("missing payment is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(testContext(), dto.UpdatePaymentRequest{AmountPaid: &amount}, "pay-1")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPaymentService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(testContext(), "pay-1")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("missing payment is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(testContext(), "pay-1")

		assert.Error(t, err)
	})
}
