package service

import (
	"context"
	"fmt"
	"time"

	"grandromeo/config"
	"grandromeo/infras/otel"
	"grandromeo/internal/domains/dashboard/model/dto"
	guestRepo "grandromeo/internal/domains/guest/repository"
	paymentRepo "grandromeo/internal/domains/payment/repository"
	reservationModel "grandromeo/internal/domains/reservation/model"
	reservationRepo "grandromeo/internal/domains/reservation/repository"
	roomModel "grandromeo/internal/domains/room/model"
	roomRepo "grandromeo/internal/domains/room/repository"
	"grandromeo/shared"
	"grandromeo/shared/cache"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheStats = "dashboard:stats"

// Stats cache gets a short TTL of its own so the dashboard lags writes by
// at most a minute.
const statsTTL = 60

type Dashboard interface {
	GetStats(ctx context.Context) (dto.DashboardStatsResponse, error)
}

type serviceImpl struct {
	guests       guestRepo.Guest
	rooms        roomRepo.Room
	reservations reservationRepo.Reservation
	payments     paymentRepo.Payment
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(guests guestRepo.Guest, rooms roomRepo.Room, reservations reservationRepo.Reservation, payments paymentRepo.Payment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		guests:       guests,
		rooms:        rooms,
		reservations: reservations,
		payments:     payments,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) GetStats(ctx context.Context) (res dto.DashboardStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheStats, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheStats).Msg("cache hit for dashboard stats")

		return res, nil
	}

	now := timezone.Now()
	today := timezone.Format(now, constant.CalendarFormat)
	monthStart := timezone.Format(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), constant.CalendarFormat)

	if res.TotalGuests, err = s.guests.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	if res.TotalRooms, err = s.rooms.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	if res.AvailableRooms, err = s.countRoomsByStatus(ctx, roomModel.StatusAvailable); err != nil {
		return res, err
	}

	if res.OccupiedRooms, err = s.countRoomsByStatus(ctx, roomModel.StatusOccupied); err != nil {
		return res, err
	}

	activeFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{reservationModel.StatusReserved, reservationModel.StatusCheckedIn},
				Table:    reservationModel.TableName,
			},
		},
	}

	if res.ActiveReservations, err = s.reservations.Count(ctx, activeFilter); err != nil {
		log.Error().Err(err).Msg("failed to count active reservations")

		return res, fmt.Errorf("failed to count active reservations: %w", err)
	}

	if res.TodayCheckIns, err = s.countReservationsByDate(ctx, reservationModel.FieldCheckInDate, today); err != nil {
		return res, err
	}

	if res.TodayCheckOuts, err = s.countReservationsByDate(ctx, reservationModel.FieldCheckOutDate, today); err != nil {
		return res, err
	}

	if res.MonthlyRevenue, err = s.payments.SumPaidSince(ctx, monthStart); err != nil {
		log.Error().Err(err).Msg("failed to sum monthly revenue")

		return res, fmt.Errorf("failed to sum monthly revenue: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStats, res, statsTTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) countRoomsByStatus(ctx context.Context, status string) (int, error) {
	count, err := s.rooms.Count(ctx, shared.FilterByID(status, roomModel.FieldStatus, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("status", status).Msg("failed to count rooms by status")

		return 0, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	return count, nil
}

func (s *serviceImpl) countReservationsByDate(ctx context.Context, field, date string) (int, error) {
	count, err := s.reservations.Count(ctx, shared.FilterByID(date, field, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("field", field).Msg("failed to count reservations by date")

		return 0, fmt.Errorf("failed to count reservations by date: %w", err)
	}

	return count, nil
}
