package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"grandromeo/infras/otel"
	"grandromeo/infras/postgres"
	"grandromeo/internal/domains/reservation/availability"
	"grandromeo/internal/domains/reservation/model"
	"grandromeo/shared/constant"
	gDto "grandromeo/shared/dto"
	"grandromeo/shared/logger"
	gRepo "grandromeo/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	InsertRooms(ctx context.Context, reservationID string, roomNumbers []string) error
	DeleteRooms(ctx context.Context, reservationID string) error
	GetRoomNumbers(ctx context.Context, reservationID string) ([]string, error)
	InsertStaff(ctx context.Context, reservationID string, staffIDs []string) error
	DeleteStaff(ctx context.Context, reservationID string) error
	GetStaffIDs(ctx context.Context, reservationID string) ([]string, error)
	GetActiveStays(ctx context.Context) ([]availability.Stay, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldReservationID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) InsertRooms(ctx context.Context, reservationID string, roomNumbers []string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.InsertRooms")
	defer scope.End()

	if len(roomNumbers) == 0 {
		return nil
	}

	rows := make([]model.ReservationRoom, len(roomNumbers))
	for i, number := range roomNumbers {
		rows[i] = model.ReservationRoom{ReservationID: reservationID, RoomNumber: number}
	}

	query := fmt.Sprintf("INSERT INTO %s (reservation_id, room_number) VALUES (:reservation_id, :room_number)", model.RoomsTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = r.db.Write.NamedExecContext(ctx, query, rows); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert reservation rooms: %w", err)
	}

	return nil
}

func (r *repositoryImpl) DeleteRooms(ctx context.Context, reservationID string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.DeleteRooms")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE reservation_id = $1", model.RoomsTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = r.db.Write.ExecContext(ctx, query, reservationID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete reservation rooms: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetRoomNumbers(ctx context.Context, reservationID string) (roomNumbers []string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.GetRoomNumbers")
	defer scope.End()

	query := fmt.Sprintf("SELECT room_number FROM %s WHERE reservation_id = $1 ORDER BY room_number", model.RoomsTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &roomNumbers, query, reservationID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get reservation rooms: %w", err)
	}

	return roomNumbers, nil
}

func (r *repositoryImpl) InsertStaff(ctx context.Context, reservationID string, staffIDs []string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.InsertStaff")
	defer scope.End()

	if len(staffIDs) == 0 {
		return nil
	}

	rows := make([]model.ReservationStaff, len(staffIDs))
	for i, id := range staffIDs {
		rows[i] = model.ReservationStaff{ReservationID: reservationID, StaffID: id}
	}

	query := fmt.Sprintf("INSERT INTO %s (reservation_id, staff_id) VALUES (:reservation_id, :staff_id)", model.StaffTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = r.db.Write.NamedExecContext(ctx, query, rows); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert reservation staff: %w", err)
	}

	return nil
}

func (r *repositoryImpl) DeleteStaff(ctx context.Context, reservationID string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.DeleteStaff")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE reservation_id = $1", model.StaffTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = r.db.Write.ExecContext(ctx, query, reservationID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete reservation staff: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetStaffIDs(ctx context.Context, reservationID string) (staffIDs []string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.GetStaffIDs")
	defer scope.End()

	query := fmt.Sprintf("SELECT staff_id FROM %s WHERE reservation_id = $1 ORDER BY staff_id", model.StaffTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &staffIDs, query, reservationID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get reservation staff: %w", err)
	}

	return staffIDs, nil
}

// GetActiveStays projects every non-terminal reservation onto its rooms.
// The result is the input of the availability checks.
func (r *repositoryImpl) GetActiveStays(ctx context.Context) (stays []availability.Stay, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.GetActiveStays")
	defer scope.End()

	query := fmt.Sprintf(`SELECT r.reservation_id, rr.room_number, r.check_in_date, r.check_out_date
		FROM %s r
		JOIN %s rr ON rr.reservation_id = r.reservation_id
		WHERE r.status NOT IN (?)`, model.TableName, model.RoomsTableName)

	query, args, err := sqlx.In(query, model.TerminalStatuses)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to build active stays query: %w", err)
	}

	query = r.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &stays, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get active stays: %w", err)
	}

	return stays, nil
}
