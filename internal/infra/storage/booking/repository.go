package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	"github.com/m04kA/SMC-EquipmentBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-EquipmentBooking/pkg/psqlbuilder"
)

const tableBookings = "bookings"

var bookingColumns = []string{
	"id",
	"equipment_id",
	"user_id",
	"created_by",
	"start_time",
	"end_time",
	"quantity",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование (одно вхождение серии)
// Если в контексте передана активная транзакция, использует её.
// Вставка серии выполняется внутри одной транзакции usecase'а, поэтому
// каждое вставленное вхождение учитывается при проверке следующего.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsertQuery(booking)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE) до её завершения
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру, отсортированные по времени начала
//
// Примеры использования:
//
// 1. Все бронирования пользователя:
//    filter := domain.BookingsFilter{UserID: &userID}
//
// 2. Активные бронирования оборудования:
//    status := domain.StatusActive
//    filter := domain.BookingsFilter{EquipmentID: &equipmentID, Status: &status}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// SumActiveQuantity возвращает суммарное количество единиц оборудования в активных
// бронированиях, пересекающихся с интервалом [start, end)
// Касание границ (end одного == start другого) пересечением не считается.
// excludeID исключает бронирование из суммы (используется при редактировании).
func (r *Repository) SumActiveQuantity(ctx context.Context, equipmentID int64, interval domain.Interval, excludeID *int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildCommittedQuery(equipmentID, interval, excludeID)
	if err != nil {
		return 0, fmt.Errorf("%w: SumActiveQuantity - build select query: %v", ErrBuildQuery, err)
	}

	var committed int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&committed); err != nil {
		return 0, fmt.Errorf("%w: SumActiveQuantity - scan sum: %w", ErrScanRow, err)
	}

	return committed, nil
}

// Update обновляет редактируемые поля бронирования
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("equipment_id", booking.EquipmentID).
		Set("user_id", booking.UserID).
		Set("start_time", booking.StartTime).
		Set("end_time", booking.EndTime).
		Set("quantity", booking.Quantity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// Cancel переводит бронирование в статус canceled, освобождая забронированные единицы
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", domain.StatusCanceled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Cancel", query, args)
}

// Delete удаляет бронирование (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func buildInsertQuery(booking *domain.Booking) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableBookings).
		Columns(
			"equipment_id",
			"user_id",
			"created_by",
			"start_time",
			"end_time",
			"quantity",
			"status",
		).
		Values(
			booking.EquipmentID,
			booking.UserID,
			booking.CreatedBy,
			booking.StartTime,
			booking.EndTime,
			booking.Quantity,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func buildListQuery(filter domain.BookingsFilter) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		OrderBy("start_time ASC", "id ASC")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.EquipmentID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"equipment_id": *filter.EquipmentID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.To})
	}

	return selectBuilder.ToSql()
}

func buildCommittedQuery(equipmentID int64, interval domain.Interval, excludeID *int64) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select("COALESCE(SUM(quantity), 0)").
		From(tableBookings).
		Where(squirrel.Eq{"equipment_id": equipmentID}).
		Where(squirrel.Eq{"status": domain.StatusActive}).
		Where(squirrel.Lt{"start_time": interval.End}).
		Where(squirrel.Gt{"end_time": interval.Start})

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	return selectBuilder.ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking   domain.Booking
		createdBy sql.NullInt64
	)

	err := row.Scan(
		&booking.ID,
		&booking.EquipmentID,
		&booking.UserID,
		&createdBy,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Quantity,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if createdBy.Valid {
		booking.CreatedBy = &createdBy.Int64
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
