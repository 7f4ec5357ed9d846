package equipment

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

const tableEquipment = "equipment"

var equipmentColumns = []string{
	"id",
	"name",
	"type",
	"location",
	"total_quantity",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога оборудования (только чтение)
// Каталог ведётся внешним сервисом, здесь читаются только факты о вместимости.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория оборудования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает оборудование по ID
// Внутри транзакции строка блокируется (FOR UPDATE): так конкурентные
// проверки вместимости одного и того же оборудования выполняются по очереди.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildGetByIDQuery(id, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	eq, err := scanEquipment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan equipment: %w", ErrScanRow, err)
	}

	return eq, nil
}

// List получает оборудование, отсортированное по названию
// onlyAvailable = true исключает оборудование на обслуживании
func (r *Repository) List(ctx context.Context, onlyAvailable bool) ([]*domain.Equipment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(equipmentColumns...).
		From(tableEquipment).
		OrderBy("name ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.Equipment, 0)
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		items = append(items, eq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

func buildGetByIDQuery(id int64, forUpdate bool) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(equipmentColumns...).
		From(tableEquipment).
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return selectBuilder.ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	var (
		eq       domain.Equipment
		location sql.NullString
	)

	err := row.Scan(
		&eq.ID,
		&eq.Name,
		&eq.Type,
		&location,
		&eq.TotalQuantity,
		&eq.IsAvailable,
		&eq.CreatedAt,
		&eq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if location.Valid {
		eq.Location = &location.String
	}

	return &eq, nil
}
