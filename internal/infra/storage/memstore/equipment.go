package memstore

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	equipmentRepo "github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/equipment"
)

// EquipmentRepository in-memory репозиторий оборудования
type EquipmentRepository struct {
	store *Store
}

// Add добавляет оборудование в каталог (наполнение для разработки и тестов)
func (r *EquipmentRepository) Add(ctx context.Context, eq domain.Equipment) (*domain.Equipment, error) {
	s := r.store
	err := s.write(ctx, func() error {
		s.nextEquipmentID++
		eq.ID = s.nextEquipmentID
		eq.CreatedAt = s.now()
		eq.UpdatedAt = eq.CreatedAt
		s.equipment[eq.ID] = eq
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &eq, nil
}

// SetAvailability меняет флаг доступности оборудования
func (r *EquipmentRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	s := r.store
	return s.write(ctx, func() error {
		eq, ok := s.equipment[id]
		if !ok {
			return equipmentRepo.ErrEquipmentNotFound
		}
		eq.IsAvailable = available
		eq.UpdatedAt = s.now()
		s.equipment[id] = eq
		return nil
	})
}

// GetByID получает оборудование по ID
func (r *EquipmentRepository) GetByID(_ context.Context, id int64) (*domain.Equipment, error) {
	var (
		eq domain.Equipment
		ok bool
	)
	r.store.read(func() {
		eq, ok = r.store.equipment[id]
	})
	if !ok {
		return nil, equipmentRepo.ErrEquipmentNotFound
	}
	return &eq, nil
}

// List получает оборудование, отсортированное по названию
func (r *EquipmentRepository) List(_ context.Context, onlyAvailable bool) ([]*domain.Equipment, error) {
	items := make([]*domain.Equipment, 0)
	r.store.read(func() {
		for _, eq := range r.store.equipment {
			if onlyAvailable && !eq.IsAvailable {
				continue
			}
			eq := eq
			items = append(items, &eq)
		}
	})

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}
