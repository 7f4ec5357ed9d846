package equipment

import (
	"context"
	"errors"
	"fmt"

	equipmentRepo "github.com/m04kA/SMC-EquipmentBooking/internal/infra/storage/equipment"
	"github.com/m04kA/SMC-EquipmentBooking/internal/service/equipment/models"
)

// Service сервис чтения каталога оборудования
type Service struct {
	equipmentRepo EquipmentRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса оборудования
func NewService(equipmentRepo EquipmentRepository, logger Logger) *Service {
	return &Service{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

// GetByID получает оборудование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EquipmentResponse, error) {
	eq, err := s.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, equipmentRepo.ErrEquipmentNotFound) {
			s.logger.Warn("GetByID: equipment id=%d not found", id)
			return nil, ErrEquipmentNotFound
		}
		s.logger.Error("GetByID: repository error for equipment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEquipment(eq), nil
}

// List получает весь каталог оборудования, включая снятое с бронирования
func (s *Service) List(ctx context.Context) (*models.EquipmentListResponse, error) {
	items, err := s.equipmentRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d equipment item(s)", len(items))
	return models.FromDomainEquipmentList(items), nil
}
