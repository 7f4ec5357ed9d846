package models

import (
	"time"

	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
)

// EquipmentResponse ответ с данными оборудования
type EquipmentResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Location      *string   `json:"location,omitempty"`
	TotalQuantity int       `json:"totalQuantity"`
	IsAvailable   bool      `json:"isAvailable"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// EquipmentListResponse ответ со списком оборудования
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
}

// FromDomainEquipment конвертирует domain модель в DTO
func FromDomainEquipment(e *domain.Equipment) *EquipmentResponse {
	if e == nil {
		return nil
	}

	return &EquipmentResponse{
		ID:            e.ID,
		Name:          e.Name,
		Type:          e.Type,
		Location:      e.Location,
		TotalQuantity: e.TotalQuantity,
		IsAvailable:   e.IsAvailable,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// FromDomainEquipmentList конвертирует список domain моделей в DTO
func FromDomainEquipmentList(items []*domain.Equipment) *EquipmentListResponse {
	resp := &EquipmentListResponse{
		Equipment: make([]EquipmentResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Equipment = append(resp.Equipment, *FromDomainEquipment(item))
	}
	return resp
}
