package get_availability

import (
	"github.com/m04kA/SMC-EquipmentBooking/internal/domain"
	getAvailability "github.com/m04kA/SMC-EquipmentBooking/internal/usecase/get_availability"
)

// AvailabilityResponse свободные единицы оборудования за период
type AvailabilityResponse struct {
	Start string             `json:"start"` // YYYY-MM-DD
	End   string             `json:"end"`   // YYYY-MM-DD, включительно
	Items []AvailabilityItem `json:"items"`
}

type AvailabilityItem struct {
	EquipmentID int64  `json:"equipmentId"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	FreeUnits   int    `json:"freeUnits"`
}

func fromUseCaseResponse(start, end string, resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		Start: start,
		End:   end,
		Items: make([]AvailabilityItem, 0, len(resp.Items)),
	}
	for _, item := range resp.Items {
		out.Items = append(out.Items, fromDomain(item))
	}
	return out
}

func fromDomain(a domain.EquipmentAvailability) AvailabilityItem {
	return AvailabilityItem{
		EquipmentID: a.EquipmentID,
		Name:        a.Name,
		Type:        a.Type,
		FreeUnits:   a.FreeUnits,
	}
}
