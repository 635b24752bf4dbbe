package response

import (
	"locaequip/internal/domain/entities"
)

type ConflictResponse struct {
	RentalID   string `json:"rental_id"`
	ClientName string `json:"client_name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Quantity   int    `json:"quantity"`
}

type AvailabilityResponse struct {
	EquipmentName     string             `json:"equipment_name"`
	TotalStock        int                `json:"total_stock"`
	OccupiedQuantity  int                `json:"occupied_quantity"`
	AvailableQuantity int                `json:"available_quantity"`
	IsAvailable       bool               `json:"is_available"`
	Conflicts         []ConflictResponse `json:"conflicts"`
}

func FromAvailability(a entities.Availability) AvailabilityResponse {
	conflicts := make([]ConflictResponse, 0, len(a.Conflicts))
	for _, c := range a.Conflicts {
		conflicts = append(conflicts, ConflictResponse{
			RentalID:   c.RentalID,
			ClientName: c.ClientName,
			StartDate:  c.StartDate.Format(entities.DateLayout),
			EndDate:    c.EndDate.Format(entities.DateLayout),
			Quantity:   c.Quantity,
		})
	}
	return AvailabilityResponse{
		EquipmentName:     a.EquipmentName,
		TotalStock:        a.TotalStock,
		OccupiedQuantity:  a.OccupiedQuantity,
		AvailableQuantity: a.AvailableQuantity,
		IsAvailable:       a.IsAvailable,
		Conflicts:         conflicts,
	}
}

type ItemAvailabilityResponse struct {
	EquipmentName string               `json:"equipment_name"`
	Quantity      int                  `json:"quantity"`
	Availability  AvailabilityResponse `json:"availability"`
}

func FromItemAvailabilities(items []entities.ItemAvailability) []ItemAvailabilityResponse {
	out := make([]ItemAvailabilityResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ItemAvailabilityResponse{
			EquipmentName: item.EquipmentName,
			Quantity:      item.Quantity,
			Availability:  FromAvailability(item.Availability),
		})
	}
	return out
}
