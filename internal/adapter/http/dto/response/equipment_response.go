package response

import (
	"time"

	"locaequip/internal/domain/entities"
)

type EquipmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	DailyRate   float64   `json:"daily_rate"`
	Stock       int       `json:"stock"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromEquipment(e entities.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:          e.ID,
		Name:        e.Name,
		Category:    e.Category,
		Description: e.Description,
		DailyRate:   e.DailyRate,
		Stock:       e.Stock,
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromEquipments(equipments []entities.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(equipments))
	for _, e := range equipments {
		out = append(out, FromEquipment(e))
	}
	return out
}
