package request

import (
	"locaequip/internal/domain/entities"
)

type EquipmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	DailyRate   float64 `json:"daily_rate" binding:"required"`
	Stock       int     `json:"stock"`
	Status      string  `json:"status"`
}

func (r EquipmentRequest) ToEntity() entities.Equipment {
	return entities.Equipment{
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		DailyRate:   r.DailyRate,
		Stock:       r.Stock,
		Status:      entities.EquipmentStatus(r.Status),
	}
}
