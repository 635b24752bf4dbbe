package request

import (
	"locaequip/internal/domain/entities"
)

type BudgetItemRequest struct {
	EquipmentName string  `json:"equipment_name" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required"`
	DailyRate     float64 `json:"daily_rate" binding:"required"`
}

type BudgetRequest struct {
	ClientID             string              `json:"client_id" binding:"required"`
	ClientName           string              `json:"client_name" binding:"required"`
	StartDate            string              `json:"start_date" binding:"required"`
	EndDate              string              `json:"end_date" binding:"required"`
	InstallationTime     string              `json:"installation_time"`
	RemovalTime          string              `json:"removal_time"`
	InstallationLocation string              `json:"installation_location"`
	Items                []BudgetItemRequest `json:"items" binding:"required"`
	Discount             float64             `json:"discount"`
	Observations         string              `json:"observations"`
}

// ToEntity parses the wire dates and maps the payload onto a budget. Number,
// status, days and totals are derived downstream.
func (r BudgetRequest) ToEntity() (entities.Budget, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return entities.Budget{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return entities.Budget{}, err
	}

	items := make([]entities.BudgetItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.BudgetItem{
			EquipmentName: it.EquipmentName,
			Quantity:      it.Quantity,
			DailyRate:     it.DailyRate,
		})
	}

	return entities.Budget{
		ClientID:             r.ClientID,
		ClientName:           r.ClientName,
		StartDate:            start,
		EndDate:              end,
		InstallationTime:     r.InstallationTime,
		RemovalTime:          r.RemovalTime,
		InstallationLocation: r.InstallationLocation,
		Items:                items,
		Discount:             r.Discount,
		Observations:         r.Observations,
	}, nil
}
