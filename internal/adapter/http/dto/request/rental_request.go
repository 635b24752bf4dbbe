package request

import (
	"locaequip/internal/domain/entities"
)

type RentalItemRequest struct {
	EquipmentName string  `json:"equipment_name" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required"`
	DailyRate     float64 `json:"daily_rate" binding:"required"`
}

type RentalRequest struct {
	ClientID             string              `json:"client_id" binding:"required"`
	ClientName           string              `json:"client_name" binding:"required"`
	StartDate            string              `json:"start_date" binding:"required"`
	EndDate              string              `json:"end_date" binding:"required"`
	InstallationTime     string              `json:"installation_time"`
	RemovalTime          string              `json:"removal_time"`
	InstallationLocation string              `json:"installation_location"`
	Items                []RentalItemRequest `json:"items" binding:"required"`
	Discount             float64             `json:"discount"`
	Status               string              `json:"status"`
	Observations         string              `json:"observations"`
}

func (r RentalRequest) ToEntity() (entities.Rental, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return entities.Rental{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return entities.Rental{}, err
	}

	items := make([]entities.RentalItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.RentalItem{
			EquipmentName: it.EquipmentName,
			Quantity:      it.Quantity,
			DailyRate:     it.DailyRate,
		})
	}

	return entities.Rental{
		ClientID:             r.ClientID,
		ClientName:           r.ClientName,
		StartDate:            start,
		EndDate:              end,
		InstallationTime:     r.InstallationTime,
		RemovalTime:          r.RemovalTime,
		InstallationLocation: r.InstallationLocation,
		Items:                items,
		Discount:             r.Discount,
		Status:               entities.RentalStatus(r.Status),
		Observations:         r.Observations,
	}, nil
}
