package response

import (
	"time"

	"locaequip/internal/domain/entities"
)

type RentalItemResponse struct {
	ID            string  `json:"id"`
	EquipmentName string  `json:"equipment_name"`
	Quantity      int     `json:"quantity"`
	DailyRate     float64 `json:"daily_rate"`
	Days          int     `json:"days"`
	Total         float64 `json:"total"`
}

type RentalResponse struct {
	ID                   string               `json:"id"`
	ClientID             string               `json:"client_id"`
	ClientName           string               `json:"client_name"`
	StartDate            string               `json:"start_date"`
	EndDate              string               `json:"end_date"`
	InstallationTime     string               `json:"installation_time"`
	RemovalTime          string               `json:"removal_time"`
	InstallationLocation string               `json:"installation_location"`
	Items                []RentalItemResponse `json:"items"`
	TotalValue           float64              `json:"total_value"`
	Discount             float64              `json:"discount"`
	FinalValue           float64              `json:"final_value"`
	Status               string               `json:"status"`
	Observations         string               `json:"observations"`
	BudgetID             string               `json:"budget_id,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

func FromRental(r entities.Rental) RentalResponse {
	items := make([]RentalItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, RentalItemResponse{
			ID:            it.ID,
			EquipmentName: it.EquipmentName,
			Quantity:      it.Quantity,
			DailyRate:     it.DailyRate,
			Days:          it.Days,
			Total:         it.Total,
		})
	}

	return RentalResponse{
		ID:                   r.ID,
		ClientID:             r.ClientID,
		ClientName:           r.ClientName,
		StartDate:            r.StartDate.Format(entities.DateLayout),
		EndDate:              r.EndDate.Format(entities.DateLayout),
		InstallationTime:     r.InstallationTime,
		RemovalTime:          r.RemovalTime,
		InstallationLocation: r.InstallationLocation,
		Items:                items,
		TotalValue:           r.TotalValue,
		Discount:             r.Discount,
		FinalValue:           r.FinalValue,
		Status:               string(r.Status),
		Observations:         r.Observations,
		BudgetID:             r.BudgetID,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

func FromRentals(rentals []entities.Rental) []RentalResponse {
	out := make([]RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, FromRental(r))
	}
	return out
}
