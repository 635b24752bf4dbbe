package response

import (
	"time"

	"locaequip/internal/domain/entities"
)

type BudgetItemResponse struct {
	ID            string  `json:"id"`
	EquipmentName string  `json:"equipment_name"`
	Quantity      int     `json:"quantity"`
	DailyRate     float64 `json:"daily_rate"`
	Days          int     `json:"days"`
	Total         float64 `json:"total"`
}

type BudgetResponse struct {
	ID                   string               `json:"id"`
	Number               string               `json:"number"`
	ClientID             string               `json:"client_id"`
	ClientName           string               `json:"client_name"`
	StartDate            string               `json:"start_date"`
	EndDate              string               `json:"end_date"`
	InstallationTime     string               `json:"installation_time"`
	RemovalTime          string               `json:"removal_time"`
	InstallationLocation string               `json:"installation_location"`
	Items                []BudgetItemResponse `json:"items"`
	Subtotal             float64              `json:"subtotal"`
	Discount             float64              `json:"discount"`
	TotalValue           float64              `json:"total_value"`
	Status               string               `json:"status"`
	Observations         string               `json:"observations"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{
			ID:            it.ID,
			EquipmentName: it.EquipmentName,
			Quantity:      it.Quantity,
			DailyRate:     it.DailyRate,
			Days:          it.Days,
			Total:         it.Total,
		})
	}

	return BudgetResponse{
		ID:                   b.ID,
		Number:               b.Number,
		ClientID:             b.ClientID,
		ClientName:           b.ClientName,
		StartDate:            b.StartDate.Format(entities.DateLayout),
		EndDate:              b.EndDate.Format(entities.DateLayout),
		InstallationTime:     b.InstallationTime,
		RemovalTime:          b.RemovalTime,
		InstallationLocation: b.InstallationLocation,
		Items:                items,
		Subtotal:             b.Subtotal,
		Discount:             b.Discount,
		TotalValue:           b.TotalValue,
		Status:               string(b.Status),
		Observations:         b.Observations,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}
