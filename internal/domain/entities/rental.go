package entities

import "time"

// RentalStatus represents the lifecycle of a rental contract.
type RentalStatus string

const (
	RentalStatusInstalacaoPendente RentalStatus = "Instalação Pendente"
	RentalStatusAtivo              RentalStatus = "Ativo"
	RentalStatusConcluido          RentalStatus = "Concluído"
)

// RentalItem is one equipment line inside a rental. Same snapshot semantics
// as BudgetItem.
type RentalItem struct {
	ID            string  `json:"id"`
	EquipmentName string  `json:"equipment_name"`
	Quantity      int     `json:"quantity"`
	DailyRate     float64 `json:"daily_rate"`
	Days          int     `json:"days"`
	Total         float64 `json:"total"`
}

// Rental is an active equipment-lease contract, optionally originating from
// an approved budget (BudgetID keeps the provenance link).
type Rental struct {
	ID                   string       `json:"id"`
	ClientID             string       `json:"client_id"`
	ClientName           string       `json:"client_name"`
	StartDate            time.Time    `json:"start_date"`
	EndDate              time.Time    `json:"end_date"`
	InstallationTime     string       `json:"installation_time"`
	RemovalTime          string       `json:"removal_time"`
	InstallationLocation string       `json:"installation_location"`
	Items                []RentalItem `json:"items"`
	TotalValue           float64      `json:"total_value"`
	Discount             float64      `json:"discount"`
	FinalValue           float64      `json:"final_value"`
	Status               RentalStatus `json:"status"`
	Observations         string       `json:"observations"`
	BudgetID             string       `json:"budget_id,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// Recalculate rederives item days/totals from the rental's date range, then
// TotalValue and FinalValue. Quantity and daily rate are preserved.
func (r *Rental) Recalculate() {
	days := DaysInclusive(r.StartDate, r.EndDate)
	total := 0.0
	for i := range r.Items {
		r.Items[i].Days = days
		r.Items[i].Total = float64(r.Items[i].Quantity) * r.Items[i].DailyRate * float64(days)
		total += r.Items[i].Total
	}
	r.TotalValue = total
	r.FinalValue = r.TotalValue - r.Discount
}
