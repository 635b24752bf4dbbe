package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Aprovado is transient: approving a pending budget emits a rental and
// removes the budget in the same write, so stored budgets are only ever
// Pendente or Rejeitado.
type BudgetStatus string

const (
	BudgetStatusPendente  BudgetStatus = "Pendente"
	BudgetStatusAprovado  BudgetStatus = "Aprovado"
	BudgetStatusRejeitado BudgetStatus = "Rejeitado"
)

// BudgetItem is one equipment line inside a budget. EquipmentName and
// DailyRate are snapshots taken when the line is added.
type BudgetItem struct {
	ID            string  `json:"id"`
	EquipmentName string  `json:"equipment_name"`
	Quantity      int     `json:"quantity"`
	DailyRate     float64 `json:"daily_rate"`
	Days          int     `json:"days"`
	Total         float64 `json:"total"`
}

// Budget is a quote awaiting client approval.
type Budget struct {
	ID                   string       `json:"id"`
	Number               string       `json:"number"`
	ClientID             string       `json:"client_id"`
	ClientName           string       `json:"client_name"`
	StartDate            time.Time    `json:"start_date"`
	EndDate              time.Time    `json:"end_date"`
	InstallationTime     string       `json:"installation_time"`
	RemovalTime          string       `json:"removal_time"`
	InstallationLocation string       `json:"installation_location"`
	Items                []BudgetItem `json:"items"`
	Subtotal             float64      `json:"subtotal"`
	Discount             float64      `json:"discount"`
	TotalValue           float64      `json:"total_value"`
	Status               BudgetStatus `json:"status"`
	Observations         string       `json:"observations"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// Recalculate rederives every item's day count and total from the budget's
// current date range, then the subtotal and total value. Quantity and daily
// rate are preserved. Call after any change to StartDate/EndDate or Items.
func (b *Budget) Recalculate() {
	days := DaysInclusive(b.StartDate, b.EndDate)
	subtotal := 0.0
	for i := range b.Items {
		b.Items[i].Days = days
		b.Items[i].Total = float64(b.Items[i].Quantity) * b.Items[i].DailyRate * float64(days)
		subtotal += b.Items[i].Total
	}
	b.Subtotal = subtotal
	b.TotalValue = b.Subtotal - b.Discount
}

// RecalculateItem recomputes a single item's total with the item's current
// day count. Sibling items are untouched.
func (it *BudgetItem) RecalculateItem() {
	it.Total = float64(it.Quantity) * it.DailyRate * float64(it.Days)
}
