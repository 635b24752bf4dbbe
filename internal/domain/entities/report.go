package entities

import "time"

// ClientRanking is one row of the top-clients report, ranked by contract
// count. Ties keep the listing order of the underlying rentals.
type ClientRanking struct {
	Name       string  `json:"name"`
	Contracts  int     `json:"contracts"`
	TotalValue float64 `json:"total_value"`
}

// EquipmentRanking is one row of the top-equipments report, ranked by the
// summed quantity across rental line items.
type EquipmentRanking struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Rentals  int    `json:"rentals"`
}

// Report aggregates completed rentals and approved budgets over a period.
type Report struct {
	PeriodStart   time.Time          `json:"period_start"`
	PeriodEnd     time.Time          `json:"period_end"`
	TotalRevenue  float64            `json:"total_revenue"`
	ContractCount int                `json:"contract_count"`
	BudgetCount   int                `json:"budget_count"`
	AverageTicket float64            `json:"average_ticket"`
	TopClients    []ClientRanking    `json:"top_clients"`
	TopEquipments []EquipmentRanking `json:"top_equipments"`
}

// DashboardMetrics are the headline counters of the landing dashboard.
type DashboardMetrics struct {
	PendingBudgets  int     `json:"pending_budgets"`
	ActiveRentals   int     `json:"active_rentals"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	ScheduledEvents int     `json:"scheduled_events"`
}
