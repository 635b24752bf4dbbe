package response

import (
	"locaequip/internal/domain/entities"
)

type ClientRankingResponse struct {
	Name       string  `json:"name"`
	Contracts  int     `json:"contracts"`
	TotalValue float64 `json:"total_value"`
}

type EquipmentRankingResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Rentals  int    `json:"rentals"`
}

type ReportResponse struct {
	PeriodStart   string                     `json:"period_start"`
	PeriodEnd     string                     `json:"period_end"`
	TotalRevenue  float64                    `json:"total_revenue"`
	ContractCount int                        `json:"contract_count"`
	BudgetCount   int                        `json:"budget_count"`
	AverageTicket float64                    `json:"average_ticket"`
	TopClients    []ClientRankingResponse    `json:"top_clients"`
	TopEquipments []EquipmentRankingResponse `json:"top_equipments"`
}

func FromReport(r entities.Report) ReportResponse {
	clients := make([]ClientRankingResponse, 0, len(r.TopClients))
	for _, c := range r.TopClients {
		clients = append(clients, ClientRankingResponse{
			Name:       c.Name,
			Contracts:  c.Contracts,
			TotalValue: c.TotalValue,
		})
	}
	equipments := make([]EquipmentRankingResponse, 0, len(r.TopEquipments))
	for _, e := range r.TopEquipments {
		equipments = append(equipments, EquipmentRankingResponse{
			Name:     e.Name,
			Quantity: e.Quantity,
			Rentals:  e.Rentals,
		})
	}
	return ReportResponse{
		PeriodStart:   r.PeriodStart.Format(entities.DateLayout),
		PeriodEnd:     r.PeriodEnd.Format(entities.DateLayout),
		TotalRevenue:  r.TotalRevenue,
		ContractCount: r.ContractCount,
		BudgetCount:   r.BudgetCount,
		AverageTicket: r.AverageTicket,
		TopClients:    clients,
		TopEquipments: equipments,
	}
}

type DashboardResponse struct {
	PendingBudgets  int     `json:"pending_budgets"`
	ActiveRentals   int     `json:"active_rentals"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	ScheduledEvents int     `json:"scheduled_events"`
}

func FromDashboard(m entities.DashboardMetrics) DashboardResponse {
	return DashboardResponse{
		PendingBudgets:  m.PendingBudgets,
		ActiveRentals:   m.ActiveRentals,
		MonthlyRevenue:  m.MonthlyRevenue,
		ScheduledEvents: m.ScheduledEvents,
	}
}
