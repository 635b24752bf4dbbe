package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"locaequip/internal/domain/entities"
	"locaequip/internal/usecase/interfaces"
)

const (
	topClientsLimit    = 3
	topEquipmentsLimit = 5
)

var ErrInvalidReportPeriod = errors.New("invalid report period")

// IReportUseCase aggregates rentals and budgets into the period report and
// the dashboard counters.
type IReportUseCase interface {
	Generate(ctx context.Context, start, end time.Time) (entities.Report, error)
	GenerateRolling(ctx context.Context, days int) (entities.Report, error)
	Dashboard(ctx context.Context) (entities.DashboardMetrics, error)
}

type ReportUseCase struct {
	rentals interfaces.IRentalRepository
	budgets interfaces.IBudgetRepository
	now     func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(rentals interfaces.IRentalRepository, budgets interfaces.IBudgetRepository) *ReportUseCase {
	return &ReportUseCase{rentals: rentals, budgets: budgets, now: time.Now}
}

// Generate filters rentals to Concluído contracts starting inside the period
// and budgets to Aprovado ones created inside it, then derives revenue,
// counts, the average ticket and the top-client/top-equipment rankings.
// Ranking ties keep the listing order of the underlying rentals.
func (u *ReportUseCase) Generate(ctx context.Context, start, end time.Time) (entities.Report, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return entities.Report{}, ErrInvalidReportPeriod
	}

	rentals, err := u.rentals.List(ctx)
	if err != nil {
		return entities.Report{}, err
	}
	budgets, err := u.budgets.List(ctx)
	if err != nil {
		return entities.Report{}, err
	}

	inPeriod := func(t time.Time) bool {
		return !t.Before(start) && !t.After(end)
	}

	completed := make([]entities.Rental, 0, len(rentals))
	for _, r := range rentals {
		if r.Status == entities.RentalStatusConcluido && inPeriod(r.StartDate) {
			completed = append(completed, r)
		}
	}

	budgetCount := 0
	for _, b := range budgets {
		if b.Status == entities.BudgetStatusAprovado && inPeriod(b.CreatedAt) {
			budgetCount++
		}
	}

	totalRevenue := 0.0
	for _, r := range completed {
		totalRevenue += r.FinalValue
	}

	averageTicket := 0.0
	if len(completed) > 0 {
		averageTicket = totalRevenue / float64(len(completed))
	}

	return entities.Report{
		PeriodStart:   start,
		PeriodEnd:     end,
		TotalRevenue:  totalRevenue,
		ContractCount: len(completed),
		BudgetCount:   budgetCount,
		AverageTicket: averageTicket,
		TopClients:    topClients(completed),
		TopEquipments: topEquipments(completed),
	}, nil
}

// GenerateRolling reports over the last N days, anchored at now.
func (u *ReportUseCase) GenerateRolling(ctx context.Context, days int) (entities.Report, error) {
	if days <= 0 {
		return entities.Report{}, ErrInvalidReportPeriod
	}
	end := u.now().UTC()
	start := end.AddDate(0, 0, -days)
	return u.Generate(ctx, start, end)
}

// Dashboard derives the landing-page counters: pending budgets, rentals not
// yet completed, revenue booked in the current calendar month, and agenda
// events over the next 30 days.
func (u *ReportUseCase) Dashboard(ctx context.Context) (entities.DashboardMetrics, error) {
	rentals, err := u.rentals.List(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}
	budgets, err := u.budgets.List(ctx)
	if err != nil {
		return entities.DashboardMetrics{}, err
	}

	now := u.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, 30)

	var metrics entities.DashboardMetrics
	for _, b := range budgets {
		if b.Status == entities.BudgetStatusPendente {
			metrics.PendingBudgets++
		}
	}
	for _, r := range rentals {
		if r.Status == entities.RentalStatusInstalacaoPendente || r.Status == entities.RentalStatusAtivo {
			metrics.ActiveRentals++
		}
		if !r.CreatedAt.Before(monthStart) && r.CreatedAt.Before(monthEnd) {
			metrics.MonthlyRevenue += r.TotalValue
		}
		for _, event := range entities.EventsFromRental(r) {
			if !event.Date.Before(today) && !event.Date.After(horizon) {
				metrics.ScheduledEvents++
			}
		}
	}
	return metrics, nil
}

func topClients(rentals []entities.Rental) []entities.ClientRanking {
	index := make(map[string]int, len(rentals))
	rankings := make([]entities.ClientRanking, 0, len(rentals))
	for _, r := range rentals {
		i, ok := index[r.ClientName]
		if !ok {
			i = len(rankings)
			index[r.ClientName] = i
			rankings = append(rankings, entities.ClientRanking{Name: r.ClientName})
		}
		rankings[i].Contracts++
		rankings[i].TotalValue += r.FinalValue
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Contracts > rankings[j].Contracts
	})
	if len(rankings) > topClientsLimit {
		rankings = rankings[:topClientsLimit]
	}
	return rankings
}

func topEquipments(rentals []entities.Rental) []entities.EquipmentRanking {
	index := make(map[string]int)
	rankings := make([]entities.EquipmentRanking, 0)
	for _, r := range rentals {
		for _, item := range r.Items {
			i, ok := index[item.EquipmentName]
			if !ok {
				i = len(rankings)
				index[item.EquipmentName] = i
				rankings = append(rankings, entities.EquipmentRanking{Name: item.EquipmentName})
			}
			rankings[i].Quantity += item.Quantity
			rankings[i].Rentals++
		}
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].Quantity > rankings[j].Quantity
	})
	if len(rankings) > topEquipmentsLimit {
		rankings = rankings[:topEquipmentsLimit]
	}
	return rankings
}
