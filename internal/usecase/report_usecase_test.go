package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"locaequip/internal/domain/entities"
	mock_interfaces "locaequip/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func completedRental(id, clientName, startDate string, finalValue float64, items ...entities.RentalItem) entities.Rental {
	return entities.Rental{
		ID:         id,
		ClientName: clientName,
		StartDate:  mustDate(startDate),
		EndDate:    mustDate(startDate),
		FinalValue: finalValue,
		Status:     entities.RentalStatusConcluido,
		Items:      items,
	}
}

func TestReportUseCase_Generate(t *testing.T) {
	t.Run("invalid period", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil)

		if _, err := uc.Generate(context.Background(), time.Time{}, mustDate("2025-03-31")); !errors.Is(err, ErrInvalidReportPeriod) {
			t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
		}
		if _, err := uc.Generate(context.Background(), mustDate("2025-03-31"), mustDate("2025-03-01")); !errors.Is(err, ErrInvalidReportPeriod) {
			t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
		}
	})

	t.Run("revenue, counts and average ticket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rentals := mock_interfaces.NewMockIRentalRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewReportUseCase(rentals, budgets)

		rentals.EXPECT().List(gomock.Any()).Return([]entities.Rental{
			completedRental("r-1", "Maria", "2025-03-05", 1500),
			completedRental("r-2", "João", "2025-03-12", 2480),
			completedRental("r-3", "Maria", "2025-03-20", 1200),
			// Active contracts never count toward revenue.
			{ID: "r-4", ClientName: "Ana", StartDate: mustDate("2025-03-15"), Status: entities.RentalStatusAtivo, FinalValue: 9000},
			// Completed but starting outside the period.
			completedRental("r-5", "Caio", "2025-04-02", 700),
		}, nil)
		budgets.EXPECT().List(gomock.Any()).Return([]entities.Budget{
			{ID: "b-1", Status: entities.BudgetStatusAprovado, CreatedAt: mustDate("2025-03-10")},
			{ID: "b-2", Status: entities.BudgetStatusPendente, CreatedAt: mustDate("2025-03-11")},
			{ID: "b-3", Status: entities.BudgetStatusAprovado, CreatedAt: mustDate("2025-04-01")},
		}, nil)

		report, err := uc.Generate(context.Background(), mustDate("2025-03-01"), mustDate("2025-03-31"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TotalRevenue != 5180 {
			t.Fatalf("expected revenue 5180, got %v", report.TotalRevenue)
		}
		if report.ContractCount != 3 || report.BudgetCount != 1 {
			t.Fatalf("unexpected counts: %+v", report)
		}
		want := 5180.0 / 3.0
		if report.AverageTicket != want {
			t.Fatalf("expected average ticket %v, got %v", want, report.AverageTicket)
		}
	})

	t.Run("empty period has zero average ticket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rentals := mock_interfaces.NewMockIRentalRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewReportUseCase(rentals, budgets)

		rentals.EXPECT().List(gomock.Any()).Return(nil, nil)
		budgets.EXPECT().List(gomock.Any()).Return(nil, nil)

		report, err := uc.Generate(context.Background(), mustDate("2025-03-01"), mustDate("2025-03-31"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.AverageTicket != 0 || report.TotalRevenue != 0 {
			t.Fatalf("expected zeroed report, got %+v", report)
		}
	})

	t.Run("client and equipment rankings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rentals := mock_interfaces.NewMockIRentalRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewReportUseCase(rentals, budgets)

		rentals.EXPECT().List(gomock.Any()).Return([]entities.Rental{
			completedRental("r-1", "Maria", "2025-03-05", 1000,
				entities.RentalItem{EquipmentName: "Tenda 10x10", Quantity: 2}),
			completedRental("r-2", "João", "2025-03-06", 800,
				entities.RentalItem{EquipmentName: "Gerador", Quantity: 1}),
			completedRental("r-3", "Maria", "2025-03-07", 500,
				entities.RentalItem{EquipmentName: "Tenda 10x10", Quantity: 1},
				entities.RentalItem{EquipmentName: "Palco 4x4", Quantity: 1}),
			completedRental("r-4", "Ana", "2025-03-08", 300,
				entities.RentalItem{EquipmentName: "Gerador", Quantity: 2}),
			completedRental("r-5", "Beto", "2025-03-09", 200),
		}, nil)
		budgets.EXPECT().List(gomock.Any()).Return(nil, nil)

		report, err := uc.Generate(context.Background(), mustDate("2025-03-01"), mustDate("2025-03-31"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(report.TopClients) != 3 {
			t.Fatalf("expected top clients capped at 3, got %d", len(report.TopClients))
		}
		if report.TopClients[0].Name != "Maria" || report.TopClients[0].Contracts != 2 || report.TopClients[0].TotalValue != 1500 {
			t.Fatalf("unexpected leader: %+v", report.TopClients[0])
		}
		// João, Ana and Beto tie at one contract each; listing order decides.
		if report.TopClients[1].Name != "João" || report.TopClients[2].Name != "Ana" {
			t.Fatalf("tie-break broke listing order: %+v", report.TopClients)
		}

		if len(report.TopEquipments) != 3 {
			t.Fatalf("expected 3 ranked equipments, got %d", len(report.TopEquipments))
		}
		if report.TopEquipments[0].Name != "Tenda 10x10" || report.TopEquipments[0].Quantity != 3 || report.TopEquipments[0].Rentals != 2 {
			t.Fatalf("unexpected equipment leader: %+v", report.TopEquipments[0])
		}
		if report.TopEquipments[1].Name != "Gerador" || report.TopEquipments[1].Quantity != 3 {
			t.Fatalf("unexpected runner-up: %+v", report.TopEquipments[1])
		}
	})
}

func TestReportUseCase_GenerateRolling(t *testing.T) {
	t.Run("invalid days", func(t *testing.T) {
		uc := NewReportUseCase(nil, nil)
		if _, err := uc.GenerateRolling(context.Background(), 0); !errors.Is(err, ErrInvalidReportPeriod) {
			t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
		}
	})

	t.Run("anchors the window at now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rentals := mock_interfaces.NewMockIRentalRepository(ctrl)
		budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewReportUseCase(rentals, budgets)
		uc.now = fixedNow("2025-03-31T12:00:00Z")

		rentals.EXPECT().List(gomock.Any()).Return([]entities.Rental{
			completedRental("r-1", "Maria", "2025-03-15", 100),
			completedRental("r-2", "João", "2025-02-15", 100),
		}, nil)
		budgets.EXPECT().List(gomock.Any()).Return(nil, nil)

		report, err := uc.GenerateRolling(context.Background(), 30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.ContractCount != 1 {
			t.Fatalf("expected only the contract inside the last 30 days, got %d", report.ContractCount)
		}
	})
}

func TestReportUseCase_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	rentals := mock_interfaces.NewMockIRentalRepository(ctrl)
	budgets := mock_interfaces.NewMockIBudgetRepository(ctrl)
	uc := NewReportUseCase(rentals, budgets)
	uc.now = fixedNow("2025-03-15T09:00:00Z")

	rentals.EXPECT().List(gomock.Any()).Return([]entities.Rental{
		{
			ID:         "r-1",
			Status:     entities.RentalStatusAtivo,
			StartDate:  mustDate("2025-03-20"),
			EndDate:    mustDate("2025-03-22"),
			TotalValue: 1000,
			CreatedAt:  mustDate("2025-03-10"),
		},
		{
			ID:         "r-2",
			Status:     entities.RentalStatusInstalacaoPendente,
			StartDate:  mustDate("2025-04-01"),
			EndDate:    mustDate("2025-04-03"),
			TotalValue: 500,
			CreatedAt:  mustDate("2025-02-28"),
		},
		{
			ID:         "r-3",
			Status:     entities.RentalStatusConcluido,
			StartDate:  mustDate("2025-03-01"),
			EndDate:    mustDate("2025-03-02"),
			TotalValue: 300,
			CreatedAt:  mustDate("2025-03-01"),
		},
	}, nil)
	budgets.EXPECT().List(gomock.Any()).Return([]entities.Budget{
		{ID: "b-1", Status: entities.BudgetStatusPendente},
		{ID: "b-2", Status: entities.BudgetStatusPendente},
		{ID: "b-3", Status: entities.BudgetStatusAprovado},
	}, nil)

	metrics, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics.PendingBudgets != 2 {
		t.Fatalf("expected 2 pending budgets, got %d", metrics.PendingBudgets)
	}
	if metrics.ActiveRentals != 2 {
		t.Fatalf("expected 2 active rentals, got %d", metrics.ActiveRentals)
	}
	// Only r-1 and r-3 were created inside March.
	if metrics.MonthlyRevenue != 1300 {
		t.Fatalf("expected monthly revenue 1300, got %v", metrics.MonthlyRevenue)
	}
	// r-1 contributes installation and removal inside the 30-day horizon,
	// r-2 contributes both early-April events, r-3 is in the past.
	if metrics.ScheduledEvents != 4 {
		t.Fatalf("expected 4 scheduled events, got %d", metrics.ScheduledEvents)
	}
}
