package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"locaequip/internal/domain/entities"
	"locaequip/internal/infrastructure/notify"
	mock_interfaces "locaequip/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixedNow(s string) func() time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func mustDate(s string) time.Time {
	t, err := time.Parse(entities.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func validBudgetInput() entities.Budget {
	return entities.Budget{
		ClientID:   "cli-1",
		ClientName: "Maria Silva",
		StartDate:  mustDate("2025-03-10"),
		EndDate:    mustDate("2025-03-12"),
		Discount:   50,
		Items: []entities.BudgetItem{
			{EquipmentName: "X", Quantity: 2, DailyRate: 100},
		},
	}
}

func TestBudgetUseCase_GenerateNumber(t *testing.T) {
	t.Run("first budget of the year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, nil, nil)
		uc.now = fixedNow("2025-02-01T10:00:00Z")

		repo.EXPECT().ListNumbersByYear(gomock.Any(), 2025).Return(nil, nil)

		number, err := uc.GenerateNumber(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if number != "ORC-2025-001" {
			t.Fatalf("expected ORC-2025-001, got %s", number)
		}
	})

	t.Run("increments the highest existing sequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, nil, nil)
		uc.now = fixedNow("2025-02-01T10:00:00Z")

		repo.EXPECT().ListNumbersByYear(gomock.Any(), 2025).Return([]string{"ORC-2025-001", "ORC-2025-007", "ORC-2025-002"}, nil)

		number, err := uc.GenerateNumber(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if number != "ORC-2025-008" {
			t.Fatalf("expected ORC-2025-008, got %s", number)
		}
	})

	t.Run("sequence resets per calendar year", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, nil, nil)
		uc.now = fixedNow("2026-01-02T10:00:00Z")

		// Only 2026 numbers come back from the year-scoped listing.
		repo.EXPECT().ListNumbersByYear(gomock.Any(), 2026).Return([]string{}, nil)

		number, err := uc.GenerateNumber(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if number != "ORC-2026-001" {
			t.Fatalf("expected ORC-2026-001, got %s", number)
		}
	})

	t.Run("malformed numbers are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, nil, nil)
		uc.now = fixedNow("2025-02-01T10:00:00Z")

		repo.EXPECT().ListNumbersByYear(gomock.Any(), 2025).Return([]string{"ORC-2025-003", "garbage", "ORC-2025-"}, nil)

		number, err := uc.GenerateNumber(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if number != "ORC-2025-004" {
			t.Fatalf("expected ORC-2025-004, got %s", number)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().ListNumbersByYear(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.GenerateNumber(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestBudgetUseCase_Create(t *testing.T) {
	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*entities.Budget)
			wantErr error
		}{
			{"missing client", func(b *entities.Budget) { b.ClientID = " " }, ErrInvalidBudgetClient},
			{"missing client name", func(b *entities.Budget) { b.ClientName = "" }, ErrInvalidBudgetClient},
			{"zero dates", func(b *entities.Budget) { b.StartDate = time.Time{} }, ErrInvalidBudgetPeriod},
			{"end before start", func(b *entities.Budget) { b.EndDate = mustDate("2025-03-01") }, ErrInvalidBudgetPeriod},
			{"negative discount", func(b *entities.Budget) { b.Discount = -1 }, ErrInvalidBudgetDiscount},
			{"no items", func(b *entities.Budget) { b.Items = nil }, ErrEmptyBudgetItems},
			{"zero quantity", func(b *entities.Budget) { b.Items[0].Quantity = 0 }, ErrInvalidBudgetItem},
			{"non-positive rate", func(b *entities.Budget) { b.Items[0].DailyRate = 0 }, ErrInvalidBudgetItem},
			{"blank equipment name", func(b *entities.Budget) { b.Items[0].EquipmentName = "  " }, ErrInvalidBudgetItem},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewBudgetUseCase(nil, nil, nil, nil, nil)
				b := validBudgetInput()
				tc.mutate(&b)
				if _, err := uc.Create(context.Background(), b); !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})

	t.Run("create success assigns number and recalculates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, nil, nil)
		uc.now = fixedNow("2025-02-01T10:00:00Z")

		repo.EXPECT().ListNumbersByYear(gomock.Any(), 2025).Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.ID == "" || b.Number != "ORC-2025-001" {
					t.Fatalf("unexpected id/number: %+v", b)
				}
				if b.Status != entities.BudgetStatusPendente {
					t.Fatalf("expected Pendente, got %s", b.Status)
				}
				if b.Items[0].Days != 3 || b.Items[0].Total != 600 {
					t.Fatalf("expected recalculated item, got %+v", b.Items[0])
				}
				if b.Subtotal != 600 || b.TotalValue != 550 {
					t.Fatalf("expected subtotal 600 / total 550, got %+v", b)
				}
				return b, nil
			},
		)

		if _, err := uc.Create(context.Background(), validBudgetInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBudgetUseCase_Approve(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBudgetUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.Approve(context.Background(), "  "); !errors.Is(err, ErrInvalidBudgetID) {
			t.Fatalf("expected ErrInvalidBudgetID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{}, nil)

		if _, err := uc.Approve(context.Background(), "b-1"); !errors.Is(err, ErrBudgetNotFound) {
			t.Fatalf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusRejeitado}, nil)

		if _, err := uc.Approve(context.Background(), "b-1"); !errors.Is(err, ErrBudgetNotPending) {
			t.Fatalf("expected ErrBudgetNotPending, got %v", err)
		}
	})

	t.Run("promotes budget into rental", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		approvals := mock_interfaces.NewMockIApprovalRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		cache := NewAvailabilityCache()
		cache.set("stale", entities.Availability{})
		uc := NewBudgetUseCase(repo, approvals, cache, notifier, nil)
		uc.now = fixedNow("2025-02-01T10:00:00Z")

		budget := entities.Budget{
			ID:         "b-1",
			Number:     "ORC-2025-003",
			ClientID:   "cli-1",
			ClientName: "Maria Silva",
			StartDate:  mustDate("2025-03-10"),
			EndDate:    mustDate("2025-03-12"),
			Items: []entities.BudgetItem{
				{ID: "it-1", EquipmentName: "X", Quantity: 2, DailyRate: 100, Days: 3, Total: 600},
			},
			Subtotal:   600,
			Discount:   50,
			TotalValue: 550,
			Status:     entities.BudgetStatusPendente,
		}

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)
		approvals.EXPECT().PromoteToRental(gomock.Any(), "b-1", gomock.AssignableToTypeOf(entities.Rental{})).DoAndReturn(
			func(_ context.Context, budgetID string, r entities.Rental) error {
				if r.Status != entities.RentalStatusInstalacaoPendente {
					t.Fatalf("expected Instalação Pendente, got %s", r.Status)
				}
				if r.TotalValue != 600 || r.Discount != 50 || r.FinalValue != 550 {
					t.Fatalf("unexpected values: %+v", r)
				}
				if r.BudgetID != "b-1" || r.ClientName != "Maria Silva" {
					t.Fatalf("unexpected provenance/client: %+v", r)
				}
				if len(r.Items) != 1 || r.Items[0].Total != 600 || r.Items[0].Days != 3 {
					t.Fatalf("unexpected items: %+v", r.Items)
				}
				return nil
			},
		)
		notifier.EXPECT().BudgetApproved(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		rental, err := uc.Approve(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rental.FinalValue != 550 {
			t.Fatalf("expected final value 550, got %v", rental.FinalValue)
		}
		if cache.Len() != 0 {
			t.Fatalf("expected availability cache invalidated")
		}
	})

	t.Run("notification failure does not fail the approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		approvals := mock_interfaces.NewMockIApprovalRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewBudgetUseCase(repo, approvals, nil, notifier, nil)

		budget := validBudgetInput()
		budget.ID = "b-1"
		budget.Status = entities.BudgetStatusPendente
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)
		approvals.EXPECT().PromoteToRental(gomock.Any(), "b-1", gomock.Any()).Return(nil)
		notifier.EXPECT().BudgetApproved(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("webhook down"))

		if _, err := uc.Approve(context.Background(), "b-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approval succeeds with the webhook notifier disabled", func(t *testing.T) {
		t.Setenv("WEBHOOK_URL", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		approvals := mock_interfaces.NewMockIApprovalRepository(ctrl)
		uc := NewBudgetUseCase(repo, approvals, nil, notify.NewWebhookNotifier(nil), nil)

		budget := validBudgetInput()
		budget.ID = "b-1"
		budget.Status = entities.BudgetStatusPendente
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)
		approvals.EXPECT().PromoteToRental(gomock.Any(), "b-1", gomock.Any()).Return(nil)

		rental, err := uc.Approve(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rental.Status != entities.RentalStatusInstalacaoPendente {
			t.Errorf("expected status %q, got %q", entities.RentalStatusInstalacaoPendente, rental.Status)
		}
	})

	t.Run("transactional failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		approvals := mock_interfaces.NewMockIApprovalRepository(ctrl)
		uc := NewBudgetUseCase(repo, approvals, nil, nil, nil)

		budget := validBudgetInput()
		budget.ID = "b-1"
		budget.Status = entities.BudgetStatusPendente
		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(budget, nil)
		approvals.EXPECT().PromoteToRental(gomock.Any(), "b-1", gomock.Any()).Return(errors.New("transaction canceled"))

		if _, err := uc.Approve(context.Background(), "b-1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestBudgetUseCase_Reject(t *testing.T) {
	t.Run("marks pending budget rejected and keeps it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusPendente}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Budget{})).DoAndReturn(
			func(_ context.Context, b entities.Budget) (entities.Budget, error) {
				if b.Status != entities.BudgetStatusRejeitado {
					t.Fatalf("expected Rejeitado, got %s", b.Status)
				}
				return b, nil
			},
		)

		b, err := uc.Reject(context.Background(), "b-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.BudgetStatusRejeitado {
			t.Fatalf("unexpected status: %s", b.Status)
		}
	})

	t.Run("rejecting a non-pending budget is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
		uc := NewBudgetUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Budget{ID: "b-1", Status: entities.BudgetStatusRejeitado}, nil)

		if _, err := uc.Reject(context.Background(), "b-1"); !errors.Is(err, ErrBudgetNotPending) {
			t.Fatalf("expected ErrBudgetNotPending, got %v", err)
		}
	})
}

func TestBudgetUseCase_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBudgetRepository(ctrl)
	uc := NewBudgetUseCase(repo, nil, nil, nil, nil)

	budgets := []entities.Budget{
		{ID: "1", Number: "ORC-2025-001", ClientName: "Maria Silva", Status: entities.BudgetStatusPendente},
		{ID: "2", Number: "ORC-2025-002", ClientName: "Eventos & Cia", Status: entities.BudgetStatusRejeitado},
	}
	repo.EXPECT().List(gomock.Any()).Return(budgets, nil).Times(3)

	t.Run("case-insensitive term over client name", func(t *testing.T) {
		res, err := uc.Search(context.Background(), "maria", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("term over number", func(t *testing.T) {
		res, err := uc.Search(context.Background(), "2025-002", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "2" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		res, err := uc.Search(context.Background(), "", entities.BudgetStatusRejeitado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "2" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
