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

func validRentalInput() entities.Rental {
	return entities.Rental{
		ClientID:   "cli-1",
		ClientName: "Maria Silva",
		StartDate:  mustDate("2025-03-10"),
		EndDate:    mustDate("2025-03-12"),
		Discount:   50,
		Items: []entities.RentalItem{
			{EquipmentName: "X", Quantity: 2, DailyRate: 100, Days: 3, Total: 600},
		},
	}
}

func TestRentalUseCase_Create(t *testing.T) {
	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*entities.Rental)
			wantErr error
		}{
			{"missing client", func(r *entities.Rental) { r.ClientID = "" }, ErrInvalidRentalClient},
			{"end before start", func(r *entities.Rental) { r.EndDate = mustDate("2025-03-01") }, ErrInvalidRentalPeriod},
			{"no items", func(r *entities.Rental) { r.Items = nil }, ErrEmptyRentalItems},
			{"zero quantity", func(r *entities.Rental) { r.Items[0].Quantity = 0 }, ErrInvalidRentalItem},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := NewRentalUseCase(nil, nil, nil)
				r := validRentalInput()
				tc.mutate(&r)
				if _, err := uc.Create(context.Background(), r); !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
			})
		}
	})

	t.Run("create assigns ids, recalculates and invalidates the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRentalRepository(ctrl)
		cache := NewAvailabilityCache()
		cache.set("stale", entities.Availability{})
		uc := NewRentalUseCase(repo, cache, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Rental{})).DoAndReturn(
			func(_ context.Context, r entities.Rental) (entities.Rental, error) {
				if r.ID == "" || r.Items[0].ID == "" {
					t.Fatalf("expected generated ids: %+v", r)
				}
				if r.Status != entities.RentalStatusInstalacaoPendente {
					t.Fatalf("expected Instalação Pendente, got %s", r.Status)
				}
				if r.TotalValue != 600 || r.FinalValue != 550 {
					t.Fatalf("expected 600/550, got %+v", r)
				}
				return r, nil
			},
		)

		if _, err := uc.Create(context.Background(), validRentalInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.Len() != 0 {
			t.Fatalf("expected availability cache invalidated")
		}
	})
}

func TestRentalUseCase_Update(t *testing.T) {
	t.Run("preserves provenance and creation date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRentalRepository(ctrl)
		uc := NewRentalUseCase(repo, nil, nil)

		createdAt := mustDate("2025-02-01")
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.Rental{
			ID:        "r-1",
			BudgetID:  "b-9",
			Status:    entities.RentalStatusAtivo,
			CreatedAt: createdAt,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Rental{})).DoAndReturn(
			func(_ context.Context, r entities.Rental) (entities.Rental, error) {
				if r.ID != "r-1" || r.BudgetID != "b-9" || !r.CreatedAt.Equal(createdAt) {
					t.Fatalf("immutable fields overwritten: %+v", r)
				}
				if r.Status != entities.RentalStatusAtivo {
					t.Fatalf("expected status kept, got %s", r.Status)
				}
				return r, nil
			},
		)

		input := validRentalInput()
		input.BudgetID = "spoofed"
		input.Status = ""
		if _, err := uc.Update(context.Background(), "r-1", input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRentalRepository(ctrl)
		uc := NewRentalUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Rental{}, nil)

		if _, err := uc.Update(context.Background(), "missing", validRentalInput()); !errors.Is(err, ErrRentalNotFound) {
			t.Fatalf("expected ErrRentalNotFound, got %v", err)
		}
	})
}

func TestRentalUseCase_Delete(t *testing.T) {
	t.Run("missing rental", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRentalRepository(ctrl)
		uc := NewRentalUseCase(repo, nil, nil)

		repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

		if err := uc.Delete(context.Background(), "missing"); !errors.Is(err, ErrRentalNotFound) {
			t.Fatalf("expected ErrRentalNotFound, got %v", err)
		}
	})

	t.Run("success invalidates the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRentalRepository(ctrl)
		cache := NewAvailabilityCache()
		cache.set("stale", entities.Availability{})
		uc := NewRentalUseCase(repo, cache, nil)

		repo.EXPECT().Delete(gomock.Any(), "r-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "r-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.Len() != 0 {
			t.Fatalf("expected availability cache invalidated")
		}
	})
}

func TestRentalUseCase_RollStatuses(t *testing.T) {
	now, err := time.Parse(time.RFC3339, "2025-03-15T06:00:00Z")
	if err != nil {
		t.Fatalf("parse now: %v", err)
	}

	t.Run("advances due rentals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRentalRepository(ctrl)
		cache := NewAvailabilityCache()
		cache.set("stale", entities.Availability{})
		uc := NewRentalUseCase(repo, cache, nil)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Rental{
			// Start date reached today: becomes active.
			{ID: "r-1", Status: entities.RentalStatusInstalacaoPendente, StartDate: mustDate("2025-03-15"), EndDate: mustDate("2025-03-20")},
			// End date passed yesterday: becomes completed.
			{ID: "r-2", Status: entities.RentalStatusAtivo, StartDate: mustDate("2025-03-10"), EndDate: mustDate("2025-03-14")},
			// Still in the future: untouched.
			{ID: "r-3", Status: entities.RentalStatusInstalacaoPendente, StartDate: mustDate("2025-03-16"), EndDate: mustDate("2025-03-20")},
			// Ends today: stays active until tomorrow.
			{ID: "r-4", Status: entities.RentalStatusAtivo, StartDate: mustDate("2025-03-10"), EndDate: mustDate("2025-03-15")},
			{ID: "r-5", Status: entities.RentalStatusConcluido, StartDate: mustDate("2025-03-01"), EndDate: mustDate("2025-03-02")},
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Rental{})).DoAndReturn(
			func(_ context.Context, r entities.Rental) (entities.Rental, error) {
				switch r.ID {
				case "r-1":
					if r.Status != entities.RentalStatusAtivo {
						t.Fatalf("expected r-1 Ativo, got %s", r.Status)
					}
				case "r-2":
					if r.Status != entities.RentalStatusConcluido {
						t.Fatalf("expected r-2 Concluído, got %s", r.Status)
					}
				default:
					t.Fatalf("unexpected update for %s", r.ID)
				}
				return r, nil
			},
		).Times(2)

		changed, err := uc.RollStatuses(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed != 2 {
			t.Fatalf("expected 2 changes, got %d", changed)
		}
		if cache.Len() != 0 {
			t.Fatalf("expected availability cache invalidated")
		}
	})

	t.Run("no due rentals leaves the cache alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRentalRepository(ctrl)
		cache := NewAvailabilityCache()
		cache.set("warm", entities.Availability{})
		uc := NewRentalUseCase(repo, cache, nil)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Rental{
			{ID: "r-1", Status: entities.RentalStatusConcluido, StartDate: mustDate("2025-03-01"), EndDate: mustDate("2025-03-02")},
		}, nil)

		changed, err := uc.RollStatuses(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if changed != 0 {
			t.Fatalf("expected no changes, got %d", changed)
		}
		if cache.Len() != 1 {
			t.Fatalf("expected cache untouched")
		}
	})
}

func TestRentalUseCase_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRentalRepository(ctrl)
	uc := NewRentalUseCase(repo, nil, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Rental{
		{ID: "1", ClientName: "Maria Silva", Status: entities.RentalStatusAtivo},
		{ID: "2", ClientName: "João Souza", Status: entities.RentalStatusConcluido},
	}, nil).Times(2)

	t.Run("term over client name", func(t *testing.T) {
		res, err := uc.Search(context.Background(), "SILVA", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		res, err := uc.Search(context.Background(), "", entities.RentalStatusConcluido)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "2" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
