package response

import (
	"testing"
	"time"

	"locaequip/internal/domain/entities"
)

func TestFromBudget(t *testing.T) {
	start, _ := time.Parse(entities.DateLayout, "2025-03-10")
	end, _ := time.Parse(entities.DateLayout, "2025-03-12")

	b := entities.Budget{
		ID:         "b-1",
		Number:     "ORC-2025-003",
		ClientName: "Maria Silva",
		StartDate:  start,
		EndDate:    end,
		Items: []entities.BudgetItem{
			{ID: "it-1", EquipmentName: "Tenda 10x10", Quantity: 2, DailyRate: 100, Days: 3, Total: 600},
		},
		Subtotal:   600,
		Discount:   50,
		TotalValue: 550,
		Status:     entities.BudgetStatusPendente,
	}

	resp := FromBudget(b)
	if resp.Number != "ORC-2025-003" || resp.Status != "Pendente" {
		t.Fatalf("unexpected mapping: %+v", resp)
	}
	if resp.StartDate != "2025-03-10" || resp.EndDate != "2025-03-12" {
		t.Fatalf("expected wire dates, got %s / %s", resp.StartDate, resp.EndDate)
	}
	if len(resp.Items) != 1 || resp.Items[0].Total != 600 {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
	if resp.TotalValue != 550 {
		t.Fatalf("unexpected total: %v", resp.TotalValue)
	}
}

func TestFromRental(t *testing.T) {
	start, _ := time.Parse(entities.DateLayout, "2025-03-10")
	end, _ := time.Parse(entities.DateLayout, "2025-03-12")

	r := entities.Rental{
		ID:         "r-1",
		BudgetID:   "b-1",
		StartDate:  start,
		EndDate:    end,
		TotalValue: 600,
		Discount:   50,
		FinalValue: 550,
		Status:     entities.RentalStatusInstalacaoPendente,
	}

	resp := FromRental(r)
	if resp.BudgetID != "b-1" || resp.FinalValue != 550 {
		t.Fatalf("unexpected mapping: %+v", resp)
	}
	if resp.StartDate != "2025-03-10" {
		t.Fatalf("expected wire date, got %s", resp.StartDate)
	}
	if resp.Status != string(entities.RentalStatusInstalacaoPendente) {
		t.Fatalf("unexpected status: %s", resp.Status)
	}
}
