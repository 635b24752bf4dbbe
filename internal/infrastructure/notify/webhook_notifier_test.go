package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"locaequip/internal/domain/entities"
)

func approvedPair() (entities.Budget, entities.Rental) {
	start, _ := time.Parse(entities.DateLayout, "2025-03-10")
	end, _ := time.Parse(entities.DateLayout, "2025-03-12")
	b := entities.Budget{ID: "b-1", Number: "ORC-2025-001"}
	r := entities.Rental{
		ID:         "r-1",
		ClientName: "Maria Souza",
		StartDate:  start,
		EndDate:    end,
		FinalValue: 550,
	}
	return b, r
}

func TestWebhookNotifierBudgetApproved(t *testing.T) {
	t.Run("no-op when WEBHOOK_URL is unset", func(t *testing.T) {
		t.Setenv("WEBHOOK_URL", "")

		n := NewWebhookNotifier(nil)
		if n == nil {
			t.Fatal("expected a disabled notifier, got nil")
		}

		b, r := approvedPair()
		if err := n.BudgetApproved(context.Background(), b, r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("posts the approval event", func(t *testing.T) {
		var got approvalEvent
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if err := json.NewDecoder(req.Body).Decode(&got); err != nil {
				t.Errorf("decoding body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()
		t.Setenv("WEBHOOK_URL", srv.URL)

		n := NewWebhookNotifier(nil)
		b, r := approvedPair()
		if err := n.BudgetApproved(context.Background(), b, r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got.Event != "budget.approved" {
			t.Errorf("expected event budget.approved, got %q", got.Event)
		}
		if got.BudgetID != "b-1" || got.RentalID != "r-1" {
			t.Errorf("unexpected ids: %q / %q", got.BudgetID, got.RentalID)
		}
		if got.StartDate != "2025-03-10" || got.EndDate != "2025-03-12" {
			t.Errorf("unexpected dates: %q / %q", got.StartDate, got.EndDate)
		}
		if got.FinalValue != 550 {
			t.Errorf("expected final value 550, got %v", got.FinalValue)
		}
	})

	t.Run("error status surfaces as error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()
		t.Setenv("WEBHOOK_URL", srv.URL)

		n := NewWebhookNotifier(nil)
		b, r := approvedPair()
		if err := n.BudgetApproved(context.Background(), b, r); err == nil {
			t.Fatal("expected an error, got nil")
		}
	})
}
