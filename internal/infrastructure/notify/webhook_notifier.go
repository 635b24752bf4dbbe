package notify

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"locaequip/internal/domain/entities"
	"locaequip/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const webhookTimeout = 10 * time.Second

type approvalEvent struct {
	Event      string  `json:"event"`
	BudgetID   string  `json:"budget_id"`
	Number     string  `json:"number"`
	RentalID   string  `json:"rental_id"`
	ClientName string  `json:"client_name"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	FinalValue float64 `json:"final_value"`
}

// WebhookNotifier posts an approval event to the URL in WEBHOOK_URL. The
// caller treats delivery as best effort; a failed post never rolls back the
// approval itself.
type WebhookNotifier struct {
	client *resty.Client
	url    string
	logger *zap.Logger
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier builds a notifier for the URL in WEBHOOK_URL. When the
// variable is unset the notifier is disabled and BudgetApproved becomes a
// no-op, so callers can wire it unconditionally.
func NewWebhookNotifier(logger *zap.Logger) *WebhookNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	url := strings.TrimSpace(os.Getenv("WEBHOOK_URL"))
	if url == "" {
		return &WebhookNotifier{logger: logger}
	}
	return &WebhookNotifier{
		client: resty.New().SetTimeout(webhookTimeout),
		url:    url,
		logger: logger,
	}
}

func (n *WebhookNotifier) BudgetApproved(ctx context.Context, b entities.Budget, r entities.Rental) error {
	if n.url == "" {
		return nil
	}

	event := approvalEvent{
		Event:      "budget.approved",
		BudgetID:   b.ID,
		Number:     b.Number,
		RentalID:   r.ID,
		ClientName: r.ClientName,
		StartDate:  r.StartDate.Format(entities.DateLayout),
		EndDate:    r.EndDate.Format(entities.DateLayout),
		FinalValue: r.FinalValue,
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(n.url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode())
	}

	n.logger.Info("approval webhook delivered",
		zap.String("budget_id", b.ID),
		zap.String("rental_id", r.ID))
	return nil
}
