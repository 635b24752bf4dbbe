package interfaces

import (
	"context"

	"locaequip/internal/domain/entities"
)

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_mock.go -package=mock_interfaces

// INotifier pushes workflow events to an external webhook. Delivery is
// best-effort: the approval workflow logs failures and moves on.
type INotifier interface {
	BudgetApproved(ctx context.Context, budget entities.Budget, rental entities.Rental) error
}
