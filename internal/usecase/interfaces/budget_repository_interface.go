package interfaces

import (
	"context"

	"locaequip/internal/domain/entities"
)

//go:generate mockgen -source=budget_repository_interface.go -destination=mocks/budget_repository_mock.go -package=mock_interfaces

// IBudgetRepository abstracts DynamoDB persistence for Budget.
//
// Line items live embedded in the budget item, so deleting a budget cascades
// to its items for free. ListNumbersByYear feeds the ORC-<year>-<seq>
// numbering: it returns every stored number with the given year prefix.
type IBudgetRepository interface {
	List(ctx context.Context) ([]entities.Budget, error)
	GetByID(ctx context.Context, id string) (entities.Budget, error)
	Create(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Update(ctx context.Context, b entities.Budget) (entities.Budget, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListNumbersByYear(ctx context.Context, year int) ([]string, error)
}

// IApprovalRepository is the transactional boundary of the budget approval
// workflow: the rental put and the budget delete either both happen or
// neither does.
type IApprovalRepository interface {
	PromoteToRental(ctx context.Context, budgetID string, r entities.Rental) error
}
